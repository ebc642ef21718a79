package word

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neolalia/wordforge/internal/llm"
)

type fakeCompleter struct {
	reply string
	err   error
	calls int
	last  llm.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.last = req
	return f.reply, f.err
}

const gemeincharaReply = `{
	"word": "Gemeinchara",
	"pronunciation": "/gəˈmaɪnˌkɑːrə/",
	"definition": "The specific delight of uncovering something together.",
	"etymology": "German 'gemein' (shared) + Greek 'chara' (joy)",
	"examples": [
		"A quiet Gemeinchara settled over the lab when the readings finally made sense.",
		"Their friendship was built on Gemeinchara, one shared discovery at a time."
	]
}`

func validRequest() Request {
	return Request{
		EmotionDescription: "the joy of shared discovery",
		Languages:          []string{"German", "Ancient Greek"},
	}
}

func TestGenerateReturnsResultUnchanged(t *testing.T) {
	fake := &fakeCompleter{reply: gemeincharaReply}
	svc := NewService(fake)

	result, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Gemeinchara", result.Word)
	assert.Equal(t, "/gəˈmaɪnˌkɑːrə/", result.Pronunciation)
	assert.Equal(t, "The specific delight of uncovering something together.", result.Definition)
	assert.Equal(t, "German 'gemein' (shared) + Greek 'chara' (joy)", result.Etymology)
	require.Len(t, result.Examples, 2)
	assert.Equal(t, 1, fake.calls)
}

func TestGeneratePromptEmbedsInputs(t *testing.T) {
	fake := &fakeCompleter{reply: gemeincharaReply}
	svc := NewService(fake)

	_, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, llm.SystemPrompt, fake.last.SystemPrompt)
	assert.Contains(t, fake.last.UserPrompt, `"the joy of shared discovery"`)
	assert.Contains(t, fake.last.UserPrompt, "German, Ancient Greek")
	assert.Equal(t, "generate_word", fake.last.SchemaName)
	assert.NotNil(t, fake.last.Schema)
}

func TestGenerateTrimsDescriptionBeforePrompting(t *testing.T) {
	fake := &fakeCompleter{reply: gemeincharaReply}
	svc := NewService(fake)

	req := validRequest()
	req.EmotionDescription = "  the joy of shared discovery\n"
	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, fake.last.UserPrompt, `Create a word for: "the joy of shared discovery"`)
}

func TestGenerateEmptyDescription(t *testing.T) {
	for _, description := range []string{"", "   ", "\t\n"} {
		fake := &fakeCompleter{reply: gemeincharaReply}
		svc := NewService(fake)

		req := validRequest()
		req.EmotionDescription = description
		_, err := svc.Generate(context.Background(), req)

		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Zero(t, fake.calls, "no external call may be issued for %q", description)
	}
}

func TestGenerateEmptyLanguages(t *testing.T) {
	fake := &fakeCompleter{reply: gemeincharaReply}
	svc := NewService(fake)

	req := validRequest()
	req.Languages = nil
	_, err := svc.Generate(context.Background(), req)

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, fake.calls)
}

func TestGenerateTransportFailure(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection refused")}
	svc := NewService(fake)

	result, err := svc.Generate(context.Background(), validRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerateSchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "the model apologizes instead of answering"},
		{"missing examples", `{"word":"w","pronunciation":"p","definition":"d","etymology":"e"}`},
		{"one example", `{"word":"w","pronunciation":"p","definition":"d","etymology":"e","examples":["only one"]}`},
		{"three examples", `{"word":"w","pronunciation":"p","definition":"d","etymology":"e","examples":["a","b","c"]}`},
		{"wrong type", `{"word":"w","pronunciation":"p","definition":"d","etymology":"e","examples":"not a list"}`},
		{"empty field", `{"word":"","pronunciation":"p","definition":"d","etymology":"e","examples":["a","b"]}`},
		{"blank example", `{"word":"w","pronunciation":"p","definition":"d","etymology":"e","examples":["a","  "]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{reply: tt.reply}
			svc := NewService(fake)

			result, err := svc.Generate(context.Background(), validRequest())

			assert.Nil(t, result, "no partial result may be produced")
			assert.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestGenerateRepairsFencedReply(t *testing.T) {
	fake := &fakeCompleter{reply: "```json\n" + gemeincharaReply + "\n```"}
	svc := NewService(fake)

	result, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Gemeinchara", result.Word)
}

func TestUserPromptSingleLanguage(t *testing.T) {
	prompt := UserPrompt("quiet pride", []string{"Latin"})

	assert.Contains(t, prompt, "STRICTLY ONLY these languages: Latin")
	assert.False(t, strings.Contains(prompt, "Latin,"), "single language must not be joined")
}
