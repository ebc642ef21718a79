package word

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/neolalia/wordforge/internal/llm"
)

// Error kinds surfaced to the HTTP layer. A missing credential is fatal at
// startup and never reaches Generate.
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrTransport       = errors.New("generation service unavailable")
	ErrSchemaViolation = errors.New("malformed generation reply")
)

// Request carries one user submission. It is not persisted.
type Request struct {
	EmotionDescription string
	Languages          []string
}

// Result is the invented word. All five fields are required; Examples holds
// exactly two sentences.
type Result struct {
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation"`
	Definition    string   `json:"definition"`
	Etymology     string   `json:"etymology"`
	Examples      []string `json:"examples"`
}

// Completer is the single capability the service needs from the LLM layer.
// Tests substitute a fake returning canned payloads or simulated failures.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

type Service struct {
	completer Completer
}

func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// Generate turns a request into a validated result or fails with exactly one
// of the exported error kinds. One outbound call per invocation; no retries,
// no caching, no partial results.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	description := strings.TrimSpace(req.EmotionDescription)
	if description == "" {
		return nil, fmt.Errorf("%w: emotion description is required", ErrEmptyInput)
	}
	if len(req.Languages) == 0 {
		return nil, fmt.Errorf("%w: at least one language is required", ErrEmptyInput)
	}

	reply, err := s.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: llm.SystemPrompt,
		UserPrompt:   UserPrompt(description, req.Languages),
		SchemaName:   schemaName,
		Schema:       ResultSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return parseResult(reply)
}

// UserPrompt renders the user-role message: the literal description and the
// comma-joined language list substituted into the fixed template.
func UserPrompt(description string, languages []string) string {
	return fmt.Sprintf(llm.WordPromptTemplate, description, strings.Join(languages, ", "))
}

func parseResult(reply string) (*Result, error) {
	payload, err := extractJSON(reply)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	var res Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if err := validate(&res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return &res, nil
}

func validate(res *Result) error {
	fields := []struct {
		name  string
		value string
	}{
		{"word", res.Word},
		{"pronunciation", res.Pronunciation},
		{"definition", res.Definition},
		{"etymology", res.Etymology},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("missing field %q", f.name)
		}
	}
	if len(res.Examples) != 2 {
		return fmt.Errorf("expected exactly 2 examples, got %d", len(res.Examples))
	}
	for i, example := range res.Examples {
		if strings.TrimSpace(example) == "" {
			return fmt.Errorf("example %d is empty", i+1)
		}
	}
	return nil
}

var (
	jsonFenceOpen  = regexp.MustCompile("(?s)```json\\s*")
	jsonFenceClose = regexp.MustCompile("(?s)```\\s*$")
)

// extractJSON recovers the JSON object from a reply that may carry extra text
// or markdown fences. Strict schema mode makes this a no-op on the happy path.
func extractJSON(reply string) (string, error) {
	reply = strings.TrimSpace(reply)
	reply = jsonFenceOpen.ReplaceAllString(reply, "")
	reply = jsonFenceClose.ReplaceAllString(reply, "")
	reply = strings.TrimSpace(reply)

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in reply")
	}

	return reply[start : end+1], nil
}
