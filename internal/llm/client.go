package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// CompletionRequest describes a single schema-constrained chat completion:
// one system message, one user message, and the JSON schema the reply must
// conform to.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       any
}

type Client struct {
	api         *openai.Client
	model       string
	temperature float64
}

func NewClient(apiKey, model string, temperature float64) *Client {
	api := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		api:         &api,
		model:       model,
		temperature: temperature,
	}
}

// Complete issues one chat completion with the reply forced into the request's
// JSON schema via strict structured outputs. Callers still validate the
// decoded shape; strict mode covers the model, not a truncated reply.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Temperature: openai.Float(c.temperature),
	}

	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				Type: constant.JSONSchema("json_schema"),
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
