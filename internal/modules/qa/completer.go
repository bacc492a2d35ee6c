package qa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel = openai.GPT4oMini
	temperature  = 0.2
)

// ErrNoCompletion means the provider answered but produced no usable
// completion: a non-2xx status, a malformed body or an empty reply.
var ErrNoCompletion = errors.New("qa: no completion")

// Completer sends one system+user exchange and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type OpenAICompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAICompleter returns nil when apiKey is blank; callers must not
// store that nil in a Completer. baseURL overrides the provider endpoint
// (OpenAI-compatible gateways, tests).
func NewOpenAICompleter(apiKey, baseURL, model string) *OpenAICompleter {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if model == "" {
		model = DefaultModel
	}
	return &OpenAICompleter{client: openai.NewClientWithConfig(cfg), model: model}
}

func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &apiErr), errors.As(err, &reqErr),
			errors.As(err, &syntaxErr), errors.As(err, &typeErr),
			errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
			return "", fmt.Errorf("%w: %v", ErrNoCompletion, err)
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrNoCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
