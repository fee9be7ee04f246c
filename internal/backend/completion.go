package backend

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"MestChat/internal/session"
)

// CompletionBackend talks to an OpenAI-compatible chat-completions endpoint.
// It serves both the OpenAI API and a local Ollama server, which exposes the
// same API surface.
type CompletionBackend struct {
	cli   openai.Client
	model string
}

// NewCompletionBackend builds a client for the given endpoint. An empty
// baseURL means the OpenAI default.
func NewCompletionBackend(apiKey, baseURL, model string) *CompletionBackend {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &CompletionBackend{
		cli:   openai.NewClient(opts...),
		model: model,
	}
}

// SendTurn sends the entire accumulated history as context and returns the
// first choice's content along with the reported token usage.
func (b *CompletionBackend) SendTurn(ctx context.Context, history []session.Message, _ string) (Reply, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case session.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case session.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	resp, err := b.cli.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(b.model),
		Messages: msgs,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("empty response from %s", b.model)
	}

	return Reply{
		Text:        resp.Choices[0].Message.Content,
		TotalTokens: resp.Usage.TotalTokens,
		HasUsage:    true,
	}, nil
}
