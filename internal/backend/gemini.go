package backend

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"MestChat/internal/session"
)

// GeminiBackend talks to the Gemini API. Each turn opens a fresh chat with
// no prior history; only the local session history accumulates context.
type GeminiBackend struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiBackend builds a Gemini handle. The underlying client is created
// lazily on first use so a missing credential fails at request time, not at
// selection time.
func NewGeminiBackend(apiKey, model string) *GeminiBackend {
	return &GeminiBackend{apiKey: apiKey, model: model}
}

// SendTurn ignores the accumulated history and sends only the input text on
// a fresh chat. Gemini does not report token usage here.
func (g *GeminiBackend) SendTurn(ctx context.Context, _ []session.Message, input string) (Reply, error) {
	if g.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return Reply{}, fmt.Errorf("creating gemini client: %w", err)
		}
		g.client = client
	}

	chat, err := g.client.Chats.Create(ctx, g.model, nil, nil)
	if err != nil {
		return Reply{}, fmt.Errorf("creating gemini chat: %w", err)
	}

	res, err := chat.SendMessage(ctx, genai.Part{Text: input})
	if err != nil {
		return Reply{}, fmt.Errorf("gemini send message: %w", err)
	}

	text := res.Text()
	if text == "" {
		return Reply{}, fmt.Errorf("empty response from %s", g.model)
	}

	return Reply{Text: text}, nil
}
