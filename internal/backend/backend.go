package backend

import (
	"context"

	"MestChat/internal/config"
	"MestChat/internal/session"
)

// Backend variant tags. OpenAI is the default when the tag is unrecognized.
const (
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
	BackendGemini = "gemini"
)

// Model identifiers, fixed per backend.
const (
	ModelOpenAI = "gpt-4o-mini"
	ModelOllama = "llama3.2:8b"
	ModelGemini = "gemini-2.5-flash"
)

// Reply is a backend's answer to one turn. HasUsage is false for backends
// that do not report token usage.
type Reply struct {
	Text        string
	TotalTokens int64
	HasUsage    bool
}

// Backend sends one conversational turn. Completion-style backends consume
// the full history (which already ends with the user's input); the Gemini
// backend consumes only the input text.
type Backend interface {
	SendTurn(ctx context.Context, history []session.Message, input string) (Reply, error)
}

// Select maps a variant tag to a configured backend handle and the model it
// will invoke. Credentials are not validated here; a missing key fails at
// request time.
func Select(variant string, cfg config.Config) (Backend, string) {
	switch variant {
	case BackendOllama:
		return NewCompletionBackend(cfg.OllamaKey, cfg.OllamaBaseURL, ModelOllama), ModelOllama
	case BackendGemini:
		return NewGeminiBackend(cfg.GeminiKey, ModelGemini), ModelGemini
	default:
		return NewCompletionBackend(cfg.OpenAIKey, "", ModelOpenAI), ModelOpenAI
	}
}
