package session

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SystemPrompt seeds every conversation as its first message.
const SystemPrompt = "You are a helpful assistant that can answer questions and help with task."

// Message represents a single chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session represents one chat session. History is append-only for the
// lifetime of the process; the first message is always the system prompt.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	Backend   string    `json:"backend"`
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
}

// New creates a session with fresh identifiers and a seeded history.
func New(backend, model string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		StartTime: time.Now(),
		Backend:   backend,
		Model:     model,
		Messages: []Message{
			{Role: RoleSystem, Content: SystemPrompt},
		},
	}
}

// Append adds a message to the history.
func (s *Session) Append(role Role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}
