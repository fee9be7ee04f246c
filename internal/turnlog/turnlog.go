// Package turnlog writes one structured record per conversational event to
// two sinks: a rotating log file receiving one JSON object per line, and the
// console receiving the same record prefixed with a timestamp and level.
package turnlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Record levels.
const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
)

// Record types.
const (
	TypeUserInput     = "user_input"
	TypeModelResponse = "model_response"
	TypeError         = "error"
)

// Metadata carries the per-record identifiers and measurements.
type Metadata struct {
	UserID       string   `json:"user_id,omitempty"`
	SessionID    string   `json:"session_id"`
	Model        string   `json:"model"`
	ResponseTime *float64 `json:"response_time,omitempty"`
	TokensUsed   *int64   `json:"tokens_used,omitempty"`
}

// Record is one log entry. Exactly one of ModelResponse / ErrorMessage is
// set, depending on Type.
type Record struct {
	Timestamp     string   `json:"timestamp"`
	Level         string   `json:"level"`
	Type          string   `json:"type"`
	ModelResponse string   `json:"model_response,omitempty"`
	ErrorMessage  string   `json:"error_message,omitempty"`
	Metadata      Metadata `json:"metadata"`
}

// UserInput builds a record announcing a turn about to be dispatched. The
// input text itself is deliberately not logged.
func UserInput(sessionID, userID, model string) Record {
	return Record{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     LevelInfo,
		Type:      TypeUserInput,
		Metadata: Metadata{
			UserID:    userID,
			SessionID: sessionID,
			Model:     model,
		},
	}
}

// ModelResponse builds a record for a successful turn. tokens is nil when
// the backend does not report usage.
func ModelResponse(response, sessionID, model string, responseTime float64, tokens *int64) Record {
	return Record{
		Timestamp:     time.Now().Format(time.RFC3339),
		Level:         LevelInfo,
		Type:          TypeModelResponse,
		ModelResponse: response,
		Metadata: Metadata{
			SessionID:    sessionID,
			Model:        model,
			ResponseTime: &responseTime,
			TokensUsed:   tokens,
		},
	}
}

// Error builds a record for a failed turn.
func Error(message, sessionID, userID, model string) Record {
	return Record{
		Timestamp:    time.Now().Format(time.RFC3339),
		Level:        LevelError,
		Type:         TypeError,
		ErrorMessage: message,
		Metadata: Metadata{
			UserID:    userID,
			SessionID: sessionID,
			Model:     model,
		},
	}
}

// Logger emits records to a file writer and a console writer. Record content
// is identical across sinks; only the rendering differs.
type Logger struct {
	mu      sync.Mutex
	file    io.Writer
	console io.Writer
}

// New creates a Logger writing JSON lines to a rotating file under dir and
// mirroring each record to stdout.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "chatbot_logs.json"),
		MaxSize:    10, // 10 MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	return NewWithWriters(file, os.Stdout), nil
}

// NewWithWriters creates a Logger over explicit sinks.
func NewWithWriters(file, console io.Writer) *Logger {
	return &Logger{file: file, console: console}
}

// Emit writes one record to both sinks.
func (l *Logger) Emit(rec Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal log record: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintf(l.file, "%s\n", line); err != nil {
		return fmt.Errorf("failed to write log record: %w", err)
	}
	if _, err := fmt.Fprintf(l.console, "%s - %s - %s\n",
		time.Now().Format("2006-01-02 15:04:05"), rec.Level, line); err != nil {
		return fmt.Errorf("failed to mirror log record: %w", err)
	}
	return nil
}
