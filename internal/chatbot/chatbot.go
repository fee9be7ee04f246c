package chatbot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"MestChat/internal/backend"
	"MestChat/internal/config"
	"MestChat/internal/session"
	"MestChat/internal/telemetry"
	"MestChat/internal/turnlog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ChatBot represents the main application: one session, one backend handle,
// one turn logger.
type ChatBot struct {
	config  config.Config
	logger  *slog.Logger
	turns   *turnlog.Logger
	tracer  trace.Tracer
	meter   metric.Meter
	backend backend.Backend
	session *session.Session
	cleanup func()
}

// NewChatBot creates a ChatBot for the given backend variant.
func NewChatBot(variant string, cfg config.Config) (*ChatBot, error) {
	logger, err := telemetry.InitLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()
	tracer, meter, cleanup, err := telemetry.InitTelemetry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	turns, err := turnlog.New("logs")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize turn log: %w", err)
	}

	handle, model := backend.Select(variant, cfg)
	sess := session.New(variant, model)
	logger.Info("created new session",
		"session_id", sess.ID, "user_id", sess.UserID, "backend", variant, "model", model)

	return &ChatBot{
		config:  cfg,
		logger:  logger,
		turns:   turns,
		tracer:  tracer,
		meter:   meter,
		backend: handle,
		session: sess,
		cleanup: cleanup,
	}, nil
}

// Send dispatches one turn to the backend and logs it. It never returns an
// error: a failed dispatch is logged and converted to an apology string, and
// the user message appended before the attempt stays in history.
func (cb *ChatBot) Send(ctx context.Context, input string) string {
	if err := cb.turns.Emit(turnlog.UserInput(cb.session.ID, cb.session.UserID, cb.session.Model)); err != nil {
		cb.logger.Warn("failed to emit user_input record", "error", err)
	}

	cb.session.Append(session.RoleUser, input)

	start := time.Now()
	ctx, span := cb.tracer.Start(ctx, "backend_call")
	reply, err := cb.backend.SendTurn(ctx, cb.session.Messages, input)
	span.End()
	elapsed := time.Since(start)

	if err != nil {
		cb.logger.Error("backend request failed", "error", err, "session_id", cb.session.ID)
		if emitErr := cb.turns.Emit(turnlog.Error(err.Error(), cb.session.ID, cb.session.UserID, cb.session.Model)); emitErr != nil {
			cb.logger.Warn("failed to emit error record", "error", emitErr)
		}
		return fmt.Sprintf("Sorry, something evil happened in the universe: %v", err)
	}

	cb.recordMetrics(ctx, reply, elapsed)

	var tokens *int64
	if reply.HasUsage {
		tokens = &reply.TotalTokens
	}
	if err := cb.turns.Emit(turnlog.ModelResponse(reply.Text, cb.session.ID, cb.session.Model, elapsed.Seconds(), tokens)); err != nil {
		cb.logger.Warn("failed to emit model_response record", "error", err)
	}

	cb.session.Append(session.RoleAssistant, reply.Text)
	return reply.Text
}

// recordMetrics records OpenTelemetry metrics for one completed turn.
func (cb *ChatBot) recordMetrics(ctx context.Context, reply backend.Reply, elapsed time.Duration) {
	histogram, err := cb.meter.Float64Histogram(
		"llm.request.duration",
		metric.WithDescription("Backend request duration in milliseconds"),
	)
	if err == nil {
		histogram.Record(ctx, float64(elapsed.Milliseconds()))
	}

	if reply.HasUsage {
		counter, err := cb.meter.Int64Counter(
			"llm.usage.total_tokens",
			metric.WithDescription("LLM usage metric: total_tokens"),
		)
		if err != nil {
			cb.logger.Warn("failed to create counter", "error", err)
			return
		}
		counter.Add(ctx, reply.TotalTokens)
	}
}

// SelectVariant presents the model menu on w and reads lines from r until
// one of "1", "2" or "3" is entered. ok is false if r is exhausted first.
func SelectVariant(r io.Reader, w io.Writer) (variant string, ok bool) {
	fmt.Fprintln(w, "\nSelect Model Type:")
	fmt.Fprintln(w, "1. OpenAI GPT-4")
	fmt.Fprintln(w, "2. Ollama Llama 3.2")
	fmt.Fprintln(w, "3. Google Gemini")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "enter choice (1, 2, or 3): ")
		if !scanner.Scan() {
			return "", false
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			return backend.BackendOpenAI, true
		case "2":
			return backend.BackendOllama, true
		case "3":
			return backend.BackendGemini, true
		}
		fmt.Fprintln(w, "Please enter 1, 2, or 3")
	}
}

// displayName maps a variant tag to the name shown in the banner.
func displayName(variant string) string {
	switch variant {
	case backend.BackendOllama:
		return "Ollama"
	case backend.BackendGemini:
		return "Gemini"
	default:
		return "OpenAI"
	}
}

// Run starts the interactive loop. It returns on "exit" or end of input;
// an interrupt prints a farewell and terminates normally.
func (cb *ChatBot) Run() error {
	defer cb.cleanup()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Println("\nChat session ended by user.")
		os.Exit(0)
	}()

	fmt.Println("\n===Chat Session Started===")
	fmt.Printf("Using %s model\n", displayName(cb.session.Backend))
	fmt.Println("Type 'exit' to end the conversation")
	fmt.Printf("Session ID: %s\n\n", cb.session.ID)

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "exit") {
			fmt.Println("Goodbye!")
			break
		}
		if input == "" {
			continue
		}

		fmt.Printf("Bot: %s\n\n", cb.Send(ctx, input))
	}

	return scanner.Err()
}
