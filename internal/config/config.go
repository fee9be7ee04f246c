package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration, read once at startup.
type Config struct {
	OpenAIKey     string // credential for the OpenAI completion backend
	GeminiKey     string // credential for the Gemini generative backend
	OllamaBaseURL string // OpenAI-compatible endpoint of the local Ollama server
	OllamaKey     string // Ollama accepts any key; this is a placeholder
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads a .env file (if present) and the environment into a Config.
// Credential presence is not validated here; a missing key surfaces as a
// request error on first use.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return Config{
		OpenAIKey:     os.Getenv("OPEN_API_KEY"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		OllamaKey:     "ollama",
	}
}
