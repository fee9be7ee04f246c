package config

import "testing"

func TestLoadReadsCredentialsFromEnvironment(t *testing.T) {
	t.Setenv("OPEN_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")

	cfg := Load()
	if cfg.OpenAIKey != "sk-test" {
		t.Fatalf("expected OpenAI key from env, got %q", cfg.OpenAIKey)
	}
	if cfg.GeminiKey != "gm-test" {
		t.Fatalf("expected Gemini key from env, got %q", cfg.GeminiKey)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPEN_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OLLAMA_BASE_URL", "")

	cfg := Load()
	if cfg.OllamaBaseURL != "http://localhost:11434/v1" {
		t.Fatalf("unexpected default Ollama URL: %q", cfg.OllamaBaseURL)
	}
	if cfg.OllamaKey != "ollama" {
		t.Fatalf("unexpected Ollama placeholder key: %q", cfg.OllamaKey)
	}
	// Missing credentials are not an error at load time.
	if cfg.OpenAIKey != "" || cfg.GeminiKey != "" {
		t.Fatalf("expected empty credentials, got %+v", cfg)
	}
}

func TestLoadOllamaOverride(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://remote:11434/v1")

	cfg := Load()
	if cfg.OllamaBaseURL != "http://remote:11434/v1" {
		t.Fatalf("expected override, got %q", cfg.OllamaBaseURL)
	}
}
