package llm

import (
	"strings"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"MATHEQS_LLM_PROVIDER",
		"MATHEQS_GEMINI_API_KEY", "MATHEQS_GEMINI_MODEL",
		"MATHEQS_ANTHROPIC_API_KEY", "MATHEQS_ANTHROPIC_MODEL",
		"MATHEQS_OPENAI_API_KEY", "MATHEQS_OPENAI_MODEL", "MATHEQS_OPENAI_BASE_URL",
		"MATHEQS_OPENROUTER_API_KEY", "MATHEQS_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(v, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default max attempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MATHEQS_LLM_PROVIDER", "anthropic")
	t.Setenv("MATHEQS_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("MATHEQS_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()

	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
	// Unset vars keep their defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q", cfg.OpenAI.Model)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing gemini key")
	}
	if !strings.Contains(err.Error(), "MATHEQS_GEMINI_API_KEY") {
		t.Errorf("error should name the env var: %v", err)
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should not need a key: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "bard"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// OpenAI outranks Anthropic when both keys are present.
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}
