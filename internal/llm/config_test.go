package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WORDVAULT_LLM_PROVIDER",
		"WORDVAULT_ANTHROPIC_API_KEY", "WORDVAULT_OPENAI_API_KEY", "WORDVAULT_GEMINI_API_KEY",
		"WORDVAULT_ANTHROPIC_MODEL", "WORDVAULT_OPENAI_MODEL", "WORDVAULT_GEMINI_MODEL",
		"WORDVAULT_OPENAI_BASE_URL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnvExplicitProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("WORDVAULT_LLM_PROVIDER", "openai")
	t.Setenv("WORDVAULT_OPENAI_API_KEY", "sk-test")
	t.Setenv("WORDVAULT_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigFromEnvDiscoversStandardKeys(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestConfigFromEnvAnthropicWinsDiscovery(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("provider = %q, want anthropic", cfg.Provider)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestValidateMockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}
