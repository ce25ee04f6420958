package config

import "testing"

func TestLoad_DefaultsWithEmptyEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODELS", "")
	t.Setenv("ADZUNA_APP_ID", "")
	t.Setenv("ADZUNA_APP_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("zero configuration must load: %v", err)
	}
	if cfg.App.HTTPPort != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.App.HTTPPort)
	}
	if cfg.Adzuna.Configured() {
		t.Fatalf("adzuna must be disabled without credentials")
	}
	if len(cfg.Gemini.Models) == 0 {
		t.Fatalf("expected default model list")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid port")
	}
}

func TestParseModels(t *testing.T) {
	got := parseModels("gemini-2.5-pro, ,gemini-2.0-flash")
	if len(got) != 2 || got[0] != "gemini-2.5-pro" || got[1] != "gemini-2.0-flash" {
		t.Fatalf("unexpected models: %v", got)
	}
	if len(parseModels("")) == 0 {
		t.Fatalf("empty input must yield defaults")
	}
}
