package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is read once at startup. Every key is optional: with no
// environment at all the service runs entirely on its local fallback
// paths.
type Config struct {
	App    AppConfig
	Gemini GeminiConfig
	Adzuna AdzunaConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	UploadDir   string
}

type GeminiConfig struct {
	APIKey string
	Models []string
}

type AdzunaConfig struct {
	AppID   string
	AppKey  string
	Country string
}

// Configured reports whether the Adzuna provider can be enabled.
func (a AdzunaConfig) Configured() bool {
	return a.AppID != "" && a.AppKey != ""
}

var defaultGeminiModels = []string{"gemini-2.5-flash", "gemini-2.0-flash"}

func Load() (Config, error) {
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg := Config{}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "resume-match"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8000"),
		UploadDir:   opt("UPLOAD_DIR", "./uploads"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY", ""),
		Models: parseModels(opt("GEMINI_MODELS", "")),
	}

	cfg.Adzuna = AdzunaConfig{
		AppID:   opt("ADZUNA_APP_ID", ""),
		AppKey:  opt("ADZUNA_APP_KEY", ""),
		Country: opt("ADZUNA_COUNTRY", "in"),
	}

	if _, err := strconv.Atoi(strings.TrimPrefix(cfg.App.HTTPPort, ":")); err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_PORT %q", cfg.App.HTTPPort)
	}

	return cfg, nil
}

func parseModels(raw string) []string {
	if raw == "" {
		return append([]string(nil), defaultGeminiModels...)
	}
	parts := strings.Split(raw, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			models = append(models, p)
		}
	}
	if len(models) == 0 {
		return append([]string(nil), defaultGeminiModels...)
	}
	return models
}
