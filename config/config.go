package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP listen address
	Address string `env:"ADDRESS" envDefault:":8084"`
	// Directory holding the three record files
	DataDir string `env:"DATA_DIR" envDefault:"data"`
	// Directory holding uploaded item images
	UploadsDir string `env:"UPLOADS_DIR" envDefault:"uploads"`
	// Gemini credential; may instead be entered at runtime per session
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	SentryDSN    string `env:"SENTRY_DSN"`
	Environment  string `env:"ENV" envDefault:"local"`
}

// Load loads .env (if present) and parses environment variables into
// Config.
func Load() (Config, error) {
	// ignore error if .env does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
