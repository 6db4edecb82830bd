package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is a DTO for environment parsing. Every field is optional; a
// missing variable leaves the corresponding Config value untouched.
type envConfig struct {
	APIBaseURL     string         `env:"CHARGECLI_API_BASE_URL"`
	GoogleClientID string         `env:"CHARGECLI_GOOGLE_CLIENT_ID"`
	RequestTimeout *time.Duration `env:"CHARGECLI_REQUEST_TIMEOUT"`
	DatabasePath   string         `env:"CHARGECLI_DB_PATH"`
	SecretPath     string         `env:"CHARGECLI_SECRET_PATH"`
	CallbackAddr   string         `env:"CHARGECLI_CALLBACK_ADDR"`
	Verbose        *bool          `env:"CHARGECLI_VERBOSE"`
}

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.GoogleClientID != "" {
		cfg.GoogleClientID = ec.GoogleClientID
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.SecretPath != "" {
		cfg.SecretPath = ec.SecretPath
	}
	if ec.CallbackAddr != "" {
		cfg.CallbackAddr = ec.CallbackAddr
	}
	if ec.Verbose != nil {
		cfg.Verbose = *ec.Verbose
	}
}
