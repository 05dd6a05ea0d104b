package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig mirrors Config for the environment layer.
type envConfig struct {
	APIBaseURL     string        `env:"BMG_API_BASE_URL"`
	RequestTimeout time.Duration `env:"BMG_REQUEST_TIMEOUT"`
	SessionDBPath  string        `env:"BMG_SESSION_DB"`
	LogLevel       string        `env:"BMG_LOG_LEVEL"`
}

// parseEnv overlays cfg with any BMG_* variables present. Unset variables
// leave the earlier layers untouched. Panics on malformed values.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process(context.Background(), &ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
