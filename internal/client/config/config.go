// Package config loads runtime configuration for the Book My Gigs CLI.
//
// Sources & precedence (later overrides earlier):
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (BMG_* — see env.go).
//  4. Command-line flags (see flags.go).
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - APIBaseURL: origin of the backend REST endpoint.
//   - RequestTimeout: hard cap on any single HTTP request.
//   - SessionDBPath: path of the local sqlite file holding the session.
//   - LogLevel: minimum diagnostic log level (debug/info/warn/error).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDBPath  string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:4000"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "bookmygigs.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
