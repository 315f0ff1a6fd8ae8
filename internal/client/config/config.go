package config

import "time"

// Config holds runtime settings for the auth CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the auth server, e.g. "http://localhost:4000".
//   - RequestTimeout: per-request timeout for HTTP calls.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:4000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
