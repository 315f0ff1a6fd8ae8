// Package config handles configuration for the auth server, including
// defaults, .env and JSON overlays, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the auth server.
//
// Fields:
//   - ListenAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - RedisAddr: Redis address for the login limiter. Empty disables limiting.
//   - AccessTokenSecret / RefreshTokenSecret: distinct HMAC secrets (HS256).
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - AllowedOrigin: the single CORS origin allowed to send credentials.
//   - SecureCookies: sets the Secure attribute on the refresh cookie.
//   - BcryptCost: work factor for password hashing.
type Config struct {
	ListenAddr                   string
	DatabaseDSN                  string
	RedisAddr                    string
	AccessTokenSecret            string
	RefreshTokenSecret           string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	AllowedOrigin                string
	SecureCookies                bool
	BcryptCost                   int
	MaxLoginAttempts             int
	LoginAttemptWindow           time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: The secrets are insecure placeholders; Validate rejects them unless
// overridden, so production deployments must supply their own.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":4000"
	c.DatabaseDSN = ""
	c.RedisAddr = ""
	c.AccessTokenSecret = ""
	c.RefreshTokenSecret = ""
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.AllowedOrigin = "http://localhost:3000"
	c.SecureCookies = false
	c.BcryptCost = 10
	c.MaxLoginAttempts = 10
	c.LoginAttemptWindow = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional .env file, an optional JSON file, and finally
// command-line flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the invariants the token service relies on: both signing
// secrets present and distinct, and a refresh lifetime longer than the
// access lifetime.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return errors.New("access token secret is required")
	}
	if c.RefreshTokenSecret == "" {
		return errors.New("refresh token secret is required")
	}
	if c.AccessTokenSecret == c.RefreshTokenSecret {
		return errors.New("access and refresh token secrets must differ")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return errors.New("access token validity must be positive")
	}
	if c.RefreshTokenValidityDuration <= c.AccessTokenValidityDuration {
		return errors.New("refresh token validity must exceed access token validity")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost %d out of range", c.BcryptCost)
	}
	return nil
}
