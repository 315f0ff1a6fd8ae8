package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bushbass/fcc-jwt/internal/flagx"
	"github.com/bushbass/fcc-jwt/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for lifetime fields, which allows parsing
// both string values such as "15m" and integer nanoseconds. After
// unmarshalling, set fields are copied into the runtime Config.
type JsonConfig struct {
	ListenAddr         string          `json:"listen_addr"`
	DatabaseDSN        string          `json:"database_dsn"`
	RedisAddr          string          `json:"redis_addr"`
	AccessTokenSecret  string          `json:"access_token_secret"`
	RefreshTokenSecret string          `json:"refresh_token_secret"`
	AccessTokenTTL     *timex.Duration `json:"access_token_ttl"`
	RefreshTokenTTL    *timex.Duration `json:"refresh_token_ttl"`
	AllowedOrigin      string          `json:"allowed_origin"`
	SecureCookies      *bool           `json:"secure_cookies"`
	BcryptCost         *int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config command-line flags; when
// neither is set, no JSON file is loaded. Absent fields keep their previous
// values.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("config file read error: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config file parse error: %w", err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.RedisAddr != "" {
		config.RedisAddr = c.RedisAddr
	}
	if c.AccessTokenSecret != "" {
		config.AccessTokenSecret = c.AccessTokenSecret
	}
	if c.RefreshTokenSecret != "" {
		config.RefreshTokenSecret = c.RefreshTokenSecret
	}
	if c.AccessTokenTTL != nil {
		config.AccessTokenValidityDuration = c.AccessTokenTTL.Duration
	}
	if c.RefreshTokenTTL != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenTTL.Duration
	}
	if c.AllowedOrigin != "" {
		config.AllowedOrigin = c.AllowedOrigin
	}
	if c.SecureCookies != nil {
		config.SecureCookies = *c.SecureCookies
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}

	return nil
}
