package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a .env
// file first when one is present in the working directory. A missing .env
// file is not an error; explicit environment variables win over it either
// way because godotenv never overrides existing values.
//
// Recognized variables:
//
//	PORT                  listen port (":" is prepended)
//	DATABASE_DSN          PostgreSQL DSN
//	REDIS_ADDR            Redis host:port for the login limiter
//	ACCESS_TOKEN_SECRET   HMAC secret for access tokens
//	REFRESH_TOKEN_SECRET  HMAC secret for refresh tokens
//	ACCESS_TOKEN_TTL      access token lifetime (Go duration, e.g. "15m")
//	REFRESH_TOKEN_TTL     refresh token lifetime (e.g. "168h")
//	CORS_ORIGIN           allowed CORS origin
//	SECURE_COOKIES        "true" to mark the refresh cookie Secure
//	BCRYPT_COST           bcrypt work factor
//	MAX_LOGIN_ATTEMPTS    failed logins allowed per window
//	LOGIN_ATTEMPT_WINDOW  limiter window (e.g. "15m")
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		config.ListenAddr = ":" + v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		config.AccessTokenSecret = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		config.RefreshTokenSecret = v
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("REFRESH_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.AllowedOrigin = v
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SecureCookies = b
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("MAX_LOGIN_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxLoginAttempts = n
		}
	}
	if v := os.Getenv("LOGIN_ATTEMPT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.LoginAttemptWindow = d
		}
	}
}
