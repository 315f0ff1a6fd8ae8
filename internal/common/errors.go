// Package common contains shared constants and sentinel errors used across
// the auth service components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("duplicate email")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration / credential errors.
	ErrorAlreadyExists  = errors.New("user already exists")
	ErrorNoSuchUser     = errors.New("user does not exist")
	ErrorBadCredentials = errors.New("password not correct")

	// Token lifecycle errors.
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidSignature     = errors.New("invalid token signature")
	ErrMalformedToken       = errors.New("malformed token")
	ErrMissingToken         = errors.New("missing token")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
)
