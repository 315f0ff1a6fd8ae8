// Package users contains the credential store and the session flow built on
// top of it: registration, credential-checked login, bearer gating support,
// refresh-token rotation, and logout (revocation by overwrite).
package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/bushbass/fcc-jwt/internal/common"
	"github.com/bushbass/fcc-jwt/internal/server/auth"
	"github.com/bushbass/fcc-jwt/internal/server/config"
	"github.com/bushbass/fcc-jwt/internal/server/models"
	"github.com/bushbass/fcc-jwt/internal/server/password"
	"github.com/bushbass/fcc-jwt/internal/server/ratelimit"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service provides the session flow:
//   - Register: create users (no tokens issued)
//   - Login: verify credentials, mint a pair, persist the refresh token
//   - Renew: rotate the refresh token and mint a new pair
//   - Logout: clear the stored refresh token
type Service struct {
	repo                         Repository
	hasher                       *password.Hasher
	limiter                      ratelimit.LoginLimiter
	accessSecret                 []byte
	refreshSecret                []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewService constructs a Service from a credential store, hasher, login
// limiter, and server config. The signing secrets are read once here and are
// immutable afterwards.
func NewService(repo Repository, hasher *password.Hasher, limiter ratelimit.LoginLimiter, cfg *config.Config) *Service {
	if limiter == nil {
		limiter = ratelimit.Nop{}
	}
	return &Service{
		repo:                         repo,
		hasher:                       hasher,
		limiter:                      limiter,
		accessSecret:                 []byte(cfg.AccessTokenSecret),
		refreshSecret:                []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new user. The email is checked before insertion; the
// store-level duplicate error maps to the same sentinel so both paths look
// identical to callers.
func (s *Service) Register(ctx context.Context, email, plaintext string) (*models.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hashed, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &models.User{Email: email, PasswordHash: hashed})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and, on success, mints a token pair and
// persists the refresh token on the user record. NoSuchUser and
// BadCredentials stay distinct internally; the HTTP layer collapses them
// into one generic message.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*TokenPair, error) {
	allowed, err := s.limiter.Allow(ctx, email)
	if err == nil && !allowed {
		return nil, common.ErrTooManyLoginAttempts
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = s.limiter.Fail(ctx, email)
			return nil, common.ErrorNoSuchUser
		}
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		_ = s.limiter.Fail(ctx, email)
		return nil, common.ErrorBadCredentials
	}

	pair, err := s.issueAndStorePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	_ = s.limiter.Reset(ctx, email)
	return pair, nil
}

// VerifyAccessToken checks a bearer token against the access secret and
// returns the bound user id. Pure computation, no store access.
func (s *Service) VerifyAccessToken(tokenString string) (string, error) {
	return auth.GetUserIDFromToken(tokenString, s.accessSecret)
}

// Renew rotates a refresh token: the presented token must verify against the
// refresh secret AND match the value stored on the user record. The new
// refresh token overwrites the old one, so the used token cannot be replayed.
func (s *Service) Renew(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := auth.GetUserIDFromToken(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if user.RefreshToken == "" ||
		subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(refreshToken)) != 1 {
		return nil, common.ErrRefreshTokenRevoked
	}

	return s.issueAndStorePair(ctx, user.ID)
}

// Logout clears the stored refresh token so a captured cookie can no longer
// be rotated, even while it still cryptographically verifies.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	userID, err := auth.GetUserIDFromToken(refreshToken, s.refreshSecret)
	if err != nil {
		return err
	}

	if err := s.repo.SetRefreshToken(ctx, userID, ""); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}

	return nil
}

func (s *Service) issueAndStorePair(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refresh, err := auth.GenerateToken(userID, s.refreshSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repo.SetRefreshToken(ctx, userID, refresh); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
