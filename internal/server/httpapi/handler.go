// Package httpapi is the HTTP transport for the session flow: gin routing,
// request binding, the bearer-token gate, and refresh-cookie delivery.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/bushbass/fcc-jwt/internal/common"
	"github.com/bushbass/fcc-jwt/internal/logging"
	"github.com/bushbass/fcc-jwt/internal/server/config"
	"github.com/bushbass/fcc-jwt/internal/server/users"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	service         *users.Service
	logger          logging.Logger
	refreshTokenTTL time.Duration
	secureCookies   bool
}

func NewHandler(service *users.Service, logger logging.Logger, cfg *config.Config) *Handler {
	return &Handler{
		service:         service,
		logger:          logger.With("module", "httpapi"),
		refreshTokenTTL: cfg.RefreshTokenValidityDuration,
		secureCookies:   cfg.SecureCookies,
	}
}

// errorStatus maps flow sentinels to a client status and message. NoSuchUser
// and BadCredentials intentionally collapse into one generic message so the
// API does not confirm which emails are registered.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, common.ErrorNoSuchUser),
		errors.Is(err, common.ErrorBadCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, common.ErrTooManyLoginAttempts):
		return http.StatusTooManyRequests, "too many login attempts, try again later"
	case errors.Is(err, common.ErrMissingToken):
		return http.StatusUnauthorized, "missing token"
	case errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidSignature),
		errors.Is(err, common.ErrMalformedToken),
		errors.Is(err, common.ErrRefreshTokenRevoked),
		errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "invalid token"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *Handler) abortWithError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "err", err.Error())
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// Register creates a user. No tokens are issued here; the client logs in
// afterwards.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "user created", "user_id": user.ID})
}

// Login verifies credentials, sets the refresh cookie, and returns the
// access token in the body.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.sendRefreshToken(c, pair.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"accesstoken": pair.AccessToken})
}

// RefreshToken rotates the pair presented in the refresh cookie.
func (h *Handler) RefreshToken(c *gin.Context) {
	token, err := readRefreshToken(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	pair, err := h.service.Renew(c.Request.Context(), token)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.sendRefreshToken(c, pair.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"accesstoken": pair.AccessToken})
}

// Logout always clears the cookie; the server-side revocation only happens
// when the cookie carried a verifiable token. The route is mounted under the
// cookie's path scope, otherwise clients honoring that scope would never
// send the cookie here and revocation could not run.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := readRefreshToken(c); err == nil {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			h.logger.Debug(c.Request.Context(), "logout revocation skipped", "reason", err.Error())
		}
	}

	h.clearRefreshToken(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Protected is the sample gated route; AuthRequired has already resolved the
// user id.
func (h *Handler) Protected(c *gin.Context) {
	userID := c.GetString(userIDKey)
	c.JSON(http.StatusOK, gin.H{"data": "this is protected data.", "user_id": userID})
}

// Ping is the liveness endpoint.
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
