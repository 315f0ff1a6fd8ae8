package httpapi

import (
	"net/http"

	"github.com/bushbass/fcc-jwt/internal/common"
	"github.com/gin-gonic/gin"
)

// sendRefreshToken delivers the refresh token as an HTTP-only cookie scoped
// to the renewal path, so browsers never attach it to ordinary API calls.
func (h *Handler) sendRefreshToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		common.RefreshTokenCookieName,
		token,
		int(h.refreshTokenTTL.Seconds()),
		common.RefreshTokenCookiePath,
		"",
		h.secureCookies,
		true,
	)
}

// clearRefreshToken expires the refresh cookie client-side.
func (h *Handler) clearRefreshToken(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		common.RefreshTokenCookieName,
		"",
		-1,
		common.RefreshTokenCookiePath,
		"",
		h.secureCookies,
		true,
	)
}

// readRefreshToken extracts the refresh token cookie from the request.
func readRefreshToken(c *gin.Context) (string, error) {
	token, err := c.Cookie(common.RefreshTokenCookieName)
	if err != nil || token == "" {
		return "", common.ErrMissingToken
	}
	return token, nil
}
