package common

// RefreshTokenCookieName is the cookie that carries the refresh token. The
// cookie is scoped to RefreshTokenCookiePath so browsers only attach it to
// renewal requests.
const (
	RefreshTokenCookieName = "refreshtoken"
	RefreshTokenCookiePath = "/refresh_token"
)
