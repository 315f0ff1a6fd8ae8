// Package auth implements the signed-token layer: HS256 JWTs carrying a user
// id, issued with separate secrets and lifetimes for access and refresh
// tokens. Verification never trusts an unverified payload; callers receive a
// user id or a sentinel error from internal/common.
package auth

import (
	"errors"
	"time"

	"github.com/bushbass/fcc-jwt/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims includes the registered claims plus the bound user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// parser rejects anything but HS256 and requires an expiry claim.
var parser = jwt.NewParser(
	jwt.WithValidMethods([]string{"HS256"}),
	jwt.WithExpirationRequired(),
)

// GenerateToken mints a signed token binding userID for validityDuration.
// The same function serves access and refresh tokens; the caller chooses the
// secret and lifetime. The jti claim makes every token unique even when two
// are minted within the same second, which refresh rotation relies on.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString against secretKey and returns the
// bound user id. Failures map onto the token error taxonomy:
// common.ErrTokenExpired, common.ErrInvalidSignature, common.ErrMalformedToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrInvalidSignature
		default:
			return "", common.ErrMalformedToken
		}
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrMalformedToken
	}

	return claims.UserID, nil
}
