package users

import (
	"context"

	"github.com/bushbass/fcc-jwt/internal/server/models"
)

// Repository is the credential store contract the session flow depends on.
//
// Create persists a new record and returns it with its assigned id; a taken
// email yields common.ErrorDuplicateEmail. Lookups return
// common.ErrorNotFound for absent records. SetRefreshToken overwrites the
// stored refresh token; an empty token clears it, which revokes any
// outstanding refresh token for that user.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetRefreshToken(ctx context.Context, id string, token string) error
}
