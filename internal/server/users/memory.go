package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bushbass/fcc-jwt/internal/common"
	"github.com/bushbass/fcc-jwt/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository is a mutex-guarded in-memory credential store. It backs
// tests and development runs; the mutex makes refresh-token updates atomic
// relative to the reads used for refresh validation.
type MemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, common.ErrorDuplicateEmail
		}
	}

	stored := &models.User{
		ID:           uuid.NewString(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.users[stored.ID] = stored

	clone := *stored
	return &clone, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *MemoryRepository) SetRefreshToken(ctx context.Context, id string, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.RefreshToken = token
	return nil
}
