package users

import (
	"context"
	"sync"
	"testing"

	"github.com/bushbass/fcc-jwt/internal/common"
	"github.com/bushbass/fcc-jwt/internal/server/models"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	byEmail, err := r.GetByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", byID.Email)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Email: "ALICE@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, common.ErrorDuplicateEmail)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetByID(ctx, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)

	err = r.SetRefreshToken(ctx, "missing", "tok")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_SetRefreshToken(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	require.NoError(t, r.SetRefreshToken(ctx, created.ID, "tok-1"))
	u, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "tok-1", u.RefreshToken)

	require.NoError(t, r.SetRefreshToken(ctx, created.ID, ""))
	u, err = r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, u.RefreshToken)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	// mutating a returned record must not leak into the store
	u, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	u.RefreshToken = "tampered"

	fresh, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, fresh.RefreshToken)
}

func TestMemoryRepository_ConcurrentRotation(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.SetRefreshToken(ctx, created.ID, "tok")
			_, _ = r.GetByID(ctx, created.ID)
		}()
	}
	wg.Wait()

	u, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "tok", u.RefreshToken)
}
