package db

import (
	"context"
	"database/sql"

	"github.com/bushbass/fcc-jwt/internal/server/users"
)

// RepositoryManager hands out repositories bound to a storage backend.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
