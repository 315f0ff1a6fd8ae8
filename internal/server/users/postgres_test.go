package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bushbass/fcc-jwt/internal/common"
	"github.com/bushbass/fcc-jwt/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+created_at\s*$`
	byEmail = `(?s)^SELECT\s+.*FROM\s+users\s+WHERE\s+lower\(email\)\s*=\s*lower\(\$1\)\s*$`
	byID    = `(?s)^SELECT\s+.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	updateQ = `(?s)^UPDATE\s+users\s+SET\s+refresh_token\s*=\s*NULLIF\(\$2,\s*''\)\s+WHERE\s+id\s*=\s*\$1\s*$`
)

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(now)
	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "alice@example.com", "hash").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" || got.Email != "alice@example.com" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "alice@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com", PasswordHash: "hash"})
	if !errors.Is(err, common.ErrorDuplicateEmail) {
		t.Fatalf("expected common.ErrorDuplicateEmail, got %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "alice@example.com", "hash").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com", PasswordHash: "hash"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "refresh_token", "created_at"}).
		AddRow("u-1", "alice@example.com", "hash", "tok", time.Now())
	mock.ExpectQuery(byEmail).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.RefreshToken != "tok" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestPostgresGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byEmail).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byID).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestPostgresSetRefreshToken_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQ).
		WithArgs("u-1", "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetRefreshToken(context.Background(), "u-1", "tok"); err != nil {
		t.Fatalf("SetRefreshToken error: %v", err)
	}
}

func TestPostgresSetRefreshToken_NoSuchUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQ).
		WithArgs("missing", "tok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetRefreshToken(context.Background(), "missing", "tok")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
