// Package repository provides the storage boundary for accounts and ideas.
// Validation happens in the service layer; this package is a dumb
// persistence boundary that maps driver errors to sentinel errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/creativespark/creativespark/internal/model"
	"github.com/creativespark/creativespark/internal/repository/migrations"
)

// Common sentinel errors for store operations.
var (
	// ErrAccountNotFound indicates no account matched the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailExists indicates the email unique constraint was violated.
	ErrEmailExists = errors.New("email already registered")
	// ErrIdeaNotFound indicates the idea does not exist or is not owned
	// by the caller. The two cases are deliberately indistinguishable.
	ErrIdeaNotFound = errors.New("idea not found")
)

// AccountStore persists accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)
}

// IdeaStore persists ideas. Every mutating operation is scoped by
// (id, ownerID) jointly, never by id alone.
type IdeaStore interface {
	CreateIdea(ctx context.Context, idea *model.Idea) error
	GetIdeaByID(ctx context.Context, id, ownerID string) (*model.Idea, error)
	ListIdeasByOwner(ctx context.Context, ownerID string) ([]*model.Idea, error)
	UpdateIdea(ctx context.Context, idea *model.Idea) error
	DeleteIdea(ctx context.Context, id, ownerID string) (bool, error)
	SearchIdeas(ctx context.Context, ownerID, query string) ([]*model.Idea, error)
}

// Store combines the account and idea stores behind one boundary.
type Store interface {
	AccountStore
	IdeaStore
}

// Repository provides PostgreSQL-backed store implementations.
type Repository struct {
	pool *pgxpool.Pool
}

// Repository implements the full store boundary.
var _ Store = (*Repository)(nil)

// New creates a new Repository with a connection pool.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Migrate runs the embedded goose migrations against the database.
// Uses a short-lived database/sql connection via the pgx stdlib driver.
func Migrate(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Pool exposes the underlying connection pool for test helpers.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

// Close closes the database connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	// PostgreSQL error code 23505 is unique_violation
	return err != nil && (strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "unique"))
}
