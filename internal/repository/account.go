package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creativespark/creativespark/internal/model"
)

// CreateAccount inserts a new account into the database.
func (r *Repository) CreateAccount(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO accounts (
			id, email, name, company, password_hash, role,
			pref_industries, pref_content_types, pref_tone,
			sub_plan, sub_status, sub_expires_at,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Email,
		account.Name,
		account.Company,
		account.PasswordHash,
		account.Role,
		account.Preferences.Industries,
		account.Preferences.ContentTypes,
		account.Preferences.Tone,
		account.Subscription.Plan,
		account.Subscription.Status,
		account.Subscription.ExpiresAt,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetAccountByEmail retrieves an account by its normalized email address.
func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := accountSelect + ` WHERE email = $1`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

// GetAccountByID retrieves an account by its ID.
func (r *Repository) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	query := accountSelect + ` WHERE id = $1`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return account, nil
}

const accountSelect = `
	SELECT id, email, name, company, password_hash, role,
	       pref_industries, pref_content_types, pref_tone,
	       sub_plan, sub_status, sub_expires_at,
	       created_at, updated_at
	FROM accounts
`

// scanAccount scans an account row into the domain model.
func scanAccount(row pgx.Row) (*model.Account, error) {
	var account model.Account
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.Company,
		&account.PasswordHash,
		&account.Role,
		&account.Preferences.Industries,
		&account.Preferences.ContentTypes,
		&account.Preferences.Tone,
		&account.Subscription.Plan,
		&account.Subscription.Status,
		&account.Subscription.ExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	return &account, err
}
