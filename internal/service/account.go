// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/creativespark/creativespark/internal/auth"
	"github.com/creativespark/creativespark/internal/metrics"
	"github.com/creativespark/creativespark/internal/model"
	"github.com/creativespark/creativespark/internal/repository"
)

// minPasswordLength is the shortest accepted plaintext password.
const minPasswordLength = 8

// AccountService handles registration, login and account lookup.
type AccountService struct {
	store   repository.AccountStore
	tokens  *auth.TokenIssuer
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(store repository.AccountStore, tokens *auth.TokenIssuer, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		store:   store,
		tokens:  tokens,
		metrics: recorder,
	}
}

// RegisterInput defines input for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Company  string
}

// Register creates a new account and issues its first session token.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*model.Account, string, error) {
	fields := fieldErrors{}

	if strings.TrimSpace(input.Name) == "" {
		fields.add("name", "name is required")
	}
	if !validEmail(input.Email) {
		fields.add("email", "a valid email address is required")
	}
	if len(input.Password) < minPasswordLength {
		fields.add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if err := fields.err(); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	account := model.NewAccount(input.Name, input.Email, input.Company)
	account.ID = uuid.NewString()
	account.PasswordHash = hash

	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create account: %w", err)
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	s.metrics.IncAccountRegistered()

	return account, token, nil
}

// Login verifies credentials and issues a session token.
// "No such account" and "wrong password" are deliberately indistinguishable.
func (s *AccountService) Login(ctx context.Context, email, password string) (*model.Account, string, error) {
	account, err := s.store.GetAccountByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			s.metrics.IncLoginFailed()
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("look up account: %w", err)
	}

	match, err := auth.VerifyPassword(password, account.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailed()
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	s.metrics.IncLoginSucceeded()

	return account, token, nil
}

// CurrentAccount loads the account behind a verified session.
// A missing account means the session no longer maps to anyone,
// which callers treat as an authentication failure.
func (s *AccountService) CurrentAccount(ctx context.Context, accountID string) (*model.Account, error) {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}
	return account, nil
}

// validEmail reports whether addr parses as a bare email address.
func validEmail(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}
