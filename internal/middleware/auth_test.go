package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creativespark/creativespark/internal/auth"
	"github.com/creativespark/creativespark/internal/model"
	"github.com/creativespark/creativespark/internal/repository"
)

func newAuthTestConfig(t *testing.T) (AuthConfig, *auth.TokenIssuer, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	issuer := auth.NewTokenIssuer([]byte("test-signing-key-for-middleware"), time.Hour)
	cfg := AuthConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tokens: issuer,
		Store:  store,
	}
	return cfg, issuer, store
}

func seedAuthAccount(t *testing.T, store *repository.MemoryStore) *model.Account {
	t.Helper()
	account := model.NewAccount("Ada", "ada@example.com", "")
	account.ID = "acct-1"
	account.PasswordHash = "hash"
	if err := store.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestAuth_ValidToken(t *testing.T) {
	cfg, issuer, store := newAuthTestConfig(t)
	account := seedAuthAccount(t, store)

	token, err := issuer.Issue(account.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var gotSession *model.Session
	handler := Auth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = auth.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ideas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotSession == nil {
		t.Fatal("session not injected into request context")
	}
	if gotSession.AccountID != account.ID {
		t.Errorf("session account = %q, want %q", gotSession.AccountID, account.ID)
	}
	if gotSession.Email != account.Email {
		t.Errorf("session email = %q, want %q", gotSession.Email, account.Email)
	}
}

func TestAuth_RejectionsShareOneFlatBody(t *testing.T) {
	cfg, issuer, store := newAuthTestConfig(t)
	seedAuthAccount(t, store)

	unknownToken, err := issuer.Issue("no-such-account")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Same envelope shape as handler errors: flat error + code.
	wantBody := `{"error":"Invalid or missing session token","code":"UNAUTHORIZED"}`

	tests := []struct {
		name   string
		header string
	}{
		{"missing_header", ""},
		{"not_bearer", "Basic abc123"},
		{"garbage_token", "Bearer not.a.token"},
		{"unknown_account", "Bearer " + unknownToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Auth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not be reached")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/ideas", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if got := rec.Body.String(); got != wantBody {
				t.Errorf("body = %s, want %s", got, wantBody)
			}
		})
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	cfg, _, store := newAuthTestConfig(t)
	account := seedAuthAccount(t, store)

	expired := auth.NewTokenIssuer([]byte("test-signing-key-for-middleware"), -time.Minute)
	token, err := expired.Issue(account.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := Auth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ideas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
