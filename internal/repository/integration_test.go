//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/creativespark/creativespark/internal/model"
	"github.com/creativespark/creativespark/internal/testutil"
)

// ============================================================================
// Account Repository Integration Tests
// ============================================================================

func TestIntegrationAccountRepository_Create(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	account := testutil.NewTestAccount(t, "create@example.com")
	if err := repo.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	retrieved, err := repo.GetAccountByEmail(ctx, "create@example.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail failed: %v", err)
	}

	if retrieved.ID != account.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, account.ID)
	}
	if retrieved.PasswordHash != account.PasswordHash {
		t.Error("PasswordHash should round-trip")
	}
	if retrieved.Subscription.Plan != model.PlanFree {
		t.Errorf("Plan mismatch: got %q, want %q", retrieved.Subscription.Plan, model.PlanFree)
	}
}

func TestIntegrationAccountRepository_DuplicateEmail(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	first := testutil.NewTestAccount(t, "dup@example.com")
	second := testutil.NewTestAccount(t, "dup@example.com")

	if err := repo.CreateAccount(ctx, first); err != nil {
		t.Fatalf("CreateAccount (first) failed: %v", err)
	}

	err := repo.CreateAccount(ctx, second)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationAccountRepository_GetMissing(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	_, err := repo.GetAccountByID(ctx, "no-such-account")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got: %v", err)
	}
}

// ============================================================================
// Idea Repository Integration Tests
// ============================================================================

func TestIntegrationIdeaRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	ownerID := seedAccount(t, ctx, repo, "ideas@example.com")

	idea := testutil.NewTestIdea(t, ownerID)
	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	retrieved, err := repo.GetIdeaByID(ctx, idea.ID, ownerID)
	if err != nil {
		t.Fatalf("GetIdeaByID failed: %v", err)
	}

	if retrieved.Title != idea.Title {
		t.Errorf("Title mismatch: got %q, want %q", retrieved.Title, idea.Title)
	}
	if retrieved.Status != model.StatusDraft {
		t.Errorf("Status mismatch: got %q, want %q", retrieved.Status, model.StatusDraft)
	}
	if len(retrieved.Keywords) != len(idea.Keywords) {
		t.Errorf("Keywords mismatch: got %v, want %v", retrieved.Keywords, idea.Keywords)
	}
}

func TestIntegrationIdeaRepository_OwnershipScoping(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	ownerID := seedAccount(t, ctx, repo, "owner@example.com")
	otherID := seedAccount(t, ctx, repo, "other@example.com")

	idea := testutil.NewTestIdea(t, ownerID)
	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	// Another account's read is indistinguishable from a miss.
	if _, err := repo.GetIdeaByID(ctx, idea.ID, otherID); !errors.Is(err, ErrIdeaNotFound) {
		t.Errorf("Expected ErrIdeaNotFound for foreign read, got: %v", err)
	}

	// Another account's delete removes nothing.
	removed, err := repo.DeleteIdea(ctx, idea.ID, otherID)
	if err != nil {
		t.Fatalf("DeleteIdea failed: %v", err)
	}
	if removed {
		t.Error("foreign delete must not remove the record")
	}

	if _, err := repo.GetIdeaByID(ctx, idea.ID, ownerID); err != nil {
		t.Errorf("owner read should still succeed, got: %v", err)
	}
}

func TestIntegrationIdeaRepository_Update(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	ownerID := seedAccount(t, ctx, repo, "update@example.com")

	idea := testutil.NewTestIdea(t, ownerID)
	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	idea.Title = "Renamed"
	idea.Status = model.StatusSaved
	if err := repo.UpdateIdea(ctx, idea); err != nil {
		t.Fatalf("UpdateIdea failed: %v", err)
	}

	retrieved, err := repo.GetIdeaByID(ctx, idea.ID, ownerID)
	if err != nil {
		t.Fatalf("GetIdeaByID failed: %v", err)
	}
	if retrieved.Title != "Renamed" || retrieved.Status != model.StatusSaved {
		t.Errorf("update not persisted: %+v", retrieved)
	}
}

func TestIntegrationIdeaRepository_Search(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	ownerID := seedAccount(t, ctx, repo, "search@example.com")

	titleHit := testutil.NewTestIdea(t, ownerID)
	titleHit.Title = "Quantum computing trends"

	descHit := testutil.NewTestIdea(t, ownerID)
	descHit.ID = testutil.UniqueID("idea")
	descHit.Description = "How quantum hardware matures"

	miss := testutil.NewTestIdea(t, ownerID)
	miss.ID = testutil.UniqueID("idea")
	miss.Title = "Unrelated"
	miss.Description = "Nothing to see"
	miss.Keywords = []string{"other"}

	for _, idea := range []*model.Idea{titleHit, descHit, miss} {
		if err := repo.CreateIdea(ctx, idea); err != nil {
			t.Fatalf("CreateIdea failed: %v", err)
		}
	}

	results, err := repo.SearchIdeas(ctx, ownerID, "quantum")
	if err != nil {
		t.Fatalf("SearchIdeas failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// Title weight (10) outranks description weight (5).
	if results[0].ID != titleHit.ID {
		t.Errorf("expected title match first, got %q", results[0].ID)
	}
}

// ============================================================================
// Test Environment Setup
// ============================================================================

func newRepoTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	if err := Migrate(ctx, dbURL); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.TruncateAll(ctx, repo.Pool()); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return ctx, repo
}

func seedAccount(t *testing.T, ctx context.Context, repo *Repository, email string) string {
	t.Helper()
	account := testutil.NewTestAccount(t, email)
	if err := repo.CreateAccount(ctx, account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account.ID
}
