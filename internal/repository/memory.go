package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/creativespark/creativespark/internal/model"
)

// MemoryStore is an in-memory Store implementation.
// Used by unit tests and as a development fallback when no database is
// configured. Mutations copy records so callers never share memory with
// the store.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account // keyed by ID
	byEmail  map[string]string         // email -> ID
	ideas    map[string]*model.Idea    // keyed by ID
}

// MemoryStore implements the full store boundary.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*model.Account),
		byEmail:  make(map[string]string),
		ideas:    make(map[string]*model.Idea),
	}
}

// Ping always succeeds; the store lives in process memory.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// CreateAccount stores a new account, enforcing email uniqueness.
func (s *MemoryStore) CreateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[account.Email]; exists {
		return ErrEmailExists
	}

	stored := *account
	s.accounts[account.ID] = &stored
	s.byEmail[account.Email] = account.ID
	return nil
}

// GetAccountByEmail retrieves an account by normalized email.
func (s *MemoryStore) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	account := *s.accounts[id]
	return &account, nil
}

// GetAccountByID retrieves an account by ID.
func (s *MemoryStore) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// CreateIdea stores a new idea.
func (s *MemoryStore) CreateIdea(ctx context.Context, idea *model.Idea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := copyIdea(idea)
	s.ideas[idea.ID] = stored
	return nil
}

// GetIdeaByID retrieves an idea scoped to its owner.
func (s *MemoryStore) GetIdeaByID(ctx context.Context, id, ownerID string) (*model.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idea, ok := s.ideas[id]
	if !ok || idea.OwnerID != ownerID {
		return nil, ErrIdeaNotFound
	}
	return copyIdea(idea), nil
}

// ListIdeasByOwner retrieves all ideas for an owner, newest first.
func (s *MemoryStore) ListIdeasByOwner(ctx context.Context, ownerID string) ([]*model.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ideas []*model.Idea
	for _, idea := range s.ideas {
		if idea.OwnerID == ownerID {
			ideas = append(ideas, copyIdea(idea))
		}
	}

	sort.Slice(ideas, func(i, j int) bool {
		if !ideas[i].CreatedAt.Equal(ideas[j].CreatedAt) {
			return ideas[i].CreatedAt.After(ideas[j].CreatedAt)
		}
		return ideas[i].ID > ideas[j].ID
	})

	return ideas, nil
}

// UpdateIdea replaces a stored idea, scoped by (id, owner).
func (s *MemoryStore) UpdateIdea(ctx context.Context, idea *model.Idea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.ideas[idea.ID]
	if !ok || existing.OwnerID != idea.OwnerID {
		return ErrIdeaNotFound
	}

	s.ideas[idea.ID] = copyIdea(idea)
	return nil
}

// DeleteIdea removes an owned idea, reporting whether a record was removed.
func (s *MemoryStore) DeleteIdea(ctx context.Context, id, ownerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, ok := s.ideas[id]
	if !ok || idea.OwnerID != ownerID {
		return false, nil
	}

	delete(s.ideas, id)
	return true, nil
}

// SearchIdeas ranks an owner's ideas by weighted field relevance.
func (s *MemoryStore) SearchIdeas(ctx context.Context, ownerID, query string) ([]*model.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		idea  *model.Idea
		score int
	}

	needle := strings.ToLower(query)
	var matches []scored
	for _, idea := range s.ideas {
		if idea.OwnerID != ownerID {
			continue
		}
		if score := scoreIdea(idea, needle); score > 0 {
			matches = append(matches, scored{idea: copyIdea(idea), score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		if !matches[i].idea.CreatedAt.Equal(matches[j].idea.CreatedAt) {
			return matches[i].idea.CreatedAt.After(matches[j].idea.CreatedAt)
		}
		return matches[i].idea.ID > matches[j].idea.ID
	})

	results := make([]*model.Idea, len(matches))
	for i, m := range matches {
		results[i] = m.idea
	}
	return results, nil
}

// Field weights mirror the Postgres search query.
func scoreIdea(idea *model.Idea, needle string) int {
	score := 0
	if strings.Contains(strings.ToLower(idea.Title), needle) {
		score += 10
	}
	if strings.Contains(strings.ToLower(idea.Description), needle) {
		score += 5
	}
	if containsFold(idea.Keywords, needle) {
		score += 3
	}
	if containsFold(idea.Tags, needle) {
		score += 2
	}
	return score
}

func containsFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// copyIdea clones an idea including its slices.
func copyIdea(idea *model.Idea) *model.Idea {
	copied := *idea
	copied.Keywords = append([]string(nil), idea.Keywords...)
	copied.Tags = append([]string(nil), idea.Tags...)
	if idea.ScheduledAt != nil {
		t := *idea.ScheduledAt
		copied.ScheduledAt = &t
	}
	return &copied
}
