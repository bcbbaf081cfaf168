package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/creativespark/creativespark/internal/generator"
	"github.com/creativespark/creativespark/internal/metrics"
	"github.com/creativespark/creativespark/internal/model"
	"github.com/creativespark/creativespark/internal/repository"
)

// IdeaService orchestrates idea generation, persistence and the
// status lifecycle. Every operation is scoped to the owning account.
type IdeaService struct {
	store     repository.IdeaStore
	generator generator.Generator
	metrics   metrics.Recorder
}

// NewIdeaService creates a new IdeaService.
func NewIdeaService(store repository.IdeaStore, gen generator.Generator, recorder metrics.Recorder) *IdeaService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &IdeaService{
		store:     store,
		generator: gen,
		metrics:   recorder,
	}
}

// GenerateInput defines input for the generation flow.
type GenerateInput struct {
	ContentType    string
	Industry       string
	Tone           string
	Keywords       []string
	AdditionalInfo string
}

// CandidateFailure describes a single candidate that failed to persist.
type CandidateFailure struct {
	Title string `json:"title"`
	Cause string `json:"cause"`
}

// GenerateOutput is the result of GenerateAndPersist. Persisted ideas
// and per-candidate failures are reported side by side.
type GenerateOutput struct {
	Ideas    []*model.Idea
	Failures []CandidateFailure
}

// GenerateAndPersist validates input, calls the generation gateway and
// persists each candidate as a draft owned by ownerID. A gateway failure
// persists nothing. Candidate inserts are independent: one failure does
// not roll back prior inserts, it is itemized in the output instead —
// even when every insert fails, so callers always see the per-candidate
// outcome.
func (s *IdeaService) GenerateAndPersist(ctx context.Context, ownerID string, input GenerateInput) (*GenerateOutput, error) {
	fields := fieldErrors{}

	contentType := model.ContentType(strings.TrimSpace(input.ContentType))
	if contentType == "" {
		fields.add("content_type", "content type is required")
	} else if !contentType.IsValid() {
		fields.add("content_type", "unknown content type")
	}
	if strings.TrimSpace(input.Industry) == "" {
		fields.add("industry", "industry is required")
	}
	if strings.TrimSpace(input.Tone) == "" {
		fields.add("tone", "tone is required")
	}
	if err := fields.err(); err != nil {
		return nil, err
	}

	s.metrics.IncGenerateRequested()

	start := time.Now()
	candidates, err := s.generator.Generate(ctx, generator.Params{
		ContentType:    contentType,
		Industry:       strings.TrimSpace(input.Industry),
		Tone:           strings.TrimSpace(input.Tone),
		Keywords:       model.TrimAll(input.Keywords),
		AdditionalInfo: strings.TrimSpace(input.AdditionalInfo),
	})
	s.metrics.ObserveGenerateDuration(time.Since(start))

	if err != nil {
		s.metrics.IncGenerateFailed()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrGeneratorUnavailable, err)
	}

	out := &GenerateOutput{Ideas: make([]*model.Idea, 0, len(candidates))}
	now := time.Now().UTC()

	for _, candidate := range candidates {
		idea := &model.Idea{
			ID:          ulid.Make().String(),
			OwnerID:     ownerID,
			Title:       candidate.Title,
			Description: candidate.Description,
			ContentType: contentType,
			Industry:    input.Industry,
			Tone:        input.Tone,
			Keywords:    candidate.Keywords,
			Tags:        []string{},
			Status:      model.StatusDraft,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		idea.Normalize()

		if err := s.store.CreateIdea(ctx, idea); err != nil {
			out.Failures = append(out.Failures, CandidateFailure{
				Title: candidate.Title,
				Cause: "failed to persist candidate",
			})
			continue
		}

		s.metrics.IncIdeaCreated()
		out.Ideas = append(out.Ideas, idea)
	}

	return out, nil
}

// Get returns a single idea owned by ownerID.
func (s *IdeaService) Get(ctx context.Context, ownerID, ideaID string) (*model.Idea, error) {
	idea, err := s.store.GetIdeaByID(ctx, ideaID, ownerID)
	if err != nil {
		return nil, mapIdeaError(err)
	}
	return idea, nil
}

// List returns all ideas owned by ownerID, newest first.
func (s *IdeaService) List(ctx context.Context, ownerID string) ([]*model.Idea, error) {
	ideas, err := s.store.ListIdeasByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	return ideas, nil
}

// Search returns the owner's ideas ranked by weighted relevance to query.
// A blank query falls back to the full newest-first listing.
func (s *IdeaService) Search(ctx context.Context, ownerID, query string) ([]*model.Idea, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx, ownerID)
	}

	ideas, err := s.store.SearchIdeas(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("search ideas: %w", err)
	}
	return ideas, nil
}

// ToggleSave flips an idea between draft and saved. Any other current
// status is rejected.
func (s *IdeaService) ToggleSave(ctx context.Context, ownerID, ideaID string) (*model.Idea, error) {
	idea, err := s.store.GetIdeaByID(ctx, ideaID, ownerID)
	if err != nil {
		return nil, mapIdeaError(err)
	}

	switch idea.Status {
	case model.StatusDraft:
		idea.Status = model.StatusSaved
	case model.StatusSaved:
		idea.Status = model.StatusDraft
	default:
		return nil, fmt.Errorf("%w: cannot toggle save from %q", ErrInvalidTransition, idea.Status)
	}

	idea.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateIdea(ctx, idea); err != nil {
		return nil, mapIdeaError(err)
	}

	s.metrics.IncIdeaUpdated()

	return idea, nil
}

// UpdateInput defines a partial idea update. Nil pointers leave the
// corresponding field untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	Industry    *string
	Tone        *string
	Keywords    *[]string
	Tags        *[]string
	Status      *string
	ScheduledAt *time.Time
}

// UpdateFields applies a partial update to an owned idea. Content edits
// are allowed in any status; a status change must follow the lifecycle
// transition table or the record is left unchanged.
func (s *IdeaService) UpdateFields(ctx context.Context, ownerID, ideaID string, input UpdateInput) (*model.Idea, error) {
	idea, err := s.store.GetIdeaByID(ctx, ideaID, ownerID)
	if err != nil {
		return nil, mapIdeaError(err)
	}

	fields := fieldErrors{}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			fields.add("title", "title must not be empty")
		} else {
			idea.Title = *input.Title
		}
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			fields.add("description", "description must not be empty")
		} else {
			idea.Description = *input.Description
		}
	}
	if input.Industry != nil {
		idea.Industry = *input.Industry
	}
	if input.Tone != nil {
		idea.Tone = *input.Tone
	}
	if input.Keywords != nil {
		idea.Keywords = *input.Keywords
	}
	if input.Tags != nil {
		idea.Tags = *input.Tags
	}
	if input.ScheduledAt != nil {
		scheduled := *input.ScheduledAt
		idea.ScheduledAt = &scheduled
	}

	if input.Status != nil {
		next := model.IdeaStatus(*input.Status)
		if !next.IsValid() {
			fields.add("status", "unknown status")
		} else if next != idea.Status {
			if !idea.Status.CanTransitionTo(next) {
				return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, idea.Status, next)
			}
			idea.Status = next
		}
	}

	if err := fields.err(); err != nil {
		return nil, err
	}

	idea.Normalize()
	idea.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateIdea(ctx, idea); err != nil {
		return nil, mapIdeaError(err)
	}

	s.metrics.IncIdeaUpdated()

	return idea, nil
}

// Delete removes an owned idea. Permitted from any status; irreversible.
// Deleting an id that no longer exists reports not-found.
func (s *IdeaService) Delete(ctx context.Context, ownerID, ideaID string) error {
	removed, err := s.store.DeleteIdea(ctx, ideaID, ownerID)
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	if !removed {
		return ErrIdeaNotFound
	}

	s.metrics.IncIdeaDeleted()

	return nil
}

// ShareAck confirms a share request.
// No cross-account grant is created; the acknowledgment is the contract.
type ShareAck struct {
	IdeaID     string    `json:"idea_id"`
	SharedWith string    `json:"shared_with"`
	SharedAt   time.Time `json:"shared_at"`
}

// Share verifies ownership of an idea and acknowledges sharing it with
// targetEmail.
func (s *IdeaService) Share(ctx context.Context, ownerID, ideaID, targetEmail string) (*ShareAck, error) {
	if !validEmail(targetEmail) {
		fields := fieldErrors{}
		fields.add("email", "a valid email address is required")
		return nil, fields.err()
	}

	idea, err := s.store.GetIdeaByID(ctx, ideaID, ownerID)
	if err != nil {
		return nil, mapIdeaError(err)
	}

	s.metrics.IncIdeaShared()

	return &ShareAck{
		IdeaID:     idea.ID,
		SharedWith: model.NormalizeEmail(targetEmail),
		SharedAt:   time.Now().UTC(),
	}, nil
}

// mapIdeaError translates storage sentinels to service errors.
func mapIdeaError(err error) error {
	if errors.Is(err, repository.ErrIdeaNotFound) {
		return ErrIdeaNotFound
	}
	return err
}
