package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creativespark/creativespark/internal/model"
)

// CreateIdea inserts a new idea into the database.
func (r *Repository) CreateIdea(ctx context.Context, idea *model.Idea) error {
	query := `
		INSERT INTO ideas (
			id, owner_id, title, description, content_type, industry, tone,
			keywords, tags, status, scheduled_at,
			views, engagement, conversion,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.pool.Exec(ctx, query,
		idea.ID,
		idea.OwnerID,
		idea.Title,
		idea.Description,
		idea.ContentType,
		idea.Industry,
		idea.Tone,
		idea.Keywords,
		idea.Tags,
		idea.Status,
		idea.ScheduledAt,
		idea.Performance.Views,
		idea.Performance.Engagement,
		idea.Performance.Conversion,
		idea.CreatedAt,
		idea.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}

	return nil
}

// GetIdeaByID retrieves an idea scoped to its owner. A non-owned idea is
// indistinguishable from a missing one.
func (r *Repository) GetIdeaByID(ctx context.Context, id, ownerID string) (*model.Idea, error) {
	query := ideaSelect + ` WHERE id = $1 AND owner_id = $2`

	idea, err := scanIdea(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to get idea by ID: %w", err)
	}

	return idea, nil
}

// ListIdeasByOwner retrieves all ideas for an owner, newest first.
func (r *Repository) ListIdeasByOwner(ctx context.Context, ownerID string) ([]*model.Idea, error) {
	query := ideaSelect + ` WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

// UpdateIdea persists the full idea record, scoped by (id, owner_id).
// Concurrent updates to the same idea are last-write-wins.
func (r *Repository) UpdateIdea(ctx context.Context, idea *model.Idea) error {
	query := `
		UPDATE ideas
		SET title = $3, description = $4, content_type = $5, industry = $6,
		    tone = $7, keywords = $8, tags = $9, status = $10,
		    scheduled_at = $11, updated_at = $12
		WHERE id = $1 AND owner_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		idea.ID,
		idea.OwnerID,
		idea.Title,
		idea.Description,
		idea.ContentType,
		idea.Industry,
		idea.Tone,
		idea.Keywords,
		idea.Tags,
		idea.Status,
		idea.ScheduledAt,
		idea.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrIdeaNotFound
	}

	return nil
}

// DeleteIdea removes an owned idea. Returns false if no matching owned
// record existed.
func (r *Repository) DeleteIdea(ctx context.Context, id, ownerID string) (bool, error) {
	query := `DELETE FROM ideas WHERE id = $1 AND owner_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete idea: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SearchIdeas ranks an owner's ideas by weighted relevance: title 10,
// description 5, keywords 3, tags 2. Ties break by most recent creation.
func (r *Repository) SearchIdeas(ctx context.Context, ownerID, query string) ([]*model.Idea, error) {
	sql := `
		SELECT id, owner_id, title, description, content_type, industry, tone,
		       keywords, tags, status, scheduled_at,
		       views, engagement, conversion,
		       created_at, updated_at,
		       (
		           CASE WHEN title ILIKE '%' || $2 || '%' THEN 10 ELSE 0 END +
		           CASE WHEN description ILIKE '%' || $2 || '%' THEN 5 ELSE 0 END +
		           CASE WHEN EXISTS (SELECT 1 FROM unnest(keywords) kw WHERE kw ILIKE '%' || $2 || '%') THEN 3 ELSE 0 END +
		           CASE WHEN EXISTS (SELECT 1 FROM unnest(tags) tg WHERE tg ILIKE '%' || $2 || '%') THEN 2 ELSE 0 END
		       ) AS score
		FROM ideas
		WHERE owner_id = $1
		ORDER BY score DESC, created_at DESC, id DESC
	`
	// Non-matching rows score zero; filtered below to keep the scoring
	// expression in one place.
	rows, err := r.pool.Query(ctx, sql, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search ideas: %w", err)
	}
	defer rows.Close()

	var results []*model.Idea
	for rows.Next() {
		var idea model.Idea
		var score int
		if err := rows.Scan(ideaScanTargets(&idea, &score)...); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		if score > 0 {
			results = append(results, &idea)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to search ideas: %w", err)
	}

	return results, nil
}

const ideaSelect = `
	SELECT id, owner_id, title, description, content_type, industry, tone,
	       keywords, tags, status, scheduled_at,
	       views, engagement, conversion,
	       created_at, updated_at
	FROM ideas
`

// ideaScanTargets returns scan destinations for an idea row, with optional
// trailing extras (e.g. a computed score column).
func ideaScanTargets(idea *model.Idea, extras ...any) []any {
	targets := []any{
		&idea.ID,
		&idea.OwnerID,
		&idea.Title,
		&idea.Description,
		&idea.ContentType,
		&idea.Industry,
		&idea.Tone,
		&idea.Keywords,
		&idea.Tags,
		&idea.Status,
		&idea.ScheduledAt,
		&idea.Performance.Views,
		&idea.Performance.Engagement,
		&idea.Performance.Conversion,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	}
	return append(targets, extras...)
}

// scanIdea scans a single idea row.
func scanIdea(row pgx.Row) (*model.Idea, error) {
	var idea model.Idea
	err := row.Scan(ideaScanTargets(&idea)...)
	return &idea, err
}

// collectIdeas drains rows into a slice of ideas.
func collectIdeas(rows pgx.Rows) ([]*model.Idea, error) {
	var ideas []*model.Idea
	for rows.Next() {
		var idea model.Idea
		if err := rows.Scan(ideaScanTargets(&idea)...); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, &idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ideas: %w", err)
	}
	return ideas, nil
}
