package model

import (
	"strings"
	"time"
)

// ContentType represents the kind of content an idea targets.
type ContentType string

const (
	ContentBlog       ContentType = "blog"
	ContentSocial     ContentType = "social"
	ContentVideo      ContentType = "video"
	ContentNewsletter ContentType = "newsletter"
)

// IsValid checks if the content type is a known value.
func (c ContentType) IsValid() bool {
	switch c {
	case ContentBlog, ContentSocial, ContentVideo, ContentNewsletter:
		return true
	}
	return false
}

// IdeaStatus represents where an idea sits in its lifecycle.
type IdeaStatus string

const (
	StatusDraft     IdeaStatus = "draft"
	StatusSaved     IdeaStatus = "saved"
	StatusScheduled IdeaStatus = "scheduled"
	StatusPublished IdeaStatus = "published"
	StatusArchived  IdeaStatus = "archived"
)

// IsValid checks if the status is a known value.
func (s IdeaStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSaved, StatusScheduled, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// statusTransitions is the allowed lifecycle transition table.
// Archived is terminal.
var statusTransitions = map[IdeaStatus][]IdeaStatus{
	StatusDraft:     {StatusSaved, StatusArchived},
	StatusSaved:     {StatusScheduled, StatusArchived, StatusDraft},
	StatusScheduled: {StatusPublished, StatusArchived},
	StatusPublished: {StatusArchived},
	StatusArchived:  {},
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s IdeaStatus) CanTransitionTo(next IdeaStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Performance holds analytics counters for an idea.
// Counters are written by an external analytics pipeline; the core only stores them.
type Performance struct {
	Views      int64 `json:"views"`
	Engagement int64 `json:"engagement"`
	Conversion int64 `json:"conversion"`
}

// Idea represents a generated content idea owned by a single account.
type Idea struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ContentType ContentType `json:"content_type"`
	Industry    string      `json:"industry"`
	Tone        string      `json:"tone"`
	Keywords    []string    `json:"keywords"`
	Tags        []string    `json:"tags"`
	Status      IdeaStatus  `json:"status"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	Performance Performance `json:"performance"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Normalize trims free-text fields in place. Empty keyword and tag
// entries are dropped.
func (i *Idea) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Industry = strings.TrimSpace(i.Industry)
	i.Tone = strings.TrimSpace(i.Tone)
	i.Keywords = TrimAll(i.Keywords)
	i.Tags = TrimAll(i.Tags)
}

// TrimAll trims each entry and drops the ones that are empty.
func TrimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
