package model

import (
	"reflect"
	"testing"
)

func TestIdeaStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from IdeaStatus
		to   IdeaStatus
		want bool
	}{
		{"draft_to_saved", StatusDraft, StatusSaved, true},
		{"draft_to_archived", StatusDraft, StatusArchived, true},
		{"draft_to_published", StatusDraft, StatusPublished, false},
		{"saved_to_draft", StatusSaved, StatusDraft, true},
		{"saved_to_scheduled", StatusSaved, StatusScheduled, true},
		{"saved_to_published", StatusSaved, StatusPublished, false},
		{"scheduled_to_published", StatusScheduled, StatusPublished, true},
		{"scheduled_to_draft", StatusScheduled, StatusDraft, false},
		{"published_to_archived", StatusPublished, StatusArchived, true},
		{"published_to_draft", StatusPublished, StatusDraft, false},
		{"archived_terminal", StatusArchived, StatusDraft, false},
		{"archived_to_archived", StatusArchived, StatusArchived, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.from.CanTransitionTo(test.to); got != test.want {
				t.Fatalf("%s -> %s: got %v, want %v", test.from, test.to, got, test.want)
			}
		})
	}
}

func TestContentTypeIsValid(t *testing.T) {
	for _, ct := range []ContentType{ContentBlog, ContentSocial, ContentVideo, ContentNewsletter} {
		if !ct.IsValid() {
			t.Errorf("%s should be valid", ct)
		}
	}
	if ContentType("podcast").IsValid() {
		t.Error("unknown content type should be invalid")
	}
}

func TestIdeaNormalize(t *testing.T) {
	idea := &Idea{
		Title:       "  Launch Plan  ",
		Description: " A plan.\n",
		Industry:    " finance ",
		Tone:        " casual ",
		Keywords:    []string{" growth ", "", "  "},
		Tags:        []string{"q3 ", ""},
	}

	idea.Normalize()

	if idea.Title != "Launch Plan" || idea.Description != "A plan." {
		t.Errorf("title/description not trimmed: %q / %q", idea.Title, idea.Description)
	}
	if idea.Industry != "finance" || idea.Tone != "casual" {
		t.Errorf("industry/tone not trimmed: %q / %q", idea.Industry, idea.Tone)
	}
	if !reflect.DeepEqual(idea.Keywords, []string{"growth"}) {
		t.Errorf("keywords: got %v", idea.Keywords)
	}
	if !reflect.DeepEqual(idea.Tags, []string{"q3"}) {
		t.Errorf("tags: got %v", idea.Tags)
	}
}

func TestNewAccountDefaults(t *testing.T) {
	acc := NewAccount(" Ada ", " Ada@Example.COM ", "")

	if acc.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", acc.Email)
	}
	if acc.Name != "Ada" {
		t.Errorf("name not trimmed: %q", acc.Name)
	}
	if acc.Role != RoleUser {
		t.Errorf("default role: got %s", acc.Role)
	}
	if acc.Preferences.Tone != "professional" {
		t.Errorf("default tone: got %q", acc.Preferences.Tone)
	}
	if acc.Subscription.Plan != PlanFree || acc.Subscription.Status != SubscriptionActive {
		t.Errorf("subscription defaults: got %+v", acc.Subscription)
	}
	if !acc.Subscription.ExpiresAt.After(acc.CreatedAt) {
		t.Error("subscription should expire after creation")
	}
}
