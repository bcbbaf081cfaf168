// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/creativespark/creativespark/internal/model"
	"github.com/creativespark/creativespark/internal/service"
)

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company,omitempty"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse represents an account in API responses.
// The credential hash is never included.
type AccountResponse struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	Company      string             `json:"company,omitempty"`
	Role         string             `json:"role"`
	Preferences  model.Preferences  `json:"preferences"`
	Subscription model.Subscription `json:"subscription"`
	CreatedAt    time.Time          `json:"created_at"`
}

// AuthResponse carries an account summary and its session token.
type AuthResponse struct {
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
}

// GenerateRequest represents the request body for idea generation.
type GenerateRequest struct {
	ContentType    string   `json:"content_type"`
	Industry       string   `json:"industry"`
	Tone           string   `json:"tone"`
	Keywords       []string `json:"keywords,omitempty"`
	AdditionalInfo string   `json:"additional_info,omitempty"`
}

// UpdateIdeaRequest represents a partial idea update.
// Fields left null are not changed; unknown fields are ignored.
type UpdateIdeaRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Industry    *string    `json:"industry,omitempty"`
	Tone        *string    `json:"tone,omitempty"`
	Keywords    *[]string  `json:"keywords,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	Status      *string    `json:"status,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// ShareRequest represents the request body for sharing an idea.
type ShareRequest struct {
	Email string `json:"email"`
}

// IdeaResponse represents an idea in API responses.
type IdeaResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ContentType string            `json:"content_type"`
	Industry    string            `json:"industry"`
	Tone        string            `json:"tone"`
	Keywords    []string          `json:"keywords"`
	Tags        []string          `json:"tags"`
	Status      string            `json:"status"`
	ScheduledAt *time.Time        `json:"scheduled_at,omitempty"`
	Performance model.Performance `json:"performance"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IdeaListResponse represents a list of ideas.
type IdeaListResponse struct {
	Data  []IdeaResponse `json:"data"`
	Count int            `json:"count"`
}

// GenerateResponse carries persisted drafts plus any per-candidate
// persistence failures.
type GenerateResponse struct {
	Data     []IdeaResponse             `json:"data"`
	Failures []service.CandidateFailure `json:"failures,omitempty"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ToAccountResponse converts an Account model to AccountResponse DTO.
func ToAccountResponse(account *model.Account) AccountResponse {
	return AccountResponse{
		ID:           account.ID,
		Email:        account.Email,
		Name:         account.Name,
		Company:      account.Company,
		Role:         string(account.Role),
		Preferences:  account.Preferences,
		Subscription: account.Subscription,
		CreatedAt:    account.CreatedAt,
	}
}

// ToIdeaResponse converts an Idea model to IdeaResponse DTO.
func ToIdeaResponse(idea *model.Idea) IdeaResponse {
	return IdeaResponse{
		ID:          idea.ID,
		Title:       idea.Title,
		Description: idea.Description,
		ContentType: string(idea.ContentType),
		Industry:    idea.Industry,
		Tone:        idea.Tone,
		Keywords:    idea.Keywords,
		Tags:        idea.Tags,
		Status:      string(idea.Status),
		ScheduledAt: idea.ScheduledAt,
		Performance: idea.Performance,
		CreatedAt:   idea.CreatedAt,
		UpdatedAt:   idea.UpdatedAt,
	}
}

// ToIdeaListResponse converts a slice of Idea models to IdeaListResponse.
func ToIdeaListResponse(ideas []*model.Idea) IdeaListResponse {
	responses := make([]IdeaResponse, len(ideas))
	for i, idea := range ideas {
		responses[i] = ToIdeaResponse(idea)
	}
	return IdeaListResponse{
		Data:  responses,
		Count: len(responses),
	}
}
