// Package model defines domain entities for the application.
package model

import (
	"strings"
	"time"
)

// Role represents an account's authorization role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// SubscriptionPlan represents a billing plan tier.
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanBasic      SubscriptionPlan = "basic"
	PlanPremium    SubscriptionPlan = "premium"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// IsValid checks if the plan is a known value.
func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPremium, PlanEnterprise:
		return true
	}
	return false
}

// SubscriptionStatus represents the state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionTrialing  SubscriptionStatus = "trialing"
	SubscriptionPastDue   SubscriptionStatus = "past_due"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// IsValid checks if the subscription status is a known value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionTrialing, SubscriptionPastDue, SubscriptionCancelled:
		return true
	}
	return false
}

// Preferences holds content generation defaults for an account.
type Preferences struct {
	Industries   []string `json:"industries"`
	ContentTypes []string `json:"content_types"`
	Tone         string   `json:"tone"`
}

// Subscription holds billing state for an account.
type Subscription struct {
	Plan      SubscriptionPlan   `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// Account represents a registered user of the platform.
// PasswordHash is never serialized in API responses.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Company      string       `json:"company,omitempty"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Preferences  Preferences  `json:"preferences"`
	Subscription Subscription `json:"subscription"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// subscriptionDefaultTerm is the initial subscription length for new accounts.
const subscriptionDefaultTerm = 365 * 24 * time.Hour

// NewAccount builds an account with registration defaults applied.
// The caller is responsible for setting the password hash and ID.
func NewAccount(name, email, company string) *Account {
	now := time.Now().UTC()
	return &Account{
		Email:   NormalizeEmail(email),
		Name:    strings.TrimSpace(name),
		Company: strings.TrimSpace(company),
		Role:    RoleUser,
		Preferences: Preferences{
			Industries:   []string{},
			ContentTypes: []string{},
			Tone:         "professional",
		},
		Subscription: Subscription{
			Plan:      PlanFree,
			Status:    SubscriptionActive,
			ExpiresAt: now.Add(subscriptionDefaultTerm),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
