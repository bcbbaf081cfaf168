package model

// Session represents an authenticated caller resolved from a session token.
// It is attached to the request context by the auth middleware.
type Session struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
