package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Service errors. Handlers map these onto HTTP status codes.
var (
	ErrValidation           = errors.New("invalid input")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrIdeaNotFound         = errors.New("idea not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrGeneratorUnavailable = errors.New("idea generation unavailable")
)

// ValidationError carries per-field messages for a rejected input.
// It unwraps to ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error returns the field messages in a stable order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// fieldErrors accumulates validation messages during input checks.
type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

// err returns a ValidationError if any field failed, nil otherwise.
func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
