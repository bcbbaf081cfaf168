// Package generator provides the content idea generation gateway.
// The backing implementation is an injectable strategy so a real AI
// backend can replace the template engine without touching callers.
package generator

import (
	"context"
	"errors"

	"github.com/creativespark/creativespark/internal/model"
)

// ErrUnavailable indicates the generation backend failed or returned
// malformed data. Callers must not persist partial results on this error.
var ErrUnavailable = errors.New("idea generation backend unavailable")

// Candidate is a single generated idea before persistence.
type Candidate struct {
	Title       string
	Description string
	Keywords    []string
}

// Params describes a generation request.
// ContentType, Industry and Tone are required; the rest are optional.
type Params struct {
	ContentType    model.ContentType
	Industry       string
	Tone           string
	Keywords       []string
	AdditionalInfo string
}

// Generator produces candidate ideas for the given parameters.
// A call may take over a second; implementations must honour ctx cancellation.
type Generator interface {
	Generate(ctx context.Context, params Params) ([]Candidate, error)
}

// maxKeywords caps the combined keyword list on each candidate.
const maxKeywords = 5

// mergeKeywords combines generated and caller keywords, generated first,
// removes duplicates and truncates to maxKeywords.
func mergeKeywords(generated, supplied []string) []string {
	seen := make(map[string]bool, len(generated)+len(supplied))
	merged := make([]string, 0, maxKeywords)

	for _, kw := range append(append([]string{}, generated...), supplied...) {
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		merged = append(merged, kw)
		if len(merged) == maxKeywords {
			break
		}
	}

	return merged
}
