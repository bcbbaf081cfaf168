package generator

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/creativespark/creativespark/internal/model"
)

// Candidate count bounds per generation call.
const (
	minCandidates = 3
	maxCandidates = 6
)

// TemplateGenerator produces ideas from the built-in template pools.
// It stands in for a real AI backend and simulates its latency.
type TemplateGenerator struct {
	latency time.Duration
	logger  *slog.Logger
}

// NewTemplateGenerator creates a TemplateGenerator.
// latency simulates backend round-trip time; pass 0 to disable (tests).
func NewTemplateGenerator(latency time.Duration, logger *slog.Logger) *TemplateGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateGenerator{latency: latency, logger: logger}
}

// Generate returns between 3 and 6 candidates for the given parameters.
// The call blocks for the configured latency and aborts on ctx cancellation.
func (g *TemplateGenerator) Generate(ctx context.Context, params Params) ([]Candidate, error) {
	g.logger.Debug("generating ideas",
		"content_type", string(params.ContentType),
		"industry", params.Industry,
		"tone", params.Tone,
		"keyword_count", len(params.Keywords),
	)

	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	// Unknown content types fall back to the blog pool.
	pool, ok := ideaTemplates[params.ContentType]
	if !ok {
		pool = ideaTemplates[model.ContentBlog]
	}
	if len(pool) < minCandidates {
		return nil, fmt.Errorf("%w: template pool too small", ErrUnavailable)
	}

	count, err := randRange(minCandidates, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if count > len(pool) {
		count = len(pool)
	}

	indices, err := pickDistinct(len(pool), count)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	candidates := make([]Candidate, 0, count)
	for _, idx := range indices {
		tpl := pool[idx]

		generated := append(append([]string{}, tpl.keywords...), params.Industry)
		candidates = append(candidates, Candidate{
			Title:       strings.ReplaceAll(tpl.title, "%s", params.Industry),
			Description: strings.ReplaceAll(tpl.description, "%s", params.Industry),
			Keywords:    mergeKeywords(generated, params.Keywords),
		})
	}

	return candidates, nil
}

// wait blocks for the simulated backend latency or until ctx is done.
func (g *TemplateGenerator) wait(ctx context.Context) error {
	if g.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(g.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// randRange returns a random integer in [min, max] inclusive.
func randRange(min, max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return 0, err
	}
	return min + int(n.Int64()), nil
}

// pickDistinct selects count distinct indices from [0, n).
func pickDistinct(n, count int) ([]int, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates with crypto randomness; pools are small.
	for i := n - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return nil, err
		}
		perm[i], perm[int(j.Int64())] = perm[int(j.Int64())], perm[i]
	}
	return perm[:count], nil
}
