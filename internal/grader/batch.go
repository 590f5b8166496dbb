package grader

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/typediff/internal/model"
)

// DefaultConcurrency is the number of cards graded at once when no
// concurrency is configured.
const DefaultConcurrency = 4

// BatchGrader grades many cards concurrently.
type BatchGrader struct {
	grader *Grader

	// concurrency is the maximum number of cards graded at once.
	concurrency int

	logger *slog.Logger
}

// BatchOption configures a BatchGrader.
type BatchOption func(*BatchGrader)

// WithBatchLogger sets a custom logger for batch grading.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchGrader) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of cards graded at once.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchGrader) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchGrader creates a BatchGrader that grades each card with g.
func NewBatchGrader(g *Grader, opts ...BatchOption) *BatchGrader {
	b := &BatchGrader{
		grader:      g,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// GradeAll grades cards with at most the configured number of goroutines.
// Results are in the order of cards. When ctx is cancelled, GradeAll stops
// starting new cards and returns the context error.
func (b *BatchGrader) GradeAll(ctx context.Context, cards []model.Card) ([]*model.Result, error) {
	b.logger.Debug("starting batch grading",
		"total_cards", len(cards),
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	// Each goroutine writes only its own index.
	results := make([]*model.Result, len(cards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, card := range cards {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := b.grader.Grade(ctx, card)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Debug("batch grading complete",
		"total_cards", len(cards),
		"elapsed", time.Since(startTime),
	)
	return results, nil
}
