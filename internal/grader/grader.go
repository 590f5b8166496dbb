package grader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/typediff/internal/answer"
	"github.com/nao1215/typediff/internal/language"
	"github.com/nao1215/typediff/internal/model"
	"github.com/nao1215/typediff/internal/pipeline"
	"github.com/nao1215/typediff/internal/render"
)

// Grader grades single cards.
type Grader struct {
	// language is used for cards that name none.
	language string

	// combining is used for cards that do not override it.
	combining bool

	// raw skips the preparation pipeline.
	raw bool

	logger *slog.Logger
}

// Option configures a Grader.
type Option func(*Grader)

// WithLanguage sets the language for cards that do not name one.
func WithLanguage(name string) Option {
	return func(g *Grader) {
		g.language = name
	}
}

// WithCombining sets whether combining marks count as differences.
func WithCombining(combining bool) Option {
	return func(g *Grader) {
		g.combining = combining
	}
}

// WithRaw disables the preparation pipeline. Answers are compared as given,
// apart from the normalization every comparison applies.
func WithRaw(raw bool) Option {
	return func(g *Grader) {
		g.raw = raw
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Grader) {
		g.logger = logger
	}
}

// New creates a Grader. By default comments are not stripped and combining
// marks count.
func New(opts ...Option) *Grader {
	g := &Grader{
		language:  string(language.None),
		combining: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Resolve returns the tag used for card. An unknown language degrades to
// language.None and the returned warning says so.
func (g *Grader) Resolve(card model.Card) (language.Tag, string) {
	name := card.Language
	if name == "" {
		name = g.language
	}
	tag := language.Resolve(name)
	if tag.IsValid() {
		return tag, ""
	}
	warning := fmt.Sprintf("unknown language %q: comments are not stripped", name)
	g.logger.Warn("unknown language",
		"card", card.ID,
		"language", name,
	)
	return language.None, warning
}

// Grade grades one card. The only error is a cancelled context.
func (g *Grader) Grade(ctx context.Context, card model.Card) (*model.Result, error) {
	tag, warning := g.Resolve(card)

	combining := g.combining
	if card.Combining != nil {
		combining = *card.Combining
	}

	sub := model.NewSubmission(card)
	if !g.raw {
		p := pipeline.NewDefault(tag, pipeline.WithLogger(g.logger))
		if err := p.Execute(ctx, sub); err != nil {
			return nil, fmt.Errorf("preparing card %s: %w", card.ID, err)
		}
	}

	out := answer.Evaluate(sub.Expected, sub.Typed, combining)
	score := model.Score(out.Alignment)

	result := &model.Result{
		CardID:       card.ID,
		Language:     tag.String(),
		Combining:    combining,
		Expected:     out.Expected,
		Typed:        sub.Typed,
		HTML:         out.HTML,
		TypedDiff:    render.Text(out.Alignment.Typed),
		ExpectedDiff: render.Text(out.Alignment.Expected),
		Alignment:    out.Alignment,
		Score:        score,
		Verdict:      model.VerdictFor(out.Exact, out.Blank, score),
	}
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	g.logger.Debug("card graded",
		"card", card.ID,
		"language", result.Language,
		"verdict", result.Verdict,
		"score", result.Score,
	)
	return result, nil
}
