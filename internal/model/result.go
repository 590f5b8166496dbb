package model

import "github.com/nao1215/typediff/internal/diff"

// Result is the graded comparison of one card.
type Result struct {
	// CardID identifies the graded card.
	CardID string `json:"card_id"`

	// Language is the tag the comment stripper used.
	Language string `json:"language"`

	// Combining reports whether combining marks counted as differences.
	Combining bool `json:"combining"`

	// Expected and Typed are the texts actually compared, after preparation.
	Expected string `json:"expected"`
	Typed    string `json:"typed"`

	// HTML is the rendered comparison.
	HTML string `json:"html"`

	// TypedDiff and ExpectedDiff are plain-text projections of the
	// alignment, [-bad-] and {+missing+}.
	TypedDiff    string `json:"typed_diff"`
	ExpectedDiff string `json:"expected_diff"`

	// Alignment holds the classified tokens.
	Alignment diff.Alignment `json:"alignment"`

	// Score is matched units over the longer side, between 0 and 1.
	Score float64 `json:"score"`

	// Verdict is the overall grade.
	Verdict Verdict `json:"verdict"`

	// Warnings are non-fatal problems met while grading, such as an
	// unknown language.
	Warnings []string `json:"warnings,omitempty"`
}

// HasWarnings reports whether grading produced warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Score returns matched units over the longer of the two sides. Two empty
// sides score 1.
func Score(a diff.Alignment) float64 {
	longest := max(a.TypedUnits, a.ExpectedUnits)
	if longest == 0 {
		return 1
	}
	return float64(a.Matched) / float64(longest)
}
