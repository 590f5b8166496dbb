package model

import "fmt"

// Verdict is the overall grade of a card.
type Verdict int

const (
	// VerdictBlank means nothing was typed.
	VerdictBlank Verdict = iota

	// VerdictIncorrect means the answer is mostly wrong.
	VerdictIncorrect

	// VerdictPartial means the answer is close but not exact.
	VerdictPartial

	// VerdictCorrect means every unit matched.
	VerdictCorrect
)

// PartialThreshold is the lowest score graded VerdictPartial.
const PartialThreshold = 0.8

// String returns a human-readable representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictBlank:
		return "BLANK"
	case VerdictIncorrect:
		return "INCORRECT"
	case VerdictPartial:
		return "PARTIAL"
	case VerdictCorrect:
		return "CORRECT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a verdict name as produced by String.
func (v *Verdict) UnmarshalText(text []byte) error {
	for _, candidate := range AllVerdicts() {
		if candidate.String() == string(text) {
			*v = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown verdict %q", text)
}

// AllVerdicts returns every verdict from worst to best.
func AllVerdicts() []Verdict {
	return []Verdict{VerdictBlank, VerdictIncorrect, VerdictPartial, VerdictCorrect}
}

// VerdictFor grades a comparison. Blank wins over everything, an exact match
// is correct, and otherwise the score decides between partial and incorrect.
func VerdictFor(exact, blank bool, score float64) Verdict {
	switch {
	case blank:
		return VerdictBlank
	case exact:
		return VerdictCorrect
	case score >= PartialThreshold:
		return VerdictPartial
	default:
		return VerdictIncorrect
	}
}
