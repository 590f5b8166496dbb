package diff

import (
	"fmt"
	"slices"
	"strings"
)

// Kind classifies a span of an alignment.
type Kind int

const (
	// Good marks text present and identical on both sides.
	Good Kind = iota
	// Bad marks typed text that does not belong there.
	Bad
	// Missing marks expected text that was not typed. On the typed side a
	// Missing token is a run of '-' placeholders, not real input.
	Missing
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case Missing:
		return "missing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is one classified span.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Join concatenates the text of tokens, skipping the kinds listed in skip.
func Join(tokens []Token, skip ...Kind) string {
	var b strings.Builder
	for _, t := range tokens {
		if slices.Contains(skip, t.Kind) {
			continue
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
