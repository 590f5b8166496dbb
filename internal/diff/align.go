package diff

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/nao1215/typediff/internal/normalize"
)

// placeholder fills the typed side where expected text is missing.
const placeholder = "-"

// Sequences holds the units that take part in an alignment.
type Sequences struct {
	// Typed are the typed units.
	Typed []string
	// Expected are the expected units matched against Typed.
	Expected []string
	// display maps each Expected index to the text shown for it. It is only
	// set when combining marks are detached.
	display []string
}

// Split turns typed and expected text into alignment units. Both texts are
// brought to NFC first. When combining is false, combining marks are
// detached: typed marks are dropped and expected marks are kept only in the
// display text of the preceding base unit. Marks with no preceding base are
// dropped.
func Split(typed, expected string, combining bool) Sequences {
	typed = normalize.Unicode(typed)
	expected = normalize.Unicode(expected)

	if combining {
		return Sequences{
			Typed:    units(typed),
			Expected: units(expected),
		}
	}

	s := Sequences{
		Typed:    []string{},
		Expected: []string{},
		display:  []string{},
	}
	for _, r := range typed {
		if base, _ := detach(r); base != "" {
			s.Typed = append(s.Typed, base)
		}
	}
	for _, r := range expected {
		base, marks := detach(r)
		if base == "" {
			if n := len(s.display); n > 0 {
				s.display[n-1] += marks
			}
			continue
		}
		s.Expected = append(s.Expected, base)
		s.display = append(s.display, string(r))
	}
	for i, d := range s.display {
		s.display[i] = normalize.Unicode(d)
	}
	return s
}

// units splits text into one unit per scalar value.
func units(text string) []string {
	out := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

// detach splits r into its base characters and its combining marks using the
// canonical decomposition. A precomposed letter such as U+00E9 yields "e" and
// U+0301. Characters whose decomposition has no marks (Hangul syllables, for
// instance) are returned whole as the base.
func detach(r rune) (base, marks string) {
	if normalize.IsCombiningMark(r) {
		return "", string(r)
	}
	decomposed := normalize.Decompose(string(r))
	var b, m strings.Builder
	for _, c := range decomposed {
		if normalize.IsCombiningMark(c) {
			m.WriteRune(c)
		} else {
			b.WriteRune(c)
		}
	}
	if m.Len() == 0 {
		return string(r), ""
	}
	return normalize.Unicode(b.String()), m.String()
}

// Equal reports whether both sides consist of the same units.
func (s Sequences) Equal() bool {
	return slices.Equal(s.Typed, s.Expected)
}

// expectedText returns the display text of Expected[from:to].
func (s Sequences) expectedText(from, to int) string {
	if s.display != nil {
		return strings.Join(s.display[from:to], "")
	}
	return strings.Join(s.Expected[from:to], "")
}

// Alignment is the result of aligning two Sequences.
type Alignment struct {
	// Typed is aligned to the typed input. Missing tokens in it are
	// placeholders.
	Typed []Token `json:"typed"`
	// Expected is aligned to the expected input.
	Expected []Token `json:"expected"`
	// Matched counts units classified good.
	Matched int `json:"matched"`
	// Extra counts typed units classified bad.
	Extra int `json:"extra"`
	// Missing counts expected units classified missing.
	Missing int `json:"missing"`
	// TypedUnits and ExpectedUnits are the sequence lengths.
	TypedUnits    int `json:"typed_units"`
	ExpectedUnits int `json:"expected_units"`
}

// Align computes the opcodes between the typed and expected units and turns
// them into two parallel token sequences.
//
// Matching prefers the longest contiguous block and, among equally long
// blocks, the leftmost one. The worst case cost is quadratic in the number of
// units.
func (s Sequences) Align() Alignment {
	a := Alignment{
		Typed:         []Token{},
		Expected:      []Token{},
		TypedUnits:    len(s.Typed),
		ExpectedUnits: len(s.Expected),
	}

	m := difflib.NewMatcher(s.Typed, s.Expected)
	for _, op := range m.GetOpCodes() {
		typed := strings.Join(s.Typed[op.I1:op.I2], "")
		expected := s.expectedText(op.J1, op.J2)

		switch op.Tag {
		case 'e':
			a.Typed = append(a.Typed, Token{Kind: Good, Text: typed})
			a.Expected = append(a.Expected, Token{Kind: Good, Text: expected})
			a.Matched += op.I2 - op.I1
		case 'd':
			a.Typed = append(a.Typed, Token{Kind: Bad, Text: typed})
			a.Extra += op.I2 - op.I1
		case 'i':
			width := utf8.RuneCountInString(strings.Join(s.Expected[op.J1:op.J2], ""))
			a.Typed = append(a.Typed, Token{Kind: Missing, Text: strings.Repeat(placeholder, width)})
			a.Expected = append(a.Expected, Token{Kind: Missing, Text: expected})
			a.Missing += op.J2 - op.J1
		case 'r':
			a.Typed = append(a.Typed, Token{Kind: Bad, Text: typed})
			a.Expected = append(a.Expected, Token{Kind: Missing, Text: expected})
			a.Extra += op.I2 - op.I1
			a.Missing += op.J2 - op.J1
		}
	}
	return a
}

// Align splits and aligns typed against expected. See Split and
// Sequences.Align.
func Align(typed, expected string, combining bool) Alignment {
	return Split(typed, expected, combining).Align()
}
