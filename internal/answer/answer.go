package answer

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/typediff/internal/diff"
	"github.com/nao1215/typediff/internal/normalize"
	"github.com/nao1215/typediff/internal/render"
)

const (
	openCode  = `<code id=typeans>`
	closeCode = `</code>`
	arrow     = `<br><span id=typearrow>&darr;</span><br>`
)

// Outcome is the result of Evaluate.
type Outcome struct {
	// HTML is the rendered comparison.
	HTML string
	// Expected is the expected answer after normalization.
	Expected string
	// Blank is set when nothing was typed.
	Blank bool
	// Exact is set when the typed units equal the expected units.
	Exact bool
	// Alignment holds the classified tokens for both sides.
	Alignment diff.Alignment
}

// Compare returns the markup comparing typed against expected. When combining
// is false, combining marks do not count as differences.
func Compare(expected, typed string, combining bool) string {
	return Evaluate(expected, typed, combining).HTML
}

// Evaluate compares typed against expected and returns the markup along with
// the alignment. The blank and exact cases short-circuit the markup only:
// the alignment is always computed because scores and text diffs are built
// from it.
func Evaluate(expected, typed string, combining bool) Outcome {
	expected = normalize.Unicode(normalize.Expected(expected))

	seq := diff.Split(typed, expected, combining)
	out := Outcome{
		Expected:  expected,
		Blank:     typed == "",
		Exact:     seq.Equal(),
		Alignment: seq.Align(),
	}

	var sb strings.Builder
	sb.WriteString(openCode)
	switch {
	case out.Blank:
		sb.WriteString(html.EscapeString(expected))
	case out.Exact:
		sb.WriteString(render.Span(diff.Token{Kind: diff.Good, Text: expected}))
	default:
		sb.WriteString(render.Tokens(out.Alignment.Typed))
		sb.WriteString(arrow)
		sb.WriteString(render.Tokens(out.Alignment.Expected))
	}
	sb.WriteString(closeCode)
	out.HTML = sb.String()
	return out
}
