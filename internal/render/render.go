package render

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/nao1215/typediff/internal/diff"
	"github.com/nao1215/typediff/internal/normalize"
)

// Span classes, one per token kind.
const (
	ClassGood   = "typeGood"
	ClassBad    = "typeBad"
	ClassMissed = "typeMissed"
)

// nbsp gives a leading combining mark something to attach to.
const nbsp = "\u00a0"

// Class returns the span class for kind.
func Class(kind diff.Kind) string {
	switch kind {
	case diff.Good:
		return ClassGood
	case diff.Bad:
		return ClassBad
	default:
		return ClassMissed
	}
}

// Span renders a single token. Text is escaped for markup; text that begins
// with a combining mark is prefixed with a no-break space first.
func Span(t diff.Token) string {
	text := t.Text
	if r, _ := utf8.DecodeRuneInString(text); r != utf8.RuneError && normalize.IsCombiningMark(r) {
		text = nbsp + text
	}
	return `<span class=` + Class(t.Kind) + `>` + html.EscapeString(text) + `</span>`
}

// Tokens renders tokens as consecutive spans.
func Tokens(tokens []diff.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(Span(t))
	}
	return sb.String()
}

// Text renders tokens without markup: good text verbatim, bad text as
// [-text-] and missing text as {+text+}.
func Text(tokens []diff.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case diff.Good:
			sb.WriteString(t.Text)
		case diff.Bad:
			sb.WriteString("[-" + t.Text + "-]")
		case diff.Missing:
			sb.WriteString("{+" + t.Text + "+}")
		}
	}
	return sb.String()
}
