package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/typediff/internal/model"
)

// defaultStyle colours the comparison spans.
const defaultStyle = `.typeGood { background: #afa; color: black; }
.typeBad { background: #faa; color: black; }
.typeMissed { background: #ccc; color: black; }
#typearrow { color: #888; }`

// HTMLWriter outputs a standalone page with every card's comparison.
type HTMLWriter struct {
	baseWriter

	// fontFamily and fontSize style the answer blocks when set.
	fontFamily string
	fontSize   int

	title string
}

// HTMLWriterOption configures an HTMLWriter.
type HTMLWriterOption func(*HTMLWriter)

// WithFont sets the font of the answer blocks. An empty family or a
// non-positive size leaves that property unset.
func WithFont(family string, size int) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.fontFamily = family
		w.fontSize = size
	}
}

// WithTitle sets the page title.
func WithTitle(title string) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.title = title
	}
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, opts ...HTMLWriterOption) *HTMLWriter {
	w := &HTMLWriter{
		baseWriter: newBaseWriter(output),
		title:      "Typediff Report",
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report as an HTML page.
func (w *HTMLWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(w.title))
	sb.WriteString("<style>\n" + defaultStyle + "\n</style>\n</head>\n<body>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(w.title))

	summary := report.Summary()
	fmt.Fprintf(&sb, "<p>%d card(s), %d correct, average score %s</p>\n",
		summary.Total, summary.Counts[model.VerdictCorrect], formatPercent(summary.AverageScore))

	for _, r := range report.Results {
		fmt.Fprintf(&sb, "<h2>%s <small>%s</small></h2>\n", html.EscapeString(r.CardID), r.Verdict)
		sb.WriteString(w.Block(r.HTML))
	}

	sb.WriteString("</body>\n</html>\n")
	return io.WriteString(w.output, sb.String())
}

// Block wraps comparison markup the way it is shown on the back of a card.
func (w *HTMLWriter) Block(markup string) string {
	return "\n<div class=textbox-output-parent>\n<style>\npre {\n   white-space:pre-wrap;\n   " +
		w.fontStyle() + "\n}\n</style>\n<pre class=textbox-output>" + markup + "</pre>\n</div>\n"
}

// fontStyle returns the CSS declarations for the configured font.
func (w *HTMLWriter) fontStyle() string {
	var sb strings.Builder
	if family := sanitizeFont(w.fontFamily); family != "" {
		fmt.Fprintf(&sb, "font-family: '%s';", family)
	}
	if w.fontSize > 0 {
		fmt.Fprintf(&sb, "font-size: %dpx", w.fontSize)
	}
	return sb.String()
}

// sanitizeFont drops characters that could end the CSS declaration.
func sanitizeFont(family string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', ';', '{', '}', '<', '>', '\\':
			return -1
		}
		return r
	}, family)
}
