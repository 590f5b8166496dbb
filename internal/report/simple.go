package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/typediff/internal/model"
)

// SimpleWriter outputs human-readable text reports.
type SimpleWriter struct {
	baseWriter

	// summaryOnly omits the per-card section.
	summaryOnly bool

	// verbose adds the prepared answers of every card.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithSummaryOnly configures the writer to print only the summary.
func WithSummaryOnly(summaryOnly bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.summaryOnly = summaryOnly
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	summary := report.Summary()
	w.writeHeader(&sb, report, summary)
	if !w.summaryOnly {
		w.writeCards(&sb, report)
	}
	w.writeFooter(&sb, summary)

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the run information and verdict counts.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report, summary model.Summary) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         TYPEDIFF REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Generated:     %s\n", report.GeneratedAt.Format(timestampLayout))
	fmt.Fprintf(sb, "Cards:         %d\n", summary.Total)
	fmt.Fprintf(sb, "Average score: %.1f%%\n\n", summary.AverageScore*100)

	for _, v := range model.AllVerdicts() {
		fmt.Fprintf(sb, "  %-10s %d\n", v, summary.Counts[v])
	}
	sb.WriteString("\n")
}

// writeCards writes one block per card.
func (w *SimpleWriter) writeCards(sb *strings.Builder, report *model.Report) {
	for _, r := range report.Results {
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		fmt.Fprintf(sb, "[%s] %s (%s, %.0f%%)\n", r.Verdict, r.CardID, r.Language, r.Score*100)

		for _, warning := range r.Warnings {
			fmt.Fprintf(sb, "  warning: %s\n", warning)
		}

		if r.Verdict != model.VerdictCorrect || w.verbose {
			writeIndented(sb, "typed:    ", r.TypedDiff)
			writeIndented(sb, "expected: ", r.ExpectedDiff)
		}
		if w.verbose {
			fmt.Fprintf(sb, "  matched %d, extra %d, missing %d\n",
				r.Alignment.Matched, r.Alignment.Extra, r.Alignment.Missing)
		}
	}
}

// writeIndented writes a multi-line value under a label.
func writeIndented(sb *strings.Builder, label, value string) {
	pad := strings.Repeat(" ", len(label))
	for i, line := range strings.Split(value, "\n") {
		if i == 0 {
			sb.WriteString("  " + label + line + "\n")
			continue
		}
		sb.WriteString("  " + pad + line + "\n")
	}
}

// writeFooter writes the closing line.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, summary model.Summary) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	switch {
	case summary.Total == 0:
		sb.WriteString("No cards graded.\n")
	case summary.Correct():
		sb.WriteString("All cards correct.\n")
	default:
		fmt.Fprintf(sb, "%d of %d cards correct.\n", summary.Counts[model.VerdictCorrect], summary.Total)
	}
}
