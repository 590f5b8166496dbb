package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/typediff/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)
	summary := report.Summary()

	w.writeHeader(md, report, summary)
	w.writeSummary(md, summary)
	w.writeCards(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the run information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report, summary model.Summary) {
	md.H1("Typediff Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", report.GeneratedAt.Format(timestampLayout)},
			{"Cards", strconv.Itoa(summary.Total)},
			{"Average Score", formatPercent(summary.AverageScore)},
			{"Warnings", strconv.Itoa(summary.Warnings)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the verdict table, chart and alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, summary model.Summary) {
	md.H2("Verdict Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.AllVerdicts())+1)
	for _, v := range model.AllVerdicts() {
		rows = append(rows, []string{verdictLabel(v), strconv.Itoa(summary.Counts[v])})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(summary.Total) + "**"})
	md.Table(markdown.TableSet{
		Header: []string{"Verdict", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.Total > 0 {
		w.writePieChart(md, summary)
	}
	w.writeAlert(md, summary)
}

// writePieChart writes a mermaid pie chart of the verdicts.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Verdict Distribution"),
		piechart.WithShowData(true),
	)

	for _, v := range model.AllVerdicts() {
		if n := summary.Counts[v]; n > 0 {
			chart.LabelAndIntValue(titleCase(v), uint64(n))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert matching the worst verdict present.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary model.Summary) {
	switch {
	case summary.Total == 0:
		md.Note("No cards were graded.")
	case summary.Correct():
		md.Tip("Every card was answered correctly.")
	case summary.Counts[model.VerdictIncorrect] > 0:
		md.Warningf("%d card(s) answered incorrectly.", summary.Counts[model.VerdictIncorrect])
	case summary.Counts[model.VerdictBlank] > 0:
		md.Importantf("%d card(s) left blank.", summary.Counts[model.VerdictBlank])
	default:
		md.Note("All answers were close; see the partial cards below.")
	}
	md.PlainText("")
}

// writeCards writes the per-card table and the diffs of imperfect answers.
func (w *MarkdownWriter) writeCards(md *markdown.Markdown, report *model.Report) {
	md.H2("Cards")
	md.PlainText("")

	if len(report.Results) == 0 {
		md.PlainText("No cards graded.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Results))
	for i, r := range report.Results {
		warnings := "-"
		if r.HasWarnings() {
			warnings = truncateString(strings.Join(r.Warnings, "; "), 60)
		}
		rows[i] = []string{
			"`" + r.CardID + "`",
			r.Language,
			verdictLabel(r.Verdict),
			formatPercent(r.Score),
			warnings,
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Card", "Language", "Verdict", "Score", "Warnings"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, r := range report.Results {
		if r.Verdict == model.VerdictCorrect {
			continue
		}
		md.Details(r.CardID, fmt.Sprintf("typed:\n%s\n\nexpected:\n%s", r.TypedDiff, r.ExpectedDiff))
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [typediff](https://github.com/nao1215/typediff)*")
}

// verdictLabel decorates a verdict for tables.
func verdictLabel(v model.Verdict) string {
	switch v {
	case model.VerdictCorrect:
		return "✅ Correct"
	case model.VerdictPartial:
		return "🟡 Partial"
	case model.VerdictIncorrect:
		return "❌ Incorrect"
	case model.VerdictBlank:
		return "⚪ Blank"
	default:
		return v.String()
	}
}

// titleCase turns "PARTIAL" into "Partial".
func titleCase(v model.Verdict) string {
	s := strings.ToLower(v.String())
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatPercent(score float64) string {
	return strconv.FormatFloat(score*100, 'f', 1, 64) + "%"
}
