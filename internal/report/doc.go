// Package report writes grading reports.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown with tables and a verdict pie chart
//   - HTMLWriter: A standalone page showing each card's comparison markup
//
// Report data lives in the model package. Writers implement the Writer
// interface and can be combined with MultiWriter.
package report
