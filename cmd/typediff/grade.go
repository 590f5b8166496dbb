package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/typediff/internal/config"
	"github.com/nao1215/typediff/internal/deck"
	"github.com/nao1215/typediff/internal/grader"
	"github.com/nao1215/typediff/internal/model"
	"github.com/nao1215/typediff/internal/report"
)

// NewGradeCmd creates the grade command.
func NewGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade [deck or glob...]",
		Short: "Grade every card of one or more decks",
		Long: `Grade loads YAML decks of typed answers, compares every card and prints a
report with a verdict per card.

Arguments may be deck files, directories (searched recursively for .yaml
and .yml files) or glob patterns such as 'decks/**/*.yaml'.

Examples:
  # Grade a deck
  typediff grade python.yaml

  # Grade all decks below a directory, 8 cards at a time
  typediff grade -b 8 decks/

  # Write an HTML report and print the summary
  typediff grade --html -o report.html 'decks/**/*.yaml'

Deck file example:
  language: python
  cards:
    - id: hello
      expected: 'print("hello")  # greet'
      typed: print("helo")`,
		Args: cobra.ArbitraryArgs,
		RunE: runGradeCmd,
	}

	cmd.Flags().IntP(config.SettingBatch, "b", config.DefaultBatchSize,
		"Number of cards to grade concurrently")
	cmd.Flags().StringP("config", "c", "",
		"Path to config file (default: .typediff or ~/.config/typediff/config.yaml)")
	cmd.Flags().StringP(config.SettingLanguage, "l", config.DefaultLanguage,
		"Programming language for cards and decks that name none")
	cmd.Flags().Bool(config.SettingCombining, false,
		"Compare accented characters by their base character only")
	cmd.Flags().Bool("raw", false, "Skip comment, markup and blank line removal")
	cmd.Flags().Bool("json", false, "Output report in JSON format")
	cmd.Flags().Bool("markdown", false, "Output report in Markdown format")
	cmd.Flags().Bool("html", false, "Output report as an HTML page")
	cmd.Flags().StringP("output", "o", "", "Output file path for report")

	return cmd
}

// runGradeCmd executes the grade command.
func runGradeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(cfg.Decks) == 0 {
		return fmt.Errorf("%w: specify one or more decks as arguments", config.ErrNoInput)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go cancelOnSignal(ctx, sigCh, cancel, logger)

	gradeReport, err := runGrade(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return outputReport(cmd.OutOrStdout(), cfg, gradeReport)
}

// cancelOnSignal calls cancel when a signal arrives on sigCh. It returns
// when ctx is done.
func cancelOnSignal(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc, logger *slog.Logger) {
	select {
	case sig := <-sigCh:
		logger.Warn("received shutdown signal, cancelling grading", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}
}

// runGrade loads the decks and grades their cards.
func runGrade(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.Report, error) {
	decks, err := deck.LoadAll(cfg.Decks)
	if err != nil {
		return nil, err
	}
	cards := deck.Cards(decks)

	logger.Debug("grading decks",
		"decks", len(decks),
		"cards", len(cards),
		"batch", cfg.BatchSize,
	)

	batch := grader.NewBatchGrader(newGrader(cfg, logger),
		grader.WithConcurrency(cfg.BatchSize),
		grader.WithBatchLogger(logger),
	)
	results, err := batch.GradeAll(ctx, cards)
	if err != nil {
		return nil, fmt.Errorf("grading failed: %w", err)
	}
	return model.NewReport(results), nil
}

// outputReport outputs the grading report in the requested format. When a
// report file is set, the summary is also printed to stdout.
func outputReport(stdout io.Writer, cfg *config.Config, gradeReport *model.Report) error {
	if cfg.ReportFile == "" {
		_, err := newReportWriter(stdout, cfg).Write(gradeReport)
		return err
	}

	f, err := createOutputFile(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := report.NewMultiWriter(
		newReportWriter(f, cfg),
		report.NewSimpleWriter(stdout, report.WithSummaryOnly(true)),
	)
	if _, err := writer.Write(gradeReport); err != nil {
		return err
	}
	return f.Close()
}

// newReportWriter returns the report writer selected by cfg.
func newReportWriter(w io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(w, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	case cfg.HTMLReport:
		return report.NewHTMLWriter(w, report.WithFont(cfg.FontFamily, cfg.FontSize))
	default:
		return report.NewSimpleWriter(w, report.WithVerbose(cfg.Verbose))
	}
}
