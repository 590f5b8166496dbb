package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/typediff/internal/config"
	"github.com/nao1215/typediff/internal/model"
	"github.com/nao1215/typediff/internal/report"
)

// stdinPath makes a file flag read from standard input.
const stdinPath = "-"

// errStdinTwice is returned when both answers are to be read from stdin.
var errStdinTwice = errors.New("only one answer can be read from standard input")

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare one typed answer against the expected answer",
		Long: `Compare prepares both answers, aligns them and prints the comparison
markup. Characters that match are wrapped in typeGood spans, characters typed
in error in typeBad spans and characters that were not typed in typeMissed
spans. An empty typed answer prints the expected answer alone.

Examples:
  # Compare inline answers
  typediff compare -e 'print(1)  # prints one' -t 'print(2)' -l python

  # Read the expected answer from a file and the typed one from stdin
  echo 'int x = 1;' | typediff compare --expected-file answer.cpp --typed-file - -l cpp

  # Ignore accents when comparing
  typediff compare -e 'café' -t 'cafe' --no-combining

  # Show a plain text diff instead of markup
  typediff compare -e abc -t abd --diff`,
		Args: cobra.NoArgs,
		RunE: runCompareCmd,
	}

	cmd.Flags().StringP("expected", "e", "", "Expected answer")
	cmd.Flags().String("expected-file", "", "Read the expected answer from a file (- for stdin)")
	cmd.Flags().StringP("typed", "t", "", "Typed answer")
	cmd.Flags().String("typed-file", "", "Read the typed answer from a file (- for stdin)")
	cmd.Flags().StringP(config.SettingLanguage, "l", config.DefaultLanguage,
		"Programming language whose comments are removed")
	cmd.Flags().Bool(config.SettingCombining, false,
		"Compare accented characters by their base character only")
	cmd.Flags().Bool("raw", false, "Skip comment, markup and blank line removal")
	cmd.Flags().StringP("config", "c", "",
		"Path to config file (default: .typediff or ~/.config/typediff/config.yaml)")
	cmd.Flags().Bool("json", false, "Output the result in JSON format")
	cmd.Flags().Bool("markdown", false, "Output the result in Markdown format")
	cmd.Flags().Bool("diff", false, "Output a plain text diff instead of markup")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	card, err := readCard(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	result, err := newGrader(cfg, logger).Grade(cmd.Context(), card)
	if err != nil {
		return err
	}

	plain, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	return outputResult(cmd.OutOrStdout(), cfg, result, plain)
}

// readCard builds the card to compare from the answer flags.
func readCard(cmd *cobra.Command) (model.Card, error) {
	expectedFile, err := cmd.Flags().GetString("expected-file")
	if err != nil {
		return model.Card{}, err
	}
	typedFile, err := cmd.Flags().GetString("typed-file")
	if err != nil {
		return model.Card{}, err
	}
	if expectedFile == stdinPath && typedFile == stdinPath {
		return model.Card{}, fmt.Errorf("%w: %w", config.ErrConflictingInputs, errStdinTwice)
	}

	expected, ok, err := readAnswer(cmd, "expected", "expected-file")
	if err != nil {
		return model.Card{}, err
	}
	if !ok {
		return model.Card{}, fmt.Errorf("%w: use --expected or --expected-file", config.ErrNoInput)
	}

	// A missing typed answer is a blank answer.
	typed, _, err := readAnswer(cmd, "typed", "typed-file")
	if err != nil {
		return model.Card{}, err
	}

	return model.Card{
		ID:       "compare",
		Expected: expected,
		Typed:    typed,
	}, nil
}

// readAnswer returns the answer given by textFlag or fileFlag and whether
// either was set.
func readAnswer(cmd *cobra.Command, textFlag, fileFlag string) (string, bool, error) {
	flags := cmd.Flags()
	if flags.Changed(textFlag) && flags.Changed(fileFlag) {
		return "", false, fmt.Errorf("%w: --%s and --%s", config.ErrConflictingInputs, textFlag, fileFlag)
	}

	if flags.Changed(fileFlag) {
		path, err := flags.GetString(fileFlag)
		if err != nil {
			return "", false, err
		}
		var data []byte
		if path == stdinPath {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path) //nolint:gosec // User-provided answer path is intentional
		}
		if err != nil {
			return "", false, fmt.Errorf("failed to read %s: %w", fileFlag, err)
		}
		return string(data), true, nil
	}

	text, err := flags.GetString(textFlag)
	if err != nil {
		return "", false, err
	}
	return text, flags.Changed(textFlag), nil
}

// outputResult writes one comparison in the format selected by cfg.
func outputResult(w io.Writer, cfg *config.Config, result *model.Result, plain bool) error {
	switch {
	case cfg.JSONReport:
		_, err := report.NewJSONWriter(w, report.WithPrettyPrint()).WriteValue(result)
		return err
	case cfg.MarkdownReport:
		_, err := report.NewMarkdownWriter(w).Write(model.NewReport([]*model.Result{result}))
		return err
	case plain:
		_, err := fmt.Fprintf(w, "typed:    %s\nexpected: %s\n", result.TypedDiff, result.ExpectedDiff)
		return err
	default:
		_, err := fmt.Fprintln(w, result.HTML)
		return err
	}
}
