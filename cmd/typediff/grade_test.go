package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nao1215/typediff/internal/config"
	"github.com/nao1215/typediff/internal/deck"
	"github.com/nao1215/typediff/internal/model"
)

const pythonDeck = `language: python
cards:
  - id: hello
    expected: 'print("hello")  # greet'
    typed: print("hello")
  - id: loop
    expected: for i in range(3)
    typed: for j in range(3)
`

const cppDeck = `language: c++
cards:
  - expected: "int x; // decl"
    typed: int x;
`

// writeDecks creates a deck directory with a python and a cpp deck.
func writeDecks(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, dir, "python.yaml", pythonDeck)
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	writeFile(t, filepath.Join(dir, "nested"), "cpp.yml", cppDeck)
	writeFile(t, dir, "notes.txt", "not a deck")
	return dir
}

// runGradeArgs executes grade with args and returns stdout, stderr and the
// error.
func runGradeArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewGradeCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// TestNewGradeCmd tests the grade command creation.
func TestNewGradeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewGradeCmd()

	if cmd.Use != "grade [deck or glob...]" {
		t.Errorf("expected use 'grade [deck or glob...]', got %q", cmd.Use)
	}

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "batch", shorthand: "b", defValue: "4"},
		{name: "config", shorthand: "c", defValue: ""},
		{name: "language", shorthand: "l", defValue: "none"},
		{name: "no-combining", defValue: "false"},
		{name: "raw", defValue: "false"},
		{name: "json", defValue: "false"},
		{name: "markdown", defValue: "false"},
		{name: "html", defValue: "false"},
		{name: "output", shorthand: "o", defValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("got shorthand %q, expected %q", flag.Shorthand, tt.shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("got default %q, expected %q", flag.DefValue, tt.defValue)
			}
		})
	}
}

// TestRunGradeCmd tests the default text report.
func TestRunGradeCmd(t *testing.T) {
	t.Parallel()

	dir := writeDecks(t)
	out, _, err := runGradeArgs(t, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"TYPEDIFF REPORT",
		"Cards:         3",
		"[CORRECT] cpp.yml#1 (cpp, 100%)",
		"[CORRECT] hello (python, 100%)",
		"[PARTIAL] loop (python, 94%)",
		"2 of 3 cards correct.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}

	// Decks are graded in path order.
	if strings.Index(out, "cpp.yml#1") > strings.Index(out, "hello") {
		t.Error("expected nested/cpp.yml to come before python.yaml")
	}
}

// TestRunGradeCmdJSON tests the JSON report.
func TestRunGradeCmdJSON(t *testing.T) {
	t.Parallel()

	dir := writeDecks(t)
	out, _, err := runGradeArgs(t, "--json", filepath.Join(dir, "*.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Summary struct {
			Total  int            `json:"total"`
			Counts map[string]int `json:"counts"`
		} `json:"summary"`
		Report struct {
			Results []struct {
				CardID  string `json:"card_id"`
				Verdict string `json:"verdict"`
			} `json:"results"`
		} `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if got.Summary.Total != 2 {
		t.Errorf("got total %d, expected 2", got.Summary.Total)
	}
	if got.Summary.Counts["CORRECT"] != 1 || got.Summary.Counts["PARTIAL"] != 1 {
		t.Errorf("unexpected counts %v", got.Summary.Counts)
	}
	if len(got.Report.Results) != 2 || got.Report.Results[0].CardID != "hello" {
		t.Errorf("unexpected results %+v", got.Report.Results)
	}
}

// TestRunGradeCmdOutputFile tests writing the report to a file with the
// summary on stdout.
func TestRunGradeCmdOutputFile(t *testing.T) {
	t.Parallel()

	dir := writeDecks(t)
	cfgPath := writeFile(t, t.TempDir(), "config.yaml", "report:\n  font:\n    family: Fira Code\n    size: 14\n")
	outputPath := filepath.Join(t.TempDir(), "reports", "grade.html")

	out, _, err := runGradeArgs(t, "-c", cfgPath, "--html", "-o", outputPath, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "2 of 3 cards correct.") {
		t.Errorf("expected summary on stdout, got %q", out)
	}
	if strings.Contains(out, "[CORRECT]") {
		t.Errorf("expected no card details on stdout, got %q", out)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	for _, want := range []string{
		"<pre class=textbox-output>",
		"font-family: 'Fira Code';font-size: 14px",
		"<span class=typeBad>",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected report to contain %q", want)
		}
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatalf("failed to stat report: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected permissions 0600, got %o", perm)
		}
	}
}

// TestRunGradeCmdMarkdown tests the Markdown report.
func TestRunGradeCmdMarkdown(t *testing.T) {
	t.Parallel()

	dir := writeDecks(t)
	out, _, err := runGradeArgs(t, "--markdown", "-b", "1", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"# Typediff Report", "## Verdict Summary", "## Cards", "loop"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

// TestRunGradeCmdErrors tests the errors of grade.
func TestRunGradeCmdErrors(t *testing.T) {
	t.Parallel()

	dir := writeDecks(t)
	empty := t.TempDir()
	writeFile(t, empty, "empty.yaml", "cards: []\n")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no decks given", args: nil, wantErr: config.ErrNoInput},
		{name: "nothing matches", args: []string{filepath.Join(dir, "*.json")}, wantErr: deck.ErrNoDecks},
		{name: "deck without cards", args: []string{empty}, wantErr: deck.ErrNoCards},
		{name: "zero batch", args: []string{"-b", "0", dir}, wantErr: config.ErrInvalidBatchSize},
		{name: "two formats", args: []string{"--json", "--html", dir}, wantErr: config.ErrConflictingReportFormats},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := runGradeArgs(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

// TestBuildConfig tests how the configuration file and flags combine.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, t.TempDir(), ".typediff", "language: java\ncombining: false\nbatch: 2\n")

	tests := []struct {
		name          string
		args          []string
		wantLanguage  string
		wantCombining bool
		wantBatch     int
	}{
		{
			name:          "defaults without file",
			args:          nil,
			wantLanguage:  config.DefaultLanguage,
			wantCombining: config.DefaultCombining,
			wantBatch:     config.DefaultBatchSize,
		},
		{
			name:          "file values",
			args:          []string{"-c", cfgPath},
			wantLanguage:  "java",
			wantCombining: false,
			wantBatch:     2,
		},
		{
			name:          "flags win over the file",
			args:          []string{"-c", cfgPath, "-l", "py", "-b", "8"},
			wantLanguage:  "py",
			wantCombining: false,
			wantBatch:     8,
		},
		{
			name:          "no-combining flag",
			args:          []string{"--no-combining"},
			wantLanguage:  config.DefaultLanguage,
			wantCombining: false,
			wantBatch:     config.DefaultBatchSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := NewGradeCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("failed to parse flags: %v", err)
			}
			cfg, err := buildConfig(cmd, []string{"deck.yaml"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Language != tt.wantLanguage {
				t.Errorf("got language %q, expected %q", cfg.Language, tt.wantLanguage)
			}
			if cfg.Combining != tt.wantCombining {
				t.Errorf("got combining %v, expected %v", cfg.Combining, tt.wantCombining)
			}
			if cfg.BatchSize != tt.wantBatch {
				t.Errorf("got batch %d, expected %d", cfg.BatchSize, tt.wantBatch)
			}
			if len(cfg.Decks) != 1 || cfg.Decks[0] != "deck.yaml" {
				t.Errorf("unexpected decks %v", cfg.Decks)
			}
		})
	}
}

// TestRunGradeCancelled tests that grading stops on a cancelled context.
func TestRunGradeCancelled(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Decks = []string{writeDecks(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runGrade(ctx, cfg, setupLogger(&bytes.Buffer{}, false))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, expected %v", err, context.Canceled)
	}
}

// TestOutputReportStdout tests the default report destination.
func TestOutputReportStdout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := outputReport(&buf, config.NewConfig(), model.NewReport(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No cards graded.") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

// TestCancelOnSignal tests that a shutdown signal cancels grading and is
// logged at the default level.
func TestCancelOnSignal(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	cancelOnSignal(ctx, sigCh, cancel, setupLogger(&logs, false))

	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Errorf("got %v, expected %v", ctx.Err(), context.Canceled)
	}
	if !strings.Contains(logs.String(), "received shutdown signal") {
		t.Errorf("expected shutdown message at the default level, got %q", logs.String())
	}
}

// TestCancelOnSignalReturnsWhenDone tests that the watcher exits without a
// signal once the context ends.
func TestCancelOnSignalReturnsWhenDone(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cancelOnSignal(ctx, make(chan os.Signal), cancel, setupLogger(&logs, false))

	if logs.Len() != 0 {
		t.Errorf("expected no log output, got %q", logs.String())
	}
}
