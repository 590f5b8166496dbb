package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultLanguage disables comment stripping.
	DefaultLanguage = "none"

	// DefaultCombining makes accents count as differences.
	DefaultCombining = true

	// DefaultBatchSize is the number of cards graded concurrently.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "typediff"
)

// Config holds all configuration options for typediff.
// It is populated from the configuration file and CLI flags and passed
// through the application rather than kept in global state.
type Config struct {
	// Language is the programming language of answers whose card does not
	// name one. Unknown names are reported as warnings, not errors.
	Language string

	// Combining makes combining marks count as differences.
	Combining bool

	// Raw skips the preparation pipeline.
	Raw bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of cards graded concurrently.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport, MarkdownReport and HTMLReport select the report format.
	// They are mutually exclusive; none selected means plain text.
	JSONReport     bool
	MarkdownReport bool
	HTMLReport     bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// FontFamily and FontSize style answer blocks in HTML reports.
	FontFamily string
	FontSize   int

	// Decks are the deck files, directories or globs to grade.
	Decks []string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Language:  DefaultLanguage,
		Combining: DefaultCombining,
		BatchSize: DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for typediff.
// On Linux: ~/.config/typediff
// On macOS: ~/Library/Application Support/typediff
// On Windows: %APPDATA%\typediff
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the path of the configuration file in the XDG config
// directory.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), XDGConfigFileName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	formats := 0
	for _, selected := range []bool{c.JSONReport, c.MarkdownReport, c.HTMLReport} {
		if selected {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	if c.FontSize < 0 {
		return ErrInvalidFontSize
	}

	return nil
}
