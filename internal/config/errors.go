package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and by the commands, and
// can be checked with errors.Is().
var (
	// ErrNoInput is returned when a command has nothing to compare or grade.
	ErrNoInput = errors.New("no input specified: provide answers or deck files")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when more than one of --json,
	// --markdown and --html is specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: choose one of --json, --markdown and --html")

	// ErrInvalidFontSize is returned when the report font size is negative.
	ErrInvalidFontSize = errors.New("invalid font size: must be non-negative")

	// ErrConflictingInputs is returned when an answer is given both inline
	// and as a file.
	ErrConflictingInputs = errors.New("conflicting inputs: use either the text flag or the file flag")
)
