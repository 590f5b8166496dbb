// Package log provides logging built on top of the standard slog package.
//
// Answers passed through the grader can be long, multi-line source code.
// ClipHandler wraps another slog.Handler and shortens long string attribute
// values before they reach it, so debug output stays one line per record.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("step completed", "typed", answer)
//	slog.SetDefault(logger)
package log
