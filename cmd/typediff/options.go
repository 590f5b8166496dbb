package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/typediff/internal/config"
	"github.com/nao1215/typediff/internal/grader"
	"github.com/nao1215/typediff/internal/log"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getOptionalBool returns the value of a bool flag, or false when the
// command does not define it.
func getOptionalBool(cmd *cobra.Command, name string) (bool, error) {
	if cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	return cmd.Flags().GetBool(name)
}

// getOptionalString returns the value of a string flag, or "" when the
// command does not define it.
func getOptionalString(cmd *cobra.Command, name string) (string, error) {
	if cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	return cmd.Flags().GetString(name)
}

// buildConfig creates a Config from the configuration file and the cobra
// command flags. Flags set on the command line win over the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = getOptionalString(cmd, "config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.ApplyTo(cfg, flags.Changed)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed(config.SettingLanguage) {
		if cfg.Language, err = flags.GetString(config.SettingLanguage); err != nil {
			return nil, err
		}
	}
	if flags.Changed(config.SettingCombining) {
		noCombining, err := flags.GetBool(config.SettingCombining)
		if err != nil {
			return nil, err
		}
		cfg.Combining = !noCombining
	}
	if flags.Changed(config.SettingBatch) {
		if cfg.BatchSize, err = flags.GetInt(config.SettingBatch); err != nil {
			return nil, err
		}
	}

	if cfg.Raw, err = getOptionalBool(cmd, "raw"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = getOptionalBool(cmd, "json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = getOptionalBool(cmd, "markdown"); err != nil {
		return nil, err
	}
	if cfg.HTMLReport, err = getOptionalBool(cmd, "html"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = getOptionalString(cmd, "output"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Decks = args

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return log.NewLogger(w, verbose)
}

// newGrader creates a Grader from the configuration.
func newGrader(cfg *config.Config, logger *slog.Logger) *grader.Grader {
	return grader.New(
		grader.WithLanguage(cfg.Language),
		grader.WithCombining(cfg.Combining),
		grader.WithRaw(cfg.Raw),
		grader.WithLogger(logger),
	)
}

// createOutputFile creates path and its parent directories. The file is
// readable by the owner only.
func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
