package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for typediff.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typediff",
		Short: "Compare typed answers against expected code",
		Long: `typediff compares what a learner typed against the expected answer of a
code flashcard.

Comments of the answer's programming language, HTML markup and blank lines
are removed before the comparison. The result is HTML markup in which
correct characters, wrong characters and missing characters are marked
with the typeGood, typeBad and typeMissed classes.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewGradeCmd())
	cmd.AddCommand(NewLanguagesCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
