package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nao1215/typediff/internal/language"
)

// NewLanguagesCmd creates the languages command.
func NewLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages whose comments can be removed",
		Long: `List the supported language tags and the names accepted for each.
Names are matched case-insensitively. Any other name disables comment
removal and produces a warning.`,
		Args: cobra.NoArgs,
		RunE: runLanguagesCmd,
	}
}

// runLanguagesCmd executes the languages command.
func runLanguagesCmd(cmd *cobra.Command, _ []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tACCEPTED NAMES")
	for _, tag := range language.Supported() {
		fmt.Fprintf(tw, "%s\t%s\n", tag, strings.Join(language.Aliases(tag), ", "))
	}
	return tw.Flush()
}
