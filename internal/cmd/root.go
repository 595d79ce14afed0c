// Package cmd wires the doccheck subcommands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root cobra command for doccheck.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doccheck",
		Short: "Wind-turbine documentation checking tools",
		Long: `doccheck validates wind-turbine documentation folders against a
checklist specification, compares PDF form fields between a control document
and review documents, and fills SIF templates from CMS commissioning reports.`,
		Version: version,
		// Silence cobra's own usage and error output; main reports the error
		// exactly once.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewCompareCommand())
	cmd.AddCommand(NewFillCommand())
	cmd.AddCommand(NewFieldsCommand())
	cmd.AddCommand(NewServeCommand(version))

	return cmd
}
