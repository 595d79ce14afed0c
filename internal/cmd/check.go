package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turbinedocs/doccheck/internal/checklist"
	"github.com/turbinedocs/doccheck/internal/config"
	"github.com/turbinedocs/doccheck/internal/report"
)

// NewCheckCommand creates the structure check command.
func NewCheckCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Check a documentation folder against a checklist specification",
		Long: `Check collects every file under the given directory, infers the tower
each file belongs to, and validates each tower against the checklist
specification. The command fails when any tower is incomplete.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			dir := cfg.Directory
			if len(args) == 1 {
				dir = args[0]
			}

			spec, err := checklist.LoadSpec(cfg.SpecRef)
			if err != nil {
				return err
			}

			files, err := checklist.Collect(cmd.Context(), dir)
			if err != nil {
				return err
			}

			summary := checklist.CheckAll(spec, files)

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return fmt.Errorf("failed to encode summary: %w", err)
				}
			} else {
				report.NewRenderer(cmd.OutOrStdout()).Summary(summary)
			}

			if summary.CompleteGroups < summary.TotalGroups {
				return fmt.Errorf("%d of %d towers incomplete",
					summary.TotalGroups-summary.CompleteGroups, summary.TotalGroups)
			}
			return nil
		},
	}

	cmd.Flags().String("spec", "turbine", "checklist specification: turbine, jobbook, or a YAML file path")
	cmd.Flags().String("dir", ".", "default directory when no argument is given")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the summary as JSON")

	return cmd
}
