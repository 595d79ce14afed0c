package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turbinedocs/doccheck/internal/cms"
	"github.com/turbinedocs/doccheck/internal/report"
)

// NewFillCommand creates the CMS→SIF conversion command.
func NewFillCommand() *cobra.Command {
	var reportPath, templatePath, outPath string
	var show bool

	cmd := &cobra.Command{
		Use:   "fill --report cms.pdf --template sif.pdf --out filled.pdf",
		Short: "Fill a SIF template from a CMS commissioning report",
		Long: `Fill extracts the text of a CMS commissioning report, parses the wind
farm, turbine, network and personnel details out of it, maps them onto the
SIF template's form field names, and writes a filled copy of the template.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, fillReport, err := cms.ConvertFile(reportPath, templatePath, outPath, nil)
			if err != nil {
				return err
			}

			report.NewRenderer(cmd.OutOrStdout()).Fill(data, fillReport)
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote filled SIF to %s\n", outPath)

			if show {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(data); err != nil {
					return fmt.Errorf("failed to encode extracted data: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "CMS report PDF to extract from")
	cmd.Flags().StringVar(&templatePath, "template", "", "blank SIF template PDF")
	cmd.Flags().StringVar(&outPath, "out", "", "output path for the filled SIF")
	cmd.Flags().BoolVar(&show, "show", false, "print the extracted CMS data as JSON")
	_ = cmd.MarkFlagRequired("report")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
