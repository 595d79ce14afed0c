package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turbinedocs/doccheck/internal/pdfform"
	"github.com/turbinedocs/doccheck/internal/report"
)

// NewFieldsCommand creates the form field listing command.
func NewFieldsCommand() *cobra.Command {
	var jsonOut bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "fields <file.pdf>",
		Short: "List the AcroForm fields of a PDF document",
		Long: `Fields lists every AcroForm field of the document with its type and
current value. Use it to discover the field names a SIF template expects
before adjusting the CMS field mapping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := pdfform.NewExtractor(debug).ExtractFile(args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(fields); err != nil {
					return fmt.Errorf("failed to encode fields: %w", err)
				}
				return nil
			}

			report.NewRenderer(cmd.OutOrStdout()).Fields(args[0], fields)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the field list as JSON")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable extraction debug output")

	return cmd
}
