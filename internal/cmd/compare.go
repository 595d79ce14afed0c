package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turbinedocs/doccheck/internal/pdfform"
	"github.com/turbinedocs/doccheck/internal/report"
)

// NewCompareCommand creates the PDF form field comparison command.
func NewCompareCommand() *cobra.Command {
	var xlsxPath string
	var jsonOut bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "compare <control.pdf> <review.pdf>...",
		Short: "Compare form field statuses of review PDFs against a control PDF",
		Long: `Compare extracts the AcroForm fields of the control document and of every
review document, classifies each value as BLANK, N/A or FILLED, and reports
fields whose status class differs. Value differences within the same class
are not mismatches.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comparator := pdfform.NewComparator(pdfform.NewExtractor(debug))

			result, err := comparator.CompareFiles(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			} else {
				report.NewRenderer(cmd.OutOrStdout()).Comparison(result)
			}

			if xlsxPath != "" {
				if err := pdfform.WriteExcelReport(result, xlsxPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote Excel report to %s\n", xlsxPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an Excel report to this path")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the comparison as JSON")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable extraction debug output")

	return cmd
}
