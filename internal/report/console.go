// Package report renders check and comparison results for the terminal.
// Output is plain text with optional color when attached to a TTY.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/turbinedocs/doccheck/internal/checklist"
	"github.com/turbinedocs/doccheck/internal/cms"
	"github.com/turbinedocs/doccheck/internal/pdfform"
)

// Renderer writes human-readable reports to a writer.
type Renderer struct {
	w        io.Writer
	useColor bool
}

// NewRenderer creates a renderer for the given writer. Color output is
// enabled only for stdout/stderr on a TTY, honoring NO_COLOR.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, useColor: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

func (r *Renderer) paint(c *color.Color, format string, args ...interface{}) string {
	if r.useColor {
		return c.Sprintf(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

var (
	colorOK      = color.New(color.FgGreen, color.Bold)
	colorBad     = color.New(color.FgRed, color.Bold)
	colorWarn    = color.New(color.FgYellow)
	colorHeading = color.New(color.FgCyan, color.Bold)
)

// Summary renders a multi-group structure check result.
func (r *Renderer) Summary(summary checklist.Summary) {
	fmt.Fprintf(r.w, "%s\n", r.paint(colorHeading, "Structure check (%s spec)", summary.SpecName))

	for _, group := range summary.Groups {
		fmt.Fprintf(r.w, "\n%s  %d/%d documents\n",
			r.paint(colorHeading, "%s", group.Group), group.TotalFound, group.TotalRequired)

		for _, cat := range group.Categories {
			marker := r.paint(colorOK, "✓")
			if cat.Found < cat.Required {
				marker = r.paint(colorBad, "✗")
			}
			fmt.Fprintf(r.w, "  %s %-20s %d/%d\n", marker, cat.Category, cat.Found, cat.Required)
		}

		if group.Complete() {
			fmt.Fprintf(r.w, "  %s\n", r.paint(colorOK, "COMPLETE"))
			continue
		}
		fmt.Fprintf(r.w, "  %s\n", r.paint(colorBad, "%d missing:", len(group.Missing)))
		for _, item := range group.Missing {
			fmt.Fprintf(r.w, "    - [%s] %s\n", item.Category, item.Pattern)
		}
	}

	fmt.Fprintf(r.w, "\n%d of %d towers complete\n", summary.CompleteGroups, summary.TotalGroups)
}

// Comparison renders a control-vs-review form field comparison.
func (r *Renderer) Comparison(result *pdfform.ComparisonResult) {
	fmt.Fprintf(r.w, "%s\n", r.paint(colorHeading, "Form field comparison"))
	fmt.Fprintf(r.w, "Control: %s\n", result.ControlName)

	for _, review := range result.Reviews {
		fmt.Fprintf(r.w, "\n%s  %d fields, %.1f%% match\n",
			r.paint(colorHeading, "%s", review.ReviewName), review.TotalFields, review.MatchPercent())

		if len(review.Mismatches) == 0 {
			fmt.Fprintf(r.w, "  %s\n", r.paint(colorOK, "100%% MATCH"))
			continue
		}

		fmt.Fprintf(r.w, "  %s\n", r.paint(colorBad, "%d mismatches:", len(review.Mismatches)))
		for _, m := range review.Mismatches {
			fmt.Fprintf(r.w, "    - %s: control %s (%q) vs review %s (%q)\n",
				m.Name, m.ControlStatus, m.ControlValue, m.ReviewStatus, m.ReviewValue)
		}
	}
}

// Fields renders the AcroForm field list of a single document.
func (r *Renderer) Fields(path string, fields []pdfform.Field) {
	fmt.Fprintf(r.w, "%s\n", r.paint(colorHeading, "Form fields: %s", path))
	if len(fields) == 0 {
		fmt.Fprintf(r.w, "%s\n", r.paint(colorWarn, "no AcroForm fields found"))
		return
	}
	for i, f := range fields {
		fmt.Fprintf(r.w, "%3d. %-40s %-10s %s\n", i+1, f.Name, f.Type, renderValue(f.Value))
	}
	fmt.Fprintf(r.w, "%d field(s)\n", len(fields))
}

func renderValue(v string) string {
	if v == "" {
		return "<blank>"
	}
	return fmt.Sprintf("%q", v)
}

// Fill renders the outcome of a CMS→SIF conversion.
func (r *Renderer) Fill(data cms.ReportData, fill *cms.FillReport) {
	fmt.Fprintf(r.w, "%s\n", r.paint(colorHeading, "CMS → SIF conversion"))

	values := data.Values()
	fmt.Fprintf(r.w, "Extracted %d field(s) from CMS report\n", len(values))

	fmt.Fprintf(r.w, "Filled %d of %d template field(s) (%.1f%% coverage)\n",
		len(fill.Filled), fill.TemplateFields, fill.Coverage())

	if len(fill.Skipped) > 0 {
		fmt.Fprintf(r.w, "%s\n", r.paint(colorWarn, "%d value(s) had no matching template field:", len(fill.Skipped)))
		for _, name := range fill.Skipped {
			fmt.Fprintf(r.w, "  - %s\n", name)
		}
	}
	if len(fill.Unfilled) > 0 {
		fmt.Fprintf(r.w, "%d template field(s) left unfilled\n", len(fill.Unfilled))
	}
}
