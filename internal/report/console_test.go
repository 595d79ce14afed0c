package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turbinedocs/doccheck/internal/checklist"
	"github.com/turbinedocs/doccheck/internal/cms"
	"github.com/turbinedocs/doccheck/internal/pdfform"
)

func TestRenderer_Summary(t *testing.T) {
	spec := checklist.Spec{
		Name: "test",
		Categories: []checklist.Category{
			{Name: "Mechanical", Entries: []string{"*Punchlist*", "*Torque* x2"}},
		},
	}
	files := []checklist.File{
		checklist.NewFile("Tower1/Mechanical/Final Punchlist.pdf"),
	}
	summary := checklist.CheckAll(spec, files)

	var buf bytes.Buffer
	NewRenderer(&buf).Summary(summary)
	out := buf.String()

	assert.Contains(t, out, "Tower1")
	assert.Contains(t, out, "1/3 documents")
	assert.Contains(t, out, "[Mechanical] *Torque* x2")
	assert.Contains(t, out, "0 of 1 towers complete")
	// Non-TTY writer gets no escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderer_Comparison(t *testing.T) {
	result := &pdfform.ComparisonResult{
		ControlName: "control.pdf",
		Reviews: []pdfform.ReviewResult{
			{
				ReviewName:  "review.pdf",
				TotalFields: 2,
				Matches:     []pdfform.FieldMatch{{Name: "Date", Status: pdfform.StatusBlank}},
				Mismatches: []pdfform.FieldMismatch{
					{
						Name:          "Name",
						ControlStatus: pdfform.StatusBlank,
						ReviewStatus:  pdfform.StatusNA,
						ReviewValue:   "N/A",
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	NewRenderer(&buf).Comparison(result)
	out := buf.String()

	assert.Contains(t, out, "Control: control.pdf")
	assert.Contains(t, out, "50.0% match")
	assert.Contains(t, out, "1 mismatches")
	assert.Contains(t, out, `control BLANK ("") vs review N/A ("N/A")`)
}

func TestRenderer_Fields(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Fields("form.pdf", []pdfform.Field{
		{Name: "Gateway", Type: pdfform.FieldTypeText, Value: "10.0.0.1"},
		{Name: "Notes", Type: pdfform.FieldTypeText},
	})
	out := buf.String()

	assert.Contains(t, out, "Gateway")
	assert.Contains(t, out, `"10.0.0.1"`)
	assert.Contains(t, out, "<blank>")
	assert.Contains(t, out, "2 field(s)")
}

func TestRenderer_Fields_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Fields("form.pdf", nil)
	assert.Contains(t, buf.String(), "no AcroForm fields found")
}

func TestRenderer_Fill(t *testing.T) {
	data := cms.ReportData{WindFarm: "WF-1", Gateway: "10.0.0.1"}
	fill := &cms.FillReport{
		TemplateFields: 4,
		Filled:         []string{"Gateway", "Wind farm number"},
		Skipped:        []string{"Orphan"},
		Unfilled:       []string{"Date", "Serial number"},
	}

	var buf bytes.Buffer
	NewRenderer(&buf).Fill(data, fill)
	out := buf.String()

	assert.Contains(t, out, "Extracted 2 field(s)")
	assert.Contains(t, out, "Filled 2 of 4")
	assert.Contains(t, out, "50.0% coverage")
	assert.Contains(t, out, "Orphan")
	assert.Contains(t, out, "2 template field(s) left unfilled")
}
