package pdfform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteExcelReport(t *testing.T) {
	result := &ComparisonResult{
		ControlName: "control.pdf",
		Reviews: []ReviewResult{
			{
				ReviewName:  "clean.pdf",
				TotalFields: 2,
				Matches: []FieldMatch{
					{Name: "Name", Status: StatusFilled},
					{Name: "Date", Status: StatusBlank},
				},
			},
			{
				ReviewName:  "dirty.pdf",
				TotalFields: 2,
				Matches:     []FieldMatch{{Name: "Date", Status: StatusBlank}},
				Mismatches: []FieldMismatch{
					{
						Name:          "Name",
						ControlStatus: StatusFilled,
						ReviewStatus:  StatusBlank,
						ControlValue:  "John",
					},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteExcelReport(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "MASTER")
	assert.Contains(t, sheets, "Summary - clean.pdf")
	assert.Contains(t, sheets, "Summary - dirty.pdf")

	title, err := f.GetCellValue("MASTER", "A1")
	require.NoError(t, err)
	assert.Equal(t, "MASTER SUMMARY - PDF Form Field Review", title)

	controlLine, err := f.GetCellValue("MASTER", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Control PDF: control.pdf", controlLine)

	firstReview, err := f.GetCellValue("MASTER", "A6")
	require.NoError(t, err)
	assert.Equal(t, "clean.pdf", firstReview)

	banner, err := f.GetCellValue("Summary - clean.pdf", "A3")
	require.NoError(t, err)
	assert.Equal(t, "100% MATCH", banner)

	mismatchName, err := f.GetCellValue("Summary - dirty.pdf", "C4")
	require.NoError(t, err)
	assert.Equal(t, "Name", mismatchName)
}

func TestWriteExcelReport_LongReviewNameTruncated(t *testing.T) {
	result := &ComparisonResult{
		ControlName: "control.pdf",
		Reviews: []ReviewResult{
			{ReviewName: "a-very-long-review-document-name.pdf", TotalFields: 0},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteExcelReport(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Summary - a-very-long-review-d")
}

func TestWriteExcelReport_SheetNameCollisionsAndForbiddenChars(t *testing.T) {
	result := &ComparisonResult{
		ControlName: "control.pdf",
		Reviews: []ReviewResult{
			{ReviewName: "a-very-long-review-document-one.pdf"},
			{ReviewName: "a-very-long-review-document-two.pdf"},
			{ReviewName: "bad[chars]*?.pdf"},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteExcelReport(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary - a-very-long-review-d")
	assert.Contains(t, sheets, "Summary - a-very-long-revie (2)")
	assert.Contains(t, sheets, "Summary - bad_chars___.pdf")
}
