package pdfform

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel report palette, matching the review workbook the field office already
// uses: dark blue headers, green/red summary banners, light red mismatch cells.
const (
	colorHeaderBlue = "1F4E78"
	colorWhite      = "FFFFFF"
	colorGreen      = "00B050"
	colorLightGreen = "C6EFCE"
	colorDarkGreen  = "006100"
	colorRed        = "C00000"
	colorLightRed   = "FFC7CE"
)

// WriteExcelReport writes the comparison result as an Excel workbook: a
// MASTER summary sheet plus one summary sheet per review document.
func WriteExcelReport(result *ComparisonResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const master = "MASTER"
	if err := f.SetSheetName("Sheet1", master); err != nil {
		return fmt.Errorf("failed to rename master sheet: %w", err)
	}

	if err := writeMasterSheet(f, master, result); err != nil {
		return err
	}

	for _, review := range result.Reviews {
		if err := writeReviewSheet(f, review); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeMasterSheet(f *excelize.File, sheet string, result *ComparisonResult) error {
	titleStyle, err := bannerStyle(f, colorHeaderBlue, 13)
	if err != nil {
		return err
	}
	headerStyle, err := bannerStyle(f, colorHeaderBlue, 11)
	if err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 10}})
	if err != nil {
		return err
	}
	percentFmt := "0.0%"
	percentStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &percentFmt,
		Alignment:    &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	centerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "MASTER SUMMARY - PDF Form Field Review")
	f.MergeCell(sheet, "A1", "E1")
	f.SetCellStyle(sheet, "A1", "E1", titleStyle)
	f.SetRowHeight(sheet, 1, 22)

	f.SetCellValue(sheet, "A3", fmt.Sprintf("Control PDF: %s", result.ControlName))
	f.SetCellStyle(sheet, "A3", "A3", boldStyle)

	headers := []string{"Review PDF", "Total Fields", "Matching Fields", "Mismatched Fields", "Match %"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 6
	for _, review := range result.Reviews {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), review.ReviewName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), review.TotalFields)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), len(review.Matches))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), len(review.Mismatches))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), review.MatchPercent()/100)

		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), centerStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), percentStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 14)
	f.SetColWidth(sheet, "C", "D", 16)
	f.SetColWidth(sheet, "E", "E", 12)

	return nil
}

func writeReviewSheet(f *excelize.File, review ReviewResult) error {
	sheet := reviewSheetName(f, review.ReviewName)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if len(review.Mismatches) == 0 {
		return writeCleanReviewSheet(f, sheet, review)
	}
	return writeMismatchReviewSheet(f, sheet, review)
}

func writeCleanReviewSheet(f *excelize.File, sheet string, review ReviewResult) error {
	titleStyle, err := bannerStyle(f, colorGreen, 13)
	if err != nil {
		return err
	}
	matchStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: colorDarkGreen, Size: 16},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorLightGreen}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Summary - %s", review.ReviewName))
	f.MergeCell(sheet, "A1", "G1")
	f.SetCellStyle(sheet, "A1", "G1", titleStyle)
	f.SetRowHeight(sheet, 1, 22)

	f.SetCellValue(sheet, "A3", "100% MATCH")
	f.SetCellStyle(sheet, "A3", "A3", matchStyle)
	f.SetRowHeight(sheet, 3, 30)

	setReviewColumnWidths(f, sheet)
	return nil
}

func writeMismatchReviewSheet(f *excelize.File, sheet string, review ReviewResult) error {
	titleStyle, err := bannerStyle(f, colorRed, 13)
	if err != nil {
		return err
	}
	headerStyle, err := bannerStyle(f, colorRed, 11)
	if err != nil {
		return err
	}
	mismatchStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorLightRed}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Summary - %s", review.ReviewName))
	f.MergeCell(sheet, "A1", "G1")
	f.SetCellStyle(sheet, "A1", "G1", titleStyle)
	f.SetRowHeight(sheet, 1, 22)

	headers := []string{
		"Ctrl Pg", "Rev Pg", "Field Name",
		"Control (Status)", "Review (Status)",
		"Control Value", "Review Value",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 4
	for _, m := range review.Mismatches {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.ControlPage)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.ReviewPage)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(m.ControlStatus))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(m.ReviewStatus))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), m.ControlValue)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), m.ReviewValue)

		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), mismatchStyle)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "SUMMARY")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Mismatches")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), len(review.Mismatches))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)

	setReviewColumnWidths(f, sheet)
	return nil
}

// reviewSheetName derives a workbook-legal, unique sheet name for a review
// document. The format caps sheet names at 31 characters and forbids
// []:*?/\ in them, and two documents may share their leading characters, so
// the name is sanitized, truncated, and suffixed on collision.
func reviewSheetName(f *excelize.File, reviewName string) string {
	name := reviewName
	for _, forbidden := range []string{"[", "]", ":", "*", "?", "/", `\`} {
		name = strings.ReplaceAll(name, forbidden, "_")
	}
	if len(name) > 20 {
		name = name[:20]
	}

	const prefix = "Summary - "
	sheet := prefix + name
	for n := 2; sheetExists(f, sheet); n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trimmed := name
		if max := 31 - len(prefix) - len(suffix); len(trimmed) > max {
			trimmed = trimmed[:max]
		}
		sheet = prefix + trimmed + suffix
	}
	return sheet
}

func sheetExists(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

func setReviewColumnWidths(f *excelize.File, sheet string) {
	f.SetColWidth(sheet, "A", "B", 10)
	f.SetColWidth(sheet, "C", "C", 30)
	f.SetColWidth(sheet, "D", "E", 18)
	f.SetColWidth(sheet, "F", "G", 25)
}

func bannerStyle(f *excelize.File, bg string, size float64) (int, error) {
	id, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: colorWhite, Size: size},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{bg}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	return id, nil
}
