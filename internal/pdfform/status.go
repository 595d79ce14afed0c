package pdfform

import "strings"

// Status classifies a field value for comparison purposes. Two values in the
// same class are considered equivalent even when they differ textually.
type Status string

const (
	StatusBlank  Status = "BLANK"
	StatusNA     Status = "N/A"
	StatusFilled Status = "FILLED"
)

// ClassifyValue maps a field value to its comparison status: empty or
// whitespace-only is BLANK, a trimmed case-insensitive "N/A" is N/A, and
// anything else is FILLED.
func ClassifyValue(value string) Status {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return StatusBlank
	}
	if strings.EqualFold(trimmed, "N/A") {
		return StatusNA
	}
	return StatusFilled
}
