package pdfform

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
)

// FieldMatch records a field whose status agrees between control and review.
type FieldMatch struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// FieldMismatch records a field whose status differs between control and review.
type FieldMismatch struct {
	Name          string `json:"name"`
	ControlStatus Status `json:"control_status"`
	ReviewStatus  Status `json:"review_status"`
	ControlValue  string `json:"control_value"`
	ReviewValue   string `json:"review_value"`
	ControlPage   int    `json:"control_page,omitempty"`
	ReviewPage    int    `json:"review_page,omitempty"`
}

// ReviewResult is the comparison outcome for one review document.
type ReviewResult struct {
	ReviewName  string          `json:"review_name"`
	TotalFields int             `json:"total_fields"`
	Matches     []FieldMatch    `json:"matches"`
	Mismatches  []FieldMismatch `json:"mismatches"`
}

// MatchPercent returns the share of fields whose status agrees, in percent.
func (r ReviewResult) MatchPercent() float64 {
	if r.TotalFields == 0 {
		return 0
	}
	return float64(len(r.Matches)) / float64(r.TotalFields) * 100
}

// ComparisonResult is the outcome of comparing a control document against a
// set of review documents.
type ComparisonResult struct {
	ControlName string         `json:"control_name"`
	Reviews     []ReviewResult `json:"reviews"`
}

// Comparator compares the form fields of a control PDF against review PDFs.
// Every run re-extracts from the source documents; nothing persists between
// comparisons.
type Comparator struct {
	extractor *Extractor
}

// NewComparator creates a comparator using the given extractor.
func NewComparator(extractor *Extractor) *Comparator {
	return &Comparator{extractor: extractor}
}

// CompareFiles extracts fields from the control and each review document and
// compares them. Review documents are processed strictly sequentially; the
// first extraction failure aborts the whole run with no partial result.
func (c *Comparator) CompareFiles(ctx context.Context, controlPath string, reviewPaths []string) (*ComparisonResult, error) {
	controlFields, err := c.extractor.ExtractFile(controlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract control document %s: %w", controlPath, err)
	}
	if len(controlFields) == 0 {
		return nil, fmt.Errorf("control document %s contains no form fields", controlPath)
	}

	result := &ComparisonResult{ControlName: filepath.Base(controlPath)}

	for _, reviewPath := range reviewPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		reviewFields, err := c.extractor.ExtractFile(reviewPath)
		if err != nil {
			return nil, fmt.Errorf("failed to extract review document %s: %w", reviewPath, err)
		}

		review := Compare(controlFields, reviewFields)
		review.ReviewName = filepath.Base(reviewPath)
		result.Reviews = append(result.Reviews, review)
	}

	return result, nil
}

// Compare classifies every field of control and review and flags a mismatch
// wherever the status class differs. The field universe is the union of both
// documents' field names; a field absent from one side counts as BLANK.
// Output is sorted by field name so results are reproducible.
func Compare(control, review []Field) ReviewResult {
	controlByName := fieldsByName(control)
	reviewByName := fieldsByName(review)

	names := make(map[string]struct{}, len(controlByName)+len(reviewByName))
	for name := range controlByName {
		names[name] = struct{}{}
	}
	for name := range reviewByName {
		names[name] = struct{}{}
	}

	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	var result ReviewResult
	result.TotalFields = len(ordered)

	for _, name := range ordered {
		ctrl := controlByName[name]
		rev := reviewByName[name]

		ctrlStatus := ClassifyValue(ctrl.Value)
		revStatus := ClassifyValue(rev.Value)

		if ctrlStatus == revStatus {
			result.Matches = append(result.Matches, FieldMatch{Name: name, Status: ctrlStatus})
			continue
		}
		result.Mismatches = append(result.Mismatches, FieldMismatch{
			Name:          name,
			ControlStatus: ctrlStatus,
			ReviewStatus:  revStatus,
			ControlValue:  ctrl.Value,
			ReviewValue:   rev.Value,
			ControlPage:   ctrl.Page,
			ReviewPage:    rev.Page,
		})
	}

	return result
}

func fieldsByName(fields []Field) map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.Name] = f
	}
	return m
}
