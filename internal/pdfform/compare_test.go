package pdfform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Status
	}{
		{"empty", "", StatusBlank},
		{"whitespace only", "   \t ", StatusBlank},
		{"exact na", "N/A", StatusNA},
		{"lowercase na", "n/a", StatusNA},
		{"na with padding", "  N/a  ", StatusNA},
		{"regular value", "John", StatusFilled},
		{"na as part of text", "N/A but see notes", StatusFilled},
		{"zero is filled", "0", StatusFilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyValue(tt.value))
		})
	}
}

func TestCompare_StatusDiffersIsMismatch(t *testing.T) {
	control := []Field{{Name: "Name", Type: FieldTypeText, Value: ""}}
	review := []Field{{Name: "Name", Type: FieldTypeText, Value: "N/A"}}

	result := Compare(control, review)

	require.Len(t, result.Mismatches, 1)
	assert.Empty(t, result.Matches)
	m := result.Mismatches[0]
	assert.Equal(t, "Name", m.Name)
	assert.Equal(t, StatusBlank, m.ControlStatus)
	assert.Equal(t, StatusNA, m.ReviewStatus)
}

func TestCompare_SameStatusDifferentValueMatches(t *testing.T) {
	control := []Field{{Name: "Name", Type: FieldTypeText, Value: "John"}}
	review := []Field{{Name: "Name", Type: FieldTypeText, Value: "Jane"}}

	result := Compare(control, review)

	assert.Empty(t, result.Mismatches)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, StatusFilled, result.Matches[0].Status)
}

func TestCompare_UnionOfFieldNames(t *testing.T) {
	control := []Field{
		{Name: "A", Value: "x"},
		{Name: "B", Value: ""},
	}
	review := []Field{
		{Name: "B", Value: ""},
		{Name: "C", Value: "y"},
	}

	result := Compare(control, review)

	assert.Equal(t, 3, result.TotalFields)
	// A is FILLED vs absent (BLANK) and C is absent (BLANK) vs FILLED.
	assert.Len(t, result.Mismatches, 2)
	// B agrees as BLANK on both sides.
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "B", result.Matches[0].Name)
}

func TestCompare_SortedDeterministicOutput(t *testing.T) {
	control := []Field{
		{Name: "Zeta", Value: "1"},
		{Name: "Alpha", Value: "2"},
		{Name: "Mid", Value: ""},
	}
	review := []Field{
		{Name: "Alpha", Value: ""},
		{Name: "Mid", Value: "x"},
		{Name: "Zeta", Value: "y"},
	}

	first := Compare(control, review)
	second := Compare(control, review)
	assert.Equal(t, first, second)

	require.Len(t, first.Mismatches, 2)
	assert.Equal(t, "Alpha", first.Mismatches[0].Name)
	assert.Equal(t, "Mid", first.Mismatches[1].Name)
}

func TestReviewResult_MatchPercent(t *testing.T) {
	r := ReviewResult{
		TotalFields: 4,
		Matches:     []FieldMatch{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Mismatches:  []FieldMismatch{{Name: "d"}},
	}
	assert.InDelta(t, 75.0, r.MatchPercent(), 0.001)

	assert.Zero(t, ReviewResult{}.MatchPercent())
}

func TestComparator_MissingControlFileAborts(t *testing.T) {
	c := NewComparator(NewExtractor(false))

	_, err := c.CompareFiles(context.Background(), "/no/such/control.pdf", []string{"/no/such/review.pdf"})
	assert.Error(t, err)
}

func TestComparator_Cancelled(t *testing.T) {
	// Cancellation is only observed between review documents, so the control
	// extraction has to fail or succeed first; a missing control short-circuits.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewComparator(NewExtractor(false))
	_, err := c.CompareFiles(ctx, "/no/such/control.pdf", nil)
	assert.Error(t, err)
}
