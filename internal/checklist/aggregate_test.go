package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferGroup(t *testing.T) {
	spec := TurbineSpec()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"segment before category", "Tower1/Mechanical/Punchlist.pdf", "Tower1"},
		{"nested tower folder", "Site A/T-07/04 Commissioning/SIF.pdf", "T-07"},
		{"no category segment", "Misc/readme.txt", UnknownGroup},
		{"category at top level", "Mechanical/Punchlist.pdf", UnknownGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferGroup(NewFile(tt.path), spec))
		})
	}
}

func TestCheckAll_MultipleTowers(t *testing.T) {
	spec := specWith("Mechanical", "*Punchlist*")
	files := []File{
		NewFile("Tower1/Mechanical/Final Punchlist.pdf"),
		NewFile("Tower2/Mechanical/notes.txt"),
		NewFile("stray.txt"),
	}

	summary := CheckAll(spec, files)

	// The stray file's unknown bucket is excluded from the totals.
	assert.Equal(t, 2, summary.TotalGroups)
	assert.Equal(t, 1, summary.CompleteGroups)
	require.Len(t, summary.Groups, 2)
	assert.Equal(t, "Tower1", summary.Groups[0].Group)
	assert.True(t, summary.Groups[0].Complete())
	assert.Equal(t, "Tower2", summary.Groups[1].Group)
	assert.False(t, summary.Groups[1].Complete())
}

func TestCheckAll_CompleteNeverExceedsTotal(t *testing.T) {
	spec := TurbineSpec()
	files := []File{
		NewFile("Tower1/Mechanical/Base Inspection.pdf"),
		NewFile("Tower2/Transport/Delivery Checklist.pdf"),
		NewFile("Tower3/Commissioning/SIF.pdf"),
	}

	summary := CheckAll(spec, files)
	assert.LessOrEqual(t, summary.CompleteGroups, summary.TotalGroups)
}

func TestCheckAll_FallbackSingleGroup(t *testing.T) {
	// When nothing classifies, the whole set is checked as one implicit group.
	spec := specWith("Mechanical", "*Punchlist*")
	files := []File{
		NewFile("a.txt"),
		NewFile("b/c.txt"),
	}

	summary := CheckAll(spec, files)

	assert.Equal(t, 1, summary.TotalGroups)
	require.Len(t, summary.Groups, 1)
	assert.Equal(t, UnknownGroup, summary.Groups[0].Group)
	assert.False(t, summary.Groups[0].Complete())
}

func TestCheckAll_EmptyInput(t *testing.T) {
	spec := specWith("Mechanical", "*Punchlist*")
	summary := CheckAll(spec, nil)

	// Empty selection still reports 0/N for a single implicit group.
	assert.Equal(t, 1, summary.TotalGroups)
	assert.Equal(t, 0, summary.CompleteGroups)
	assert.Equal(t, 0, summary.Groups[0].TotalFound)
	assert.Equal(t, 1, summary.Groups[0].TotalRequired)
}

func TestCheckAll_StableOrdering(t *testing.T) {
	spec := specWith("Mechanical", "*Punchlist*")
	files := []File{
		NewFile("TowerB/Mechanical/x.pdf"),
		NewFile("TowerA/Mechanical/Final Punchlist.pdf"),
		NewFile("TowerB/Mechanical/y.pdf"),
	}

	first := CheckAll(spec, files)
	second := CheckAll(spec, files)

	assert.Equal(t, first, second)
	// Groups appear in first-seen order of the input list.
	assert.Equal(t, "TowerB", first.Groups[0].Group)
	assert.Equal(t, "TowerA", first.Groups[1].Group)
}
