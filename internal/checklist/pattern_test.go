package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name         string
		entry        string
		wantPattern  string
		wantRequired int
	}{
		{
			name:         "no suffix defaults to one",
			entry:        "X",
			wantPattern:  "X",
			wantRequired: 1,
		},
		{
			name:         "explicit repetition",
			entry:        "X x3",
			wantPattern:  "X",
			wantRequired: 3,
		},
		{
			name:         "wildcard with repetition",
			entry:        "*Torque* *Protocol* x3",
			wantPattern:  "*Torque* *Protocol*",
			wantRequired: 3,
		},
		{
			name:         "malformed suffix stays literal",
			entry:        "X xab",
			wantPattern:  "X xab",
			wantRequired: 1,
		},
		{
			name:         "suffix without space is literal",
			entry:        "Xx3",
			wantPattern:  "Xx3",
			wantRequired: 1,
		},
		{
			name:         "explicit zero means not required",
			entry:        "*Optional* x0",
			wantPattern:  "*Optional*",
			wantRequired: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, required := ParseEntry(tt.entry)
			assert.Equal(t, tt.wantPattern, pattern)
			assert.Equal(t, tt.wantRequired, required)
		})
	}
}

func TestMatch_ExactWithoutWildcard(t *testing.T) {
	// A pattern without '*' only matches the whole filename, case-insensitively.
	assert.True(t, Match("Punchlist.pdf", "punchlist.PDF"))
	assert.False(t, Match("Final Punchlist.pdf", "Punchlist.pdf"))
	assert.False(t, Match("Punchlist.pdf.bak", "Punchlist.pdf"))
}

func TestMatch_WildcardOrdering(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		pattern  string
		want     bool
	}{
		{"substrings in order", "Tower Base Final Inspection.pdf", "*Base* *Inspection*", true},
		{"case insensitive", "tower base final inspection.pdf", "*Base* *Inspection*", true},
		{"wrong order", "Inspection of Base.pdf", "*Base* *Inspection*", false},
		{"space between tokens is literal", "BaseInspection.pdf", "*Base* *Inspection*", false},
		{"leading and trailing noise allowed", "XX Base YY Inspection ZZ", "*Base* *Inspection*", true},
		{"single wildcard contains", "Final Punchlist.pdf", "*Punchlist*", true},
		{"no match", "Delivery Note.pdf", "*Punchlist*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.filename, tt.pattern))
		})
	}
}

func TestMatch_MetacharactersAreLiteral(t *testing.T) {
	// Everything except '*' must be treated as a literal character.
	assert.True(t, Match("report (final).pdf", "report (final).pdf"))
	assert.True(t, Match("a+b [v2].pdf", "*+b [v2]*"))
	assert.False(t, Match("reportXfinal.pdf", "report.final.pdf"))
	assert.False(t, Match("ab.pdf", "a?b.pdf"))
}

func TestMatch_StripsRepetitionSuffix(t *testing.T) {
	// The " x3" suffix is parsing metadata, not part of the filename.
	assert.True(t, Match("Torque Protocol Mid.pdf", "*Torque* *Protocol* x3"))
}
