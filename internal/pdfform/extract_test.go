package pdfform

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractFile_MissingFile(t *testing.T) {
	e := NewExtractor(false)
	_, err := e.ExtractFile("/no/such/file.pdf")
	assert.Error(t, err)
}

func TestExtractor_Extract_NotAPDF(t *testing.T) {
	e := NewExtractor(false)
	_, err := e.Extract(bytes.NewReader([]byte("this is not a pdf")))
	assert.Error(t, err)
}

func TestExtractor_ExtractFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	e := NewExtractor(false)
	_, err := e.ExtractFile(path)
	assert.Error(t, err)
}

func TestNameValue(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		value     types.Name
		want      string
	}{
		{"ticked checkbox", FieldTypeCheckbox, "Yes", "Yes"},
		{"unticked checkbox", FieldTypeCheckbox, "Off", ""},
		{"radio selection", FieldTypeRadio, "Choice2", "Choice2"},
		{"radio named Off", FieldTypeRadio, "Off", "Off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nameValue(tt.fieldType, tt.value))
		})
	}
}
