package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbinedocs/doccheck/internal/checklist"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheckCommand_IncompleteTower(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Tower 1", "Mechanical", "Final Punchlist.pdf"))

	out, err := runCommand(t, "check", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
	assert.Contains(t, out, "Tower 1")
}

func TestCheckCommand_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Tower 1", "Mechanical", "Final Punchlist.pdf"))

	out, err := runCommand(t, "check", "--json", dir)

	require.Error(t, err)

	// The error goes to the caller, not into the output stream, so the
	// emitted JSON stays machine-readable.
	assert.NotContains(t, out, "Error:")

	var summary checklist.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, checklist.SpecTurbine, summary.SpecName)
	assert.Equal(t, 1, summary.TotalGroups)
	assert.Equal(t, 0, summary.CompleteGroups)
}

func TestCheckCommand_EmptyDirectory(t *testing.T) {
	// An empty tree still checks one implicit group, which cannot be complete.
	_, err := runCommand(t, "check", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 towers incomplete")
}

func TestCheckCommand_UnknownSpec(t *testing.T) {
	_, err := runCommand(t, "check", "--spec", "nope", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := NewRootCommand("test")

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"check", "compare", "fill", "fields", "serve"} {
		assert.Contains(t, names, want)
	}
}
