package checklist

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// File is a single collected file: its base name plus the path relative to
// the collection root, normalized to forward-slash separators.
type File struct {
	Name    string `json:"name"`
	RelPath string `json:"rel_path"`
}

// NewFile builds a File from a relative path, accepting either separator.
func NewFile(relPath string) File {
	norm := strings.ReplaceAll(relPath, `\`, "/")
	norm = strings.Trim(norm, "/")
	name := norm
	if i := strings.LastIndex(norm, "/"); i >= 0 {
		name = norm[i+1:]
	}
	return File{Name: name, RelPath: norm}
}

// Segments returns the path segments of the file's relative path.
func (f File) Segments() []string {
	return strings.Split(f.RelPath, "/")
}

// Collect walks the directory tree rooted at root and returns every regular
// file as a File with a root-relative path. Traversal uses an explicit
// worklist instead of recursion and checks ctx between entries so a long walk
// can be cancelled. Directory read order is whatever the OS returns; no sort
// is applied. Unreadable directories and entries are skipped. A missing or
// empty root yields an empty list, not an error.
func Collect(ctx context.Context, root string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	var files []File
	// Worklist of directories still to read, paired with their path prefix.
	type dirEntry struct {
		path   string
		prefix string
	}
	stack := []dirEntry{{path: root, prefix: ""}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir.path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rel := dir.prefix + entry.Name()
			switch {
			case entry.IsDir():
				stack = append(stack, dirEntry{
					path:   filepath.Join(dir.path, entry.Name()),
					prefix: rel + "/",
				})
			case entry.Type().IsRegular():
				files = append(files, File{Name: entry.Name(), RelPath: rel})
			}
		}
	}

	return files, nil
}
