// Package source reads markdown issue files from a directory.
package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the literal, case-sensitive suffix of files picked up by the reader.
const Extension = ".md"

// MarkdownFile is one loaded source file
type MarkdownFile struct {
	Name    string
	Content string
}

// Reader lists and reads markdown files from a single directory
type Reader struct {
	dir string
}

// NewReader creates a reader rooted at dir
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// Dir returns the directory the reader is rooted at
func (r *Reader) Dir() string {
	return r.dir
}

// List returns the names of markdown files in the directory, sorted by filename.
// Subdirectories are skipped even when their name ends in .md.
func (r *Reader) List() ([]string, error) {
	slog.Debug("Listing markdown directory", "dir", r.dir)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		slog.Error("Failed to read markdown directory", "error", err, "dir", r.dir)
		return nil, fmt.Errorf("error reading markdown directory %s: %w", r.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, entry.Name())
	}

	slog.Debug("Markdown files listed", "dir", r.dir, "entries", len(entries), "markdown_files", len(names))
	return names, nil
}

// Read loads the full content of the named file as a UTF-8 string
func (r *Reader) Read(name string) (*MarkdownFile, error) {
	path := filepath.Join(r.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read markdown file", "error", err, "path", path)
		return nil, fmt.Errorf("error reading markdown file %s: %w", path, err)
	}

	slog.Debug("Markdown file read", "path", path, "bytes", len(data))
	return &MarkdownFile{Name: name, Content: string(data)}, nil
}
