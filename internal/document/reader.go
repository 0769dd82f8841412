package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fjglira/docgen/internal/domain"
)

// FileReader fetches the contents of project files.
type FileReader interface {
	Read(path string) ([]byte, error)
}

// DirReader reads files relative to a project root and refuses paths that
// escape it.
type DirReader struct {
	Root string
}

// NewDirReader creates a DirReader rooted at root.
func NewDirReader(root string) *DirReader {
	return &DirReader{Root: root}
}

// Read returns the content of the project-relative path. Every failure wraps
// domain.ErrMissingFile.
func (r *DirReader) Read(path string) ([]byte, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimSpace(path)))
	if path == "" || !filepath.IsLocal(rel) {
		return nil, domain.NewErrorWithSuggestion("read", path, 0,
			"path is outside the project root",
			"use a path relative to the project root",
			domain.ErrMissingFile)
	}

	content, err := os.ReadFile(filepath.Join(r.Root, rel))
	if err != nil {
		return nil, domain.NewError("read", path, 0, "failed to read file", errors.Join(domain.ErrMissingFile, err))
	}
	return content, nil
}
