// Package document provides the documents rewritten by the engine and the
// reader used to fetch included files.
package document

import (
	"os"
	"path/filepath"

	"github.com/fjglira/docgen/internal/domain"
)

// MemoryDocument keeps its text in memory only.
type MemoryDocument struct {
	path string
	text string
}

// NewMemoryDocument creates a MemoryDocument.
func NewMemoryDocument(path, text string) *MemoryDocument {
	return &MemoryDocument{path: path, text: text}
}

func (d *MemoryDocument) Text() string        { return d.text }
func (d *MemoryDocument) ProjectPath() string { return d.path }

// SetText replaces the text and reports whether it changed.
func (d *MemoryDocument) SetText(text string) bool {
	if text == d.text {
		return false
	}
	d.text = text
	return true
}

// FileDocument is a document loaded from disk. Changes stay in memory until Flush.
type FileDocument struct {
	MemoryDocument
	filePath string
	mode     os.FileMode
	dirty    bool
}

// Load reads the file at filePath. The project path shown in diagnostics is
// filePath relative to root when possible.
func Load(root, filePath string) (*FileDocument, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, domain.NewError("read", filePath, 0, "failed to stat document", err)
	}
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("read", filePath, 0,
			"failed to read document",
			"check that the file exists and has read permissions",
			err)
	}

	display := filePath
	if rel, relErr := filepath.Rel(root, filePath); relErr == nil && filepath.IsLocal(rel) {
		display = filepath.ToSlash(rel)
	}

	return &FileDocument{
		MemoryDocument: MemoryDocument{path: display, text: string(content)},
		filePath:       filePath,
		mode:           info.Mode().Perm(),
	}, nil
}

// SetText replaces the text and marks the document for writing when it changed.
func (d *FileDocument) SetText(text string) bool {
	changed := d.MemoryDocument.SetText(text)
	if changed {
		d.dirty = true
	}
	return changed
}

// FilePath returns the on-disk location of the document.
func (d *FileDocument) FilePath() string { return d.filePath }

// Dirty reports whether the document has unwritten changes.
func (d *FileDocument) Dirty() bool { return d.dirty }

// Flush writes the document back to disk if it changed. It reports whether
// anything was written.
func (d *FileDocument) Flush() (bool, error) {
	if !d.dirty {
		return false, nil
	}
	if err := os.WriteFile(d.filePath, []byte(d.text), d.mode); err != nil {
		return false, domain.NewErrorWithSuggestion("write", d.filePath, 0,
			"failed to write document",
			"check disk space and write permissions",
			err)
	}
	d.dirty = false
	return true, nil
}
