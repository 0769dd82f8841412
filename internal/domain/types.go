package domain

import (
	"errors"
	"fmt"
)

// Document is a unit of text owned by the caller and rewritten by the engine.
type Document interface {
	// Text returns the current full text.
	Text() string
	// SetText replaces the text and reports whether it differed from the old one.
	SetText(text string) bool
	// ProjectPath identifies the document in diagnostics.
	ProjectPath() string
}

// Command is a directive extracted from one document during a scan pass.
// [From, To) delimits the region between the opening and closing markers.
type Command struct {
	Name         string
	Args         []string
	From         int
	To           int
	OriginalText string
	LineNumber   int // 1-based line of the opening marker
	Doc          Document
}

// Severity tags a Diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is the only output signal of an engine run.
type Diagnostic struct {
	Severity   Severity
	File       string
	LineNumber int
	Message    string
}

func (d Diagnostic) String() string {
	loc := d.File
	if d.LineNumber > 0 {
		loc = fmt.Sprintf("%s:%d", d.File, d.LineNumber)
	}
	if loc == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", loc, d.Message)
}

// IsError reports whether the diagnostic should fail the run.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// DiagnosticFromError turns a failure into an error diagnostic for path,
// taking the file and line from a DocGenError when present.
func DiagnosticFromError(path string, err error) Diagnostic {
	d := Diagnostic{
		Severity: SeverityError,
		File:     path,
		Message:  err.Error(),
	}
	var de *DocGenError
	if errors.As(err, &de) {
		d.LineNumber = de.LineNumber
		d.Message = de.Message
		if de.File != "" {
			d.File = de.File
		}
	}
	return d
}

// TOCEntry is a single line of a generated table of contents.
type TOCEntry struct {
	Level int // 0 for the shallowest heading in scope
	Name  string
	ID    string
	Line  int // 1-based line within the text the entry was built from
}

// Heading represents a document heading found by the markdown outline.
type Heading struct {
	Level int
	Text  string
	Line  int
}
