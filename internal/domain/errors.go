package domain

import (
	"errors"
	"fmt"
)

// Error kinds reported by the expansion core. Use errors.Is to classify.
var (
	ErrUnterminatedDirective = errors.New("unterminated directive")
	ErrUnknownCommand        = errors.New("unknown command")
	ErrMissingFile           = errors.New("missing file")
)

// DocGenError is the base error type with context.
type DocGenError struct {
	Phase      string // "config", "scan", "parse", "execute", "read", "write"
	File       string
	LineNumber int
	Message    string
	Suggestion string
	Cause      error
}

func (e *DocGenError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.LineNumber > 0 {
		s += fmt.Sprintf(":%d", e.LineNumber)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return s
}

func (e *DocGenError) Unwrap() error {
	return e.Cause
}

// NewError creates a new DocGenError.
func NewError(phase, file string, line int, message string, cause error) *DocGenError {
	return &DocGenError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Cause:      cause,
	}
}

// NewErrorWithSuggestion creates a DocGenError carrying a hint for the user.
func NewErrorWithSuggestion(phase, file string, line int, message, suggestion string, cause error) *DocGenError {
	e := NewError(phase, file, line, message, cause)
	e.Suggestion = suggestion
	return e
}
