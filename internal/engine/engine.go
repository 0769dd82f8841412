// Package engine expands gen directives in documents and splices the
// generated text back in place.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/fjglira/docgen/internal/domain"
	"github.com/fjglira/docgen/internal/executor"
	"github.com/fjglira/docgen/internal/parser"
)

// Parser extracts the commands of a document.
type Parser interface {
	Parse(doc domain.Document) ([]domain.Command, error)
}

var _ Parser = (*parser.DirectiveParser)(nil)

// Engine runs one expansion pass over a set of documents.
type Engine struct {
	parser   Parser
	executor executor.Executor
	log      *logrus.Logger
}

// NewEngine creates an Engine.
func NewEngine(p Parser, e executor.Executor, log *logrus.Logger) *Engine {
	return &Engine{parser: p, executor: e, log: log}
}

// Run processes every document and returns the diagnostics of the pass.
// Failures in one document or command never stop the others.
func (e *Engine) Run(docs []domain.Document) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, doc := range docs {
		diags = append(diags, e.Process(doc)...)
	}
	return diags
}

// Process expands the commands of a single document and writes the result
// back with one SetText call. Commands whose replacement cannot be computed
// are reported and leave their region untouched.
func (e *Engine) Process(doc domain.Document) []domain.Diagnostic {
	path := doc.ProjectPath()
	text := doc.Text()

	cmds, err := e.parser.Parse(doc)
	if err != nil {
		e.log.Debugf("Skipping %s: %v", path, err)
		return []domain.Diagnostic{domain.DiagnosticFromError(path, err)}
	}
	if len(cmds) == 0 {
		e.log.Debugf("No directives in %s", path)
		return nil
	}
	e.log.Debugf("Found %d directive(s) in %s", len(cmds), path)

	var diags []domain.Diagnostic
	edits := make([]Edit, 0, len(cmds))
	for _, cmd := range cmds {
		replacement, err := e.executor.Execute(cmd)
		if err != nil {
			diags = append(diags, domain.DiagnosticFromError(path, err))
			continue
		}
		edits = append(edits, Edit{From: cmd.From, To: cmd.To, Text: replacement})
	}
	if len(edits) == 0 {
		return diags
	}

	if doc.SetText(ApplyEdits(text, edits)) {
		e.log.Debugf("Applied %d edit(s) to %s", len(edits), path)
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityWarning,
			File:     path,
			Message:  "updated",
		})
	}
	return diags
}
