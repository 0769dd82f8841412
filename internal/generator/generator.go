package generator

import (
	"github.com/sirupsen/logrus"

	"github.com/fjglira/docgen/internal/config"
	"github.com/fjglira/docgen/internal/document"
	"github.com/fjglira/docgen/internal/domain"
	"github.com/fjglira/docgen/internal/engine"
	"github.com/fjglira/docgen/internal/scanner"
)

// Generator is the top-level orchestrator.
type Generator interface {
	Generate(cfg *config.Config, targets []string) (*Result, error)
}

// Result summarizes one generation pass.
type Result struct {
	Documents   int
	Diagnostics []domain.Diagnostic
	Written     []string // files written to disk
	Pending     []string // files that changed but were not written (dry-run)
}

// HasErrors reports whether any error diagnostic was produced.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error diagnostics.
func (r *Result) ErrorCount() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.IsError() {
			n++
		}
	}
	return n
}

// DefaultGenerator implements Generator by wiring all components together.
type DefaultGenerator struct {
	scanner scanner.Scanner
	engine  *engine.Engine
	log     *logrus.Logger
}

// NewGenerator creates a new DefaultGenerator with all dependencies.
func NewGenerator(s scanner.Scanner, e *engine.Engine, log *logrus.Logger) *DefaultGenerator {
	return &DefaultGenerator{
		scanner: s,
		engine:  e,
		log:     log,
	}
}

// Generate runs the full pipeline: scan → load → expand → write.
// targets override cfg.Input.Directories when non-empty.
func (g *DefaultGenerator) Generate(cfg *config.Config, targets []string) (*Result, error) {
	// Step 1: Collect documents
	explicit := len(targets) > 0
	if !explicit {
		for _, dir := range cfg.Input.Directories {
			targets = append(targets, cfg.Resolve(dir))
		}
	}
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	opts := scanner.Options{Include: cfg.Input.Include, Exclude: cfg.Input.Exclude, Recursive: recursive}

	var allFiles []string
	seen := make(map[string]bool)
	for _, target := range targets {
		g.log.Debugf("Scanning: %s", target)
		files, err := g.scanner.Scan(target, opts)
		if err != nil {
			// Only configured directories may be absent
			if explicit {
				return nil, err
			}
			g.log.Warnf("Failed to scan %s: %v", target, err)
			continue
		}
		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				allFiles = append(allFiles, f)
			}
		}
	}

	result := &Result{}
	if len(allFiles) == 0 {
		g.log.Warn("No documents found")
		return result, nil
	}
	g.log.Infof("Found %d document(s)", len(allFiles))

	// Step 2: Load documents; unreadable ones are reported and skipped
	files := make([]*document.FileDocument, 0, len(allFiles))
	docs := make([]domain.Document, 0, len(allFiles))
	for _, path := range allFiles {
		doc, err := document.Load(cfg.Root, path)
		if err != nil {
			g.log.Debugf("Skipping %s: %v", path, err)
			result.Diagnostics = append(result.Diagnostics, domain.DiagnosticFromError(path, err))
			continue
		}
		files = append(files, doc)
		docs = append(docs, doc)
	}
	result.Documents = len(docs)

	// Step 3: Expand directives
	result.Diagnostics = append(result.Diagnostics, g.engine.Run(docs)...)

	// Step 4: Write changed documents
	for _, doc := range files {
		if !doc.Dirty() {
			continue
		}
		if cfg.DryRun {
			g.log.Infof("[DRY-RUN] Would write: %s", doc.FilePath())
			g.log.Debugf("[DRY-RUN] Content:\n%s", doc.Text())
			result.Pending = append(result.Pending, doc.FilePath())
			continue
		}

		g.log.Infof("Writing: %s", doc.FilePath())
		if _, err := doc.Flush(); err != nil {
			return result, err
		}
		result.Written = append(result.Written, doc.FilePath())
	}

	g.log.Info("Generation complete")
	return result, nil
}
