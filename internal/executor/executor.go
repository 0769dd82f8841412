package executor

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/fjglira/docgen/internal/document"
	"github.com/fjglira/docgen/internal/domain"
	tmpl "github.com/fjglira/docgen/internal/template"
	"github.com/fjglira/docgen/internal/toc"
)

// Command names understood by DefaultExecutor.
const (
	CommandInsertJS = "insertjs"
	CommandTOC      = "toc"
)

// Executor computes the replacement text of a command. It never modifies
// the command's document.
type Executor interface {
	Execute(cmd domain.Command) (string, error)
}

// Handler produces the replacement text for one command name.
type Handler func(cmd domain.Command) (string, error)

// DefaultExecutor dispatches commands through a fixed name -> handler table.
type DefaultExecutor struct {
	reader    document.FileReader
	toc       *toc.Generator
	renderer  tmpl.Renderer
	languages map[string]string
	handlers  map[string]Handler
}

// NewExecutor creates a DefaultExecutor. languages maps file extensions
// (".js") to fence info strings.
func NewExecutor(reader document.FileReader, gen *toc.Generator, renderer tmpl.Renderer, languages map[string]string) *DefaultExecutor {
	e := &DefaultExecutor{
		reader:    reader,
		toc:       gen,
		renderer:  renderer,
		languages: languages,
	}
	e.handlers = map[string]Handler{
		CommandInsertJS: e.insertJS,
		CommandTOC:      e.tableOfContents,
	}
	return e
}

// Commands returns the known command names in sorted order.
func (e *DefaultExecutor) Commands() []string {
	names := make([]string, 0, len(e.handlers))
	for name := range e.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the handler registered for cmd.Name. Unknown names yield an
// error wrapping domain.ErrUnknownCommand.
func (e *DefaultExecutor) Execute(cmd domain.Command) (string, error) {
	handler, ok := e.handlers[cmd.Name]
	if !ok {
		return "", domain.NewErrorWithSuggestion("execute", projectPath(cmd), cmd.LineNumber,
			fmt.Sprintf("unknown command %q", cmd.Name),
			fmt.Sprintf("known commands: %s", strings.Join(e.Commands(), ", ")),
			domain.ErrUnknownCommand)
	}
	return handler(cmd)
}

// insertJS renders args[0], a project-relative file, as a heading plus a
// fenced code block.
func (e *DefaultExecutor) insertJS(cmd domain.Command) (string, error) {
	if len(cmd.Args) == 0 || cmd.Args[0] == "" {
		return "", domain.NewError("execute", projectPath(cmd), cmd.LineNumber,
			fmt.Sprintf("%s requires a file path argument", cmd.Name), domain.ErrMissingFile)
	}
	file := cmd.Args[0]

	content, err := e.reader.Read(file)
	if err != nil {
		if !errors.Is(err, domain.ErrMissingFile) {
			err = errors.Join(domain.ErrMissingFile, err)
		}
		return "", domain.NewError("execute", projectPath(cmd), cmd.LineNumber,
			fmt.Sprintf("file not found: %s", file), err)
	}

	return e.renderer.RenderInsert(tmpl.InsertData{
		Path:     file,
		Name:     path.Base(file),
		Language: e.languageFor(file),
		Content:  strings.TrimSpace(string(content)),
	})
}

// tableOfContents covers the headings after the closing marker.
func (e *DefaultExecutor) tableOfContents(cmd domain.Command) (string, error) {
	var rest string
	if cmd.Doc != nil {
		if text := cmd.Doc.Text(); cmd.To <= len(text) {
			rest = text[cmd.To:]
		}
	}
	return e.toc.Generate(rest), nil
}

func (e *DefaultExecutor) languageFor(file string) string {
	ext := strings.ToLower(path.Ext(file))
	if lang, ok := e.languages[ext]; ok {
		return lang
	}
	return strings.TrimPrefix(ext, ".")
}

func projectPath(cmd domain.Command) string {
	if cmd.Doc == nil {
		return ""
	}
	return cmd.Doc.ProjectPath()
}
