package template

import (
	"bytes"
	"os"
	"text/template"

	"github.com/fjglira/docgen/internal/domain"
)

// DefaultInsertTemplate renders a heading naming the file followed by a
// fenced block of its contents.
const DefaultInsertTemplate = "\n#### {{ .Path }}\n\n```{{ .Language }}\n{{ .Content }}\n```\n"

// InsertData is the struct passed to the insert template.
type InsertData struct {
	Path     string // as written in the directive
	Name     string // base name of Path
	Language string // fence info string
	Content  string // trimmed file contents
}

// Renderer renders the replacement text of an included file.
type Renderer interface {
	RenderInsert(data InsertData) (string, error)
}

// DefaultEngine implements Renderer with text/template.
type DefaultEngine struct {
	insert *template.Template
	source string
}

// NewEngine creates a template engine. An empty templateFile selects
// DefaultInsertTemplate.
func NewEngine(templateFile string) (*DefaultEngine, error) {
	text := DefaultInsertTemplate
	source := "builtin"
	if templateFile != "" {
		content, err := os.ReadFile(templateFile)
		if err != nil {
			return nil, domain.NewError("template", templateFile, 0, "failed to read template file", err)
		}
		text = string(content)
		source = templateFile
	}

	tmpl, err := template.New("insert").Funcs(CustomFuncMap()).Parse(text)
	if err != nil {
		return nil, domain.NewError("template", source, 0, "failed to parse template", err)
	}

	return &DefaultEngine{insert: tmpl, source: source}, nil
}

// RenderInsert executes the insert template.
func (e *DefaultEngine) RenderInsert(data InsertData) (string, error) {
	var buf bytes.Buffer
	if err := e.insert.Execute(&buf, data); err != nil {
		return "", domain.NewError("template", e.source, 0, "failed to execute template", err)
	}
	return buf.String(), nil
}
