package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fjglira/docgen/internal/domain"
)

// Outline returns the headings of a markdown document using goldmark.
// Heading text is the raw source, inline markup included. Unlike the
// line-based table of contents it ignores "#" lines inside code blocks.
func Outline(filePath string, content []byte) ([]domain.Heading, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	var headings []domain.Heading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		lineNum := 0
		headingText := extractText(heading, content)
		if heading.Lines().Len() > 0 {
			first := heading.Lines().At(0)
			lineNum = lineNumberBytes(content, first.Start)
			headingText = string(bytes.TrimSpace(first.Value(content)))
		} else if first, ok := heading.FirstChild().(*ast.Text); ok {
			lineNum = lineNumberBytes(content, first.Segment.Start)
		}
		headings = append(headings, domain.Heading{
			Level: heading.Level,
			Text:  headingText,
			Line:  lineNum,
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("parse", filePath, 0,
			"failed to walk markdown AST",
			"check the markdown file for syntax issues",
			err)
	}

	return headings, nil
}

// extractText gets the text content of a heading node, descending into
// emphasis, links and code spans.
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(c.Value)
		default:
			buf.WriteString(extractText(c, source))
		}
	}
	return buf.String()
}

func lineNumberBytes(content []byte, offset int) int {
	return bytes.Count(content[:offset], []byte("\n")) + 1
}
