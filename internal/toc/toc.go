// Package toc builds markdown tables of contents from heading lines.
package toc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fjglira/docgen/internal/domain"
)

// DefaultLetters keeps ASCII Latin and Cyrillic letters in anchor ids.
const DefaultLetters = "a-zа-яё"

// whitespaceRe matches Unicode spaces, not only the ASCII ones of \s.
var whitespaceRe = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)

// Generator turns markdown text into a nested link list.
type Generator struct {
	disallowed *regexp.Regexp
}

// NewGenerator creates a Generator keeping hyphens, digits and the given
// letters (a regexp character-class body such as "a-z") in anchor ids.
func NewGenerator(letters string) (*Generator, error) {
	if letters == "" {
		letters = DefaultLetters
	}
	re, err := regexp.Compile("[^-0-9" + letters + "]")
	if err != nil {
		return nil, domain.NewError("config", "", 0, fmt.Sprintf("invalid anchor letter class %q", letters), err)
	}
	return &Generator{disallowed: re}, nil
}

// Generate renders the table of contents for every heading line in text.
func (g *Generator) Generate(text string) string {
	return Render(g.Entries(text))
}

// Entries collects heading lines from text with normalized levels and
// ids that are unique within the returned slice.
func (g *Generator) Entries(text string) []domain.TOCEntry {
	var entries []domain.TOCEntry
	ids := make(map[string]struct{})
	minLevel := -1

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		depth := len(line) - len(strings.TrimLeft(line, "#"))
		name := strings.TrimSpace(line[depth:])

		entries = append(entries, domain.TOCEntry{
			Level: depth,
			Name:  name,
			ID:    g.uniqueID(ids, name),
			Line:  i + 1,
		})
		if minLevel < 0 || depth < minLevel {
			minLevel = depth
		}
	}

	for i := range entries {
		entries[i].Level -= minLevel
	}
	return entries
}

// Slug derives the anchor id of a heading name without deduplication.
func (g *Generator) Slug(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = whitespaceRe.ReplaceAllString(id, "-")
	return g.disallowed.ReplaceAllString(id, "")
}

func (g *Generator) uniqueID(ids map[string]struct{}, name string) string {
	id := g.Slug(name)
	if _, taken := ids[id]; taken {
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s-%d", id, n)
			if _, taken := ids[candidate]; !taken {
				id = candidate
				break
			}
		}
	}
	ids[id] = struct{}{}
	return id
}

// Render formats entries as a markdown list, two spaces of indent per level,
// "-" bullets on even levels and "*" on odd ones.
func Render(entries []domain.TOCEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		bullet := "-"
		if e.Level%2 == 1 {
			bullet = "*"
		}
		lines = append(lines, fmt.Sprintf("%s%s [%s](#%s)", strings.Repeat("  ", e.Level), bullet, e.Name, e.ID))
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}
