package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fjglira/docgen/internal/config"
	"github.com/fjglira/docgen/internal/domain"
)

// DirectiveParser finds gen:<name> ... gen:stop regions in document text.
type DirectiveParser struct {
	open     *regexp.Regexp
	stop     *regexp.Regexp
	stopName string
}

// NewDirectiveParser compiles the marker patterns for the given comment convention.
func NewDirectiveParser(m config.MarkerConfig) (*DirectiveParser, error) {
	if m.Open == "" || m.Close == "" || m.Prefix == "" || m.Stop == "" {
		return nil, domain.NewError("config", "", 0, "markers.open, markers.close, markers.prefix and markers.stop are required", nil)
	}
	open := regexp.QuoteMeta(m.Open)
	closing := regexp.QuoteMeta(m.Close)
	prefix := regexp.QuoteMeta(m.Prefix)

	openRe, err := regexp.Compile(`(?i)` + open + `\s*` + prefix + `([a-z-]+)(?:\(([^)]*)\))?\s*` + closing)
	if err != nil {
		return nil, domain.NewError("config", "", 0, "failed to compile opening marker pattern", err)
	}
	stopRe, err := regexp.Compile(`(?i)` + open + `\s*` + prefix + regexp.QuoteMeta(m.Stop) + `\s*` + closing)
	if err != nil {
		return nil, domain.NewError("config", "", 0, "failed to compile closing marker pattern", err)
	}

	return &DirectiveParser{open: openRe, stop: stopRe, stopName: strings.ToLower(m.Stop)}, nil
}

// Parse returns the commands of doc in document order. An opening marker
// without a later closing marker makes the whole document unprocessable: the
// error wraps domain.ErrUnterminatedDirective and no commands are returned.
func (p *DirectiveParser) Parse(doc domain.Document) ([]domain.Command, error) {
	text := doc.Text()
	var cmds []domain.Command

	pos := 0
	for pos <= len(text) {
		loc := p.open.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		name := strings.ToLower(text[pos+loc[2] : pos+loc[3]])
		from := pos + loc[1]

		// A closing marker with nothing open is skipped
		if name == p.stopName {
			pos = from
			continue
		}

		stopLoc := p.stop.FindStringIndex(text[from:])
		if stopLoc == nil {
			return nil, domain.NewErrorWithSuggestion("parse", doc.ProjectPath(), lineNumber(text, start),
				fmt.Sprintf("directive %q has no closing marker", name),
				fmt.Sprintf("add a %s marker after the generated region", p.stopName),
				domain.ErrUnterminatedDirective)
		}
		to := from + stopLoc[0]

		var args []string
		if loc[4] >= 0 {
			for _, arg := range strings.Split(text[pos+loc[4]:pos+loc[5]], ",") {
				args = append(args, strings.TrimSpace(arg))
			}
		}

		cmds = append(cmds, domain.Command{
			Name:         name,
			Args:         args,
			From:         from,
			To:           to,
			OriginalText: text[from:to],
			LineNumber:   lineNumber(text, start),
			Doc:          doc,
		})
		pos = from + stopLoc[1]
	}

	return cmds, nil
}

// lineNumber calculates the 1-based line number for a byte offset.
func lineNumber(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
