package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fjglira/docgen/internal/domain"
	"github.com/fjglira/docgen/internal/parser"
	"github.com/fjglira/docgen/internal/toc"
)

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Print the headings of a markdown file with their anchors",
	Long: `Lists the headings of a markdown file and the anchor each one gets in a
table of contents generated over the whole document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return domain.NewError("read", args[0], 0, "failed to read document", err)
		}
		headings, err := parser.Outline(args[0], content)
		if err != nil {
			return err
		}
		gen, err := toc.NewGenerator(cfg.Anchors.Letters)
		if err != nil {
			return err
		}

		printOutline(cmd.OutOrStdout(), headings, gen.Entries(string(content)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

// outlineLines formats headings indented by level, each with the anchor a
// table of contents over the whole document gives it. entries come from the
// line-based TOC generator, which also counts "#" lines inside code blocks,
// so anchors are matched by line rather than recomputed. Headings the TOC
// does not see (setext) get no anchor.
func outlineLines(headings []domain.Heading, entries []domain.TOCEntry, anchor lipgloss.Style) []string {
	if len(headings) == 0 {
		return nil
	}
	ids := make(map[int]string, len(entries))
	for _, e := range entries {
		ids[e.Line] = e.ID
	}
	minLevel := headings[0].Level
	for _, h := range headings {
		minLevel = min(minLevel, h.Level)
	}

	lines := make([]string, len(headings))
	for i, h := range headings {
		ref := "no anchor"
		if id, ok := ids[h.Line]; ok {
			ref = "#" + id
		}
		lines[i] = fmt.Sprintf("%s%s %s", strings.Repeat("  ", h.Level-minLevel), h.Text, anchor.Render(fmt.Sprintf("%s (line %d)", ref, h.Line)))
	}
	return lines
}
