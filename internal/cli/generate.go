package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fjglira/docgen/internal/config"
	"github.com/fjglira/docgen/internal/document"
	"github.com/fjglira/docgen/internal/engine"
	"github.com/fjglira/docgen/internal/executor"
	"github.com/fjglira/docgen/internal/generator"
	"github.com/fjglira/docgen/internal/parser"
	"github.com/fjglira/docgen/internal/scanner"
	tmpl "github.com/fjglira/docgen/internal/template"
	"github.com/fjglira/docgen/internal/toc"
)

var checkOnly bool

var generateCmd = &cobra.Command{
	Use:   "generate [file or directory...]",
	Short: "Expand directives in documentation files",
	Long: `Scans documentation files, executes every gen directive and rewrites the
regions between the markers. Without arguments the input directories from the
configuration are scanned.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if checkOnly {
			cfg.DryRun = true
		}

		log.Infof("Project root: %s", cfg.Root)

		gen, err := buildGenerator(cfg)
		if err != nil {
			return err
		}
		result, err := gen.Generate(cfg, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printDiagnostics(out, result.Diagnostics)
		printSummary(out, result, cfg.DryRun)

		if result.HasErrors() {
			return fmt.Errorf("%d error(s) reported", result.ErrorCount())
		}
		if checkOnly && len(result.Pending) > 0 {
			return fmt.Errorf("%d document(s) out of date, run docgen generate", len(result.Pending))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&checkOnly, "check", false, "fail if any document would change (implies --dry-run)")
	rootCmd.AddCommand(generateCmd)
}

// buildGenerator wires all components for cfg.
func buildGenerator(cfg *config.Config) (*generator.DefaultGenerator, error) {
	p, err := parser.NewDirectiveParser(cfg.Markers)
	if err != nil {
		return nil, err
	}
	tocGen, err := toc.NewGenerator(cfg.Anchors.Letters)
	if err != nil {
		return nil, err
	}
	renderer, err := tmpl.NewEngine(cfg.Resolve(cfg.Insert.Template))
	if err != nil {
		return nil, fmt.Errorf("failed to create template engine: %w", err)
	}

	exec := executor.NewExecutor(document.NewDirReader(cfg.Root), tocGen, renderer, cfg.Insert.Languages)
	eng := engine.NewEngine(p, exec, log)
	return generator.NewGenerator(scanner.NewScanner(), eng, log), nil
}
