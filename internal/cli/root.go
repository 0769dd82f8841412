package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fjglira/docgen/internal/config"
	"github.com/fjglira/docgen/internal/domain"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     = logrus.New()
	logFile *os.File // set while logging.file is in use
)

// rootCmd is the base command for docgen.
var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Expand gen directives in markdown documents",
	Long: `docgen scans markdown documents for directive regions such as

  <!-- gen:toc -->
  <!-- gen:stop -->

and replaces their contents with generated text: tables of contents built
from the headings that follow, or the contents of project files as fenced
code blocks (gen:insertjs(path)).

Settings are read from a YAML configuration file (docgen.yaml).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "compute changes but don't write files")

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// Execute runs the root command.
func Execute() error {
	defer closeLogFile()
	return rootCmd.Execute()
}

// closeLogFile closes the logging.file handle and logs to stderr again.
func closeLogFile() {
	if logFile == nil {
		return
	}
	log.SetOutput(os.Stderr)
	if err := logFile.Close(); err != nil {
		log.Warnf("Failed to close log file: %v", err)
	}
	logFile = nil
}

// loadConfig reads and validates the configuration, then applies logging
// settings and command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if err := configureLogging(cfg); err != nil {
		return nil, err
	}
	if dryRun {
		cfg.DryRun = true
	}
	log.Debugf("Loaded config: %+v", cfg)
	return cfg, nil
}

func configureLogging(cfg *config.Config) error {
	lc := cfg.Logging
	if !verbose && lc.Level != "" {
		level, err := logrus.ParseLevel(lc.Level)
		if err != nil {
			return domain.NewError("config", "", 0, "invalid logging.level", err)
		}
		log.SetLevel(level)
	}
	if lc.File != "" {
		closeLogFile()
		path := cfg.Resolve(lc.File)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return domain.NewErrorWithSuggestion("config", path, 0,
				"failed to open log file",
				"check that the directory exists or unset logging.file",
				err)
		}
		logFile = f
		log.SetOutput(f)
	}
	return nil
}
