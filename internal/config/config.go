package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/docgen/internal/domain"
)

// DefaultFile is the configuration file looked up when none is named.
const DefaultFile = "docgen.yaml"

// Config is the top-level configuration struct.
type Config struct {
	Root    string        `yaml:"root"`
	Input   InputConfig   `yaml:"input"`
	Markers MarkerConfig  `yaml:"markers"`
	Anchors AnchorConfig  `yaml:"anchors"`
	Insert  InsertConfig  `yaml:"insert"`
	Logging LoggingConfig `yaml:"logging"`
	DryRun  bool          `yaml:"dry_run"`
}

type InputConfig struct {
	Directories []string `yaml:"directories"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Recursive   *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

// MarkerConfig describes the comment convention wrapping directives,
// e.g. <!-- gen:toc --> ... <!-- gen:stop -->.
type MarkerConfig struct {
	Open   string `yaml:"open"`
	Close  string `yaml:"close"`
	Prefix string `yaml:"prefix"`
	Stop   string `yaml:"stop"`
}

type AnchorConfig struct {
	// Letters is a regexp character-class body of the letters kept in anchor ids.
	Letters string `yaml:"letters"`
}

type InsertConfig struct {
	Template  string            `yaml:"template"`
	Languages map[string]string `yaml:"languages"`
}

// LoggingConfig configures logrus. A relative File is resolved against Root.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	// A relative root is taken from the config file's directory
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load, but falls back to DefaultConfig when the
// file does not exist and was not explicitly requested.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Resolve interprets p relative to the project root. Paths in the
// configuration (input directories, insert template, log file) go through it.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}
