package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Root: ".",
		Input: InputConfig{
			Directories: []string{"."},
			Include:     []string{"*.md"},
			Exclude:     []string{"vendor/**", "node_modules/**", ".git/**"},
			Recursive:   &recursive,
		},
		Markers: MarkerConfig{
			Open:   "<!--",
			Close:  "-->",
			Prefix: "gen:",
			Stop:   "stop",
		},
		Anchors: AnchorConfig{
			Letters: "a-zа-яё",
		},
		Insert: InsertConfig{
			Languages: map[string]string{
				".js":   "js",
				".mjs":  "js",
				".ts":   "ts",
				".go":   "go",
				".py":   "python",
				".sh":   "bash",
				".json": "json",
				".yaml": "yaml",
				".yml":  "yaml",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
