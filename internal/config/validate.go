package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fjglira/docgen/internal/domain"
)

var stopNameRe = regexp.MustCompile(`^[a-z-]+$`)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Root == "" {
		errs = append(errs, "root must not be empty")
	}

	// Input validation
	if len(cfg.Input.Directories) == 0 {
		errs = append(errs, "input.directories must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	// Marker validation
	if cfg.Markers.Open == "" {
		errs = append(errs, "markers.open must not be empty")
	}
	if cfg.Markers.Close == "" {
		errs = append(errs, "markers.close must not be empty")
	}
	if cfg.Markers.Prefix == "" {
		errs = append(errs, "markers.prefix must not be empty")
	}
	if !stopNameRe.MatchString(cfg.Markers.Stop) {
		errs = append(errs, fmt.Sprintf("markers.stop must contain only lowercase letters and hyphens (got %q)", cfg.Markers.Stop))
	}

	// The letter class is spliced into a negated character class
	if cfg.Anchors.Letters == "" {
		errs = append(errs, "anchors.letters must not be empty")
	} else if _, err := regexp.Compile("[^-0-9" + cfg.Anchors.Letters + "]"); err != nil {
		errs = append(errs, fmt.Sprintf("anchors.letters is not a valid character class: %v", err))
	}

	for ext := range cfg.Insert.Languages {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("insert.languages key %q must start with a dot", ext))
		}
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
