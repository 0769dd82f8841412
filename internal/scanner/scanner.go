package scanner

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fjglira/docgen/internal/domain"
)

// Options selects which documents a scan returns.
type Options struct {
	Include   []string
	Exclude   []string
	Recursive bool
}

// Scanner discovers documents in the project tree.
type Scanner interface {
	Scan(target string, opts Options) ([]string, error)
}

// FileScanner implements Scanner using filepath.WalkDir.
type FileScanner struct{}

// NewScanner creates a new FileScanner.
func NewScanner() *FileScanner {
	return &FileScanner{}
}

// Scan returns the sorted paths under target matching any include pattern
// and no exclude pattern. A target naming a regular file is returned as-is.
// Patterns are matched against slash-separated paths relative to target.
func (s *FileScanner) Scan(target string, opts Options) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, domain.NewError("scan", target, 0, "failed to scan path", err)
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(target, p)
		if relErr != nil {
			rel = p
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if !opts.Recursive || matchAny(rel, opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(rel, opts.Exclude) || !matchAny(rel, opts.Include) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, domain.NewError("scan", target, 0, "failed to scan directory", err)
	}

	sort.Strings(files)
	return files, nil
}

func matchAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a glob pattern. "**"
// matches any number of directories; a pattern without a slash also matches
// the base name.
func matchGlob(rel, pattern string) bool {
	if before, after, found := strings.Cut(pattern, "**"); found {
		prefix := strings.TrimSuffix(before, "/")
		suffix := strings.TrimPrefix(after, "/")

		if prefix != "" {
			if rel != prefix && !strings.HasPrefix(rel, prefix+"/") {
				return false
			}
			rel = strings.TrimPrefix(strings.TrimPrefix(rel, prefix), "/")
		}
		if suffix == "" {
			return true
		}

		parts := strings.Split(rel, "/")
		for i := range parts {
			if ok, _ := path.Match(suffix, strings.Join(parts[i:], "/")); ok {
				return true
			}
		}
		return false
	}

	if !strings.Contains(pattern, "/") {
		if ok, _ := path.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}
	ok, _ := path.Match(pattern, rel)
	return ok
}
