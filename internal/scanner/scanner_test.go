package scanner_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/docgen/internal/scanner"
)

var _ = Describe("Scanner", func() {
	var (
		s    *scanner.FileScanner
		docs string
	)

	names := func(files []string) []string {
		out := make([]string, len(files))
		for i, f := range files {
			rel, err := filepath.Rel(docs, f)
			Expect(err).ToNot(HaveOccurred())
			out[i] = filepath.ToSlash(rel)
		}
		return out
	}

	BeforeEach(func() {
		s = scanner.NewScanner()
		docs = filepath.Join("..", "..", "testdata", "docs")
	})

	It("should find markdown files recursively in sorted order", func() {
		files, err := s.Scan(docs, scanner.Options{Include: []string{"*.md"}, Recursive: true})
		Expect(err).ToNot(HaveOccurred())
		Expect(names(files)).To(Equal([]string{"api.md", "guide.md", "guides/advanced.md"}))
	})

	It("should handle non-recursive mode", func() {
		files, err := s.Scan(docs, scanner.Options{Include: []string{"*.md"}})
		Expect(err).ToNot(HaveOccurred())
		Expect(names(files)).To(Equal([]string{"api.md", "guide.md"}))
	})

	It("should respect exclude patterns", func() {
		files, err := s.Scan(docs, scanner.Options{
			Include:   []string{"*.md"},
			Exclude:   []string{"api.md", "guides/**"},
			Recursive: true,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(names(files)).To(Equal([]string{"guide.md"}))
	})

	It("should match double-star include patterns", func() {
		files, err := s.Scan(docs, scanner.Options{Include: []string{"guides/**/*.md"}, Recursive: true})
		Expect(err).ToNot(HaveOccurred())
		Expect(names(files)).To(Equal([]string{"guides/advanced.md"}))
	})

	It("should return a file target unchanged", func() {
		target := filepath.Join(docs, "api.md")
		files, err := s.Scan(target, scanner.Options{Include: []string{"*.txt"}})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(Equal([]string{target}))
	})

	It("should return error for nonexistent directory", func() {
		_, err := s.Scan("nonexistent_dir", scanner.Options{Include: []string{"*.md"}})
		Expect(err).To(HaveOccurred())
	})
})
