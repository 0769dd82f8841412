package parser_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/docgen/internal/parser"
)

var _ = Describe("Outline", func() {
	It("should list headings with levels and lines", func() {
		content := []byte("# Title\n\nintro\n\n## Install *now*\n\n```sh\n# not a heading\n```\n\n### `run()`\n")
		headings, err := parser.Outline("inline.md", content)
		Expect(err).ToNot(HaveOccurred())
		Expect(headings).To(HaveLen(3))
		Expect(headings[0].Level).To(Equal(1))
		Expect(headings[0].Text).To(Equal("Title"))
		Expect(headings[0].Line).To(Equal(1))
		Expect(headings[1].Text).To(Equal("Install *now*"))
		Expect(headings[1].Line).To(Equal(5))
		Expect(headings[2].Level).To(Equal(3))
		Expect(headings[2].Text).To(Equal("`run()`"))
	})

	It("should keep link markup in heading text", func() {
		headings, err := parser.Outline("links.md", []byte("# See [docs](http://x.io)\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(headings).To(HaveLen(1))
		Expect(headings[0].Text).To(Equal("See [docs](http://x.io)"))
	})

	It("should read the guide fixture", func() {
		content, err := os.ReadFile(filepath.Join("..", "..", "testdata", "docs", "guide.md"))
		Expect(err).ToNot(HaveOccurred())
		headings, err := parser.Outline("guide.md", content)
		Expect(err).ToNot(HaveOccurred())
		Expect(headings).ToNot(BeEmpty())
		Expect(headings[0].Text).To(Equal("Browser Automation Guide"))
	})

	It("should return nothing for a document without headings", func() {
		headings, err := parser.Outline("empty.md", []byte("plain text\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(headings).To(BeEmpty())
	})
})
