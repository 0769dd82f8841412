package engine_test

import (
	"io"
	"io/fs"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/fjglira/docgen/internal/config"
	"github.com/fjglira/docgen/internal/document"
	"github.com/fjglira/docgen/internal/domain"
	"github.com/fjglira/docgen/internal/engine"
	"github.com/fjglira/docgen/internal/executor"
	"github.com/fjglira/docgen/internal/parser"
	tmpl "github.com/fjglira/docgen/internal/template"
	"github.com/fjglira/docgen/internal/toc"
)

type mapReader map[string]string

func (r mapReader) Read(path string) ([]byte, error) {
	content, ok := r[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

// countingDocument records SetText calls.
type countingDocument struct {
	*document.MemoryDocument
	sets int
}

func (d *countingDocument) SetText(text string) bool {
	d.sets++
	return d.MemoryDocument.SetText(text)
}

var _ = Describe("Engine", func() {
	var (
		eng   *engine.Engine
		files mapReader
	)

	BeforeEach(func() {
		files = mapReader{
			"./a.js": "console.log('a');\n",
		}

		cfg := config.DefaultConfig()
		p, err := parser.NewDirectiveParser(cfg.Markers)
		Expect(err).ToNot(HaveOccurred())
		gen, err := toc.NewGenerator(cfg.Anchors.Letters)
		Expect(err).ToNot(HaveOccurred())
		renderer, err := tmpl.NewEngine("")
		Expect(err).ToNot(HaveOccurred())

		log := logrus.New()
		log.SetOutput(io.Discard)
		eng = engine.NewEngine(p, executor.NewExecutor(files, gen, renderer, cfg.Insert.Languages), log)
	})

	errorsOf := func(diags []domain.Diagnostic) []domain.Diagnostic {
		var out []domain.Diagnostic
		for _, d := range diags {
			if d.IsError() {
				out = append(out, d)
			}
		}
		return out
	}

	It("should expand the table of contents example", func() {
		doc := document.NewMemoryDocument("README.md", "# A\n<!--gen:toc-->\nbody\n<!--gen:stop-->\n## B\n### C\n")
		diags := eng.Run([]domain.Document{doc})

		Expect(doc.Text()).To(Equal("# A\n<!--gen:toc-->\n- [B](#b)\n  * [C](#c)\n<!--gen:stop-->\n## B\n### C\n"))
		Expect(diags).To(Equal([]domain.Diagnostic{
			{Severity: domain.SeverityWarning, File: "README.md", Message: "updated"},
		}))
	})

	It("should replace every region and keep the rest byte-identical", func() {
		text := "head\n<!--gen:insertjs(./a.js)-->OLD<!--gen:stop-->\nmiddle\n<!--gen:toc-->OLD<!--gen:stop-->\n## X\ntail"
		doc := document.NewMemoryDocument("doc.md", text)
		eng.Run([]domain.Document{doc})

		expected := "head\n<!--gen:insertjs(./a.js)-->" +
			"\n#### ./a.js\n\n```js\nconsole.log('a');\n```\n" +
			"<!--gen:stop-->\nmiddle\n<!--gen:toc-->" +
			"\n- [X](#x)\n" +
			"<!--gen:stop-->\n## X\ntail"
		Expect(doc.Text()).To(Equal(expected))
	})

	It("should use original offsets when an earlier insert changes the length", func() {
		files["./a.js"] = strings.Repeat("// line\n", 50)
		text := "<!--gen:insertjs(./a.js)--><!--gen:stop-->\n<!--gen:toc-->stale<!--gen:stop-->\n## Only\n"
		doc := document.NewMemoryDocument("doc.md", text)
		diags := eng.Run([]domain.Document{doc})

		Expect(errorsOf(diags)).To(BeEmpty())
		Expect(doc.Text()).To(HaveSuffix("<!--gen:toc-->\n- [Only](#only)\n<!--gen:stop-->\n## Only\n"))
		Expect(doc.Text()).ToNot(ContainSubstring("stale"))
		Expect(strings.Count(doc.Text(), "// line")).To(Equal(50))
	})

	It("should be idempotent on its own output", func() {
		doc := document.NewMemoryDocument("doc.md",
			"<!--gen:insertjs(./a.js)--><!--gen:stop-->\n<!--gen:toc--><!--gen:stop-->\n## One\n## One\n")
		first := eng.Run([]domain.Document{doc})
		Expect(first).To(HaveLen(1))
		output := doc.Text()

		second := eng.Run([]domain.Document{doc})
		Expect(second).To(BeEmpty())
		Expect(doc.Text()).To(Equal(output))
		Expect(output).To(ContainSubstring("[One](#one-1)"))
	})

	It("should report an unterminated directive without touching the document", func() {
		text := "<!--gen:toc--><!--gen:stop-->\n# T\n<!--gen:insertjs(./x.js)-->\nno end\n"
		doc := &countingDocument{MemoryDocument: document.NewMemoryDocument("bad.md", text)}
		diags := eng.Run([]domain.Document{doc})

		Expect(diags).To(HaveLen(1))
		Expect(diags[0].Severity).To(Equal(domain.SeverityError))
		Expect(diags[0].File).To(Equal("bad.md"))
		Expect(diags[0].LineNumber).To(Equal(3))
		Expect(doc.sets).To(BeZero())
		Expect(doc.Text()).To(Equal(text))
	})

	It("should leave unknown commands untouched and still expand later ones", func() {
		text := "<!--gen:frobnicate-->keep me<!--gen:stop-->\n<!--gen:toc--><!--gen:stop-->\n## Z\n"
		doc := document.NewMemoryDocument("doc.md", text)
		diags := eng.Run([]domain.Document{doc})

		errs := errorsOf(diags)
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Message).To(ContainSubstring("frobnicate"))
		Expect(doc.Text()).To(HavePrefix("<!--gen:frobnicate-->keep me<!--gen:stop-->"))
		Expect(doc.Text()).To(ContainSubstring("<!--gen:toc-->\n- [Z](#z)\n<!--gen:stop-->"))
		Expect(diags[len(diags)-1]).To(Equal(domain.Diagnostic{Severity: domain.SeverityWarning, File: "doc.md", Message: "updated"}))
	})

	It("should report missing files and keep their regions", func() {
		text := "<!--gen:insertjs(./missing.js)-->old<!--gen:stop-->\n<!--gen:insertjs(./a.js)--><!--gen:stop-->"
		doc := document.NewMemoryDocument("doc.md", text)
		diags := eng.Run([]domain.Document{doc})

		errs := errorsOf(diags)
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Message).To(ContainSubstring("./missing.js"))
		Expect(errs[0].LineNumber).To(Equal(1))
		Expect(doc.Text()).To(HavePrefix("<!--gen:insertjs(./missing.js)-->old<!--gen:stop-->"))
		Expect(doc.Text()).To(ContainSubstring("console.log('a');"))
	})

	It("should write each document once and report per document", func() {
		a := &countingDocument{MemoryDocument: document.NewMemoryDocument("a.md",
			"<!--gen:toc--><!--gen:stop--><!--gen:toc--><!--gen:stop-->\n# H\n")}
		b := &countingDocument{MemoryDocument: document.NewMemoryDocument("b.md", "<!--gen:oops--><!--gen:stop-->")}
		c := &countingDocument{MemoryDocument: document.NewMemoryDocument("c.md", "no directives")}

		diags := eng.Run([]domain.Document{a, b, c})

		Expect(a.sets).To(Equal(1))
		Expect(b.sets).To(BeZero())
		Expect(c.sets).To(BeZero())
		Expect(diags).To(HaveLen(2))
		Expect(diags[0]).To(Equal(domain.Diagnostic{Severity: domain.SeverityWarning, File: "a.md", Message: "updated"}))
		Expect(diags[1].Severity).To(Equal(domain.SeverityError))
		Expect(diags[1].File).To(Equal("b.md"))
	})
})
