package mkd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDocumentRendersHeadingAndParagraph(t *testing.T) {
	doc, err := NewReader(strings.NewReader("# Title\n\npara\n"), 0)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if err := doc.Compile(0); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var out bytes.Buffer
	if err := doc.WriteHTML(&out); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	want := "<h1>Title</h1>\n<p>para</p>\n"
	if out.String() != want {
		t.Fatalf("html=%q want %q", out.String(), want)
	}
}

func TestDocumentRequiresCompile(t *testing.T) {
	doc, err := NewString("text", 0)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if err := doc.WriteHTML(&bytes.Buffer{}); !errors.Is(err, ErrNotCompiled) {
		t.Fatalf("expected ErrNotCompiled, got %v", err)
	}
	if err := doc.WriteTOC(&bytes.Buffer{}); !errors.Is(err, ErrNotCompiled) {
		t.Fatalf("expected ErrNotCompiled, got %v", err)
	}
}

func TestDocumentClose(t *testing.T) {
	doc, err := NewString("text", 0)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := doc.Compile(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := doc.Dump(&bytes.Buffer{}, "x"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestDocumentTOC(t *testing.T) {
	src := "# One\n\n## Two\n\n### Three\n\n## Four\n\n# Five\n"
	doc, err := NewString(src, 0)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if err := doc.Compile(TOC); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var out bytes.Buffer
	if err := doc.WriteTOC(&out); err != nil {
		t.Fatalf("WriteTOC: %v", err)
	}
	want := "<ul>\n" +
		"<li><a href=\"#one\">One</a>\n<ul>\n" +
		"<li><a href=\"#two\">Two</a>\n<ul>\n" +
		"<li><a href=\"#three\">Three</a></li>\n</ul>\n</li>\n" +
		"<li><a href=\"#four\">Four</a></li>\n</ul>\n</li>\n" +
		"<li><a href=\"#five\">Five</a></li>\n" +
		"</ul>\n"
	if out.String() != want {
		t.Fatalf("toc=%q\nwant %q", out.String(), want)
	}

	out.Reset()
	if err := doc.WriteHTML(&out); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	mustContain(t, out.String(), `<h1 id="one">One</h1>`, `<h3 id="three">Three</h3>`)
}

func TestDocumentTOCNeedsFlag(t *testing.T) {
	doc, err := NewString("# One\n", 0)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if err := doc.Compile(0); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var out bytes.Buffer
	if err := doc.WriteTOC(&out); err != nil {
		t.Fatalf("WriteTOC: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no toc without TOC flag, got %q", out.String())
	}
}

func TestDocumentLinkFlags(t *testing.T) {
	t.Parallel()
	src := "[site](/docs) and ![logo](/logo.png) and [bad](javascript:alert)\n"
	tests := []struct {
		name     string
		flags    Flag
		contains []string
		omits    []string
	}{
		{
			name:     "default",
			contains: []string{`<a href="/docs">site</a>`, `<img src="/logo.png" alt="logo"`},
		},
		{
			name:     "nolinks",
			flags:    NoLinks,
			contains: []string{"site and ", `<img src="/logo.png"`},
			omits:    []string{"<a "},
		},
		{
			name:     "noimage",
			flags:    NoImage,
			contains: []string{`<a href="/docs">site</a>`, "and logo and"},
			omits:    []string{"<img"},
		},
		{
			name:     "safelink",
			flags:    Safelink,
			contains: []string{`<a href="/docs">site</a>`, "and bad"},
			omits:    []string{"javascript"},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := renderString(t, src, tc.flags)
			mustContain(t, out, tc.contains...)
			mustOmit(t, out, tc.omits...)
		})
	}
}

func TestDocumentSafelinkAutolinks(t *testing.T) {
	t.Parallel()
	src := "<javascript:alert(1)> and <https://example.com/> and <me@example.com>\n"
	out := renderString(t, src, Safelink)
	mustContain(t, out,
		"<p>javascript:alert(1) and ",
		`<a href="https://example.com/">https://example.com/</a>`,
		`<a href="mailto:me@example.com">me@example.com</a>`,
	)
	mustOmit(t, out, `href="javascript`)

	out = renderString(t, src, 0)
	mustContain(t, out, `<a href="javascript:alert(1)">`)
}

func TestDocumentURLBaseAndFlags(t *testing.T) {
	doc, err := NewString("[a](/x) [b](https://other.example/y) <https://c.example/>\n", 0)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	doc.SetURLBase("https://example.com/")
	var seen []string
	doc.SetURLFlags(`rel="nofollow"`, func(url []byte, data string) string {
		seen = append(seen, string(url))
		return data
	})
	if err := doc.Compile(0); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var out bytes.Buffer
	if err := doc.WriteHTML(&out); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	mustContain(t, out.String(),
		`<a href="https://example.com/x" rel="nofollow">a</a>`,
		`<a href="https://other.example/y" rel="nofollow">b</a>`,
		`<a href="https://c.example/" rel="nofollow">https://c.example/</a>`,
	)
	if len(seen) != 3 || seen[0] != "https://example.com/x" || seen[2] != "https://c.example/" {
		t.Fatalf("callback saw %v", seen)
	}
}

func TestDocumentFootnotePrefix(t *testing.T) {
	doc, err := NewString("Text[^1].\n\n[^1]: Note.\n", ExtraFootnote)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	doc.SetRefPrefix("doc")
	if err := doc.Compile(ExtraFootnote); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var out bytes.Buffer
	if err := doc.WriteHTML(&out); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	mustContain(t, out.String(), `id="doc-fn`, "Note.")
}

func TestDocumentExtensionsFollowFlags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		flags    Flag
		contains []string
		omits    []string
	}{
		{name: "table", src: "| a | b |\n|---|---|\n| 1 | 2 |\n", contains: []string{"<table>"}},
		{name: "notables", src: "| a | b |\n|---|---|\n| 1 | 2 |\n", flags: NoTables, omits: []string{"<table>"}},
		{name: "strike", src: "~~gone~~\n", contains: []string{"<del>gone</del>"}},
		{name: "nostrike", src: "~~gone~~\n", flags: NoStrikethrough, omits: []string{"<del>"}},
		{name: "superscript", src: "mc^2 and x^(a b)\n", contains: []string{"mc<sup>2</sup>", "x<sup>a b</sup>"}},
		{name: "strict", src: "mc^2\n", flags: Strict, contains: []string{"mc^2"}, omits: []string{"<sup>"}},
		{name: "nosuperscript", src: "mc^2\n", flags: NoSuperscript, omits: []string{"<sup>"}},
		{name: "autolink", src: "see https://example.com now\n", flags: Autolink, contains: []string{`<a href="https://example.com">`}},
		{name: "no autolink", src: "see https://example.com now\n", omits: []string{"<a "}},
		{name: "dlist", src: "Term\n: Definition\n", contains: []string{"<dl>", "<dt>Term</dt>"}},
		{name: "nodlist", src: "Term\n: Definition\n", flags: NoDList, omits: []string{"<dl>"}},
		{name: "html", src: "<b>raw</b>\n", contains: []string{"<b>raw</b>"}},
		{name: "nohtml", src: "<b>raw</b> text\n", flags: NoHTML, contains: []string{"<p>&lt;b&gt;raw&lt;/b&gt; text</p>"}, omits: []string{"<b>", "omitted"}},
		{name: "nohtml block", src: "<div>\nhi\n</div>\n", flags: NoHTML, contains: []string{"<p>&lt;div&gt;\nhi\n&lt;/div&gt;</p>"}, omits: []string{"<div>"}},
		{name: "cdata", src: "# T\n", flags: CData, contains: []string{"&lt;h1&gt;T&lt;/h1&gt;"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := renderString(t, tc.src, tc.flags)
			mustContain(t, out, tc.contains...)
			mustOmit(t, out, tc.omits...)
		})
	}
}

func TestDocumentHTML5Tags(t *testing.T) {
	src := "a\n\n***\n"
	mustContain(t, renderString(t, src, 0), "<hr />")
	out := renderString(t, src, 0, WithHTML5Tags(true))
	mustContain(t, out, "<hr>")
	mustOmit(t, out, "<hr />")
}

func TestDocumentPandocHeader(t *testing.T) {
	src := "% Title\n% Author\n% Today\n\nBody\n"
	doc, err := NewString(src, 0)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if doc.Title() != "Title" || doc.Author() != "Author" || doc.Date() != "Today" {
		t.Fatalf("header=%+v", doc.Header())
	}
	if err := doc.Compile(0); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var out bytes.Buffer
	_ = doc.WriteHTML(&out)
	if out.String() != "<p>Body</p>\n" {
		t.Fatalf("html=%q", out.String())
	}

	out.Reset()
	if err := doc.Compile(NoHeader); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	_ = doc.WriteHTML(&out)
	mustContain(t, out.String(), "% Title")
}

func TestDocumentDump(t *testing.T) {
	doc, err := NewString("# Title\n\npara\n", 0)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	var out bytes.Buffer
	if err := doc.Dump(&out, "stdin"); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := "stdin\n" +
		"Document\n" +
		"  Heading level=1\n" +
		"    Text \"Title\"\n" +
		"  Paragraph\n" +
		"    Text \"para\"\n"
	if out.String() != want {
		t.Fatalf("dump=%q\nwant %q", out.String(), want)
	}
	mustOmit(t, out.String(), "<")
}
