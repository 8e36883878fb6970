package mkd

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	// ErrClosed is returned by operations on a released Document.
	ErrClosed = errors.New("document is closed")
	// ErrNotCompiled is returned when output is requested before Compile.
	ErrNotCompiled = errors.New("document is not compiled")
)

// Document is a Markdown document that has been read but not yet
// compiled. Attach link settings, Compile it with the final flags, then
// write the table of contents and body.
type Document struct {
	raw    []byte
	flags  Flag
	cfg    renderConfig
	header Header
	body   []byte

	links     linkSettings
	refPrefix string

	md       goldmark.Markdown
	root     ast.Node
	compiled Flag
	ready    bool
	closed   bool
}

// NewString creates a Document from text.
func NewString(text string, flags Flag, opts ...RenderOption) (*Document, error) {
	return newDocument([]byte(text), flags, opts)
}

// NewReader creates a Document from everything r returns.
func NewReader(r io.Reader, flags Flag, opts ...RenderOption) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("new document: reader is nil")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}
	return newDocument(src, flags, opts)
}

func newDocument(src []byte, flags Flag, opts []RenderOption) (*Document, error) {
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}
	d := &Document{raw: src, flags: flags, cfg: newRenderConfig(opts)}
	d.header, d.body = splitHeader(src, !flags.Has(NoHeader))
	return d, nil
}

// SetURLBase sets the prefix for link and image destinations that start
// with '/'.
func (d *Document) SetURLBase(base string) {
	d.links.base = base
	d.ready = false
}

// SetURLFlags registers fn to produce extra <a> attributes from data.
func (d *Document) SetURLFlags(data string, fn URLFlagsFunc) {
	d.links.data = data
	d.links.urlFlags = fn
	d.ready = false
}

// SetRefPrefix sets the prefix used for footnote ids.
func (d *Document) SetRefPrefix(prefix string) {
	d.refPrefix = prefix
	d.ready = false
}

// Header returns the pandoc title block, if the document has one.
func (d *Document) Header() Header {
	return d.header
}

// Title returns the first line of the pandoc header, or "".
func (d *Document) Title() string { return d.header.Title }

// Author returns the second line of the pandoc header, or "".
func (d *Document) Author() string { return d.header.Author }

// Date returns the third line of the pandoc header, or "".
func (d *Document) Date() string { return d.header.Date }

// Compile parses the document with flags. Compiling again with different
// flags reparses the source.
func (d *Document) Compile(flags Flag) error {
	if d.closed {
		return ErrClosed
	}
	if flags.Has(NoHeader) != d.flags.Has(NoHeader) {
		d.header, d.body = splitHeader(d.raw, !flags.Has(NoHeader))
	}
	d.flags = flags
	d.md = newMarkdown(flags, d.cfg, d.links, d.refPrefix)
	d.root = d.md.Parser().Parse(text.NewReader(d.body))
	d.compiled = flags
	d.ready = true
	return nil
}

func (d *Document) compiledRoot() (ast.Node, error) {
	if d.closed {
		return nil, ErrClosed
	}
	if !d.ready {
		return nil, ErrNotCompiled
	}
	return d.root, nil
}

// WriteHTML writes the document body as HTML.
func (d *Document) WriteHTML(w io.Writer) error {
	root, err := d.compiledRoot()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := d.md.Renderer().Render(&buf, d.body, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return writeOutput(w, buf.Bytes(), d.compiled)
}

// WriteTOC writes a nested list linking every heading. Nothing is written
// unless the document was compiled with TOC.
func (d *Document) WriteTOC(w io.Writer) error {
	root, err := d.compiledRoot()
	if err != nil {
		return err
	}
	if !d.compiled.Has(TOC) {
		return nil
	}
	var buf bytes.Buffer
	writeTOC(&buf, collectHeadings(root, d.body))
	return writeOutput(w, buf.Bytes(), d.compiled)
}

// Dump writes the parse tree of the document, headed by title. An
// uncompiled document is compiled with its construction flags first.
func (d *Document) Dump(w io.Writer, title string) error {
	if d.closed {
		return ErrClosed
	}
	if !d.ready {
		if err := d.Compile(d.flags); err != nil {
			return err
		}
	}
	return dumpTree(w, title, d.header, d.root, d.body)
}

// Close releases the parse tree. Other methods return ErrClosed
// afterwards; closing twice is a no-op.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.root = nil
	d.md = nil
	d.raw = nil
	d.body = nil
	return nil
}

func writeOutput(w io.Writer, out []byte, flags Flag) error {
	if flags.Has(CData) {
		out = []byte(html.EscapeString(string(out)))
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
