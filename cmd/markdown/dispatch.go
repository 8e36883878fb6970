package main

import (
	"fmt"
	"io"
	"path/filepath"

	"pkt.systems/mkd"
)

// engine is the part of pkt.systems/mkd the command drives.
type engine interface {
	GenerateLine(w io.Writer, text string, flags mkd.Flag, opts ...mkd.RenderOption) error
	NewString(text string, flags mkd.Flag, opts ...mkd.RenderOption) (document, error)
	NewReader(r io.Reader, flags mkd.Flag, opts ...mkd.RenderOption) (document, error)
	Version() string
	DescribeFlags(w io.Writer, flags mkd.Flag, width int) error
}

// document is the handle returned by an engine.
type document interface {
	SetURLBase(base string)
	SetURLFlags(data string, fn mkd.URLFlagsFunc)
	SetRefPrefix(prefix string)
	Dump(w io.Writer, title string) error
	Compile(flags mkd.Flag) error
	WriteTOC(w io.Writer) error
	WriteHTML(w io.Writer) error
	Close() error
}

type mkdEngine struct{}

func (mkdEngine) GenerateLine(w io.Writer, text string, flags mkd.Flag, opts ...mkd.RenderOption) error {
	return mkd.GenerateLine(w, text, flags, opts...)
}

func (mkdEngine) NewString(text string, flags mkd.Flag, opts ...mkd.RenderOption) (document, error) {
	doc, err := mkd.NewString(text, flags, opts...)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (mkdEngine) NewReader(r io.Reader, flags mkd.Flag, opts ...mkd.RenderOption) (document, error) {
	doc, err := mkd.NewReader(r, flags, opts...)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (mkdEngine) Version() string {
	return mkd.Version()
}

func (mkdEngine) DescribeFlags(w io.Writer, flags mkd.Flag, width int) error {
	return mkd.DescribeFlags(w, flags, width)
}

// echoURLFlags hands the -E data back unchanged for every link.
func echoURLFlags(_ []byte, data string) string {
	return data
}

// dispatch performs the single terminal action selected by cfg and returns
// the exit status.
func dispatch(eng engine, cfg *config, stdin io.Reader, out, stderr io.Writer) int {
	opts := []mkd.RenderOption{mkd.WithHTML5Tags(cfg.html5)}

	switch cfg.mode() {
	case modeShowVersion:
		return showVersion(eng, cfg, out, stderr)
	case modeRenderLine:
		if err := eng.GenerateLine(out, cfg.text, cfg.mask, opts...); err != nil {
			perror(stderr, cfg.pgm, err)
			return exitStatus(err)
		}
		return 0
	}

	doc, status := openDocument(eng, cfg, stdin, stderr, opts)
	if doc == nil {
		return status
	}
	defer func() { _ = doc.Close() }()

	if cfg.urlBase != "" {
		doc.SetURLBase(cfg.urlBase)
	}
	if cfg.urlFlags != "" {
		doc.SetURLFlags(cfg.urlFlags, echoURLFlags)
	}
	if cfg.refPrefix != "" {
		doc.SetRefPrefix(cfg.refPrefix)
	}

	if cfg.mode() == modeDumpDebugTree {
		if err := doc.Dump(out, dumpLabel(cfg)); err != nil {
			perror(stderr, cfg.inputLabel(), err)
			return exitStatus(err)
		}
		return 0
	}

	if err := doc.Compile(cfg.mask); err != nil {
		return exitStatus(err)
	}
	if cfg.toc {
		if err := doc.WriteTOC(out); err != nil {
			perror(stderr, cfg.pgm, err)
			return exitStatus(err)
		}
	}
	if err := doc.WriteHTML(out); err != nil {
		perror(stderr, cfg.pgm, err)
		return exitStatus(err)
	}
	return 0
}

// openDocument builds the document from -s text or from the input file
// (stdin when none). On failure it reports the resource and returns a nil
// document with the exit status.
func openDocument(eng engine, cfg *config, stdin io.Reader, stderr io.Writer, opts []mkd.RenderOption) (document, int) {
	if cfg.source() == sourceString {
		doc, err := eng.NewString(cfg.text, cfg.mask, opts...)
		if err != nil {
			perror(stderr, cfg.text, err)
			return nil, exitStatus(err)
		}
		return doc, 0
	}

	in := stdin
	if cfg.input != "" {
		reader, closer, err := openInput(cfg.input)
		if err != nil {
			perror(stderr, cfg.input, err)
			return nil, exitStatus(err)
		}
		if closer != nil {
			defer func() { _ = closer.Close() }()
		}
		in = reader
	} else if isTerminal(stdin) {
		fmt.Fprintf(stderr, "%s: reading Markdown from the terminal, end with EOF\n", cfg.pgm)
	}

	doc, err := eng.NewReader(in, cfg.mask, opts...)
	if err != nil {
		perror(stderr, cfg.inputLabel(), err)
		return nil, exitStatus(err)
	}
	return doc, 0
}

func dumpLabel(cfg *config) string {
	if cfg.input == "" {
		return "stdin"
	}
	return filepath.Base(cfg.input)
}

func showVersion(eng engine, cfg *config, out, stderr io.Writer) int {
	html5 := ""
	if cfg.html5 {
		html5 = " +html5"
	}
	fmt.Fprintf(out, "%s: discount-compatible mkd %s%s\n", cfg.pgm, eng.Version(), html5)
	if cfg.verbosity > 1 {
		if err := eng.DescribeFlags(out, cfg.mask, cfg.width); err != nil {
			perror(stderr, cfg.pgm, err)
			return exitStatus(err)
		}
	}
	return 0
}
