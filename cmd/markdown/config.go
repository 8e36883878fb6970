package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"pkt.systems/mkd"
	"pkt.systems/version"
)

const flagsEnv = "MARKDOWN_FLAGS"

var errTooManyOutputs = errors.New("too many -o options")

// mode is the terminal action of a run.
type mode int

const (
	modeCompileAndEmit mode = iota
	modeShowVersion
	modeRenderLine
	modeDumpDebugTree
)

func (m mode) String() string {
	switch m {
	case modeShowVersion:
		return "show-version"
	case modeRenderLine:
		return "render-line"
	case modeDumpDebugTree:
		return "dump-debug-tree"
	default:
		return "compile-and-emit"
	}
}

// source says where a document is read from.
type source int

const (
	sourceStream source = iota
	sourceString
)

func (s source) String() string {
	if s == sourceString {
		return "string"
	}
	return "stream"
}

// config is the resolved command line of one run.
type config struct {
	pgm       string
	mask      mkd.Flag
	verbosity int
	html5     bool
	debug     bool
	toc       bool
	lineMode  bool
	text      string
	hasText   bool
	input     string
	output    string
	urlBase   string
	urlFlags  string
	refPrefix string
	width     int
}

func (c *config) mode() mode {
	switch {
	case c.verbosity > 0:
		return modeShowVersion
	case c.lineMode:
		return modeRenderLine
	case c.debug:
		return modeDumpDebugTree
	default:
		return modeCompileAndEmit
	}
}

func (c *config) source() source {
	if c.hasText {
		return sourceString
	}
	return sourceStream
}

// inputLabel names the input in dumps and error messages.
func (c *config) inputLabel() string {
	if c.input == "" {
		return "stdin"
	}
	return c.input
}

// initialMask reads MARKDOWN_FLAGS. A missing value, or one without
// leading digits, gives 0.
func initialMask(getenv func(string) string) mkd.Flag {
	if getenv == nil {
		return 0
	}
	return mkd.ParseFlag(getenv(flagsEnv))
}

// resolveConfig builds the run configuration from the environment and
// args (without the program name). When ok is false the caller must exit
// with status; the reason has already been written to stderr.
func resolveConfig(pgm string, args []string, getenv func(string) string, stderr io.Writer) (cfg *config, status int, ok bool) {
	cfg = &config{pgm: pgm, mask: initialMask(getenv)}

	flags := newFlagSet(cfg, stderr)
	out := flags.Lookup("output").Value.(*outputValue)
	if err := flags.Parse(args); err != nil {
		if out.duplicate {
			fmt.Fprintln(stderr, "Too many -o options")
			return nil, 1, false
		}
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stderr, "%s: %v\n", pgm, err)
		}
		printUsage(stderr, pgm, flags)
		return nil, 1, false
	}

	if rest := flags.Args(); len(rest) > 0 {
		cfg.input = rest[0]
	}
	return cfg, 0, true
}

func newFlagSet(cfg *config, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet(cfg.pgm, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SortFlags = false

	flags.BoolVarP(&cfg.html5, "html5", "5", false, "Use the HTML5 tag set")
	flags.StringVarP(&cfg.urlBase, "base", "b", "", "URL base prefixed onto links starting with /")
	flags.VarP(&textValue{cfg: cfg}, "string", "s", "Use text as the document instead of a file")
	flags.VarP(&textValue{cfg: cfg, line: true}, "line", "t", "Render text as a single line of Markdown")
	flags.StringVarP(&cfg.refPrefix, "ref-prefix", "C", "", "Prefix for footnote ids")
	flags.BoolVarP(&cfg.debug, "debug", "d", false, "Dump the parse tree instead of HTML")
	flags.VarP(&optionsValue{mask: &cfg.mask, warn: func(name string) {
		fmt.Fprintf(stderr, "%s: unknown option <%s>\n", cfg.pgm, name)
	}}, "flags", "f", "Apply comma-separated named options")
	flags.StringVarP(&cfg.urlFlags, "url-flags", "E", "", "Extra attributes added to every link")
	flags.VarP(&maskValue{mask: &cfg.mask}, "flag-mask", "F", "Replace the flag mask with a number")
	flags.VarP(&outputValue{path: &cfg.output}, "output", "o", "Output file instead of stdout")
	flags.BoolVarP(&cfg.toc, "toc", "T", false, "Write a table of contents before the body")
	flags.CountVarP(&cfg.verbosity, "version", "V", "Print the version; twice also lists active flags")

	flags.SetInterspersed(true)
	return flags
}

func printUsage(w io.Writer, pgm string, flags *pflag.FlagSet) {
	fmt.Fprintln(w, version.Module(), version.Current())
	fmt.Fprintf(w, "usage: %s [-dTV] [-b url-base] [-C prefix] [-E url-flags]"+
		" [-F bitmap] [-f {+-}flags] [-o ofile] [-s text] [-t text] [file]\n", pgm)
	fmt.Fprintf(w, "\nIf no file is given, Markdown is read from stdin. %s seeds the flag mask.\n", flagsEnv)
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprint(w, flags.FlagUsages())
}
