package main

import (
	"io"
	"os"
	"path/filepath"

	"pkt.systems/version"
)

const defaultProgramName = "markdown"

func init() {
	version.SetDefaultModule("pkt.systems/mkd")
}

func main() {
	os.Exit(run(os.Args, os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation of the command and returns its exit status.
func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	return runWith(mkdEngine{}, args, getenv, stdin, stdout, stderr)
}

func runWith(eng engine, args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	pgm := defaultProgramName
	if len(args) > 0 {
		pgm = programName(args[0])
		args = args[1:]
	}

	cfg, status, ok := resolveConfig(pgm, args, getenv, stderr)
	if !ok {
		return status
	}

	out, closeOut, err := resolveOutput(cfg.output)
	if err != nil {
		perror(stderr, cfg.output, err)
		return 1
	}
	if out == nil {
		out = stdout
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	cfg.width = outputWidth(out, getenv)
	return dispatch(eng, cfg, stdin, out, stderr)
}

func programName(arg0 string) string {
	if arg0 == "" {
		return defaultProgramName
	}
	return filepath.Base(arg0)
}
