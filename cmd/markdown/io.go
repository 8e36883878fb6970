package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"
)

const defaultWidth = 80

// openInput opens the positional input argument. Plain paths and file://
// URLs are read from disk, http(s) URLs are fetched.
func openInput(raw string) (io.Reader, io.Closer, error) {
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return openURL(raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return openFile(path)
		}
	}
	return openFile(raw)
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// resolveOutput creates the -o file. An empty path means stdout and
// returns a nil writer.
func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return nil, nil, nil
	}
	f, err := os.Create(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	return path
}

// outputWidth is the terminal width of w, then $COLUMNS, then 80.
func outputWidth(w io.Writer, getenv func(string) string) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if getenv != nil {
		if value := getenv("COLUMNS"); value != "" {
			if width, err := strconv.Atoi(value); err == nil && width > 0 {
				return width
			}
		}
	}
	return defaultWidth
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// perror writes "resource: error" to w, reducing the error to the system
// error when there is one.
func perror(w io.Writer, resource string, err error) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		fmt.Fprintf(w, "%s: %v\n", resource, errno)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", resource, err)
}

// exitStatus is the system error number carried by err, or 1.
func exitStatus(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return 1
}
