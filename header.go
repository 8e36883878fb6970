package mkd

import "bytes"

// Header is the pandoc-style title block of a document:
//
//	% title
//	% author
//	% date
type Header struct {
	Title  string
	Author string
	Date   string
}

func (h Header) empty() bool {
	return h.Title == "" && h.Author == "" && h.Date == ""
}

// splitHeader separates leading metadata from the Markdown body. A fenced
// front matter block (---, +++ or ;;;) is dropped. A three line % block is
// parsed into a Header unless pandoc is false.
func splitHeader(src []byte, pandoc bool) (Header, []byte) {
	src = trimBOM(src)
	if body, ok := skipFrontMatter(src); ok {
		src = body
	}
	if !pandoc {
		return Header{}, src
	}

	var fields [3]string
	next := 0
	for i := range fields {
		line, n, ok := nextLine(src, next)
		if !ok || len(line) == 0 || line[0] != '%' {
			return Header{}, src
		}
		fields[i] = string(bytes.TrimSpace(line[1:]))
		next = n
	}
	return Header{Title: fields[0], Author: fields[1], Date: fields[2]}, src[next:]
}

func skipFrontMatter(src []byte) ([]byte, bool) {
	openLine, openNext, ok := nextLine(src, 0)
	if !ok {
		return nil, false
	}
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return nil, false
	}
	secondLine, secondNext, ok := nextLine(src, openNext)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return nil, false
	}
	closeNext, found := findClosingFrontMatterDelimiter(src, secondNext, delim)
	if !found {
		return nil, false
	}
	return src[closeNext:], true
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(line)
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return next, true
		}
		idx = next
	}
	return 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
