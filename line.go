package mkd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark/text"
)

// GenerateLine renders text as inline Markdown without wrapping it in a
// paragraph. Block syntax such as headings, lists or fences is not
// recognized and comes out as literal text; blank-line separated runs are
// joined with a newline.
func GenerateLine(w io.Writer, line string, flags Flag, opts ...RenderOption) error {
	src := []byte(line)
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("generate line: %w", err)
	}
	md := newLineMarkdown(flags, newRenderConfig(opts))
	root := md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	for para := root.FirstChild(); para != nil; para = para.NextSibling() {
		if para != root.FirstChild() {
			buf.WriteByte('\n')
		}
		for c := para.FirstChild(); c != nil; c = c.NextSibling() {
			if err := md.Renderer().Render(&buf, src, c); err != nil {
				return fmt.Errorf("generate line: %w", err)
			}
		}
	}
	return writeOutput(w, buf.Bytes(), flags)
}
