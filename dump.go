package mkd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// dumpTree writes one line per node, indented by depth. Inline text is
// quoted so the dump never contains markup of its own.
func dumpTree(w io.Writer, title string, header Header, root ast.Node, source []byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", title)
	if !header.empty() {
		fmt.Fprintf(bw, "%% title=%q author=%q date=%q\n", header.Title, header.Author, header.Date)
	}
	depth := 0
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			depth--
			return ast.WalkContinue, nil
		}
		bw.WriteString(strings.Repeat("  ", depth))
		bw.WriteString(describeNode(n, source))
		bw.WriteByte('\n')
		depth++
		return ast.WalkContinue, nil
	})
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}

func describeNode(n ast.Node, source []byte) string {
	name := n.Kind().String()
	switch node := n.(type) {
	case *ast.Heading:
		return fmt.Sprintf("%s level=%d", name, node.Level)
	case *ast.List:
		if node.IsOrdered() {
			return fmt.Sprintf("%s ordered start=%d tight=%t", name, node.Start, node.IsTight)
		}
		return fmt.Sprintf("%s marker=%q tight=%t", name, node.Marker, node.IsTight)
	case *ast.FencedCodeBlock:
		return fmt.Sprintf("%s lang=%q lines=%d", name, node.Language(source), node.Lines().Len())
	case *ast.CodeBlock, *ast.HTMLBlock:
		return fmt.Sprintf("%s lines=%d", name, n.Lines().Len())
	case *ast.Text:
		return fmt.Sprintf("%s %q", name, node.Segment.Value(source))
	case *ast.String:
		return fmt.Sprintf("%s %q", name, node.Value)
	case *ast.Emphasis:
		return fmt.Sprintf("%s level=%d", name, node.Level)
	case *ast.Link:
		return fmt.Sprintf("%s dest=%q", name, node.Destination)
	case *ast.Image:
		return fmt.Sprintf("%s src=%q", name, node.Destination)
	case *ast.AutoLink:
		return fmt.Sprintf("%s url=%q", name, node.URL(source))
	case *ast.RawHTML:
		return fmt.Sprintf("%s segments=%d", name, node.Segments.Len())
	case *east.FootnoteLink:
		return fmt.Sprintf("%s index=%d", name, node.Index)
	}
	return name
}
