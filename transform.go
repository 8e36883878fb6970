package mkd

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var safeSchemes = [][]byte{
	[]byte("http:"),
	[]byte("https:"),
	[]byte("ftp:"),
	[]byte("mailto:"),
	[]byte("news:"),
}

// linkTransformer applies the link and image flags to a parsed document:
// NoLinks and NoImage unwrap the node into its text, Safelink unwraps links
// and URL autolinks with an unknown scheme, and a URL base is prefixed onto
// rooted paths.
type linkTransformer struct {
	flags Flag
	base  string
}

func (t *linkTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	var unwrap []ast.Node
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			if t.flags.Has(NoLinks) || (t.flags.Has(Safelink) && !isSafeLink(node.Destination)) {
				unwrap = append(unwrap, node)
				return ast.WalkContinue, nil
			}
			node.Destination = t.rebase(node.Destination)
		case *ast.AutoLink:
			if t.flags.Has(NoLinks) || (t.flags.Has(Safelink) && node.AutoLinkType == ast.AutoLinkURL && !isSafeLink(node.URL(source))) {
				unwrap = append(unwrap, node)
			}
		case *ast.Image:
			if t.flags.Has(NoImage) {
				unwrap = append(unwrap, node)
				return ast.WalkContinue, nil
			}
			node.Destination = t.rebase(node.Destination)
		}
		return ast.WalkContinue, nil
	})
	for _, n := range unwrap {
		unwrapNode(n, source)
	}
}

func (t *linkTransformer) rebase(dest []byte) []byte {
	if t.base == "" || len(dest) == 0 || dest[0] != '/' || bytes.HasPrefix(dest, []byte("//")) {
		return dest
	}
	return append([]byte(strings.TrimSuffix(t.base, "/")), dest...)
}

func isSafeLink(dest []byte) bool {
	colon := bytes.IndexByte(dest, ':')
	if colon < 0 {
		return true
	}
	if slash := bytes.IndexAny(dest, "/?#"); slash >= 0 && slash < colon {
		return true
	}
	lower := bytes.ToLower(dest[:colon+1])
	for _, scheme := range safeSchemes {
		if bytes.Equal(lower, scheme) {
			return true
		}
	}
	return false
}

// unwrapNode replaces n by its children. An autolink has no children and
// is replaced by its URL text.
func unwrapNode(n ast.Node, source []byte) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	if auto, ok := n.(*ast.AutoLink); ok {
		parent.InsertBefore(parent, n, ast.NewString(auto.Label(source)))
	}
	for c := n.FirstChild(); c != nil; {
		next := c.NextSibling()
		parent.InsertBefore(parent, n, c)
		c = next
	}
	parent.RemoveChild(parent, n)
}
