package mkd

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// URLFlagsFunc returns extra attribute text for the <a> tag of a link. It
// receives the link destination and the data given to SetURLFlags.
type URLFlagsFunc func(url []byte, data string) string

// linkRenderer replaces goldmark's link and autolink renderers so URL
// flags can be appended to the opening tag.
type linkRenderer struct {
	links  linkSettings
	unsafe bool
}

func newLinkRenderer(links linkSettings, unsafe bool) renderer.NodeRenderer {
	return &linkRenderer{links: links, unsafe: unsafe}
}

func (r *linkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
}

func (r *linkRenderer) renderLink(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<a href="`)
	if r.unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	r.writeExtra(w, n, n.Destination)
	return ast.WalkContinue, nil
}

func (r *linkRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.AutoLink)
	if !entering {
		return ast.WalkContinue, nil
	}
	url := n.URL(source)
	_, _ = w.WriteString(`<a href="`)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		_, _ = w.WriteString("mailto:")
	}
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(url, false)))
	_ = w.WriteByte('"')
	r.writeExtra(w, n, url)
	_, _ = w.Write(util.EscapeHTML(n.Label(source)))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

// writeExtra finishes an opening <a> tag with the URL flags and any
// attributes set on the node.
func (r *linkRenderer) writeExtra(w util.BufWriter, n ast.Node, url []byte) {
	if r.links.urlFlags != nil {
		if extra := r.links.urlFlags(url, r.links.data); extra != "" {
			_ = w.WriteByte(' ')
			_, _ = w.WriteString(extra)
		}
	}
	if n.Attributes() != nil {
		html.RenderAttributes(w, n, html.LinkAttributeFilter)
	}
	_ = w.WriteByte('>')
}
