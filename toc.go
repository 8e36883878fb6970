package mkd

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark/ast"
)

type tocEntry struct {
	level int
	id    string
	text  string
}

func collectHeadings(root ast.Node, source []byte) []tocEntry {
	var entries []tocEntry
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		entry := tocEntry{level: h.Level, text: inlineText(h, source)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				entry.id = string(b)
			}
		}
		entries = append(entries, entry)
		return ast.WalkSkipChildren, nil
	})
	return entries
}

// inlineText concatenates the literal text below n.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.CodeSpan:
			for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
				if seg, ok := cc.(*ast.Text); ok {
					buf.Write(seg.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// writeTOC renders entries as nested lists. Levels are relative to the
// first heading and never skip more than one level at a time.
func writeTOC(buf *bytes.Buffer, entries []tocEntry) {
	if len(entries) == 0 {
		return
	}
	base := entries[0].level
	depth := 0
	for _, e := range entries {
		lvl := e.level - base + 1
		if lvl < 1 {
			lvl = 1
		}
		if lvl > depth+1 {
			lvl = depth + 1
		}
		switch {
		case lvl > depth:
			if depth > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString("<ul>\n")
			depth++
		case lvl == depth:
			buf.WriteString("</li>\n")
		default:
			buf.WriteString("</li>\n")
			for depth > lvl {
				buf.WriteString("</ul>\n</li>\n")
				depth--
			}
		}
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(e.id))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(e.text))
		buf.WriteString("</a>")
	}
	buf.WriteString("</li>\n")
	for depth > 0 {
		buf.WriteString("</ul>\n")
		depth--
		if depth > 0 {
			buf.WriteString("</li>\n")
		}
	}
}
