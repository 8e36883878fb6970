package mkd

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindSuperscript is the node kind of A^B superscripts.
var KindSuperscript = ast.NewNodeKind("Superscript")

// Superscript is an inline ^word or ^(words) span.
type Superscript struct {
	ast.BaseInline
}

func (n *Superscript) Kind() ast.NodeKind {
	return KindSuperscript
}

func (n *Superscript) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type superscriptParser struct{}

func (superscriptParser) Trigger() []byte {
	return []byte{'^'}
}

func (superscriptParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, segment := block.PeekLine()
	if len(line) < 2 {
		return nil
	}
	start, stop, advance := 1, 1, 1
	if line[1] == '(' {
		for i := 2; i < len(line); i++ {
			if line[i] == ')' {
				start, stop, advance = 2, i, i+1
				break
			}
		}
	} else {
		for stop < len(line) && isSuperscriptByte(line[stop]) {
			stop++
		}
		advance = stop
	}
	if stop <= start {
		return nil
	}
	node := &Superscript{}
	node.AppendChild(node, ast.NewTextSegment(text.NewSegment(segment.Start+start, segment.Start+stop)))
	block.Advance(advance)
	return node
}

func isSuperscriptByte(b byte) bool {
	return b >= 0x80 || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

type superscriptRenderer struct{}

func (superscriptRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSuperscript, func(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			_, _ = w.WriteString("<sup>")
		} else {
			_, _ = w.WriteString("</sup>")
		}
		return ast.WalkContinue, nil
	})
}

type superscriptExtension struct{}

var superscript = &superscriptExtension{}

func (*superscriptExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(util.Prioritized(superscriptParser{}, 600)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(superscriptRenderer{}, 600)))
}
