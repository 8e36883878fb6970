package mkd

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// linkSettings are the per-document values consulted while rewriting and
// rendering links.
type linkSettings struct {
	base     string
	data     string
	urlFlags URLFlagsFunc
}

// newMarkdown assembles a goldmark pipeline for one flag set.
func newMarkdown(flags Flag, cfg renderConfig, links linkSettings, refPrefix string) goldmark.Markdown {
	exts := inlineExtensions(flags)
	if !flags.Has(NoTables) {
		exts = append(exts, extension.Table)
	}
	if !flags.Has(NoDList) {
		exts = append(exts, extension.DefinitionList)
	}
	if flags.Has(ExtraFootnote) {
		var fopts []extension.FootnoteOption
		if refPrefix != "" {
			fopts = append(fopts, extension.WithFootnoteIDPrefix([]byte(refPrefix+"-")))
		}
		exts = append(exts, extension.NewFootnote(fopts...))
	}

	parserOpts := []parser.Option{
		parser.WithASTTransformers(util.Prioritized(&linkTransformer{flags: flags, base: links.base}, 100)),
	}
	if flags.Has(TOC) {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOptions(flags, cfg, links)...),
	)
}

// newLineMarkdown assembles a pipeline that only knows paragraphs, so every
// block construct stays literal text and only inline markup is formatted.
func newLineMarkdown(flags Flag, cfg renderConfig) goldmark.Markdown {
	p := parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithASTTransformers(util.Prioritized(&linkTransformer{flags: flags}, 100)),
	)
	return goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(inlineExtensions(flags)...),
		goldmark.WithRendererOptions(rendererOptions(flags, cfg, linkSettings{})...),
	)
}

func inlineExtensions(flags Flag) []goldmark.Extender {
	var exts []goldmark.Extender
	if !flags.Has(NoStrikethrough) {
		exts = append(exts, extension.Strikethrough)
	}
	if !flags.Has(NoPants) {
		exts = append(exts, extension.Typographer)
	}
	if flags.Has(Autolink) {
		exts = append(exts, extension.Linkify)
	}
	if !flags.Has(NoSuperscript) && !flags.Has(Strict) {
		exts = append(exts, superscript)
	}
	return exts
}

func rendererOptions(flags Flag, cfg renderConfig, links linkSettings) []renderer.Option {
	opts := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(newLinkRenderer(links, !flags.Has(NoHTML)), 100)),
	}
	if flags.Has(NoHTML) {
		opts = append(opts, renderer.WithNodeRenderers(util.Prioritized(escapedHTMLRenderer{}, 100)))
	} else {
		opts = append(opts, html.WithUnsafe())
	}
	if !cfg.html5 {
		opts = append(opts, html.WithXHTML())
	}
	return opts
}
