// Package mkd converts Markdown to HTML with a discount-compatible feature
// mask.
//
// Every parsing and rendering switch is a bit in a Flag. Masks can be built
// from constants, parsed from numbers with ParseFlag (the MARKDOWN_FLAGS and
// -F syntax of discount), or edited with named options:
//
//	var flags mkd.Flag
//	flags.Apply("toc,nopants,-image")
//
// A Document is read first and compiled later, so link settings can be
// attached in between:
//
//	doc, err := mkd.NewReader(os.Stdin, flags)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer doc.Close()
//	doc.SetURLBase("https://example.com")
//	if err := doc.Compile(flags); err != nil {
//		log.Fatal(err)
//	}
//	_ = doc.WriteTOC(os.Stdout)
//	_ = doc.WriteHTML(os.Stdout)
//
// GenerateLine renders a single line of inline Markdown without building a
// Document. Parsing and HTML output are done by goldmark.
package mkd
