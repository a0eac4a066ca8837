// Package markdown converts free-form markdown text into slide document
// elements.
//
// The conversion is a single forward scan over source lines. Each line is
// classified as a heading, list item, horizontal rule, table row, or plain
// paragraph; inline emphasis markup inside a line is split into styled runs.
// A contiguous pipe-table block (header, alignment separator, data rows)
// becomes one table element; every other run of content lines becomes one
// text box.
//
// The [Converter] carries the injected collaborators: an identifier
// generator, the style theme, and the canvas size.
//
//	conv := markdown.New(ident.NewRandom(), theme.Default(), canvas.Default())
//	elements := conv.Elements("# Title\n\nSome **bold** text")
//
// Conversion never fails: malformed markup degrades to literal text, and
// empty input produces a single placeholder text box.
package markdown
