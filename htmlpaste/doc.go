// Package htmlpaste converts pasted HTML fragments into the markdown
// dialect understood by the conversion core.
//
// When a user pastes rich content into the slide editor, the clipboard
// usually carries HTML. This package flattens that HTML into markdown
// lines (headings, list items, pipe tables, emphasis markers) which are
// then fed through the regular markdown pipeline. It is an input
// conversion, not HTML passthrough: unknown tags contribute only their
// text content.
package htmlpaste
