// Package slidemark provides a fluent API for converting markdown and
// pasted HTML into slide document elements.
//
// Basic usage:
//
//	elements := slidemark.MarkdownToElements("# Title\n\nSome **bold** text")
//
// With options:
//
//	elements, err := slidemark.Convert(source).
//	    WithTheme(customTheme).
//	    WithCanvas(1280, 720).
//	    Elements()
//
// For advanced use cases, the lower-level markdown package is also
// available.
package slidemark

import (
	"github.com/slideforge/slidemark/htmlpaste"
	"github.com/slideforge/slidemark/ident"
	"github.com/slideforge/slidemark/markdown"
	"github.com/slideforge/slidemark/model"
	"github.com/slideforge/slidemark/theme"
)

// Conversion is a fluent builder for one conversion call. Configure it with
// the With* methods, then run a terminal operation (Elements or
// TextContent). A Conversion is single-use and not safe for concurrent use.
type Conversion struct {
	source string
	isHTML bool
	opts   convertOptions
}

// Convert starts a conversion from markdown source.
func Convert(markdown string) *Conversion {
	return &Conversion{
		source: markdown,
		opts:   defaultConvertOptions(),
	}
}

// ConvertHTML starts a conversion from a pasted HTML fragment. The fragment
// is flattened to markdown before entering the pipeline.
func ConvertHTML(html string) *Conversion {
	return &Conversion{
		source: html,
		isHTML: true,
		opts:   defaultConvertOptions(),
	}
}

// WithIDs sets the identifier generator. Tests use a deterministic sequence
// here; the default is a random generator.
func (c *Conversion) WithIDs(g ident.Generator) *Conversion {
	c.opts.ids = g
	return c
}

// WithTheme sets the style defaults copied into converted elements.
func (c *Conversion) WithTheme(t *theme.Theme) *Conversion {
	c.opts.theme = t
	return c
}

// WithCanvas overrides the canvas dimensions used for position math.
func (c *Conversion) WithCanvas(width, height float64) *Conversion {
	c.opts.space.Width = width
	c.opts.space.Height = height
	return c
}

// Elements runs the full pipeline and returns the laid-out element
// sequence. The sequence is never empty. The only possible error is an
// HTML parse failure on a ConvertHTML source; markdown conversion itself
// never fails.
func (c *Conversion) Elements() ([]model.Element, error) {
	source, err := c.markdownSource()
	if err != nil {
		return nil, err
	}
	return c.converter().Elements(source), nil
}

// TextContent runs the paragraph-only pipeline: no table elements are
// built, and pipe rows flatten into plain paragraphs.
func (c *Conversion) TextContent() (model.TextContent, error) {
	source, err := c.markdownSource()
	if err != nil {
		return model.TextContent{}, err
	}
	return c.converter().TextContent(source), nil
}

func (c *Conversion) markdownSource() (string, error) {
	if c.isHTML {
		return htmlpaste.ConvertString(c.source)
	}
	return c.source, nil
}

func (c *Conversion) converter() *markdown.Converter {
	return markdown.New(c.opts.ids, c.opts.theme, c.opts.space)
}

// MarkdownToElements converts markdown with default collaborators. The
// returned sequence is never empty.
func MarkdownToElements(source string) []model.Element {
	elements, _ := Convert(source).Elements()
	return elements
}

// MarkdownToTextContent converts markdown to paragraphs only, with default
// collaborators.
func MarkdownToTextContent(source string) model.TextContent {
	content, _ := Convert(source).TextContent()
	return content
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	elements := slidemark.Must(slidemark.ConvertHTML(clip).Elements())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
