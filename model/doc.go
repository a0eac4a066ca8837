// Package model provides the intermediate representation (IR) for slide
// document elements.
//
// This package defines the user-facing data structures produced by markdown
// conversion. All conversion operations ultimately produce these types,
// making them the primary API for consuming converted content.
//
// # Elements
//
// All slide content implements the [Element] interface. The concrete types
// constructed by the conversion core are:
//
//   - [TextBox] - a styled text box holding paragraphs of runs
//   - [Table] - a table with a rectangular cell grid
//
// [Shape], [Image], and [Group] complete the element union for downstream
// consumers (selection, clipboard, persistence) but are never produced by
// the markdown pipeline.
//
// # Text
//
// Text is structured as [TextContent] -> [Paragraph] -> [Run], where a run
// is a contiguous span sharing one [TextStyle]. A paragraph never spans
// multiple source lines.
//
// # Geometry
//
// [Position], [Size], and [Rect] express placement on the canvas. The
// coordinate origin is the top-left corner of the slide.
package model
