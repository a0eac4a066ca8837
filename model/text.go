package model

import "strings"

// FontWeight represents a CSS-style numeric font weight.
type FontWeight int

// Common font weights.
const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

// IsBold returns true for weights at or above bold.
func (w FontWeight) IsBold() bool {
	return w >= WeightBold
}

// Decoration represents a text decoration line.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationUnderline
	DecorationStrikethrough
)

func (d Decoration) String() string {
	switch d {
	case DecorationUnderline:
		return "Underline"
	case DecorationStrikethrough:
		return "Strikethrough"
	default:
		return "None"
	}
}

// Alignment represents horizontal paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return "Left"
	}
}

// BulletType represents the list marker of a paragraph.
type BulletType int

const (
	BulletNone BulletType = iota
	BulletDisc
	BulletNumber
)

func (b BulletType) String() string {
	switch b {
	case BulletDisc:
		return "Disc"
	case BulletNumber:
		return "Number"
	default:
		return "None"
	}
}

// Color represents an RGB color.
type Color struct {
	R, G, B uint8
}

// TextStyle represents the styling of a single run. It is an immutable
// value; each run carries its own copy.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	Weight     FontWeight
	Italic     bool
	Decoration Decoration
	Color      Color
}

// Run is an atomic styled text fragment.
type Run struct {
	ID    string
	Text  string
	Style TextStyle
}

// Paragraph is one logical line of content composed of runs, with
// block-level formatting.
type Paragraph struct {
	ID        string
	Runs      []Run
	Alignment Alignment
	Bullet    BulletType
	Indent    int
}

// PlainText returns the concatenated run text of the paragraph.
func (p Paragraph) PlainText() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// TextContent is an ordered sequence of paragraphs.
type TextContent struct {
	Paragraphs []Paragraph
}

// PlainText returns the paragraphs' text joined with newlines.
func (tc TextContent) PlainText() string {
	lines := make([]string, len(tc.Paragraphs))
	for i, p := range tc.Paragraphs {
		lines[i] = p.PlainText()
	}
	return strings.Join(lines, "\n")
}

// IsEmpty returns true when the content holds no paragraphs.
func (tc TextContent) IsEmpty() bool {
	return len(tc.Paragraphs) == 0
}
