package model

// ElementKind represents the type of slide element.
type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindTextBox
	KindShape
	KindImage
	KindTable
	KindGroup
)

func (k ElementKind) String() string {
	switch k {
	case KindTextBox:
		return "TextBox"
	case KindShape:
		return "Shape"
	case KindImage:
		return "Image"
	case KindTable:
		return "Table"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Element is the interface for all slide elements.
type Element interface {
	Kind() ElementKind
	ID() string
	Bounds() Rect
	ZIndex() int
	// MoveTo repositions the element; used by layout placement.
	MoveTo(Position)
}

// Box holds the fields common to every slide element.
type Box struct {
	ElementID string
	Position  Position
	Size      Size
	ZOrder    int
}

func (b *Box) ID() string { return b.ElementID }
func (b *Box) Bounds() Rect {
	return Rect{b.Position, b.Size}
}
func (b *Box) ZIndex() int       { return b.ZOrder }
func (b *Box) MoveTo(p Position) { b.Position = p }

// Border represents one edge of an element or cell border.
type Border struct {
	Width float64
	Color Color
}

// BoxStyle represents text-box level styling. Nil fields mean transparent
// fill and no border.
type BoxStyle struct {
	Fill   *Color
	Border *Border
}

// TextBox is a styled text box positioned on the canvas.
type TextBox struct {
	Box
	Content TextContent
	Style   BoxStyle
}

func (t *TextBox) Kind() ElementKind { return KindTextBox }

// GetText returns the text box content as plain text.
func (t *TextBox) GetText() string { return t.Content.PlainText() }

// Shape is a geometric shape element. The markdown pipeline never produces
// shapes, but the kind stays representable for downstream consumers.
type Shape struct {
	Box
	Path string
	Fill Color
}

func (s *Shape) Kind() ElementKind { return KindShape }

// Image is an image element referencing external picture data.
type Image struct {
	Box
	Source  string
	AltText string
}

func (i *Image) Kind() ElementKind { return KindImage }

// Group is a container element holding child elements.
type Group struct {
	Box
	Children []Element
}

func (g *Group) Kind() ElementKind { return KindGroup }
