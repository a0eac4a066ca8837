package markdown

import (
	"strings"

	"github.com/slideforge/slidemark/canvas"
	"github.com/slideforge/slidemark/ident"
	"github.com/slideforge/slidemark/layout"
	"github.com/slideforge/slidemark/model"
	"github.com/slideforge/slidemark/theme"
)

// Default text box dimensions, in canvas units.
const (
	textBoxWidth  = 400.0
	textBoxHeight = 200.0
)

// cellJoin separates flattened table cells in paragraph-only conversion.
const cellJoin = "  |  "

// Converter turns markdown text into slide elements. It holds the injected
// collaborators and retains no state between calls; one Converter must not
// be shared across concurrent conversions because the identifier generator
// is not required to be concurrency-safe.
type Converter struct {
	ids   ident.Generator
	theme *theme.Theme
	space canvas.Space
}

// New creates a Converter. Nil collaborators fall back to the production
// defaults.
func New(ids ident.Generator, th *theme.Theme, space canvas.Space) *Converter {
	if ids == nil {
		ids = ident.NewRandom()
	}
	if th == nil {
		th = theme.Default()
	}
	if space.Width <= 0 || space.Height <= 0 {
		space = canvas.Default()
	}
	return &Converter{ids: ids, theme: th, space: space}
}

// Elements converts markdown into a laid-out sequence of slide elements.
// The result is never empty: input that yields no content produces a single
// fallback text box.
func (c *Converter) Elements(markdown string) []model.Element {
	lines := strings.Split(markdown, "\n")

	var elements []model.Element
	var acc accumulator
	i := 0
	for i < len(lines) {
		if isTableStart(lines, i) {
			if table, next := c.extractTable(lines, i); table != nil {
				// Flush only once the table actually parses, so an
				// aborted extraction cannot drop pending paragraphs.
				if box := acc.flush(c); box != nil {
					elements = append(elements, box)
				}
				elements = append(elements, table)
				i = next
				continue
			}
		}
		c.classifyLine(lines[i], &acc)
		i++
	}
	if box := acc.flush(c); box != nil {
		elements = append(elements, box)
	}

	if len(elements) == 0 {
		elements = append(elements, c.newTextBox(c.fallbackParagraphs(markdown)))
	}

	layout.Stack(elements, c.space)
	return elements
}

// TextContent converts markdown into paragraphs only. Pipe rows are
// flattened into one plain paragraph each, with cells joined by a visible
// separator; alignment separator rows are dropped entirely. No table
// elements are built.
func (c *Converter) TextContent(markdown string) model.TextContent {
	var acc accumulator
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if isPipeRow(trimmed) {
			if separatorPattern.MatchString(trimmed) {
				continue
			}
			runs := c.TokenizeInline(strings.Join(splitRow(trimmed), cellJoin), c.theme.Text)
			if len(runs) == 0 {
				continue
			}
			acc.add(model.Paragraph{
				ID:        c.ids.NewID(),
				Runs:      runs,
				Alignment: model.AlignLeft,
			})
			continue
		}
		c.classifyLine(line, &acc)
	}

	paragraphs := acc.take()
	if len(paragraphs) == 0 {
		paragraphs = c.fallbackParagraphs(markdown)
	}
	return model.TextContent{Paragraphs: paragraphs}
}

// newTextBox wraps paragraphs into a text element with the default size and
// style, centered on the canvas. The vertical position is provisional; the
// layout pass overwrites it.
func (c *Converter) newTextBox(paragraphs []model.Paragraph) *model.TextBox {
	return &model.TextBox{
		Box: model.Box{
			ElementID: c.ids.NewID(),
			Position: model.Position{
				X: (c.space.Width - textBoxWidth) / 2,
				Y: (c.space.Height - textBoxHeight) / 2,
			},
			Size: model.Size{Width: textBoxWidth, Height: textBoxHeight},
		},
		Content: model.TextContent{Paragraphs: paragraphs},
		Style:   c.theme.TextBox,
	}
}

// fallbackParagraphs splits the raw input into plain paragraphs, one per
// non-empty line, bypassing block and inline classification. Whitespace-only
// input yields a single-space placeholder paragraph so the result is never
// empty.
func (c *Converter) fallbackParagraphs(raw string) []model.Paragraph {
	var paragraphs []model.Paragraph
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, c.plainParagraph(line))
	}
	if len(paragraphs) == 0 {
		paragraphs = append(paragraphs, c.plainParagraph(" "))
	}
	return paragraphs
}

func (c *Converter) plainParagraph(text string) model.Paragraph {
	return model.Paragraph{
		ID:        c.ids.NewID(),
		Runs:      []model.Run{c.newRun(text, c.theme.Text)},
		Alignment: model.AlignLeft,
	}
}
