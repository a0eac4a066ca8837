package markdown

import (
	"regexp"
	"strings"

	"github.com/slideforge/slidemark/model"
)

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletPattern   = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	numberedPattern = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
	rulePattern     = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
)

// headingSizes maps heading level to font size.
var headingSizes = map[int]float64{
	1: 36,
	2: 28,
	3: 24,
	4: 20,
	5: 18,
	6: 16,
}

// ruleGlyph is the placeholder run text of a horizontal rule. It is not
// user text; it renders as a muted divider line.
const ruleGlyph = "―――"

// classifyLine classifies one non-table line and appends the resulting
// paragraph, if any, to the accumulator. Checks run in priority order;
// the first match wins. Blank lines and lines that tokenize to nothing
// produce no paragraph.
func (c *Converter) classifyLine(line string, acc *accumulator) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		style := c.theme.Text
		style.Weight = model.WeightBold
		style.FontSize = headingSizes[len(m[1])]
		acc.add(model.Paragraph{
			ID:        c.ids.NewID(),
			Runs:      c.TokenizeInline(strings.TrimSpace(m[2]), style),
			Alignment: model.AlignLeft,
		})
		return
	}

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		acc.add(model.Paragraph{
			ID:        c.ids.NewID(),
			Runs:      c.TokenizeInline(strings.TrimSpace(m[1]), c.theme.Text),
			Alignment: model.AlignLeft,
			Bullet:    model.BulletDisc,
		})
		return
	}

	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		acc.add(model.Paragraph{
			ID:        c.ids.NewID(),
			Runs:      c.TokenizeInline(strings.TrimSpace(m[1]), c.theme.Text),
			Alignment: model.AlignLeft,
			Bullet:    model.BulletNumber,
		})
		return
	}

	if rulePattern.MatchString(trimmed) {
		style := c.theme.Text
		style.Color = c.theme.RuleColor
		acc.add(model.Paragraph{
			ID:        c.ids.NewID(),
			Runs:      []model.Run{c.newRun(ruleGlyph, style)},
			Alignment: model.AlignCenter,
		})
		return
	}

	runs := c.TokenizeInline(trimmed, c.theme.Text)
	if len(runs) == 0 {
		return
	}
	acc.add(model.Paragraph{
		ID:        c.ids.NewID(),
		Runs:      runs,
		Alignment: model.AlignLeft,
	})
}

// accumulator collects pending paragraphs between flush points. It keeps
// the scan loop free of ambient mutable state: paragraphs accumulate here
// and leave only through flush.
type accumulator struct {
	paragraphs []model.Paragraph
}

func (a *accumulator) add(p model.Paragraph) {
	a.paragraphs = append(a.paragraphs, p)
}

// flush wraps the pending paragraphs into one text box and resets the
// accumulator. Returns nil when nothing is pending.
func (a *accumulator) flush(c *Converter) *model.TextBox {
	if len(a.paragraphs) == 0 {
		return nil
	}
	box := c.newTextBox(a.paragraphs)
	a.paragraphs = nil
	return box
}

// take returns the pending paragraphs and resets the accumulator without
// building an element. Used by the paragraph-only conversion variant.
func (a *accumulator) take() []model.Paragraph {
	p := a.paragraphs
	a.paragraphs = nil
	return p
}
