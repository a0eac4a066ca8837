package markdown

import (
	"regexp"

	"github.com/slideforge/slidemark/model"
)

// inlinePattern tries each marker form in precedence order at every scan
// position. Go's regexp engine picks the first matching alternative at the
// leftmost position, so triple asterisks win over double, and double over
// single. Matches are non-overlapping; nesting is not decomposed.
var inlinePattern = regexp.MustCompile(
	`\*\*\*(.+?)\*\*\*` + // 1: bold italic
		`|\*\*(.+?)\*\*` + // 2: bold
		`|__(.+?)__` + // 3: bold
		`|\*(.+?)\*` + // 4: italic
		`|_(.+?)_` + // 5: italic
		"|`(.+?)`" + // 6: code span
		`|~~(.+?)~~`) // 7: strikethrough

// TokenizeInline splits one line of text into styled runs. Text outside any
// recognized marker is emitted with the base style; each recognized span
// becomes one run carrying the base style plus the marker's modification.
// Marker characters are never retained in run text. Empty input produces no
// runs; unbalanced markers fail to match and stay literal.
func (c *Converter) TokenizeInline(text string, base model.TextStyle) []model.Run {
	if text == "" {
		return nil
	}

	var runs []model.Run
	last := 0
	for _, m := range inlinePattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			runs = append(runs, c.newRun(text[last:m[0]], base))
		}
		for group := 1; group <= 7; group++ {
			lo, hi := m[2*group], m[2*group+1]
			if lo < 0 {
				continue
			}
			runs = append(runs, c.newRun(text[lo:hi], c.spanStyle(group, base)))
			break
		}
		last = m[1]
	}
	if last < len(text) {
		runs = append(runs, c.newRun(text[last:], base))
	}
	return runs
}

// spanStyle returns the base style with the marker group's modification
// applied.
func (c *Converter) spanStyle(group int, base model.TextStyle) model.TextStyle {
	style := base
	switch group {
	case 1:
		style.Weight = model.WeightBold
		style.Italic = true
	case 2, 3:
		style.Weight = model.WeightBold
	case 4, 5:
		style.Italic = true
	case 6:
		style.FontFamily = c.theme.MonospaceFamily
	case 7:
		style.Decoration = model.DecorationStrikethrough
	}
	return style
}

func (c *Converter) newRun(text string, style model.TextStyle) model.Run {
	return model.Run{ID: c.ids.NewID(), Text: text, Style: style}
}
