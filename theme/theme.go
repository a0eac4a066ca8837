// Package theme supplies the default style records copied into converted
// elements. The conversion core never mutates a theme; every paragraph, run,
// and element receives its own copy of the relevant style value.
package theme

import "github.com/slideforge/slidemark/model"

// Theme holds the style defaults used during conversion.
type Theme struct {
	// Text is the base run style; inline markup layers on top of it.
	Text model.TextStyle
	// TextBox is the default style of generated text boxes.
	TextBox model.BoxStyle
	// MonospaceFamily is the font family applied to backtick code spans.
	MonospaceFamily string
	// RuleColor is the muted color of the horizontal-rule placeholder glyph.
	RuleColor model.Color
	// Table styling defaults.
	TableBorderColor model.Color
	TableHeaderFill  model.Color
	TableCellFill    model.Color
}

// Default returns the standard slide theme.
func Default() *Theme {
	return &Theme{
		Text: model.TextStyle{
			FontFamily: "Arial",
			FontSize:   18,
			Weight:     model.WeightNormal,
			Color:      model.Color{R: 51, G: 51, B: 51},
		},
		TextBox:          model.BoxStyle{},
		MonospaceFamily:  "Consolas",
		RuleColor:        model.Color{R: 170, G: 170, B: 170},
		TableBorderColor: model.Color{R: 224, G: 224, B: 224},
		TableHeaderFill:  model.Color{R: 242, G: 242, B: 242},
		TableCellFill:    model.Color{R: 255, G: 255, B: 255},
	}
}
