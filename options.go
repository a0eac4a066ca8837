package slidemark

import (
	"github.com/slideforge/slidemark/canvas"
	"github.com/slideforge/slidemark/ident"
	"github.com/slideforge/slidemark/theme"
)

// convertOptions holds configuration for one conversion.
type convertOptions struct {
	// ids generates element, paragraph, run, and cell identifiers.
	ids ident.Generator

	// theme supplies the default styles copied into elements.
	theme *theme.Theme

	// space is the canvas the elements are positioned on.
	space canvas.Space
}

// defaultConvertOptions returns the production defaults: random ids, the
// standard theme, and the 960x540 canvas.
func defaultConvertOptions() convertOptions {
	return convertOptions{
		ids:   ident.NewRandom(),
		theme: theme.Default(),
		space: canvas.Default(),
	}
}
