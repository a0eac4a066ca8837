package layout

import (
	"math"

	"github.com/slideforge/slidemark/canvas"
	"github.com/slideforge/slidemark/model"
)

// Placement constants, in canvas units.
const (
	// Gap is the vertical spacing inserted between stacked elements.
	Gap = 20.0
	// MinTop is the minimum Y of the first element when the stack is
	// taller than the canvas.
	MinTop = 20.0
)

// Stack assigns vertical positions to elements in sequence order. The stack
// is centered vertically on the canvas; horizontal positions are left
// untouched.
func Stack(elements []model.Element, space canvas.Space) {
	if len(elements) == 0 {
		return
	}

	total := 0.0
	for _, el := range elements {
		total += el.Bounds().Height
	}
	total += Gap * float64(len(elements)-1)

	y := math.Max(MinTop, math.Round((space.Height-total)/2))
	for _, el := range elements {
		b := el.Bounds()
		el.MoveTo(model.Position{X: b.X, Y: y})
		y += b.Height + Gap
	}
}
