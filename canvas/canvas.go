// Package canvas supplies the fixed slide coordinate space that all element
// positions and sizes are expressed in.
package canvas

// Default slide dimensions, in canvas units. These match the 16:9 editing
// surface the converted elements are placed on.
const (
	Width  = 960.0
	Height = 540.0
)

// Space is a canvas size passed to the conversion pipeline. Injecting it
// keeps position math testable against non-default surfaces.
type Space struct {
	Width  float64
	Height float64
}

// Default returns the standard 960x540 canvas.
func Default() Space {
	return Space{Width: Width, Height: Height}
}
