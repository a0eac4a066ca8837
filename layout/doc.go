// Package layout positions converted elements on the slide canvas.
//
// The only placement strategy is a vertical stack: elements keep their own
// horizontal position and are stacked top to bottom with a fixed gap, with
// the whole stack centered vertically on the canvas.
//
//	layout.Stack(elements, canvas.Default())
//
// Stack mutates element positions in place and runs once, after the full
// element sequence has been produced.
package layout
