package layout

import (
	"testing"

	"github.com/slideforge/slidemark/canvas"
	"github.com/slideforge/slidemark/model"
)

func textBox(height float64) *model.TextBox {
	return &model.TextBox{
		Box: model.Box{
			Position: model.Position{X: 280, Y: 0},
			Size:     model.Size{Width: 400, Height: height},
		},
	}
}

func TestStackCentersTwoElements(t *testing.T) {
	// Two 200-tall elements with one 20 gap total 420 on a 540 canvas:
	// startY = round((540-420)/2) = 60.
	elements := []model.Element{textBox(200), textBox(200)}
	Stack(elements, canvas.Default())

	if y := elements[0].Bounds().Y; y != 60 {
		t.Errorf("first y = %v, want 60", y)
	}
	if y := elements[1].Bounds().Y; y != 280 {
		t.Errorf("second y = %v, want 60+200+20 = 280", y)
	}
}

func TestStackSingleElement(t *testing.T) {
	elements := []model.Element{textBox(200)}
	Stack(elements, canvas.Default())
	if y := elements[0].Bounds().Y; y != 170 {
		t.Errorf("y = %v, want (540-200)/2 = 170", y)
	}
}

func TestStackClampsToMinTop(t *testing.T) {
	// A stack taller than the canvas starts at MinTop instead of going
	// negative.
	elements := []model.Element{textBox(300), textBox(300), textBox(300)}
	Stack(elements, canvas.Default())
	if y := elements[0].Bounds().Y; y != MinTop {
		t.Errorf("first y = %v, want MinTop %v", y, MinTop)
	}
}

func TestStackKeepsHorizontalPosition(t *testing.T) {
	elements := []model.Element{textBox(100)}
	Stack(elements, canvas.Default())
	if x := elements[0].Bounds().X; x != 280 {
		t.Errorf("x = %v, want untouched 280", x)
	}
}

func TestStackSequenceOrder(t *testing.T) {
	elements := []model.Element{textBox(50), textBox(120), textBox(80)}
	Stack(elements, canvas.Default())
	prev := -1.0
	for i, el := range elements {
		if y := el.Bounds().Y; y <= prev {
			t.Errorf("element %d y = %v, not strictly below previous %v", i, y, prev)
		} else {
			prev = y
		}
	}
}

func TestStackEmpty(t *testing.T) {
	// Must not panic.
	Stack(nil, canvas.Default())
}
