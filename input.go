package ui

import "github.com/gogpu/ui/geom"

// Buttons is a pointer button mask.
type Buttons uint8

// Pointer buttons.
const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Has reports whether every button in x is down.
func (b Buttons) Has(x Buttons) bool {
	return b&x == x
}

// Input is the pointer state delivered once per frame.
type Input struct {
	// Pointer is the pointer position in screen coordinates.
	Pointer geom.Vec2
	// Buttons holds the buttons currently down.
	Buttons Buttons
}

// pressed returns the buttons that went down since prev.
func (in Input) pressed(prev Buttons) Buttons {
	return in.Buttons &^ prev
}
