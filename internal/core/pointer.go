package core

import "fmt"

// PointerKind identifies a raw pointer event.
type PointerKind uint8

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerRelease
	PointerScroll
)

// String returns a human-readable name for the kind.
func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	case PointerScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// PointerButton identifies a pointer button.
// ButtonNone on a release means the source could not tell which button was let go.
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// String returns a human-readable name for the button.
func (b PointerButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// PointerEvent is a single raw pointer event in surface coordinates.
// X and Y address the surface unit under the pointer (terminal cell or pixel).
type PointerEvent struct {
	Kind   PointerKind
	Button PointerButton
	X, Y   float64
	Delta  float64 // Scroll amount; positive scrolls up (zoom in)
}

// Move creates a pointer move event.
func Move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, X: x, Y: y}
}

// Press creates a button press event.
func Press(b PointerButton, x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerPress, Button: b, X: x, Y: y}
}

// Release creates a button release event.
func Release(b PointerButton, x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerRelease, Button: b, X: x, Y: y}
}

// Scroll creates a scroll event at the given position.
func Scroll(delta, x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerScroll, X: x, Y: y, Delta: delta}
}

// String returns a compact description, handy in logs.
func (e PointerEvent) String() string {
	if e.Kind == PointerScroll {
		return fmt.Sprintf("scroll(%+.1f @ %.1f,%.1f)", e.Delta, e.X, e.Y)
	}
	return fmt.Sprintf("%s(%s @ %.1f,%.1f)", e.Kind, e.Button, e.X, e.Y)
}
