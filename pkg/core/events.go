package core

import "github.com/go-castella/castella/pkg/rendering"

// MouseEvent carries a pointer event. Pos is in the coordinate space of the
// dispatch target once the dispatcher has resolved one; before that it is in
// frame coordinates.
type MouseEvent struct {
	Pos    rendering.Point
	Target Widget
}

// Translate returns a copy of the event with Pos shifted by -p.
func (ev MouseEvent) Translate(p rendering.Point) MouseEvent {
	return MouseEvent{Pos: ev.Pos.Sub(p), Target: ev.Target}
}

// WheelEvent carries a scroll wheel event in frame coordinates.
type WheelEvent struct {
	Pos     rendering.Point
	XOffset float64
	YOffset float64
}

// InputCharEvent carries a typed character.
type InputCharEvent struct {
	Char rune
}

// KeyCode identifies a non-character key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// KeyAction identifies the phase of a key event.
type KeyAction int

const (
	KeyActionUnknown KeyAction = iota
	KeyActionPress
	KeyActionRepeat
	KeyActionRelease
)

// InputKeyEvent carries a non-character key event.
type InputKeyEvent struct {
	Key      KeyCode
	Scancode int
	Action   KeyAction
	Mods     int
}

// UpdateEvent asks the frame to repaint a subtree. A nil Target means the
// whole app: every layer, starting from the frame background.
type UpdateEvent struct {
	Target     Widget
	Completely bool
}
