package testing

import (
	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/frame"
	"github.com/go-castella/castella/pkg/rendering"
)

// Frame is a scripted frame backend. There is no window and no event loop:
// the test emits input events itself and calls Pump to apply queued updates
// to the recording painter.
type Frame struct {
	frame.Base
	painter *RecordingPainter
	size    rendering.Size
}

// NewFrame returns a frame of the given size with a fresh recording
// painter.
func NewFrame(size rendering.Size) *Frame {
	return &Frame{painter: NewRecordingPainter(), size: size}
}

// Painter returns the recording painter updates are applied to.
func (f *Frame) Painter() *RecordingPainter {
	return f.painter
}

// GetPainter implements core.Frame.
func (f *Frame) GetPainter() rendering.Painter {
	return f.painter
}

// GetSize returns the frame size.
func (f *Frame) GetSize() rendering.Size {
	return f.size
}

// SetSize resizes the frame. The next Pump lays layers out against the new
// size.
func (f *Frame) SetSize(size rendering.Size) {
	f.size = size
}

// Flush does nothing; the painter keeps its log.
func (f *Frame) Flush() {}

// Clear drops everything recorded so far.
func (f *Frame) Clear() {
	f.painter.Reset()
}

// Run returns immediately. A scripted frame has no loop; the test drives it.
func (f *Frame) Run() {}

// Pump applies every queued update to the recording painter.
func (f *Frame) Pump() {
	f.Drain(f.painter)
}

// Press emits a mouse press at pos and pumps.
func (f *Frame) Press(pos rendering.Point) {
	f.EmitMouseDown(core.MouseEvent{Pos: pos})
	f.Pump()
}

// Release emits a mouse release at pos and pumps.
func (f *Frame) Release(pos rendering.Point) {
	f.EmitMouseUp(core.MouseEvent{Pos: pos})
	f.Pump()
}

// MoveTo emits a pointer move to pos and pumps.
func (f *Frame) MoveTo(pos rendering.Point) {
	f.EmitCursorPos(core.MouseEvent{Pos: pos})
	f.Pump()
}

// Click presses and releases at pos.
func (f *Frame) Click(pos rendering.Point) {
	f.Press(pos)
	f.Release(pos)
}

// Wheel emits a wheel event at pos and pumps.
func (f *Frame) Wheel(pos rendering.Point, xOffset, yOffset float64) {
	f.EmitMouseWheel(core.WheelEvent{Pos: pos, XOffset: xOffset, YOffset: yOffset})
	f.Pump()
}

// TypeChar emits a character and pumps.
func (f *Frame) TypeChar(ch rune) {
	f.EmitInputChar(core.InputCharEvent{Char: ch})
	f.Pump()
}

// TypeKey emits a key press and pumps.
func (f *Frame) TypeKey(key core.KeyCode) {
	f.EmitInputKey(core.InputKeyEvent{Key: key, Action: core.KeyActionPress})
	f.Pump()
}
