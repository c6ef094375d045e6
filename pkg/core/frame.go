package core

import "github.com/go-castella/castella/pkg/rendering"

// Frame is the windowing backend the App runs on. Implementations own the
// native window (or test surface), deliver input through the registered
// handlers and apply posted update events on their main loop.
//
// PostUpdate is the thread-safety boundary of the engine: it may be called
// from any goroutine; everything else runs on the frame's main loop.
type Frame interface {
	OnMouseDown(handler func(MouseEvent))
	OnMouseUp(handler func(MouseEvent))
	OnMouseWheel(handler func(WheelEvent))
	OnCursorPos(handler func(MouseEvent))
	OnInputChar(handler func(InputCharEvent))
	OnInputKey(handler func(InputKeyEvent))
	OnRedraw(handler func(p rendering.Painter, completely bool))

	GetPainter() rendering.Painter
	GetSize() rendering.Size

	PostUpdate(ev UpdateEvent)
	Flush()
	Clear()
	Run()
}
