// Package frame provides the shared machinery concrete frame backends build
// on: input handler registration and a thread-safe update queue.
package frame

import (
	"sync"

	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/rendering"
)

// Base implements the handler registry and the update queue of a Frame.
// Concrete backends embed it and add window creation, GetPainter, GetSize
// and the Run loop.
//
// PostUpdate may be called from any goroutine: events are queued under a
// mutex and the wake callback nudges the backend's main loop, which calls
// Drain to apply them. Everything else must run on the main loop.
type Base struct {
	mu    sync.Mutex
	queue []core.UpdateEvent
	wake  func()

	onMouseDown  func(core.MouseEvent)
	onMouseUp    func(core.MouseEvent)
	onMouseWheel func(core.WheelEvent)
	onCursorPos  func(core.MouseEvent)
	onInputChar  func(core.InputCharEvent)
	onInputKey   func(core.InputKeyEvent)
	onRedraw     func(rendering.Painter, bool)
}

// SetWake registers the callback that wakes the backend's main loop after an
// update is queued.
func (b *Base) SetWake(wake func()) {
	b.wake = wake
}

// OnMouseDown registers the handler for mouse press events.
func (b *Base) OnMouseDown(handler func(core.MouseEvent)) {
	b.onMouseDown = handler
}

// OnMouseUp registers the handler for mouse release events.
func (b *Base) OnMouseUp(handler func(core.MouseEvent)) {
	b.onMouseUp = handler
}

// OnMouseWheel registers the handler for wheel events.
func (b *Base) OnMouseWheel(handler func(core.WheelEvent)) {
	b.onMouseWheel = handler
}

// OnCursorPos registers the handler for pointer movement.
func (b *Base) OnCursorPos(handler func(core.MouseEvent)) {
	b.onCursorPos = handler
}

// OnInputChar registers the handler for character input.
func (b *Base) OnInputChar(handler func(core.InputCharEvent)) {
	b.onInputChar = handler
}

// OnInputKey registers the handler for key input.
func (b *Base) OnInputKey(handler func(core.InputKeyEvent)) {
	b.onInputKey = handler
}

// OnRedraw registers the handler for whole-app repaints.
func (b *Base) OnRedraw(handler func(p rendering.Painter, completely bool)) {
	b.onRedraw = handler
}

// EmitMouseDown forwards a press to the registered handler.
func (b *Base) EmitMouseDown(ev core.MouseEvent) {
	if b.onMouseDown != nil {
		b.onMouseDown(ev)
	}
}

// EmitMouseUp forwards a release to the registered handler.
func (b *Base) EmitMouseUp(ev core.MouseEvent) {
	if b.onMouseUp != nil {
		b.onMouseUp(ev)
	}
}

// EmitMouseWheel forwards a wheel event to the registered handler.
func (b *Base) EmitMouseWheel(ev core.WheelEvent) {
	if b.onMouseWheel != nil {
		b.onMouseWheel(ev)
	}
}

// EmitCursorPos forwards pointer movement to the registered handler.
func (b *Base) EmitCursorPos(ev core.MouseEvent) {
	if b.onCursorPos != nil {
		b.onCursorPos(ev)
	}
}

// EmitInputChar forwards a typed character to the registered handler.
func (b *Base) EmitInputChar(ev core.InputCharEvent) {
	if b.onInputChar != nil {
		b.onInputChar(ev)
	}
}

// EmitInputKey forwards a key event to the registered handler.
func (b *Base) EmitInputKey(ev core.InputKeyEvent) {
	if b.onInputKey != nil {
		b.onInputKey(ev)
	}
}

// EmitRedraw forwards a whole-app repaint to the registered handler.
func (b *Base) EmitRedraw(p rendering.Painter, completely bool) {
	if b.onRedraw != nil {
		b.onRedraw(p, completely)
	}
}

// PostUpdate queues a repaint request and wakes the main loop. Safe to call
// from any goroutine.
func (b *Base) PostUpdate(ev core.UpdateEvent) {
	b.mu.Lock()
	b.queue = append(b.queue, ev)
	b.mu.Unlock()
	if b.wake != nil {
		b.wake()
	}
}

// Drain applies every queued update in posting order. The backend calls it
// on its main loop after each wake. A panicking update is reported and the
// remaining updates still run.
func (b *Base) Drain(p rendering.Painter) {
	b.mu.Lock()
	pending := b.queue
	b.queue = nil
	b.mu.Unlock()
	for _, ev := range pending {
		b.applyUpdate(p, ev)
	}
}

// Pending returns the number of queued updates.
func (b *Base) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// applyUpdate repaints one target. A nil target repaints the whole app via
// the redraw handler; a widget target repaints its subtree, translated to
// its absolute position and clipped to its bounds.
func (b *Base) applyUpdate(p rendering.Painter, ev core.UpdateEvent) {
	defer errors.Recover("frame.Base.applyUpdate")
	if ev.Target == nil {
		b.EmitRedraw(p, ev.Completely)
		return
	}
	p.Save()
	defer p.Restore()
	p.Translate(ev.Target.Position())
	p.Clip(rendering.Rect{Size: ev.Target.Size()})
	ev.Target.Redraw(p, ev.Completely)
	p.Flush()
}
