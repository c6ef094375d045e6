package core

import (
	"math"

	"github.com/go-castella/castella/pkg/rendering"
	"github.com/go-castella/castella/pkg/theme"
)

type appLayer struct {
	widget Widget
	policy PositionPolicy
}

// App owns the layer stack and turns raw frame input into widget events.
// Only the top layer receives input; lower layers still repaint. The App is
// a plain value handed to whoever needs it, and it serves as the Updater of
// every widget in its layers.
type App struct {
	frame  Frame
	style  rendering.Style
	layers []appLayer

	pressed      Widget
	focused      Widget
	hovered      Widget
	hoveredLayer Widget
	prevAbs      rendering.Point
	prevRel      rendering.Point
}

// NewApp returns an App with root as its bottom layer.
func NewApp(frame Frame, root Widget) *App {
	a := &App{
		frame: frame,
		style: rendering.Style{
			Fill: rendering.FillStyle{Color: theme.Current().App.BGColor},
			Font: rendering.DefaultFont(),
		},
	}
	a.PushLayer(root, PositionPolicyFixed)
	return a
}

// PushLayer puts w on top of the layer stack and forces a complete repaint.
// The new layer becomes the only input target.
func (a *App) PushLayer(w Widget, p PositionPolicy) {
	w.setUpdater(a)
	a.layers = append(a.layers, appLayer{widget: w, policy: p})
	a.frame.PostUpdate(UpdateEvent{Completely: true})
}

// PopLayer removes the top layer and forces a complete repaint. Popping the
// last layer is a no-op: the stack never becomes empty.
func (a *App) PopLayer() {
	if len(a.layers) <= 1 {
		return
	}
	a.layers = a.layers[:len(a.layers)-1]
	a.frame.PostUpdate(UpdateEvent{Completely: true})
}

// PeekLayer returns the top layer.
func (a *App) PeekLayer() (Widget, PositionPolicy) {
	top := a.layers[len(a.layers)-1]
	return top.widget, top.policy
}

// LayerCount returns the depth of the layer stack.
func (a *App) LayerCount() int {
	return len(a.layers)
}

// MouseDown dispatches a press on the top layer. A press outside a modal
// layer pops it.
func (a *App) MouseDown(ev MouseEvent) {
	top, _ := a.PeekLayer()
	target, p, ok := top.Dispatch(ev.Pos)
	if !ok {
		if len(a.layers) > 1 {
			a.PopLayer()
		}
		return
	}
	ev.Target = target
	a.prevAbs = ev.Pos
	ev.Pos = p.Sub(target.Position())
	a.prevRel = ev.Pos
	target.MouseDown(ev)
	a.pressed = target
}

// MouseUp completes a press: the pressed widget gains focus and receives the
// release, wherever the pointer is now. The pressed state is cleared even if
// a handler panics.
func (a *App) MouseUp(ev MouseEvent) {
	if a.pressed == nil {
		return
	}
	defer func() { a.pressed = nil }()

	if a.focused != nil {
		a.focused.Unfocused()
	}
	a.focused = a.pressed
	a.focused.Focused()

	ev.Target = a.pressed
	diff := ev.Pos.Sub(a.prevAbs)
	a.prevAbs = ev.Pos
	ev.Pos = a.prevRel.Add(diff)
	a.prevRel = ev.Pos
	a.pressed.MouseUp(ev)
}

// MouseWheel routes a wheel event to the innermost container with a
// scrollbar on the wheel's dominant axis.
func (a *App) MouseWheel(ev WheelEvent) {
	top, _ := a.PeekLayer()
	directionX := math.Abs(ev.XOffset) > math.Abs(ev.YOffset)
	if target, _, ok := top.DispatchToScrollable(ev.Pos, directionX); ok {
		target.MouseWheel(ev)
	}
}

// CursorPos tracks hover transitions while no button is down and drags the
// pressed widget otherwise. Drag positions accumulate pointer deltas onto
// the press-time relative position, so they stay consistent with the press
// even when the pointer leaves the widget.
func (a *App) CursorPos(ev MouseEvent) {
	layer, _ := a.PeekLayer()
	target, _, ok := layer.Dispatch(ev.Pos)
	if !ok {
		return
	}
	if a.pressed == nil {
		if a.hovered == nil {
			a.hovered = target
			a.hoveredLayer = layer
			target.MouseOver()
		} else if a.hovered != target {
			if a.hoveredLayer == layer {
				a.hovered.MouseOut()
			}
			a.hovered = target
			a.hoveredLayer = layer
			target.MouseOver()
		}
		return
	}
	stillHit := target == a.pressed
	if !stillHit {
		_, _, stillHit = a.pressed.Dispatch(ev.Pos)
	}
	if stillHit {
		ev.Target = a.pressed
		diff := ev.Pos.Sub(a.prevAbs)
		a.prevAbs = ev.Pos
		ev.Pos = a.prevRel.Add(diff)
		a.prevRel = ev.Pos
		a.pressed.MouseDrag(ev)
	}
}

// InputChar delivers a typed character to the focused widget.
func (a *App) InputChar(ev InputCharEvent) {
	if a.focused != nil {
		a.focused.InputChar(ev)
	}
}

// InputKey delivers a key event to the focused widget.
func (a *App) InputKey(ev InputKeyEvent) {
	if a.focused != nil {
		a.focused.InputKey(ev)
	}
}

// Redraw paints the frame background and every layer, bottom to top. Each
// layer is relocated first; clean layers are skipped unless completely is
// set.
func (a *App) Redraw(p rendering.Painter, completely bool) {
	p.SetStyle(a.style)
	p.FillRect(rendering.Rect{
		Size: a.frame.GetSize().Add(rendering.Size{Width: 1, Height: 1}),
	})
	for _, layer := range a.layers {
		w := layer.widget
		a.relocateLayer(w, layer.policy)
		if completely || w.IsDirty() {
			p.Save()
			p.Translate(w.Position())
			p.Clip(rendering.Rect{Size: w.Size()})
			w.Redraw(p, completely)
			p.Restore()
			w.SetDirty(false)
		}
	}
	p.Flush()
}

// relocateLayer sizes a layer against the frame: expanding axes fill the
// frame, fixed axes keep their size. Centered layers are re-centered every
// redraw.
func (a *App) relocateLayer(w Widget, p PositionPolicy) {
	frameSize := a.frame.GetSize()
	size := w.Size()
	policy := w.SizePolicy()

	width := size.Width
	if policy.IsWidthExpanding() {
		width = frameSize.Width
	}
	height := size.Height
	if policy.IsHeightExpanding() {
		height = frameSize.Height
	}

	if p == PositionPolicyCenter {
		w.Move(rendering.Point{
			X: math.Floor(frameSize.Width/2 - size.Width/2),
			Y: math.Floor(frameSize.Height/2 - size.Height/2),
		})
	}
	w.Resize(rendering.Size{Width: width, Height: height})
}

// PostUpdate implements Updater: repaint requests go to the frame's queue.
func (a *App) PostUpdate(w Widget, completely bool) {
	a.frame.PostUpdate(UpdateEvent{Target: w, Completely: completely})
}

// Run registers the App's handlers on the frame and enters the frame's main
// loop. It returns when the frame closes.
func (a *App) Run() {
	a.frame.OnMouseDown(a.MouseDown)
	a.frame.OnMouseUp(a.MouseUp)
	a.frame.OnMouseWheel(a.MouseWheel)
	a.frame.OnCursorPos(a.CursorPos)
	a.frame.OnInputChar(a.InputChar)
	a.frame.OnInputKey(a.InputKey)
	a.frame.OnRedraw(a.Redraw)
	a.frame.Run()
}
