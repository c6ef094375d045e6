package core_test

import (
	"testing"

	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/rendering"
	casttest "github.com/go-castella/castella/pkg/testing"
	"github.com/go-castella/castella/pkg/widgets"
)

type eventWidget struct {
	core.WidgetBase
	downs, ups, drags []core.MouseEvent
	overs, outs       int
	focuses, unfocuses int
	chars             []rune
	keys              []core.KeyCode
	redraws           int
}

func newEventWidget() *eventWidget {
	w := &eventWidget{}
	w.InitWidget(w, nil, rendering.Size{}, core.SizePolicyExpanding)
	return w
}

func (w *eventWidget) Redraw(p rendering.Painter, completely bool) { w.redraws++ }
func (w *eventWidget) MouseDown(ev core.MouseEvent)                { w.downs = append(w.downs, ev) }
func (w *eventWidget) MouseUp(ev core.MouseEvent)                  { w.ups = append(w.ups, ev) }
func (w *eventWidget) MouseDrag(ev core.MouseEvent)                { w.drags = append(w.drags, ev) }
func (w *eventWidget) MouseOver()                                  { w.overs++ }
func (w *eventWidget) MouseOut()                                   { w.outs++ }
func (w *eventWidget) Focused()                                    { w.focuses++ }
func (w *eventWidget) Unfocused()                                  { w.unfocuses++ }
func (w *eventWidget) InputChar(ev core.InputCharEvent)            { w.chars = append(w.chars, ev.Char) }
func (w *eventWidget) InputKey(ev core.InputKeyEvent)              { w.keys = append(w.keys, ev.Key) }

// newTestApp builds an app over a 500x500 scripted frame with a two-child
// column: top is 100 tall, bottom takes the rest.
func newTestApp(t *testing.T) (*casttest.Frame, *core.App, *eventWidget, *eventWidget) {
	t.Helper()
	f := casttest.NewFrame(rendering.Size{Width: 500, Height: 500})
	top := newEventWidget()
	top.SetFixedHeight(100)
	bottom := newEventWidget()
	col := widgets.NewColumn(top, bottom)
	app := core.NewApp(f, col)
	app.Run()
	f.Pump()
	return f, app, top, bottom
}

func TestPressAndReleaseGoToThePressedWidget(t *testing.T) {
	f, _, top, bottom := newTestApp(t)

	f.Press(rendering.Point{X: 250, Y: 50})
	f.Release(rendering.Point{X: 260, Y: 450})

	if len(top.downs) != 1 || len(top.ups) != 1 {
		t.Fatalf("expected 1 down and 1 up on the pressed widget, got %d/%d",
			len(top.downs), len(top.ups))
	}
	if len(bottom.downs) != 0 || len(bottom.ups) != 0 {
		t.Error("the widget under the release must not receive anything")
	}
	if len(top.drags) != 0 {
		t.Error("a press and release without movement must not drag")
	}

	if got := top.downs[0].Pos; got != (rendering.Point{X: 250, Y: 50}) {
		t.Errorf("down position should be widget-relative, got %+v", got)
	}
	// The release position is the press-relative position plus the pointer
	// delta, even though the pointer is over another widget now.
	if got := top.ups[0].Pos; got != (rendering.Point{X: 260, Y: 450}) {
		t.Errorf("unexpected up position %+v", got)
	}
	if top.focuses != 1 {
		t.Error("completing a press should focus the widget")
	}
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	f, _, top, bottom := newTestApp(t)

	f.Release(rendering.Point{X: 250, Y: 50})

	if len(top.ups) != 0 || len(bottom.ups) != 0 {
		t.Error("a release with no prior press must go nowhere")
	}
}

func TestDragAccumulatesPointerDeltas(t *testing.T) {
	f, _, top, _ := newTestApp(t)

	f.Press(rendering.Point{X: 50, Y: 50})
	f.MoveTo(rendering.Point{X: 60, Y: 70})
	f.MoveTo(rendering.Point{X: 65, Y: 90})

	if len(top.drags) != 2 {
		t.Fatalf("expected 2 drags, got %d", len(top.drags))
	}
	if got := top.drags[0].Pos; got != (rendering.Point{X: 60, Y: 70}) {
		t.Errorf("first drag position: %+v", got)
	}
	if got := top.drags[1].Pos; got != (rendering.Point{X: 65, Y: 90}) {
		t.Errorf("second drag position: %+v", got)
	}
	if top.overs != 0 {
		t.Error("no hover events while a button is down")
	}
}

func TestHoverTransitions(t *testing.T) {
	f, _, top, bottom := newTestApp(t)

	f.MoveTo(rendering.Point{X: 250, Y: 50})
	if top.overs != 1 {
		t.Fatalf("expected mouse over on the top widget, got %d", top.overs)
	}

	f.MoveTo(rendering.Point{X: 250, Y: 300})
	if top.outs != 1 {
		t.Error("leaving the top widget should fire mouse out")
	}
	if bottom.overs != 1 {
		t.Error("entering the bottom widget should fire mouse over")
	}

	f.MoveTo(rendering.Point{X: 260, Y: 310})
	if bottom.overs != 1 || bottom.outs != 0 {
		t.Error("moving within the same widget must not refire hover events")
	}
}

func TestCharAndKeyGoToFocusedWidgetOnly(t *testing.T) {
	f, _, top, bottom := newTestApp(t)

	f.TypeChar('x')
	if len(top.chars) != 0 || len(bottom.chars) != 0 {
		t.Fatal("input before any focus must go nowhere")
	}

	f.Click(rendering.Point{X: 250, Y: 50})
	f.TypeChar('a')
	f.TypeKey(core.KeyBackspace)

	if string(top.chars) != "a" {
		t.Errorf("focused widget should get the char, got %q", string(top.chars))
	}
	if len(top.keys) != 1 || top.keys[0] != core.KeyBackspace {
		t.Errorf("focused widget should get the key, got %v", top.keys)
	}
	if len(bottom.chars) != 0 {
		t.Error("unfocused widget must not get input")
	}
}

func TestFocusMovesOnClick(t *testing.T) {
	f, _, top, bottom := newTestApp(t)

	f.Click(rendering.Point{X: 250, Y: 50})
	f.Click(rendering.Point{X: 250, Y: 300})

	if top.unfocuses != 1 {
		t.Error("clicking another widget should unfocus the first")
	}
	if bottom.focuses != 1 {
		t.Error("the newly clicked widget should gain focus")
	}
}

func TestPopLastLayerIsNoOp(t *testing.T) {
	_, app, _, _ := newTestApp(t)

	app.PopLayer()

	if app.LayerCount() != 1 {
		t.Errorf("the bottom layer must never pop, got %d layers", app.LayerCount())
	}
}

func TestClickOutsideModalPopsIt(t *testing.T) {
	f, app, top, _ := newTestApp(t)

	modal := newEventWidget()
	modal.SetFixedSize(rendering.Size{Width: 100, Height: 100})
	app.PushLayer(modal, core.PositionPolicyCenter)
	f.Pump()

	if app.LayerCount() != 2 {
		t.Fatalf("expected 2 layers, got %d", app.LayerCount())
	}

	// Centered in 500x500: the modal spans 200..300 on both axes.
	f.Press(rendering.Point{X: 250, Y: 250})
	if len(modal.downs) != 1 {
		t.Fatal("a press inside the modal should reach it")
	}
	f.Release(rendering.Point{X: 250, Y: 250})

	f.Press(rendering.Point{X: 10, Y: 10})
	if app.LayerCount() != 1 {
		t.Error("a press outside the top layer should pop it")
	}
	if len(top.downs) != 0 {
		t.Error("the pop-triggering press must not reach lower layers")
	}
}

func TestLowerLayersGetNoInput(t *testing.T) {
	f, app, top, _ := newTestApp(t)

	modal := newEventWidget()
	modal.SetFixedSize(rendering.Size{Width: 400, Height: 400})
	app.PushLayer(modal, core.PositionPolicyCenter)
	f.Pump()

	f.Click(rendering.Point{X: 250, Y: 90}) // over both modal and top
	if len(modal.downs) != 1 {
		t.Error("the top layer should receive the click")
	}
	if len(top.downs) != 0 {
		t.Error("a covered layer must not receive input")
	}
}

func TestCleanWidgetsSkipRepaint(t *testing.T) {
	f, _, top, bottom := newTestApp(t)
	topBefore, bottomBefore := top.redraws, bottom.redraws

	// Everything is clean after the initial pump: a partial app repaint
	// touches no widget.
	f.PostUpdate(core.UpdateEvent{})
	f.Pump()

	if top.redraws != topBefore || bottom.redraws != bottomBefore {
		t.Error("clean widgets must not be repainted on a partial pass")
	}

	f.PostUpdate(core.UpdateEvent{Completely: true})
	f.Pump()

	if top.redraws == topBefore {
		t.Error("a complete pass repaints clean widgets too")
	}
}

func TestTargetedUpdateRepaintsOnlyTheTarget(t *testing.T) {
	f, _, top, bottom := newTestApp(t)
	topBefore, bottomBefore := top.redraws, bottom.redraws

	top.SetDirty(true)
	top.Update(false)
	f.Pump()

	if top.redraws != topBefore+1 {
		t.Errorf("expected exactly one extra repaint of the target, got %d", top.redraws-topBefore)
	}
	if bottom.redraws != bottomBefore {
		t.Error("a targeted update must not repaint siblings")
	}
}
