package core

import (
	"testing"

	"github.com/go-castella/castella/pkg/observable"
	"github.com/go-castella/castella/pkg/rendering"
)

type stubWidget struct {
	WidgetBase
	redraws int
}

func newStubWidget(size rendering.Size, policy SizePolicy) *stubWidget {
	w := &stubWidget{}
	w.InitWidget(w, nil, size, policy)
	return w
}

func (w *stubWidget) Redraw(p rendering.Painter, completely bool) {
	w.redraws++
}

type scrollStub struct {
	stubWidget
}

func newScrollStub() *scrollStub {
	w := &scrollStub{}
	w.InitWidget(w, nil, rendering.Size{Width: 100, Height: 100}, SizePolicyExpanding)
	return w
}

func (w *scrollStub) IsScrollable() bool { return true }

type postRecord struct {
	target     Widget
	completely bool
}

type recordingUpdater struct {
	posts []postRecord
}

func (u *recordingUpdater) PostUpdate(w Widget, completely bool) {
	u.posts = append(u.posts, postRecord{target: w, completely: completely})
}

func TestContainIsStrictInterior(t *testing.T) {
	w := newStubWidget(rendering.Size{Width: 100, Height: 50}, SizePolicyFixed)
	w.Move(rendering.Point{X: 10, Y: 10})

	if !w.Contain(rendering.Point{X: 50, Y: 30}) {
		t.Error("interior point should be contained")
	}
	for _, p := range []rendering.Point{
		{X: 10, Y: 30},  // left edge
		{X: 110, Y: 30}, // right edge
		{X: 50, Y: 10},  // top edge
		{X: 50, Y: 60},  // bottom edge
	} {
		if w.Contain(p) {
			t.Errorf("border point %+v should not be contained", p)
		}
	}
}

func TestGeometrySettersMarkDirtyOnlyOnChange(t *testing.T) {
	w := newStubWidget(rendering.Size{Width: 10, Height: 10}, SizePolicyFixed)
	w.SetDirty(false)

	w.Move(rendering.Point{})
	w.Resize(rendering.Size{Width: 10, Height: 10})
	w.SetWidth(10)
	w.MoveY(0)
	if w.IsDirty() {
		t.Error("no-op geometry changes must not mark the widget dirty")
	}

	w.SetWidth(11)
	if !w.IsDirty() {
		t.Error("a real width change must mark the widget dirty")
	}

	w.SetDirty(false)
	w.SetLayoutSize(rendering.Size{Width: 99, Height: 99})
	if w.IsDirty() {
		t.Error("SetLayoutSize must not touch the dirty flag")
	}
}

func TestInitWidgetAttachesBoundState(t *testing.T) {
	state := observable.NewState(0)
	w := &stubWidget{}
	w.InitWidget(w, state, rendering.Size{}, SizePolicyExpanding)

	if !state.HasObserver(w) {
		t.Fatal("widget should observe its bound state after construction")
	}

	w.SetDirty(false)
	state.Set(1)
	if !w.IsDirty() {
		t.Error("a state notification should mark the widget dirty")
	}
}

func TestDetachSeversAllSourcesUnlessFrozen(t *testing.T) {
	a := observable.NewState(0)
	b := observable.NewState(0)
	w := &stubWidget{}
	w.InitWidget(w, a, rendering.Size{}, SizePolicyExpanding)
	b.Attach(w)

	w.Detach()
	if a.HasObserver(w) || b.HasObserver(w) {
		t.Fatal("Detach should sever every observable edge")
	}

	frozen := &stubWidget{}
	frozen.InitWidget(frozen, a, rendering.Size{}, SizePolicyExpanding)
	frozen.Freeze()
	frozen.Detach()
	if !a.HasObserver(frozen) {
		t.Error("a frozen widget must survive Detach")
	}
}

func TestModelRebindsState(t *testing.T) {
	old := observable.NewState(0)
	next := observable.NewState(0)
	w := &stubWidget{}
	w.InitWidget(w, old, rendering.Size{}, SizePolicyExpanding)

	w.Model(next)

	if old.HasObserver(w) {
		t.Error("Model should detach from the previous state")
	}
	if !next.HasObserver(w) {
		t.Error("Model should attach to the new state")
	}
	if w.State() != observable.Observable(next) {
		t.Error("State should return the new binding")
	}
}

func TestUpdateWithoutUpdaterGoesNowhere(t *testing.T) {
	w := newStubWidget(rendering.Size{}, SizePolicyExpanding)
	w.Update(false) // must not panic
}

func TestUpdatePostsSelfWhenNoBoundaryAncestor(t *testing.T) {
	u := &recordingUpdater{}
	w := newStubWidget(rendering.Size{}, SizePolicyExpanding)
	w.setUpdater(u)

	w.Update(false)

	if len(u.posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(u.posts))
	}
	if u.posts[0].target != Widget(w) || u.posts[0].completely {
		t.Errorf("expected a partial post of the widget itself, got %+v", u.posts[0])
	}
}

func TestUpdatePromotesToNearestScrollableAncestor(t *testing.T) {
	u := &recordingUpdater{}
	outer := newScrollStub()
	inner := newScrollStub()
	leaf := newStubWidget(rendering.Size{}, SizePolicyExpanding)
	inner.SetParent(outer)
	leaf.SetParent(inner)
	leaf.setUpdater(u)

	leaf.Update(false)

	if len(u.posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(u.posts))
	}
	if u.posts[0].target != Widget(inner) {
		t.Error("the nearest scrollable ancestor should be the repaint root")
	}
	if !u.posts[0].completely {
		t.Error("a boundary repaint must be complete")
	}
}

func TestUpdateOnScrollableSelfIsComplete(t *testing.T) {
	u := &recordingUpdater{}
	w := newScrollStub()
	w.setUpdater(u)

	w.Update(false)

	if len(u.posts) != 1 || !u.posts[0].completely {
		t.Errorf("a scrollable widget posts itself completely, got %+v", u.posts)
	}
}

func TestDeleteParentOnlyClearsMatchingParent(t *testing.T) {
	parent := newStubWidget(rendering.Size{}, SizePolicyExpanding)
	other := newStubWidget(rendering.Size{}, SizePolicyExpanding)
	child := newStubWidget(rendering.Size{}, SizePolicyExpanding)
	child.SetParent(parent)

	child.DeleteParent(other)
	if child.Parent() != Widget(parent) {
		t.Error("DeleteParent with a different widget must be a no-op")
	}

	child.DeleteParent(parent)
	if child.Parent() != nil {
		t.Error("DeleteParent should clear the matching parent")
	}
}

func TestSetFixedSizeHelpers(t *testing.T) {
	w := newStubWidget(rendering.Size{}, SizePolicyExpanding)

	w.SetFixedHeight(50)
	if w.SizePolicy() != SizePolicyFixedHeight || w.Height() != 50 {
		t.Errorf("SetFixedHeight: policy %v height %v", w.SizePolicy(), w.Height())
	}

	w.SetFixedWidth(30)
	if w.SizePolicy() != SizePolicyFixed || w.Width() != 30 {
		t.Errorf("SetFixedWidth after fixed height: policy %v width %v", w.SizePolicy(), w.Width())
	}
}
