// Package core holds the retained widget tree: the Widget contract and its
// base implementation, the child-owning Layout base, the declarative
// Component, the App dispatcher and the Frame contract.
//
// Concrete widgets embed WidgetBase (or LayoutBase) and pass themselves to
// the Init call, so base algorithms always see the outermost type.
package core

import (
	"slices"

	"github.com/go-castella/castella/pkg/observable"
	"github.com/go-castella/castella/pkg/rendering"
)

// SizePolicy controls how a widget is sized by its parent. The five values
// cover both axes at once: Fixed and Content hold both axes, FixedHeight and
// FixedWidth hold one axis and expand the other, Expanding expands both.
type SizePolicy int

const (
	// SizePolicyFixed keeps the widget's explicit width and height.
	SizePolicyFixed SizePolicy = iota
	// SizePolicyFixedHeight keeps the explicit height and expands the width.
	SizePolicyFixedHeight
	// SizePolicyFixedWidth keeps the explicit width and expands the height.
	SizePolicyFixedWidth
	// SizePolicyExpanding fills the space the parent offers on both axes.
	SizePolicyExpanding
	// SizePolicyContent sizes the widget to its measured content.
	SizePolicyContent
)

// IsWidthFixed reports whether the width axis keeps its current value during
// layout. Content counts as fixed: the container measures it first and then
// treats the result as a fixed width.
func (p SizePolicy) IsWidthFixed() bool {
	return p == SizePolicyFixed || p == SizePolicyFixedWidth || p == SizePolicyContent
}

// IsHeightFixed reports whether the height axis keeps its current value
// during layout.
func (p SizePolicy) IsHeightFixed() bool {
	return p == SizePolicyFixed || p == SizePolicyFixedHeight || p == SizePolicyContent
}

// IsWidthExpanding reports whether the width axis takes a share of the
// parent's remaining space.
func (p SizePolicy) IsWidthExpanding() bool {
	return p == SizePolicyExpanding || p == SizePolicyFixedHeight
}

// IsHeightExpanding reports whether the height axis takes a share of the
// parent's remaining space.
func (p SizePolicy) IsHeightExpanding() bool {
	return p == SizePolicyExpanding || p == SizePolicyFixedWidth
}

// IsContent reports whether the widget is sized to its measured content.
func (p SizePolicy) IsContent() bool {
	return p == SizePolicyContent
}

// withWidthFixed returns the policy with the width axis pinned. A Content
// policy collapses to Fixed: a content width with an explicit height (or the
// reverse) is not representable.
func (p SizePolicy) withWidthFixed() SizePolicy {
	switch p {
	case SizePolicyExpanding:
		return SizePolicyFixedWidth
	case SizePolicyFixedHeight, SizePolicyContent:
		return SizePolicyFixed
	default:
		return p
	}
}

// withHeightFixed returns the policy with the height axis pinned.
func (p SizePolicy) withHeightFixed() SizePolicy {
	switch p {
	case SizePolicyExpanding:
		return SizePolicyFixedHeight
	case SizePolicyFixedWidth, SizePolicyContent:
		return SizePolicyFixed
	default:
		return p
	}
}

// PositionPolicy controls how the App places a layer each redraw.
type PositionPolicy int

const (
	// PositionPolicyFixed leaves the layer where it was put.
	PositionPolicyFixed PositionPolicy = iota
	// PositionPolicyCenter re-centers the layer in the frame every redraw.
	PositionPolicyCenter
)

// Updater is where widgets post themselves for repaint. The App implements
// it; a widget that is not yet under an App has no updater and its Update
// calls go nowhere.
type Updater interface {
	PostUpdate(w Widget, completely bool)
}

// Widget is a node of the retained tree.
//
// A Widget observes its bound state (if any): it embeds observable.Observer
// and marks itself dirty on notification. The unexported method keeps the
// interface implementable only by embedding WidgetBase.
type Widget interface {
	observable.Observer

	Position() rendering.Point
	Move(p rendering.Point)
	MoveX(x float64)
	MoveY(y float64)
	Size() rendering.Size
	Resize(s rendering.Size)
	Width() float64
	Height() float64
	SetWidth(w float64)
	SetHeight(h float64)

	SizePolicy() SizePolicy
	SetSizePolicy(p SizePolicy)
	Flex() int
	SetFlex(flex int)

	IsDirty() bool
	SetDirty(dirty bool)

	Parent() Widget
	SetParent(parent Widget)
	DeleteParent(parent Widget)

	Contain(p rendering.Point) bool
	Dispatch(p rendering.Point) (Widget, rendering.Point, bool)
	DispatchToScrollable(p rendering.Point, directionX bool) (Widget, rendering.Point, bool)
	IsScrollable() bool

	Measure(p rendering.Painter) rendering.Size
	Redraw(p rendering.Painter, completely bool)
	Update(completely bool)
	AskParentToRender(completely bool)

	Detach()
	Freeze()
	Model(state observable.Observable)
	State() observable.Observable

	MouseDown(ev MouseEvent)
	MouseUp(ev MouseEvent)
	MouseDrag(ev MouseEvent)
	MouseOver()
	MouseOut()
	MouseWheel(ev WheelEvent)
	InputChar(ev InputCharEvent)
	InputKey(ev InputKeyEvent)
	Focused()
	Unfocused()

	setUpdater(u Updater)
}

// viewBoundary marks widgets that rebuild their subtree on update, so an
// Update posted below them is promoted to a full repaint from the boundary.
type viewBoundary interface {
	viewBoundary()
}

func isUpdateBoundary(w Widget) bool {
	if w.IsScrollable() {
		return true
	}
	_, ok := w.(viewBoundary)
	return ok
}

// WidgetBase carries the state shared by every widget. Embed it and call
// InitWidget with the outer widget.
type WidgetBase struct {
	self    Widget
	updater Updater

	state   observable.Observable
	sources []observable.Observable

	pos    rendering.Point
	size   rendering.Size
	policy SizePolicy
	flex   int
	dirty  bool
	frozen bool
	parent Widget
}

// InitWidget wires the embedded base to the outer widget and attaches the
// bound state, if any. New widgets start dirty with a flex weight of 1.
func (b *WidgetBase) InitWidget(self Widget, state observable.Observable, size rendering.Size, policy SizePolicy) {
	b.self = self
	b.size = size
	b.policy = policy
	b.flex = 1
	b.dirty = true
	if state != nil {
		b.state = state
		state.Attach(self)
	}
}

func (b *WidgetBase) widget() Widget {
	return b.self
}

func (b *WidgetBase) setUpdater(u Updater) {
	b.updater = u
}

// OnAttach records the observable so Detach can sever the edge later.
func (b *WidgetBase) OnAttach(o observable.Observable) {
	b.sources = append(b.sources, o)
}

// OnDetach forgets the observable.
func (b *WidgetBase) OnDetach(o observable.Observable) {
	for i, s := range b.sources {
		if s == o {
			b.sources = append(b.sources[:i], b.sources[i+1:]...)
			return
		}
	}
}

// OnNotify marks the widget dirty and posts it for repaint.
func (b *WidgetBase) OnNotify() {
	b.dirty = true
	b.Update(false)
}

// Detach severs the widget from every observable it is attached to. Frozen
// widgets stay attached.
func (b *WidgetBase) Detach() {
	if b.frozen {
		return
	}
	for _, o := range slices.Clone(b.sources) {
		o.Detach(b.widget())
	}
}

// Freeze disables Detach so a shared or cached subtree survives the teardown
// of one of its mount points.
func (b *WidgetBase) Freeze() {
	b.frozen = true
}

// Model rebinds the widget to a new state, detaching from the old one first.
func (b *WidgetBase) Model(state observable.Observable) {
	if b.state != nil {
		b.state.Detach(b.widget())
	}
	b.state = state
	state.Attach(b.widget())
}

// State returns the bound state, or nil.
func (b *WidgetBase) State() observable.Observable {
	return b.state
}

// Position returns the widget's position in frame coordinates.
func (b *WidgetBase) Position() rendering.Point {
	return b.pos
}

// Move sets the position, marking the widget dirty if it changed.
func (b *WidgetBase) Move(p rendering.Point) {
	if p != b.pos {
		b.pos = p
		b.dirty = true
	}
}

// MoveX sets the X coordinate, marking the widget dirty if it changed.
func (b *WidgetBase) MoveX(x float64) {
	if x != b.pos.X {
		b.pos.X = x
		b.dirty = true
	}
}

// MoveY sets the Y coordinate, marking the widget dirty if it changed.
func (b *WidgetBase) MoveY(y float64) {
	if y != b.pos.Y {
		b.pos.Y = y
		b.dirty = true
	}
}

// Size returns the widget's current size.
func (b *WidgetBase) Size() rendering.Size {
	return b.size
}

// Resize sets the size, marking the widget dirty if it changed.
func (b *WidgetBase) Resize(s rendering.Size) {
	if s != b.size {
		b.size = s
		b.dirty = true
	}
}

// Width returns the current width.
func (b *WidgetBase) Width() float64 {
	return b.size.Width
}

// Height returns the current height.
func (b *WidgetBase) Height() float64 {
	return b.size.Height
}

// SetWidth sets the width, marking the widget dirty if it changed.
func (b *WidgetBase) SetWidth(w float64) {
	if w != b.size.Width {
		b.size.Width = w
		b.dirty = true
	}
}

// SetHeight sets the height, marking the widget dirty if it changed.
func (b *WidgetBase) SetHeight(h float64) {
	if h != b.size.Height {
		b.size.Height = h
		b.dirty = true
	}
}

// SetLayoutSize changes the size without touching the dirty flag. Containers
// use it for the transient gutter shrink while laying out scrollable content.
func (b *WidgetBase) SetLayoutSize(s rendering.Size) {
	b.size = s
}

// SizePolicy returns the widget's size policy.
func (b *WidgetBase) SizePolicy() SizePolicy {
	return b.policy
}

// SetSizePolicy replaces the size policy.
func (b *WidgetBase) SetSizePolicy(p SizePolicy) {
	b.policy = p
}

// Flex returns the flex weight used when sharing remaining space.
func (b *WidgetBase) Flex() int {
	return b.flex
}

// SetFlex sets the flex weight.
func (b *WidgetBase) SetFlex(flex int) {
	b.flex = flex
}

// SetFixedWidth pins the width axis and sets the width.
func (b *WidgetBase) SetFixedWidth(w float64) {
	b.self.SetSizePolicy(b.policy.withWidthFixed())
	b.SetWidth(w)
}

// SetFixedHeight pins the height axis and sets the height.
func (b *WidgetBase) SetFixedHeight(h float64) {
	b.self.SetSizePolicy(b.policy.withHeightFixed())
	b.SetHeight(h)
}

// SetFixedSize pins both axes and sets the size.
func (b *WidgetBase) SetFixedSize(s rendering.Size) {
	b.self.SetSizePolicy(SizePolicyFixed)
	b.Resize(s)
}

// IsDirty reports whether the widget needs repainting.
func (b *WidgetBase) IsDirty() bool {
	return b.dirty
}

// SetDirty sets the dirty flag.
func (b *WidgetBase) SetDirty(dirty bool) {
	b.dirty = dirty
}

// Parent returns the widget's parent, or nil at the root.
func (b *WidgetBase) Parent() Widget {
	return b.parent
}

// SetParent records the parent. A widget has at most one parent; containers
// call DeleteParent before handing a child to another tree.
func (b *WidgetBase) SetParent(parent Widget) {
	b.parent = parent
}

// DeleteParent clears the parent pointer if it currently is parent.
func (b *WidgetBase) DeleteParent(parent Widget) {
	if b.parent == parent {
		b.parent = nil
	}
}

// Contain reports whether p lies strictly inside the widget. Points on the
// border belong to the parent.
func (b *WidgetBase) Contain(p rendering.Point) bool {
	return b.pos.X < p.X && p.X < b.pos.X+b.size.Width &&
		b.pos.Y < p.Y && p.Y < b.pos.Y+b.size.Height
}

// Dispatch resolves the widget under p. Leaf widgets answer for themselves;
// containers override to recurse.
func (b *WidgetBase) Dispatch(p rendering.Point) (Widget, rendering.Point, bool) {
	if b.Contain(p) {
		return b.widget(), p, true
	}
	return nil, rendering.Point{}, false
}

// DispatchToScrollable resolves the innermost container under p with a
// scrollbar on the wheel's dominant axis. Leaf widgets never match.
func (b *WidgetBase) DispatchToScrollable(p rendering.Point, directionX bool) (Widget, rendering.Point, bool) {
	return nil, rendering.Point{}, false
}

// IsScrollable reports whether the widget scrolls its content.
func (b *WidgetBase) IsScrollable() bool {
	return false
}

// Measure returns the widget's preferred content size. The default is the
// current size; content-sized widgets override it.
func (b *WidgetBase) Measure(p rendering.Painter) rendering.Size {
	return b.size
}

// Update posts the widget for repaint. If a scrollable or view-rebuilding
// ancestor exists, the nearest such ancestor is posted instead, completely:
// those run their own layout and their whole area may change.
func (b *WidgetBase) Update(completely bool) {
	u := b.updater
	if u == nil {
		return
	}
	for p := b.parent; p != nil; p = p.Parent() {
		if isUpdateBoundary(p) {
			u.PostUpdate(p, true)
			return
		}
	}
	w := b.widget()
	u.PostUpdate(w, completely || isUpdateBoundary(w))
}

// AskParentToRender posts the widget's parent for repaint.
func (b *WidgetBase) AskParentToRender(completely bool) {
	if b.parent != nil && b.updater != nil {
		b.updater.PostUpdate(b.parent, completely)
	}
}

// Input hooks. Widgets override the ones they care about.

func (b *WidgetBase) MouseDown(ev MouseEvent) {}

func (b *WidgetBase) MouseUp(ev MouseEvent) {}

func (b *WidgetBase) MouseDrag(ev MouseEvent) {}

func (b *WidgetBase) MouseOver() {}

func (b *WidgetBase) MouseOut() {}

func (b *WidgetBase) MouseWheel(ev WheelEvent) {}

func (b *WidgetBase) InputChar(ev InputCharEvent) {}

func (b *WidgetBase) InputKey(ev InputKeyEvent) {}

func (b *WidgetBase) Focused() {}

func (b *WidgetBase) Unfocused() {}
