package core

import (
	"slices"

	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/observable"
	"github.com/go-castella/castella/pkg/rendering"
	"github.com/go-castella/castella/pkg/theme"
)

// Container is a widget that owns an ordered list of children.
type Container interface {
	Children() []Widget
	Detach()
}

// ContentArea is the hit-testing surface of a container. The base treats the
// content area as the whole widget; scrollable containers shrink it by their
// gutters and shift incoming points by their scroll offsets.
type ContentArea interface {
	ContainInContentArea(p rendering.Point) bool
	AdjustPosition(p rendering.Point) rendering.Point
	HasScrollbar(directionX bool) bool
}

// ChildArranger is the layout hook pair the base redraw drives. Containers
// override RelocateChildren with their sizing algorithm.
type ChildArranger interface {
	RelocateChildren(p rendering.Painter)
	RedrawChildren(p rendering.Painter, completely bool)
}

// LayoutBase carries the state and algorithms shared by child-owning
// widgets. Embed it and call InitLayout with the outer widget.
type LayoutBase struct {
	WidgetBase
	children []Widget
	style    rendering.Style
}

// InitLayout wires the embedded base to the outer widget. The background
// style is resolved from the current theme.
func (l *LayoutBase) InitLayout(self Widget, state observable.Observable, size rendering.Size, policy SizePolicy) {
	l.InitWidget(self, state, size, policy)
	l.style = rendering.Style{
		Fill: rendering.FillStyle{Color: theme.Current().Layout.BGColor},
		Font: rendering.DefaultFont(),
	}
}

// Children returns the children in order. The slice is a snapshot.
func (l *LayoutBase) Children() []Widget {
	return slices.Clone(l.children)
}

// Add appends w as the last child and takes ownership of it. A content-sized
// container cannot hold a child that expands on a content axis; violating
// that is a programming error and panics with a *errors.ContractError.
func (l *LayoutBase) Add(w Widget) {
	p := w.SizePolicy()
	if l.policy.IsContent() && (p.IsWidthExpanding() || p.IsHeightExpanding()) {
		panic(errors.NewContract("core.Layout.Add",
			"content-sized layout cannot hold an expanding child"))
	}
	l.children = append(l.children, w)
	w.SetParent(l.widget())
	w.setUpdater(l.updater)
}

// Remove removes w from the children and clears its parent pointer. The
// caller is responsible for detaching w from its states.
func (l *LayoutBase) Remove(w Widget) {
	for i, c := range l.children {
		if c == w {
			l.children = append(l.children[:i], l.children[i+1:]...)
			w.DeleteParent(l.widget())
			return
		}
	}
}

// setUpdater propagates the updater through the subtree.
func (l *LayoutBase) setUpdater(u Updater) {
	l.updater = u
	for _, c := range l.children {
		c.setUpdater(u)
	}
}

// Detach severs the whole subtree from its observables.
func (l *LayoutBase) Detach() {
	l.WidgetBase.Detach()
	for _, c := range l.children {
		c.Detach()
	}
}

// Dispatch walks the subtree for the widget under p. Points inside the
// content area recurse into children (shifted by the scroll offset); points
// inside the widget but outside the content area, such as a scrollbar
// gutter, resolve to the container itself.
func (l *LayoutBase) Dispatch(p rendering.Point) (Widget, rendering.Point, bool) {
	ca := l.widget().(ContentArea)
	if ca.ContainInContentArea(p) {
		q := ca.AdjustPosition(p)
		for _, c := range l.children {
			if target, adjusted, ok := c.Dispatch(q); ok {
				return target, adjusted, true
			}
		}
		return l.widget(), q, true
	}
	if l.Contain(p) {
		return l.widget(), p, true
	}
	return nil, rendering.Point{}, false
}

// DispatchToScrollable resolves the innermost container under p that shows a
// scrollbar on the given axis.
func (l *LayoutBase) DispatchToScrollable(p rendering.Point, directionX bool) (Widget, rendering.Point, bool) {
	ca := l.widget().(ContentArea)
	if ca.ContainInContentArea(p) {
		q := ca.AdjustPosition(p)
		for _, c := range l.children {
			if target, adjusted, ok := c.DispatchToScrollable(q, directionX); ok {
				return target, adjusted, true
			}
		}
		if ca.HasScrollbar(directionX) {
			return l.widget(), q, true
		}
		return nil, rendering.Point{}, false
	}
	if l.Contain(p) && ca.HasScrollbar(directionX) {
		return l.widget(), p, true
	}
	return nil, rendering.Point{}, false
}

// ContainInContentArea reports whether p lies in the area children occupy.
// The base has no gutters, so it equals Contain.
func (l *LayoutBase) ContainInContentArea(p rendering.Point) bool {
	return l.Contain(p)
}

// AdjustPosition maps a content-area point into child coordinates. The base
// does not scroll, so the point passes through.
func (l *LayoutBase) AdjustPosition(p rendering.Point) rendering.Point {
	return p
}

// HasScrollbar reports whether a scrollbar is currently shown on the given
// axis.
func (l *LayoutBase) HasScrollbar(directionX bool) bool {
	return false
}

// BackgroundStyle returns the style the container paints its background
// with.
func (l *LayoutBase) BackgroundStyle() rendering.Style {
	return l.style
}

// SetBackgroundColor changes the background fill color.
func (l *LayoutBase) SetBackgroundColor(color string) {
	l.style.Fill.Color = color
	l.dirty = true
}

// Redraw paints the background when needed, then lays out and repaints the
// children. The painter origin is the container's top-left corner.
func (l *LayoutBase) Redraw(p rendering.Painter, completely bool) {
	p.SetStyle(l.style)
	if completely || l.IsDirty() {
		p.FillRect(rendering.Rect{Size: l.size.Add(rendering.Size{Width: 1, Height: 1})})
	}
	ar := l.widget().(ChildArranger)
	ar.RelocateChildren(p)
	ar.RedrawChildren(p, completely)
}

// RelocateChildren sizes and positions the children. The base leaves them
// alone; containers override this with their layout algorithm.
func (l *LayoutBase) RelocateChildren(p rendering.Painter) {}

// RedrawChildren repaints every child that needs it and clears its dirty
// flag.
func (l *LayoutBase) RedrawChildren(p rendering.Painter, completely bool) {
	for _, c := range l.children {
		if completely || c.IsDirty() {
			l.redrawChild(p, c, completely)
		}
	}
}

// redrawChild paints one child with the origin translated to the child's
// top-left corner and drawing clipped to its bounds. The restore is deferred
// so the save/restore pairing holds even when the child panics.
func (l *LayoutBase) redrawChild(p rendering.Painter, c Widget, completely bool) {
	p.Save()
	defer p.Restore()
	p.Translate(c.Position().Sub(l.pos))
	p.Clip(rendering.Rect{Size: c.Size()})
	c.Redraw(p, completely)
	c.SetDirty(false)
}

// SetSizePolicy replaces the size policy. Switching to Content while an
// expanding child is present violates the layout contract and panics.
func (l *LayoutBase) SetSizePolicy(p SizePolicy) {
	if p.IsContent() && (l.hasWidthExpandingChildren() || l.hasHeightExpandingChildren()) {
		panic(errors.NewContract("core.Layout.SetSizePolicy",
			"content-sized layout cannot hold an expanding child"))
	}
	l.policy = p
}

func (l *LayoutBase) hasWidthExpandingChildren() bool {
	for _, c := range l.children {
		if c.SizePolicy().IsWidthExpanding() {
			return true
		}
	}
	return false
}

func (l *LayoutBase) hasHeightExpandingChildren() bool {
	for _, c := range l.children {
		if c.SizePolicy().IsHeightExpanding() {
			return true
		}
	}
	return false
}
