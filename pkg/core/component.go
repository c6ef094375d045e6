package core

import (
	"github.com/go-castella/castella/pkg/observable"
	"github.com/go-castella/castella/pkg/rendering"
)

// Component is a declarative node: its subtree is built by a view function
// and cached until one of the component's states notifies. On notification
// the cached child is removed, detached recursively and rebuilt from scratch
// at the next redraw. The component is an update boundary: updates posted
// below it repaint from here.
type Component struct {
	LayoutBase
	view  func() Widget
	child Widget
}

// NewComponent returns a component that builds its subtree with view.
func NewComponent(view func() Widget) *Component {
	c := &Component{view: view}
	c.InitComponent(c)
	return c
}

// InitComponent wires an embedding type as the outer widget and sets its
// view function. Embedders call this instead of NewComponent.
func (c *Component) InitComponent(self Widget) {
	c.InitLayout(self, nil, rendering.Size{}, SizePolicyExpanding)
}

// SetView replaces the view function. The current child, if any, stays until
// the next rebuild.
func (c *Component) SetView(view func() Widget) {
	c.view = view
}

// Child returns the cached subtree root, or nil before the first redraw.
func (c *Component) Child() Widget {
	return c.child
}

func (c *Component) viewBoundary() {}

// OnNotify tears down the cached subtree and posts a rebuild.
func (c *Component) OnNotify() {
	if c.child != nil {
		c.Remove(c.child)
		c.child.Detach()
		c.child = nil
	}
	c.dirty = true
	c.Update(false)
}

// Redraw builds the subtree if needed, then paints as a layout.
func (c *Component) Redraw(p rendering.Painter, completely bool) {
	if c.child == nil {
		c.child = c.view()
		c.Add(c.child)
	}
	c.LayoutBase.Redraw(p, completely)
}

// RelocateChildren gives the child the component's own rect.
func (c *Component) RelocateChildren(p rendering.Painter) {
	if len(c.children) == 0 {
		return
	}
	child := c.children[0]
	child.Resize(c.size)
	child.Move(c.pos)
}

// Measure returns the child's measure, or zero before the first build.
func (c *Component) Measure(p rendering.Painter) rendering.Size {
	if c.child == nil {
		return rendering.Size{}
	}
	return c.child.Measure(p)
}

// StatefulComponent is a Component bound to a state at construction: every
// notification of that state rebuilds the subtree.
type StatefulComponent struct {
	Component
}

// NewStatefulComponent returns a component that rebuilds view whenever state
// notifies.
func NewStatefulComponent(state observable.Observable, view func() Widget) *StatefulComponent {
	s := &StatefulComponent{}
	s.view = view
	s.InitComponent(s)
	s.Model(state)
	return s
}
