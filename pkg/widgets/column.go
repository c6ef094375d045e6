package widgets

import (
	"math"

	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/rendering"
)

// Column stacks its children vertically. Fixed- and content-height children
// keep their height; the rest share the remaining height by flex weight.
// Width-expanding children stretch to the column's width.
//
// A scrollable column reserves a 20px gutter on its right edge whenever the
// summed child height exceeds the viewport, with a proportional draggable
// thumb. Scrollable columns reject height-expanding children: an expanding
// child would absorb the overflow the scrollbar exists for.
type Column struct {
	core.LayoutBase

	spacer  *Spacer
	spacing float64

	scrollable bool
	scrollY    float64
	thumb      *rendering.Rect
	dragging   bool
	lastDrag   rendering.Point
	hasLast    bool

	barStyle   rendering.Style
	thumbStyle rendering.Style
}

// NewColumn returns a column holding the given children.
func NewColumn(children ...core.Widget) *Column {
	return newColumn(false, children)
}

// NewScrollableColumn returns a vertically scrolling column.
func NewScrollableColumn(children ...core.Widget) *Column {
	return newColumn(true, children)
}

func newColumn(scrollable bool, children []core.Widget) *Column {
	c := &Column{scrollable: scrollable}
	c.InitLayout(c, nil, rendering.Size{}, core.SizePolicyExpanding)
	c.barStyle, c.thumbStyle = scrollStyles()
	for _, w := range children {
		c.Add(w)
	}
	return c
}

// Add appends a child. A scrollable column cannot hold a height-expanding
// child; violating that panics with a *errors.ContractError.
func (c *Column) Add(w core.Widget) {
	if c.scrollable && w.SizePolicy().IsHeightExpanding() {
		panic(errors.NewContract("widgets.Column.Add",
			"scrollable column cannot hold a height-expanding child"))
	}
	c.LayoutBase.Add(w)
}

// SetSpacing inserts a fixed-height spacer before each child and after the
// last one.
func (c *Column) SetSpacing(size float64) {
	c.spacing = size
	sp := NewSpacer()
	sp.SetFixedHeight(size)
	c.spacer = sp
}

// layoutChildren returns the children the layout algorithm walks: the real
// children with the shared spacer interleaved when spacing is set.
func (c *Column) layoutChildren() []core.Widget {
	children := c.Children()
	if c.spacer == nil {
		return children
	}
	out := make([]core.Widget, 0, 2*len(children)+1)
	for _, w := range children {
		out = append(out, c.spacer, w)
	}
	return append(out, c.spacer)
}

// IsScrollable reports whether the column was built scrollable.
func (c *Column) IsScrollable() bool {
	return c.scrollable
}

// Redraw lays out and paints the children. Overflow is recomputed here every
// time: when the content fits the viewport again, the scroll state resets
// and the column paints like a plain layout.
func (c *Column) Redraw(p rendering.Painter, completely bool) {
	if !c.scrollable {
		c.resetScrollState()
		c.LayoutBase.Redraw(p, completely)
		return
	}

	c.resizeChildren(p)
	contentHeight := c.ContentHeight()
	if contentHeight <= c.Height() {
		c.resetScrollState()
		c.LayoutBase.Redraw(p, completely)
		return
	}

	p.Save()
	p.SetStyle(c.BackgroundStyle())
	if completely || c.IsDirty() {
		p.FillRect(rendering.Rect{Size: c.Size().Add(rendering.Size{Width: 1, Height: 1})})
	}
	p.Translate(rendering.Point{Y: -c.scrollY})

	origSize := c.Size()
	c.SetLayoutSize(rendering.Size{Width: origSize.Width - ScrollBarSize, Height: origSize.Height})
	c.RelocateChildren(p)
	c.RedrawChildren(p, completely)
	c.SetLayoutSize(origSize)
	p.Restore()

	p.Save()
	p.SetStyle(c.barStyle)
	p.FillRect(rendering.Rect{
		Origin: rendering.Point{X: origSize.Width - ScrollBarSize},
		Size:   rendering.Size{Width: ScrollBarSize, Height: c.Height()},
	})
	p.StrokeRect(rendering.Rect{
		Origin: rendering.Point{X: origSize.Width - ScrollBarSize, Y: -1},
		Size:   rendering.Size{Width: ScrollBarSize, Height: c.Height() + 2},
	})
	p.SetStyle(c.thumbStyle)
	if contentHeight != 0 && c.Height() != 0 {
		thumb := rendering.Rect{
			Origin: rendering.Point{
				X: origSize.Width - ScrollBarSize,
				Y: c.scrollY / contentHeight * c.Height(),
			},
			Size: rendering.Size{
				Width:  ScrollBarSize,
				Height: c.Height() * c.Height() / contentHeight,
			},
		}
		c.thumb = &thumb
		p.FillRect(thumb)
	}
	p.Restore()
}

func (c *Column) resetScrollState() {
	c.thumb = nil
	c.scrollY = 0
	c.dragging = false
	c.hasLast = false
}

// MouseDown starts a thumb drag when the press lands on the thumb.
func (c *Column) MouseDown(ev core.MouseEvent) {
	if c.thumb != nil {
		c.dragging = c.thumb.Contains(ev.Pos)
		c.lastDrag = ev.Pos
		c.hasLast = true
	}
}

// MouseUp ends a thumb drag.
func (c *Column) MouseUp(ev core.MouseEvent) {
	c.dragging = false
}

// MouseDrag moves the scroll offset by the pointer delta scaled by the
// content/viewport ratio, so dragging the thumb across the whole track
// scrolls across the whole content.
func (c *Column) MouseDrag(ev core.MouseEvent) {
	last := c.lastDrag
	hadLast := c.hasLast
	c.lastDrag = ev.Pos
	c.hasLast = true
	if c.dragging && hadLast {
		c.ScrollY(math.Trunc((ev.Pos.Y - last.Y) * (c.ContentHeight() / c.Height())))
	}
}

// MouseWheel scrolls by the wheel's vertical offset.
func (c *Column) MouseWheel(ev core.WheelEvent) {
	c.ScrollY(math.Trunc(ev.YOffset))
}

// HasScrollbar reports a vertical scrollbar when the thumb is present.
func (c *Column) HasScrollbar(directionX bool) bool {
	return !directionX && c.thumb != nil
}

// ScrollY moves the scroll offset by dy, clamped to
// [0, content − viewport]. A clamped-out move posts no repaint.
func (c *Column) ScrollY(dy float64) {
	if dy > 0 {
		maxScroll := c.ContentHeight() - c.Height()
		if c.scrollY == maxScroll {
			return
		}
		c.scrollY = math.Min(maxScroll, c.scrollY+dy)
	} else {
		if c.scrollY == 0 {
			return
		}
		c.scrollY = math.Max(0, c.scrollY+dy)
	}
	if c.Parent() != nil {
		c.SetDirty(true)
		c.AskParentToRender(true)
	} else {
		c.Update(true)
	}
}

// ScrollOffset returns the current vertical scroll offset.
func (c *Column) ScrollOffset() float64 {
	return c.scrollY
}

// Measure returns the widest child measure by the summed child measures.
func (c *Column) Measure(p rendering.Painter) rendering.Size {
	var size rendering.Size
	for _, w := range c.layoutChildren() {
		m := w.Measure(p)
		size.Width = math.Max(size.Width, m.Width)
		size.Height += m.Height
	}
	return size
}

// ContentHeight returns the summed heights of the laid-out children.
func (c *Column) ContentHeight() float64 {
	var total float64
	for _, w := range c.layoutChildren() {
		total += w.Height()
	}
	return total
}

// AdjustPosition shifts a content-area point by the scroll offset.
func (c *Column) AdjustPosition(p rendering.Point) rendering.Point {
	return p.Add(rendering.Point{Y: c.scrollY})
}

// ContainInContentArea excludes the scrollbar gutter while it is shown.
func (c *Column) ContainInContentArea(p rendering.Point) bool {
	if c.scrollable && c.ContentHeight() > c.Height() {
		pos, size := c.Position(), c.Size()
		return pos.X < p.X && p.X < pos.X+size.Width-ScrollBarSize &&
			pos.Y < p.Y && p.Y < pos.Y+size.Height
	}
	return c.Contain(p)
}

// RelocateChildren runs the one-axis flex algorithm and stacks the results.
func (c *Column) RelocateChildren(p rendering.Painter) {
	c.resizeChildren(p)
	c.moveChildren()
}

// resizeChildren sizes the children: content heights are measured first,
// fixed heights subtract from the remaining space, and the rest share what
// is left by flex weight. The remainder is distributed by cumulative
// flooring, so the heights always sum exactly to the remaining space and
// depend on child order.
func (c *Column) resizeChildren(p rendering.Painter) {
	children := c.layoutChildren()
	if len(children) == 0 {
		return
	}

	remaining := c.Height()
	var flexible []core.Widget
	totalFlex := 0
	for _, w := range children {
		pol := w.SizePolicy()
		if pol.IsContent() {
			w.SetHeight(w.Measure(p).Height)
		}
		if pol.IsHeightExpanding() {
			flexible = append(flexible, w)
			totalFlex += w.Flex()
		} else {
			remaining -= w.Height()
		}
	}

	if totalFlex > 0 {
		if remaining < 0 {
			remaining = 0
		}
		cum := 0
		prev := 0.0
		for _, w := range flexible {
			cum += w.Flex()
			edge := math.Floor(remaining * float64(cum) / float64(totalFlex))
			w.SetHeight(edge - prev)
			prev = edge
		}
	}

	for _, w := range children {
		pol := w.SizePolicy()
		if pol.IsWidthExpanding() {
			w.SetWidth(c.Width())
		} else if pol.IsContent() {
			w.SetWidth(w.Measure(p).Width)
		}
	}
}

func (c *Column) moveChildren() {
	pos := c.Position()
	accY := pos.Y
	for _, w := range c.layoutChildren() {
		w.MoveY(accY)
		accY += w.Height()
		w.MoveX(pos.X)
	}
}
