package widgets

import (
	"math"

	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/rendering"
)

// Row lays its children out horizontally. It is the mirror of Column: fixed-
// and content-width children keep their width, the rest share the remaining
// width by flex weight, and height-expanding children stretch to the row's
// height.
//
// A scrollable row reserves a 20px gutter along its bottom edge whenever the
// summed child width exceeds the viewport. Scrollable rows reject
// width-expanding children.
type Row struct {
	core.LayoutBase

	spacer  *Spacer
	spacing float64

	scrollable bool
	scrollX    float64
	thumb      *rendering.Rect
	dragging   bool
	lastDrag   rendering.Point
	hasLast    bool

	barStyle   rendering.Style
	thumbStyle rendering.Style
}

// NewRow returns a row holding the given children.
func NewRow(children ...core.Widget) *Row {
	return newRow(false, children)
}

// NewScrollableRow returns a horizontally scrolling row.
func NewScrollableRow(children ...core.Widget) *Row {
	return newRow(true, children)
}

func newRow(scrollable bool, children []core.Widget) *Row {
	r := &Row{scrollable: scrollable}
	r.InitLayout(r, nil, rendering.Size{}, core.SizePolicyExpanding)
	r.barStyle, r.thumbStyle = scrollStyles()
	for _, w := range children {
		r.Add(w)
	}
	return r
}

// Add appends a child. A scrollable row cannot hold a width-expanding child;
// violating that panics with a *errors.ContractError.
func (r *Row) Add(w core.Widget) {
	if r.scrollable && w.SizePolicy().IsWidthExpanding() {
		panic(errors.NewContract("widgets.Row.Add",
			"scrollable row cannot hold a width-expanding child"))
	}
	r.LayoutBase.Add(w)
}

// SetSpacing inserts a fixed-width spacer before each child and after the
// last one.
func (r *Row) SetSpacing(size float64) {
	r.spacing = size
	sp := NewSpacer()
	sp.SetFixedWidth(size)
	r.spacer = sp
}

func (r *Row) layoutChildren() []core.Widget {
	children := r.Children()
	if r.spacer == nil {
		return children
	}
	out := make([]core.Widget, 0, 2*len(children)+1)
	for _, w := range children {
		out = append(out, r.spacer, w)
	}
	return append(out, r.spacer)
}

// IsScrollable reports whether the row was built scrollable.
func (r *Row) IsScrollable() bool {
	return r.scrollable
}

// Redraw lays out and paints the children, resetting the scroll state when
// the content fits the viewport again.
func (r *Row) Redraw(p rendering.Painter, completely bool) {
	if !r.scrollable {
		r.resetScrollState()
		r.LayoutBase.Redraw(p, completely)
		return
	}

	r.resizeChildren(p)
	contentWidth := r.ContentWidth()
	if contentWidth <= r.Width() {
		r.resetScrollState()
		r.LayoutBase.Redraw(p, completely)
		return
	}

	p.Save()
	p.SetStyle(r.BackgroundStyle())
	if completely || r.IsDirty() {
		p.FillRect(rendering.Rect{Size: r.Size().Add(rendering.Size{Width: 1, Height: 1})})
	}

	// A relayout can shrink the content while scrolled near the end; pull
	// the offset back so the last child stays flush with the edge.
	if r.scrollX > 0 {
		r.scrollX = math.Min(r.scrollX, contentWidth-r.Width())
	}
	p.Translate(rendering.Point{X: -r.scrollX})

	origSize := r.Size()
	r.SetLayoutSize(rendering.Size{Width: origSize.Width, Height: origSize.Height - ScrollBarSize})
	r.RelocateChildren(p)
	r.RedrawChildren(p, completely)
	r.SetLayoutSize(origSize)
	p.Restore()

	p.Save()
	p.SetStyle(r.barStyle)
	p.FillRect(rendering.Rect{
		Origin: rendering.Point{Y: origSize.Height - ScrollBarSize},
		Size:   rendering.Size{Width: r.Width(), Height: ScrollBarSize},
	})
	p.SetStyle(r.thumbStyle)
	if contentWidth != 0 && r.Width() != 0 {
		thumb := rendering.Rect{
			Origin: rendering.Point{
				X: r.scrollX / contentWidth * r.Width(),
				Y: origSize.Height - ScrollBarSize,
			},
			Size: rendering.Size{
				Width:  r.Width() * r.Width() / contentWidth,
				Height: ScrollBarSize,
			},
		}
		r.thumb = &thumb
		p.FillRect(thumb)
	}
	p.Restore()
}

func (r *Row) resetScrollState() {
	r.thumb = nil
	r.scrollX = 0
	r.dragging = false
	r.hasLast = false
}

// MouseDown starts a thumb drag when the press lands on the thumb.
func (r *Row) MouseDown(ev core.MouseEvent) {
	if r.thumb != nil {
		r.dragging = r.thumb.Contains(ev.Pos)
		r.lastDrag = ev.Pos
		r.hasLast = true
	}
}

// MouseUp ends a thumb drag.
func (r *Row) MouseUp(ev core.MouseEvent) {
	r.dragging = false
}

// MouseDrag moves the scroll offset by the pointer delta scaled by the
// content/viewport ratio.
func (r *Row) MouseDrag(ev core.MouseEvent) {
	last := r.lastDrag
	hadLast := r.hasLast
	r.lastDrag = ev.Pos
	r.hasLast = true
	if r.dragging && hadLast {
		r.ScrollX(math.Trunc((ev.Pos.X - last.X) * (r.ContentWidth() / r.Width())))
	}
}

// MouseWheel scrolls by the wheel's horizontal offset.
func (r *Row) MouseWheel(ev core.WheelEvent) {
	r.ScrollX(math.Trunc(ev.XOffset))
}

// HasScrollbar reports a horizontal scrollbar when the thumb is present.
func (r *Row) HasScrollbar(directionX bool) bool {
	return directionX && r.thumb != nil
}

// ScrollX moves the scroll offset by dx, clamped to
// [0, content − viewport]. A clamped-out move posts no repaint.
func (r *Row) ScrollX(dx float64) {
	if dx > 0 {
		maxScroll := r.ContentWidth() - r.Width()
		if r.scrollX == maxScroll {
			return
		}
		r.scrollX = math.Min(maxScroll, r.scrollX+dx)
	} else {
		if r.scrollX == 0 {
			return
		}
		r.scrollX = math.Max(0, r.scrollX+dx)
	}
	if r.Parent() != nil {
		r.SetDirty(true)
		r.AskParentToRender(true)
	} else {
		r.Update(true)
	}
}

// ScrollOffset returns the current horizontal scroll offset.
func (r *Row) ScrollOffset() float64 {
	return r.scrollX
}

// Measure returns the summed child widths by the tallest child measure.
func (r *Row) Measure(p rendering.Painter) rendering.Size {
	var size rendering.Size
	for _, w := range r.layoutChildren() {
		m := w.Measure(p)
		size.Width += m.Width
		size.Height = math.Max(size.Height, m.Height)
	}
	return size
}

// ContentWidth returns the summed widths of the laid-out children.
func (r *Row) ContentWidth() float64 {
	var total float64
	for _, w := range r.layoutChildren() {
		total += w.Width()
	}
	return total
}

// AdjustPosition shifts a content-area point by the scroll offset.
func (r *Row) AdjustPosition(p rendering.Point) rendering.Point {
	return p.Add(rendering.Point{X: r.scrollX})
}

// ContainInContentArea excludes the scrollbar gutter while it is shown.
func (r *Row) ContainInContentArea(p rendering.Point) bool {
	if r.scrollable && r.ContentWidth() > r.Width() {
		pos, size := r.Position(), r.Size()
		return pos.X < p.X && p.X < pos.X+size.Width &&
			pos.Y < p.Y && p.Y < pos.Y+size.Height-ScrollBarSize
	}
	return r.Contain(p)
}

// RelocateChildren runs the one-axis flex algorithm and lines the results
// up.
func (r *Row) RelocateChildren(p rendering.Painter) {
	r.resizeChildren(p)
	r.moveChildren()
}

// resizeChildren sizes the children: content widths are measured first,
// fixed widths subtract from the remaining space, and the rest share what is
// left by flex weight with cumulative-flooring remainder distribution.
func (r *Row) resizeChildren(p rendering.Painter) {
	children := r.layoutChildren()
	if len(children) == 0 {
		return
	}

	remaining := r.Width()
	var flexible []core.Widget
	totalFlex := 0
	for _, w := range children {
		pol := w.SizePolicy()
		if pol.IsContent() {
			w.SetWidth(w.Measure(p).Width)
		}
		if pol.IsWidthExpanding() {
			flexible = append(flexible, w)
			totalFlex += w.Flex()
		} else {
			remaining -= w.Width()
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
			w.SetWidth(edge - prev)
			prev = edge
		}
	}

	for _, w := range children {
		pol := w.SizePolicy()
		if pol.IsHeightExpanding() {
			w.SetHeight(r.Height())
		} else if pol.IsContent() {
			w.SetHeight(w.Measure(p).Height)
		}
	}
}

func (r *Row) moveChildren() {
	pos := r.Position()
	accX := pos.X
	for _, w := range r.layoutChildren() {
		w.MoveX(accX)
		accX += w.Width()
		w.MoveY(pos.Y)
	}
}
