package widgets

import (
	"math"

	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/rendering"
)

// Box wraps a single child in a viewport that can scroll on both axes. Each
// axis grows a 20px gutter when the child overflows it; the two gutters
// interact, since reserving one shrinks the viewport of the other, so their
// need is recomputed before final sizing. An axis on which the child expands
// never scrolls: the child is sized to the viewport there.
type Box struct {
	core.LayoutBase
	child core.Widget

	scrollX   float64
	scrollY   float64
	thumbX    *rendering.Rect
	thumbY    *rendering.Rect
	draggingX bool
	draggingY bool
	lastDrag  rendering.Point
	hasLast   bool

	barStyle   rendering.Style
	thumbStyle rendering.Style
}

// NewBox returns a box scrolling the given child.
func NewBox(child core.Widget) *Box {
	b := &Box{}
	b.InitLayout(b, nil, rendering.Size{}, core.SizePolicyExpanding)
	b.barStyle, b.thumbStyle = scrollStyles()
	b.Add(child)
	return b
}

// Add sets the box's only child. Adding a second child panics with a
// *errors.ContractError.
func (b *Box) Add(w core.Widget) {
	if len(b.Children()) > 0 {
		panic(errors.NewContract("widgets.Box.Add",
			"box cannot hold more than one child"))
	}
	b.LayoutBase.Add(w)
	b.child = w
}

// IsScrollable reports true: a box is always an update boundary.
func (b *Box) IsScrollable() bool {
	return true
}

// Redraw sizes the child, works out which gutters are needed, paints the
// child shifted by the scroll offsets and draws the gutters and thumbs.
func (b *Box) Redraw(p rendering.Painter, completely bool) {
	selfSize := b.Size()
	if selfSize.Width == 0 || selfSize.Height == 0 {
		return
	}

	b.resizeChild(p)
	contentWidth, contentHeight := b.ContentSize()
	var gutterBottom, gutterRight float64

	if contentWidth > selfSize.Width-gutterRight {
		gutterBottom = ScrollBarSize
	}
	if contentHeight > selfSize.Height-gutterBottom {
		gutterRight = ScrollBarSize
	}
	if contentWidth > selfSize.Width-gutterRight {
		gutterBottom = ScrollBarSize
	}

	if b.child.SizePolicy().IsWidthExpanding() || gutterBottom == 0 {
		b.scrollX = 0
		b.thumbX = nil
		gutterBottom = 0
	}
	if b.child.SizePolicy().IsHeightExpanding() || gutterRight == 0 {
		b.scrollY = 0
		b.thumbY = nil
		gutterRight = 0
	}

	p.Save()
	p.SetStyle(b.BackgroundStyle())
	if completely || b.IsDirty() {
		p.FillRect(rendering.Rect{Size: selfSize.Add(rendering.Size{Width: 1, Height: 1})})
	}

	b.SetLayoutSize(rendering.Size{
		Width:  selfSize.Width - gutterRight,
		Height: selfSize.Height - gutterBottom,
	})
	b.RelocateChildren(p)
	contentWidth, contentHeight = b.ContentSize()
	b.SetLayoutSize(selfSize)

	b.clampScroll(contentWidth, contentHeight)
	p.Translate(rendering.Point{
		X: -b.scrollX * (selfSize.Width + gutterRight) / selfSize.Width,
		Y: -b.scrollY * (selfSize.Height + gutterBottom) / selfSize.Height,
	})
	b.RedrawChildren(p, completely)
	p.Restore()

	p.Save()
	if gutterBottom > 0 {
		p.SetStyle(b.barStyle)
		p.FillRect(rendering.Rect{
			Origin: rendering.Point{Y: selfSize.Height - gutterBottom},
			Size:   rendering.Size{Width: selfSize.Width - gutterRight, Height: gutterBottom},
		})
		p.SetStyle(b.thumbStyle)
		if contentWidth != 0 && selfSize.Width != 0 {
			track := selfSize.Width - gutterRight
			thumb := rendering.Rect{
				Origin: rendering.Point{
					X: b.scrollX / contentWidth * track,
					Y: selfSize.Height - gutterBottom,
				},
				Size: rendering.Size{
					Width:  track * track / contentWidth,
					Height: gutterBottom,
				},
			}
			b.thumbX = &thumb
			p.FillRect(thumb)
		}
	}
	if gutterRight > 0 {
		p.SetStyle(b.barStyle)
		p.FillRect(rendering.Rect{
			Origin: rendering.Point{X: selfSize.Width - gutterRight},
			Size:   rendering.Size{Width: gutterRight, Height: selfSize.Height - gutterBottom},
		})
		p.SetStyle(b.thumbStyle)
		if contentHeight != 0 && selfSize.Height != 0 {
			track := selfSize.Height - gutterBottom
			thumb := rendering.Rect{
				Origin: rendering.Point{
					X: selfSize.Width - gutterRight,
					Y: b.scrollY / contentHeight * track,
				},
				Size: rendering.Size{
					Width:  gutterRight,
					Height: track * track / contentHeight,
				},
			}
			b.thumbY = &thumb
			p.FillRect(thumb)
		}
	}
	p.Restore()
}

// clampScroll pulls the offsets back when a relayout shrank the content.
func (b *Box) clampScroll(contentWidth, contentHeight float64) {
	if b.scrollX > 0 {
		maxScroll := contentWidth - b.Width()
		if b.thumbY != nil {
			maxScroll += ScrollBarSize
		}
		b.scrollX = math.Min(b.scrollX, maxScroll)
	}
	if b.scrollY > 0 {
		maxScroll := contentHeight - b.Height()
		if b.thumbX != nil {
			maxScroll += ScrollBarSize
		}
		b.scrollY = math.Min(b.scrollY, maxScroll)
	}
}

// MouseDown starts a thumb drag on whichever thumb the press lands on, the
// horizontal one winning when they overlap in the corner.
func (b *Box) MouseDown(ev core.MouseEvent) {
	if b.thumbX != nil {
		b.draggingX = b.thumbX.Contains(ev.Pos)
		b.lastDrag = ev.Pos
		b.hasLast = true
	}
	if !b.draggingX && b.thumbY != nil {
		b.draggingY = b.thumbY.Contains(ev.Pos)
		b.lastDrag = ev.Pos
		b.hasLast = true
	}
}

// MouseUp ends any thumb drag.
func (b *Box) MouseUp(ev core.MouseEvent) {
	b.draggingX = false
	b.draggingY = false
}

// MouseDrag moves the dragged axis by the pointer delta scaled by that
// axis's content/viewport ratio.
func (b *Box) MouseDrag(ev core.MouseEvent) {
	contentWidth, contentHeight := b.ContentSize()
	last := b.lastDrag
	hadLast := b.hasLast
	b.lastDrag = ev.Pos
	b.hasLast = true
	if !hadLast {
		return
	}
	if b.draggingX {
		b.ScrollX(contentWidth, math.Trunc((ev.Pos.X-last.X)*(contentWidth/b.Width())))
	} else if b.draggingY {
		b.ScrollY(contentHeight, math.Trunc((ev.Pos.Y-last.Y)*(contentHeight/b.Height())))
	}
}

// MouseWheel scrolls each axis by its wheel offset.
func (b *Box) MouseWheel(ev core.WheelEvent) {
	contentWidth, contentHeight := b.ContentSize()
	if ev.XOffset != 0 {
		b.ScrollX(contentWidth, math.Trunc(ev.XOffset))
	}
	if ev.YOffset != 0 {
		b.ScrollY(contentHeight, math.Trunc(ev.YOffset))
	}
}

// HasScrollbar reports whether the given axis currently shows a scrollbar.
func (b *Box) HasScrollbar(directionX bool) bool {
	if directionX {
		return b.thumbX != nil
	}
	return b.thumbY != nil
}

// ScrollX moves the horizontal offset by dx against the given content
// width, clamped to the scrollable range. A clamped-out move posts no
// repaint.
func (b *Box) ScrollX(contentWidth, dx float64) {
	if dx > 0 {
		maxScroll := contentWidth - b.Width()
		if b.thumbY != nil {
			maxScroll += ScrollBarSize
		}
		if b.scrollX == maxScroll {
			return
		}
		b.scrollX = math.Min(maxScroll, b.scrollX+dx)
	} else {
		if b.scrollX == 0 {
			return
		}
		b.scrollX = math.Max(0, b.scrollX+dx)
	}
	b.postScrollUpdate()
}

// ScrollY moves the vertical offset by dy against the given content height,
// clamped to the scrollable range.
func (b *Box) ScrollY(contentHeight, dy float64) {
	if dy > 0 {
		maxScroll := contentHeight - b.Height()
		if b.thumbX != nil {
			maxScroll += ScrollBarSize
		}
		if b.scrollY == maxScroll {
			return
		}
		b.scrollY = math.Min(maxScroll, b.scrollY+dy)
	} else {
		if b.scrollY == 0 {
			return
		}
		b.scrollY = math.Max(0, b.scrollY+dy)
	}
	b.postScrollUpdate()
}

func (b *Box) postScrollUpdate() {
	if b.Parent() != nil {
		b.SetDirty(true)
		b.AskParentToRender(true)
	} else {
		b.Update(true)
	}
}

// ScrollOffsets returns the current scroll offsets.
func (b *Box) ScrollOffsets() (x, y float64) {
	return b.scrollX, b.scrollY
}

// Measure returns the child's measure.
func (b *Box) Measure(p rendering.Painter) rendering.Size {
	return b.child.Measure(p)
}

// ContentSize returns the child's laid-out size.
func (b *Box) ContentSize() (width, height float64) {
	s := b.child.Size()
	return s.Width, s.Height
}

// AdjustPosition shifts a content-area point by both scroll offsets.
func (b *Box) AdjustPosition(p rendering.Point) rendering.Point {
	return p.Add(rendering.Point{X: b.scrollX, Y: b.scrollY})
}

// ContainInContentArea excludes whichever gutters are shown.
func (b *Box) ContainInContentArea(p rendering.Point) bool {
	pos, size := b.Position(), b.Size()
	width := size.Width
	if b.thumbY != nil {
		width -= ScrollBarSize
	}
	height := size.Height
	if b.thumbX != nil {
		height -= ScrollBarSize
	}
	return pos.X < p.X && p.X < pos.X+width &&
		pos.Y < p.Y && p.Y < pos.Y+height
}

// RelocateChildren sizes the child against the viewport and pins it to the
// box's origin.
func (b *Box) RelocateChildren(p rendering.Painter) {
	if b.child == nil {
		return
	}
	b.resizeChild(p)
	b.child.Move(b.Position())
}

func (b *Box) resizeChild(p rendering.Painter) {
	c := b.child
	pol := c.SizePolicy()
	if pol.IsContent() {
		m := c.Measure(p)
		c.SetWidth(m.Width)
		c.SetHeight(m.Height)
		return
	}
	if pol.IsWidthExpanding() {
		c.SetWidth(b.Width())
	}
	if pol.IsHeightExpanding() {
		c.SetHeight(b.Height())
	}
}
