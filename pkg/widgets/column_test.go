package widgets

import (
	"testing"

	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/rendering"
	casttest "github.com/go-castella/castella/pkg/testing"
)

// block is a leaf that paints nothing and measures as told.
type block struct {
	core.WidgetBase
	measure rendering.Size
	redraws int
}

func newBlock(policy core.SizePolicy) *block {
	b := &block{}
	b.InitWidget(b, nil, rendering.Size{}, policy)
	return b
}

func (b *block) Redraw(p rendering.Painter, completely bool) { b.redraws++ }

func (b *block) Measure(p rendering.Painter) rendering.Size { return b.measure }

func fixedHeightBlock(h float64) *block {
	b := newBlock(core.SizePolicyExpanding)
	b.SetFixedHeight(h)
	return b
}

func TestColumnFlexHeights(t *testing.T) {
	fixed := fixedHeightBlock(50)
	one := newBlock(core.SizePolicyExpanding)
	three := newBlock(core.SizePolicyExpanding)
	three.SetFlex(3)

	col := NewColumn(fixed, one, three)
	col.Resize(rendering.Size{Width: 400, Height: 500})
	col.RelocateChildren(casttest.NewRecordingPainter())

	for i, want := range []float64{50, 112, 338} {
		if got := col.Children()[i].Height(); got != want {
			t.Errorf("child %d height = %v, want %v", i, got, want)
		}
	}
	for i, want := range []float64{0, 50, 162} {
		if got := col.Children()[i].Position().Y; got != want {
			t.Errorf("child %d y = %v, want %v", i, got, want)
		}
	}
	for i, w := range col.Children() {
		if w.Width() != 400 {
			t.Errorf("child %d should stretch to the column width, got %v", i, w.Width())
		}
	}
}

func TestColumnFlexHeightsSumExactly(t *testing.T) {
	cases := []struct {
		height float64
		flexes []int
	}{
		{500, []int{1, 1, 1}},
		{499, []int{1, 1, 1}},
		{500, []int{2, 3, 5}},
		{457, []int{1, 7}},
	}
	for _, c := range cases {
		fixed := fixedHeightBlock(50)
		children := []core.Widget{fixed}
		for _, f := range c.flexes {
			b := newBlock(core.SizePolicyExpanding)
			b.SetFlex(f)
			children = append(children, b)
		}
		col := NewColumn(children...)
		col.Resize(rendering.Size{Width: 100, Height: c.height})
		col.RelocateChildren(casttest.NewRecordingPainter())

		var sum float64
		for _, w := range children[1:] {
			sum += w.Height()
		}
		if want := c.height - 50; sum != want {
			t.Errorf("height %v flexes %v: flexible heights sum to %v, want %v",
				c.height, c.flexes, sum, want)
		}
	}
}

func TestColumnSpacingInterleavesChildren(t *testing.T) {
	a := fixedHeightBlock(50)
	b := fixedHeightBlock(50)
	col := NewColumn(a, b)
	col.SetSpacing(10)
	col.Resize(rendering.Size{Width: 100, Height: 200})

	col.RelocateChildren(casttest.NewRecordingPainter())

	if a.Position().Y != 10 {
		t.Errorf("first child should sit below a spacer, y = %v", a.Position().Y)
	}
	if b.Position().Y != 70 {
		t.Errorf("second child y = %v, want 70", b.Position().Y)
	}
	if got := col.ContentHeight(); got != 130 {
		t.Errorf("content height with trailing spacer = %v, want 130", got)
	}
}

func TestColumnContentChildUsesItsMeasure(t *testing.T) {
	b := newBlock(core.SizePolicyContent)
	b.measure = rendering.Size{Width: 80, Height: 30}
	col := NewColumn(b)
	col.Resize(rendering.Size{Width: 400, Height: 400})

	col.RelocateChildren(casttest.NewRecordingPainter())

	if b.Size() != (rendering.Size{Width: 80, Height: 30}) {
		t.Errorf("content child size = %+v", b.Size())
	}
}

func TestScrollableColumnRejectsExpandingChild(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*errors.ContractError); !ok {
			t.Errorf("expected a contract panic, got %v", r)
		}
	}()
	NewScrollableColumn(newBlock(core.SizePolicyExpanding))
}

// overflowingColumn returns a 200x400 scrollable column with 600px of
// content, already laid out once.
func overflowingColumn() (*Column, *casttest.RecordingPainter) {
	var children []core.Widget
	for i := 0; i < 6; i++ {
		children = append(children, fixedHeightBlock(100))
	}
	col := NewScrollableColumn(children...)
	col.Resize(rendering.Size{Width: 200, Height: 400})
	p := casttest.NewRecordingPainter()
	col.Redraw(p, true)
	return col, p
}

func TestColumnOverflowGrowsScrollbar(t *testing.T) {
	col, _ := overflowingColumn()

	if !col.HasScrollbar(false) {
		t.Fatal("overflowing content should grow a vertical scrollbar")
	}
	if col.HasScrollbar(true) {
		t.Error("a column never has a horizontal scrollbar")
	}
	for _, w := range col.Children() {
		if w.Width() != 180 {
			t.Errorf("children should shrink by the gutter width, got %v", w.Width())
		}
	}
}

func TestColumnScrollClamps(t *testing.T) {
	col, _ := overflowingColumn()

	col.ScrollY(1000)
	if col.ScrollOffset() != 200 {
		t.Errorf("scroll should clamp to content minus viewport, got %v", col.ScrollOffset())
	}
	col.ScrollY(5)
	if col.ScrollOffset() != 200 {
		t.Error("scrolling past the end must stay clamped")
	}

	col.ScrollY(-1000)
	if col.ScrollOffset() != 0 {
		t.Errorf("scroll should clamp to zero, got %v", col.ScrollOffset())
	}
}

func TestColumnWheelScrollTruncates(t *testing.T) {
	col, _ := overflowingColumn()

	col.MouseWheel(core.WheelEvent{YOffset: 30.9})
	if col.ScrollOffset() != 30 {
		t.Errorf("wheel offsets truncate toward zero, got %v", col.ScrollOffset())
	}
}

func TestColumnThumbDragScalesByContentRatio(t *testing.T) {
	col, _ := overflowingColumn()

	// The thumb occupies the gutter from the top; grab it and pull down.
	col.MouseDown(core.MouseEvent{Pos: rendering.Point{X: 190, Y: 10}})
	col.MouseDrag(core.MouseEvent{Pos: rendering.Point{X: 190, Y: 110}})
	col.MouseUp(core.MouseEvent{Pos: rendering.Point{X: 190, Y: 110}})

	// 100px of pointer travel at a 600/400 content ratio.
	if col.ScrollOffset() != 150 {
		t.Errorf("scroll offset after drag = %v, want 150", col.ScrollOffset())
	}
}

func TestColumnPressOffThumbDoesNotDrag(t *testing.T) {
	col, _ := overflowingColumn()

	col.MouseDown(core.MouseEvent{Pos: rendering.Point{X: 100, Y: 100}})
	col.MouseDrag(core.MouseEvent{Pos: rendering.Point{X: 100, Y: 200}})

	if col.ScrollOffset() != 0 {
		t.Errorf("a drag that did not start on the thumb must not scroll, got %v", col.ScrollOffset())
	}
}

func TestColumnScrollStateResetsWhenContentFits(t *testing.T) {
	col, p := overflowingColumn()
	col.ScrollY(150)

	col.Resize(rendering.Size{Width: 200, Height: 700})
	col.Redraw(p, true)

	if col.ScrollOffset() != 0 {
		t.Errorf("scroll should reset when content fits, got %v", col.ScrollOffset())
	}
	if col.HasScrollbar(false) {
		t.Error("the scrollbar should disappear when content fits")
	}
}

func TestColumnContentAreaExcludesGutter(t *testing.T) {
	col, _ := overflowingColumn()

	if col.ContainInContentArea(rendering.Point{X: 190, Y: 50}) {
		t.Error("points over the gutter are not in the content area")
	}
	if !col.ContainInContentArea(rendering.Point{X: 100, Y: 50}) {
		t.Error("interior points are in the content area")
	}
}

func TestColumnAdjustPositionAddsScrollOffset(t *testing.T) {
	col, _ := overflowingColumn()
	col.ScrollY(120)

	got := col.AdjustPosition(rendering.Point{X: 10, Y: 30})
	if got != (rendering.Point{X: 10, Y: 150}) {
		t.Errorf("adjusted position = %+v", got)
	}
}

func TestColumnDispatchToScrollableHonorsAxis(t *testing.T) {
	col, _ := overflowingColumn()

	target, _, ok := col.DispatchToScrollable(rendering.Point{X: 100, Y: 100}, false)
	if !ok || target != core.Widget(col) {
		t.Error("a vertical wheel over the content should land on the column")
	}
	if _, _, ok := col.DispatchToScrollable(rendering.Point{X: 100, Y: 100}, true); ok {
		t.Error("a horizontal wheel has nowhere to go in a column")
	}
}

func TestDispatchFindsDeepestDescendant(t *testing.T) {
	left := newBlock(core.SizePolicyExpanding)
	right := newBlock(core.SizePolicyExpanding)
	row := NewRow(left, right)
	row.SetFixedHeight(100)
	bottom := newBlock(core.SizePolicyExpanding)
	col := NewColumn(row, bottom)
	col.Resize(rendering.Size{Width: 300, Height: 300})
	col.Redraw(casttest.NewRecordingPainter(), true)

	target, _, ok := col.Dispatch(rendering.Point{X: 75, Y: 50})
	if !ok || target != core.Widget(left) {
		t.Errorf("expected the nested leaf, got %T ok=%v", target, ok)
	}

	target, _, ok = col.Dispatch(rendering.Point{X: 200, Y: 200})
	if !ok || target != core.Widget(bottom) {
		t.Errorf("expected the bottom leaf, got %T ok=%v", target, ok)
	}

	if _, _, ok := col.Dispatch(rendering.Point{X: 400, Y: 400}); ok {
		t.Error("a point outside the tree must miss")
	}
}

func TestColumnRedrawSkipsCleanChildren(t *testing.T) {
	a := fixedHeightBlock(50)
	b := fixedHeightBlock(50)
	col := NewColumn(a, b)
	col.Resize(rendering.Size{Width: 100, Height: 200})
	p := casttest.NewRecordingPainter()

	col.Redraw(p, true)
	aBefore, bBefore := a.redraws, b.redraws

	col.Redraw(p, false)
	if a.redraws != aBefore || b.redraws != bBefore {
		t.Error("a partial redraw must skip clean children")
	}

	b.SetDirty(true)
	col.Redraw(p, false)
	if a.redraws != aBefore {
		t.Error("the clean sibling must stay skipped")
	}
	if b.redraws != bBefore+1 {
		t.Errorf("the dirty child should repaint once, got %d extra", b.redraws-bBefore)
	}
}
