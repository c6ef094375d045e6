package testing

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-castella/castella/pkg/rendering"
)

// PainterOp is one recorded drawing operation.
type PainterOp struct {
	Op    string
	Rect  rendering.Rect
	Text  string
	Pos   rendering.Point
	Style rendering.Style
}

// RecordingPainter implements rendering.Painter by logging every call. Text
// is measured with a real bitmap face so measurements are deterministic and
// nonzero without a rasterizer.
type RecordingPainter struct {
	face   font.Face
	style  rendering.Style
	stack  []rendering.Style
	ops    []PainterOp
	counts map[string]int
}

// NewRecordingPainter returns an empty recording painter.
func NewRecordingPainter() *RecordingPainter {
	return &RecordingPainter{
		face:   basicfont.Face7x13,
		counts: make(map[string]int),
	}
}

func (p *RecordingPainter) record(op PainterOp) {
	op.Style = p.style
	p.ops = append(p.ops, op)
	p.counts[op.Op]++
}

// Ops returns the recorded operations in call order.
func (p *RecordingPainter) Ops() []PainterOp {
	return p.ops
}

// CountOf returns how many times the named operation was recorded.
func (p *RecordingPainter) CountOf(op string) int {
	return p.counts[op]
}

// Reset clears the log and the counters. The style stack is left alone.
func (p *RecordingPainter) Reset() {
	p.ops = nil
	p.counts = make(map[string]int)
}

func (p *RecordingPainter) ClearAll() {
	p.record(PainterOp{Op: "ClearAll"})
}

func (p *RecordingPainter) FillRect(rect rendering.Rect) {
	p.record(PainterOp{Op: "FillRect", Rect: rect})
}

func (p *RecordingPainter) StrokeRect(rect rendering.Rect) {
	p.record(PainterOp{Op: "StrokeRect", Rect: rect})
}

func (p *RecordingPainter) FillText(text string, pos rendering.Point, maxWidth float64) {
	p.record(PainterOp{Op: "FillText", Text: text, Pos: pos})
}

func (p *RecordingPainter) StrokeText(text string, pos rendering.Point, maxWidth float64) {
	p.record(PainterOp{Op: "StrokeText", Text: text, Pos: pos})
}

// MeasureText returns the advance width of text under the bitmap face.
func (p *RecordingPainter) MeasureText(text string) float64 {
	return float64(font.MeasureString(p.face, text)) / 64
}

// GetFontMetrics reports the bitmap face's metrics.
func (p *RecordingPainter) GetFontMetrics() rendering.FontMetrics {
	m := p.face.Metrics()
	capHeight := float64(m.CapHeight) / 64
	if capHeight == 0 {
		capHeight = float64(m.Ascent) / 64
	}
	return rendering.FontMetrics{CapHeight: capHeight}
}

func (p *RecordingPainter) Translate(pt rendering.Point) {
	p.record(PainterOp{Op: "Translate", Pos: pt})
}

func (p *RecordingPainter) Clip(rect rendering.Rect) {
	p.record(PainterOp{Op: "Clip", Rect: rect})
}

func (p *RecordingPainter) Save() {
	p.stack = append(p.stack, p.style)
	p.record(PainterOp{Op: "Save"})
}

func (p *RecordingPainter) Restore() {
	if n := len(p.stack); n > 0 {
		p.style = p.stack[n-1]
		p.stack = p.stack[:n-1]
	}
	p.record(PainterOp{Op: "Restore"})
}

// SaveDepth returns the current save/restore nesting depth.
func (p *RecordingPainter) SaveDepth() int {
	return len(p.stack)
}

func (p *RecordingPainter) SetStyle(style rendering.Style) {
	p.style = style
}

// Style returns the painter's current style.
func (p *RecordingPainter) Style() rendering.Style {
	return p.style
}

func (p *RecordingPainter) Flush() {
	p.record(PainterOp{Op: "Flush"})
}
