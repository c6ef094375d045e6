package widgets

import (
	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/observable"
	"github.com/go-castella/castella/pkg/rendering"
	"github.com/go-castella/castella/pkg/theme"
)

const textPadding = 8.0

// Text shows a single line of text bound to a string state. With the default
// expanding font policy the font size is derived from the widget's box each
// redraw; a fixed font size keeps its value and allows content sizing.
type Text struct {
	core.WidgetBase
	state     *observable.State[string]
	align     rendering.TextAlign
	rectStyle rendering.Style
	textStyle rendering.Style
}

// NewText returns a text widget holding the given string.
func NewText(text string) *Text {
	return NewTextState(observable.NewState(text))
}

// NewTextState returns a text widget bound to an existing string state.
func NewTextState(state *observable.State[string]) *Text {
	t := &Text{state: state, align: rendering.TextAlignCenter}
	t.applyTheme(theme.Current().Text)
	t.InitWidget(t, state, rendering.Size{}, core.SizePolicyExpanding)
	return t
}

func (t *Text) applyTheme(ws theme.WidgetStyle) {
	fill, border, text := ws.FillBorderText()
	t.rectStyle = rendering.Style{
		Fill:    fill.Fill,
		Stroke:  border.Stroke,
		Font:    rendering.DefaultFont(),
		Padding: textPadding,
	}
	t.textStyle = text
	t.textStyle.Padding = textPadding
}

// SetAlign sets the horizontal text placement.
func (t *Text) SetAlign(align rendering.TextAlign) {
	t.align = align
}

// SetFontSize pins the font to a fixed size.
func (t *Text) SetFontSize(size float64) {
	t.textStyle.Font.Size = size
	t.textStyle.Font.SizePolicy = rendering.FontSizeFixed
}

// Value returns the current text.
func (t *Text) Value() string {
	return t.state.Value()
}

// SetText replaces the text through the bound state.
func (t *Text) SetText(text string) {
	t.state.Set(text)
}

// SetSizePolicy replaces the size policy. Content requires a fixed font
// size: an expanding font has no intrinsic measure.
func (t *Text) SetSizePolicy(p core.SizePolicy) {
	if p.IsContent() && t.textStyle.Font.SizePolicy != rendering.FontSizeFixed {
		panic(errors.NewContract("widgets.Text.SetSizePolicy",
			"content-sized text requires a fixed font size"))
	}
	t.WidgetBase.SetSizePolicy(p)
}

// Measure returns the advance width of the text plus padding by the font
// size.
func (t *Text) Measure(p rendering.Painter) rendering.Size {
	p.Save()
	defer p.Restore()
	p.SetStyle(t.textStyle)
	return rendering.Size{
		Width:  p.MeasureText(t.state.Value()) + 2*t.rectStyle.Padding,
		Height: t.textStyle.Font.Size,
	}
}

// Redraw paints the background, border and text.
func (t *Text) Redraw(p rendering.Painter, completely bool) {
	text := t.state.Value()
	size := t.Size()
	rect := rendering.Rect{Size: size}

	p.SetStyle(t.rectStyle)
	p.FillRect(rect)
	p.StrokeRect(rect)

	style := t.textStyle
	style.Font.Size = rendering.DetermineFontSize(size.Width, size.Height, style, text)
	style.Font.SizePolicy = rendering.FontSizeFixed
	p.SetStyle(style)

	baseline := size.Height/2 + p.GetFontMetrics().CapHeight/2
	var pos rendering.Point
	switch t.align {
	case rendering.TextAlignCenter:
		pos = rendering.Point{X: size.Width/2 - p.MeasureText(text)/2, Y: baseline}
	case rendering.TextAlignRight:
		pos = rendering.Point{X: size.Width - p.MeasureText(text) - t.rectStyle.Padding, Y: baseline}
	default:
		pos = rendering.Point{X: t.rectStyle.Padding, Y: baseline}
	}
	p.FillText(text, pos, size.Width)
}
