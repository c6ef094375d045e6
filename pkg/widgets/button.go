package widgets

import (
	"github.com/go-castella/castella/pkg/core"
	"github.com/go-castella/castella/pkg/errors"
	"github.com/go-castella/castella/pkg/observable"
	"github.com/go-castella/castella/pkg/rendering"
	"github.com/go-castella/castella/pkg/theme"
)

// ButtonState is a button's observable state: its label and whether it is
// currently pressed.
type ButtonState struct {
	observable.Base
	text   string
	pushed bool
}

// NewButtonState returns a state with the given label.
func NewButtonState(text string) *ButtonState {
	s := &ButtonState{text: text}
	s.InitObservable(s)
	return s
}

// SetPushed records the pressed flag and notifies.
func (s *ButtonState) SetPushed(pushed bool) {
	s.pushed = pushed
	s.Notify()
}

// IsPushed reports whether the button is currently pressed.
func (s *ButtonState) IsPushed() bool {
	return s.pushed
}

// Text returns the label.
func (s *ButtonState) Text() string {
	return s.text
}

// Button is a clickable label with normal, hover and pushed appearances.
// OnClick fires on release, after the press state clears.
type Button struct {
	core.WidgetBase
	state   *ButtonState
	align   rendering.TextAlign
	onClick func(ev core.MouseEvent)

	styles          theme.StateStyles
	rectStyle       rendering.Style
	textStyle       rendering.Style
	pushedRectStyle rendering.Style
	pushedTextStyle rendering.Style
}

// NewButton returns a button with the given label.
func NewButton(text string) *Button {
	b := &Button{
		state:  NewButtonState(text),
		align:  rendering.TextAlignCenter,
		styles: theme.Current().Button,
	}
	b.applyState(b.styles.Normal)
	b.pushedRectStyle, b.pushedTextStyle = buttonStyles(b.styles.Pushed)
	b.InitWidget(b, b.state, rendering.Size{}, core.SizePolicyExpanding)
	return b
}

func buttonStyles(ws theme.WidgetStyle) (rect, text rendering.Style) {
	fill, border, textStyle := ws.FillBorderText()
	rect = rendering.Style{
		Fill:    fill.Fill,
		Stroke:  border.Stroke,
		Font:    rendering.DefaultFont(),
		Padding: textPadding,
	}
	text = textStyle
	text.Padding = textPadding
	return rect, text
}

func (b *Button) applyState(ws theme.WidgetStyle) {
	b.rectStyle, b.textStyle = buttonStyles(ws)
}

// OnClick registers the click callback.
func (b *Button) OnClick(callback func(ev core.MouseEvent)) {
	b.onClick = callback
}

// Label returns the button's label.
func (b *Button) Label() string {
	return b.state.Text()
}

// SetFontSize pins the font to a fixed size.
func (b *Button) SetFontSize(size float64) {
	for _, s := range []*rendering.Style{&b.textStyle, &b.pushedTextStyle} {
		s.Font.Size = size
		s.Font.SizePolicy = rendering.FontSizeFixed
	}
}

// MouseDown flips the state to pushed.
func (b *Button) MouseDown(ev core.MouseEvent) {
	b.state.SetPushed(true)
}

// MouseUp clears the pushed state and fires the click callback.
func (b *Button) MouseUp(ev core.MouseEvent) {
	b.state.SetPushed(false)
	if b.onClick != nil {
		b.onClick(ev)
	}
}

// MouseOver switches to the hover appearance.
func (b *Button) MouseOver() {
	b.applyState(b.styles.Hover)
	b.SetDirty(true)
	b.Update(false)
}

// MouseOut restores the normal appearance.
func (b *Button) MouseOut() {
	b.applyState(b.styles.Normal)
	b.SetDirty(true)
	b.Update(false)
}

// SetSizePolicy replaces the size policy. Content requires a fixed font
// size.
func (b *Button) SetSizePolicy(p core.SizePolicy) {
	if p.IsContent() && b.textStyle.Font.SizePolicy != rendering.FontSizeFixed {
		panic(errors.NewContract("widgets.Button.SetSizePolicy",
			"content-sized button requires a fixed font size"))
	}
	b.WidgetBase.SetSizePolicy(p)
}

// Measure returns the advance width of the label plus padding by the font
// size.
func (b *Button) Measure(p rendering.Painter) rendering.Size {
	p.Save()
	defer p.Restore()
	p.SetStyle(b.textStyle)
	return rendering.Size{
		Width:  p.MeasureText(b.state.Text()) + 2*b.rectStyle.Padding,
		Height: b.textStyle.Font.Size,
	}
}

// Redraw paints the button in its current appearance state.
func (b *Button) Redraw(p rendering.Painter, completely bool) {
	rectStyle, textStyle := b.rectStyle, b.textStyle
	if b.state.IsPushed() {
		rectStyle, textStyle = b.pushedRectStyle, b.pushedTextStyle
	}

	size := b.Size()
	rect := rendering.Rect{Size: size}
	p.SetStyle(rectStyle)
	p.FillRect(rect)
	p.StrokeRect(rect)

	text := b.state.Text()
	textStyle.Font.Size = rendering.DetermineFontSize(size.Width, size.Height, textStyle, text)
	textStyle.Font.SizePolicy = rendering.FontSizeFixed
	p.SetStyle(textStyle)

	baseline := size.Height/2 + p.GetFontMetrics().CapHeight/2
	var pos rendering.Point
	switch b.align {
	case rendering.TextAlignCenter:
		pos = rendering.Point{X: size.Width/2 - p.MeasureText(text)/2, Y: baseline}
	case rendering.TextAlignRight:
		pos = rendering.Point{X: size.Width - p.MeasureText(text) - rectStyle.Padding, Y: baseline}
	default:
		pos = rendering.Point{X: rectStyle.Padding, Y: baseline}
	}
	p.FillText(text, pos, size.Width-2*rectStyle.Padding)
}
