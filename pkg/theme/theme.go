// Package theme holds the widget color palette. A Theme is derived from a
// Scheme, the flat named-color table that can also be loaded from YAML.
package theme

import (
	"sync"

	"github.com/go-castella/castella/pkg/rendering"
)

// WidgetStyle is the paint palette for one widget kind.
type WidgetStyle struct {
	BGColor     string
	BorderColor string
	TextColor   string
	TextFont    rendering.Font
}

// FillBorderText splits a WidgetStyle into the fill, border and text painter
// styles a widget applies while redrawing.
func (s WidgetStyle) FillBorderText() (fill, border, text rendering.Style) {
	fill = rendering.Style{Fill: rendering.FillStyle{Color: s.BGColor}}
	border = rendering.Style{Stroke: rendering.StrokeStyle{Color: s.BorderColor}}
	text = rendering.Style{
		Fill: rendering.FillStyle{Color: s.TextColor},
		Font: s.TextFont,
	}
	return fill, border, text
}

// StateStyles carries the per-appearance-state styles of an interactive
// widget.
type StateStyles struct {
	Normal WidgetStyle
	Hover  WidgetStyle
	Pushed WidgetStyle
}

// Theme is the resolved style set the widget tree draws with.
type Theme struct {
	App         WidgetStyle
	Layout      WidgetStyle
	Scrollbar   WidgetStyle
	ScrollThumb WidgetStyle
	Text        WidgetStyle
	Input       WidgetStyle
	Button      StateStyles
}

// FromScheme builds a Theme from a flat color scheme.
func FromScheme(c Scheme) Theme {
	font := rendering.DefaultFont()
	return Theme{
		App: WidgetStyle{
			BGColor:  c.BGCanvas,
			TextFont: font,
		},
		Layout: WidgetStyle{
			BGColor:  c.BGPrimary,
			TextFont: font,
		},
		Scrollbar: WidgetStyle{
			BGColor:     c.BGSecondary,
			BorderColor: c.BorderSecondary,
			TextFont:    font,
		},
		ScrollThumb: WidgetStyle{
			BGColor:  c.BorderSecondary,
			TextFont: font,
		},
		Text: WidgetStyle{
			BGColor:     c.BGPrimary,
			BorderColor: c.BorderPrimary,
			TextColor:   c.TextPrimary,
			TextFont:    font,
		},
		Input: WidgetStyle{
			BGColor:     c.BGSecondary,
			BorderColor: c.BorderPrimary,
			TextColor:   c.TextPrimary,
			TextFont:    font,
		},
		Button: StateStyles{
			Normal: WidgetStyle{
				BGColor:     c.BGTertiary,
				BorderColor: c.BorderPrimary,
				TextColor:   c.TextPrimary,
				TextFont:    font,
			},
			Hover: WidgetStyle{
				BGColor:     c.BGOverlay,
				BorderColor: c.BorderPrimary,
				TextColor:   c.TextPrimary,
				TextFont:    font,
			},
			Pushed: WidgetStyle{
				BGColor:     c.BGPushed,
				BorderColor: c.BorderSecondary,
				TextColor:   c.TextPrimary,
				TextFont:    font,
			},
		},
	}
}

// Dark returns the built-in dark theme.
func Dark() Theme { return FromScheme(DarkScheme()) }

// Light returns the built-in light theme.
func Light() Theme { return FromScheme(LightScheme()) }

var (
	currentMu sync.RWMutex
	current   = Dark()
)

// Current returns the active theme.
func Current() Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the active theme. Widgets built after the call pick up
// the new palette; widgets already built keep the styles they resolved.
func SetCurrent(t Theme) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = t
}
