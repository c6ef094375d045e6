// Package widgets provides the built-in widgets: the Row, Column and Box
// containers and the Spacer, Text and Button leaves.
package widgets

import (
	"github.com/go-castella/castella/pkg/rendering"
	"github.com/go-castella/castella/pkg/theme"
)

// ScrollBarSize is the thickness in pixels of the scrollbar gutter a
// scrolling container reserves on its trailing edge.
const ScrollBarSize = 20.0

// scrollStyles resolves the gutter and thumb paint styles from the current
// theme.
func scrollStyles() (bar, thumb rendering.Style) {
	t := theme.Current()
	bar = rendering.Style{
		Fill:   rendering.FillStyle{Color: t.Scrollbar.BGColor},
		Stroke: rendering.StrokeStyle{Color: t.Scrollbar.BorderColor},
		Font:   rendering.DefaultFont(),
	}
	thumb = rendering.Style{
		Fill: rendering.FillStyle{Color: t.ScrollThumb.BGColor},
		Font: rendering.DefaultFont(),
	}
	return bar, thumb
}
