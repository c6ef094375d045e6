// Package rendering defines the geometry value types, paint styles and the
// Painter contract the widget tree draws through. Concrete painter backends
// (Skia, a browser canvas, a terminal grid) live outside the engine and
// implement Painter.
package rendering

// Painter records or renders drawing commands.
//
// Every Redraw call receives a painter whose origin is already translated to
// the widget's top-left corner. Save and Restore follow stack discipline and
// include the current style; a Save pushed while redrawing a child must be
// matched by exactly one Restore even when the child panics.
type Painter interface {
	// ClearAll erases the entire drawing surface.
	ClearAll()

	// FillRect fills a rectangle using the current fill style.
	FillRect(rect Rect)

	// StrokeRect outlines a rectangle using the current stroke style.
	StrokeRect(rect Rect)

	// FillText draws filled text with its baseline origin at pos.
	// A maxWidth of zero or less leaves the text unconstrained.
	FillText(text string, pos Point, maxWidth float64)

	// StrokeText draws outlined text with its baseline origin at pos.
	// A maxWidth of zero or less leaves the text unconstrained.
	StrokeText(text string, pos Point, maxWidth float64)

	// MeasureText returns the advance width of text under the current style.
	MeasureText(text string) float64

	// GetFontMetrics returns the metrics of the current font.
	GetFontMetrics() FontMetrics

	// Translate moves the origin by the given offset.
	Translate(p Point)

	// Clip restricts future drawing to the given rectangle.
	Clip(rect Rect)

	// Save pushes the current transform, clip and style state.
	Save()

	// Restore pops the most recent transform, clip and style state.
	Restore()

	// SetStyle sets the fill, stroke, line and font state for
	// subsequent draws.
	SetStyle(style Style)

	// Flush commits any buffered drawing to the surface.
	Flush()
}
