package rendering

// FillStyle controls the color used for filled shapes and text.
type FillStyle struct {
	Color string
}

// StrokeStyle controls the color used for outlined shapes and text.
type StrokeStyle struct {
	Color string
}

// LineCap controls how stroked line endings are drawn.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineStyle controls stroke width and cap shape.
type LineStyle struct {
	Width float64
	Cap   LineCap
}

// FontSizePolicy controls whether a widget's font size is fixed or derived
// from the widget's box.
type FontSizePolicy int

const (
	// FontSizeExpanding scales the font to fit the widget's box.
	FontSizeExpanding FontSizePolicy = iota
	// FontSizeFixed always uses the style's configured size.
	FontSizeFixed
)

// FontWeight selects the font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// FontSlant selects the font slant.
type FontSlant int

const (
	FontSlantUpright FontSlant = iota
	FontSlantItalic
)

// Predefined font sizes in pixels.
const (
	FontSizeTwoXSmall   = 10.0
	FontSizeXSmall      = 12.0
	FontSizeSmall       = 14.0
	FontSizeMedium      = 16.0
	FontSizeLarge       = 20.0
	FontSizeXLarge      = 24.0
	FontSizeTwoXLarge   = 36.0
	FontSizeThreeXLarge = 48.0
	FontSizeFourXLarge  = 72.0
)

// Font describes the typeface used for text drawing.
// An empty Family selects the system default font.
type Font struct {
	Family     string
	Size       float64
	SizePolicy FontSizePolicy
	Weight     FontWeight
	Slant      FontSlant
}

// DefaultFont returns the font used when a style does not specify one.
func DefaultFont() Font {
	return Font{Size: FontSizeMedium, SizePolicy: FontSizeExpanding}
}

// FontMetrics carries the metrics a painter reports for its current font.
type FontMetrics struct {
	CapHeight float64
}

// Style bundles the paint state applied by Painter.SetStyle.
// Padding currently only has meaning for text-bearing widgets.
type Style struct {
	Fill    FillStyle
	Stroke  StrokeStyle
	Line    LineStyle
	Font    Font
	Padding float64
}

// TextAlign controls horizontal text placement within a widget.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// DetermineFontSize resolves the effective font size for text drawn inside a
// box of the given dimensions. An expanding font policy fits the text to the
// box (never below 10px); a fixed policy returns the style's configured size.
func DetermineFontSize(width, height float64, style Style, text string) float64 {
	if style.Font.SizePolicy == FontSizeFixed {
		return style.Font.Size
	}
	// An empty string still reserves room for a caret.
	n := len([]rune(text))
	if n == 0 {
		n = 1
	}
	byHeight := height - 2*style.Padding
	byWidth := (width - 2*style.Padding) / (float64(n) * 0.65)
	size := byHeight
	if byWidth < size {
		size = byWidth
	}
	if size < 10 {
		size = 10
	}
	return size
}
