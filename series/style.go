// Package series: fill-style variants.
//
// FillStyle is a sealed sum type: Solid, GradientColors and GradientStops
// are the only implementations, discriminated by a type switch. This keeps
// the discriminant and its payload in one value, so a "gradient with no
// payload field" state cannot be constructed by accident — an empty color
// or stop list is still representable and is handled by legend.Build.
package series

import "github.com/wcharczuk/go-chart/v2/drawing"

// FillStyle is the closed set of fill variants for a DataSeries.
// Exactly one variant is active at a time.
type FillStyle interface {
	// fillStyle seals the variant set to this package.
	fillStyle()
}

// StrokeStyle describes how the series line itself is drawn.
type StrokeStyle struct {
	// Width is the line width in surface units.
	Width float64

	// Dash is the dash pattern; empty means a solid line.
	Dash []float64

	// DashPhase is the offset into the dash pattern.
	DashPhase float64
}

// DefaultStrokeWidth is the line width used when no stroke is configured.
const DefaultStrokeWidth = 3.0

// DefaultStroke returns a solid stroke of DefaultStrokeWidth.
func DefaultStroke() StrokeStyle {
	return StrokeStyle{Width: DefaultStrokeWidth}
}

// Anchor is a point in unit space [0,1]×[0,1] used to orient gradients
// within the rendering surface.
type Anchor struct {
	X, Y float64
}

// Common gradient anchors.
var (
	// AnchorLeading is the horizontal start (left edge, vertical center).
	AnchorLeading = Anchor{X: 0, Y: 0.5}
	// AnchorTrailing is the horizontal end (right edge, vertical center).
	AnchorTrailing = Anchor{X: 1, Y: 0.5}
	// AnchorTop is the vertical start (top edge, horizontal center).
	AnchorTop = Anchor{X: 0.5, Y: 0}
	// AnchorBottom is the vertical end (bottom edge, horizontal center).
	AnchorBottom = Anchor{X: 0.5, Y: 1}
)

// Solid fills the series with a single color.
type Solid struct {
	Color  drawing.Color
	Stroke StrokeStyle
}

func (Solid) fillStyle() {}

// GradientColors fills the series with a linear gradient built from an
// ordered list of colors distributed evenly between Start and End.
type GradientColors struct {
	Colors     []drawing.Color
	Start, End Anchor
	Stroke     StrokeStyle
}

func (GradientColors) fillStyle() {}

// GradientStop pairs a color with its location along the gradient axis.
type GradientStop struct {
	Color drawing.Color

	// Location is the stop position in [0,1] along Start→End.
	Location float64
}

// GradientStops fills the series with a linear gradient whose stops are
// given explicitly, sorted by Location.
type GradientStops struct {
	Stops      []GradientStop
	Start, End Anchor
	Stroke     StrokeStyle
}

func (GradientStops) fillStyle() {}

// DefaultStyle returns the style applied when none is configured:
// a solid blue line with the default stroke.
func DefaultStyle() FillStyle {
	return Solid{Color: drawing.ColorBlue, Stroke: DefaultStroke()}
}
