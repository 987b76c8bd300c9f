package plot

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any plotting knowledge.
// In particular, the figure transform is already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	// depending on the filling mode
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

// Text is a single line of text, in figure coordinates.
// All backends use a fixed 7x13 monospace metric, see MeasureText.
type Text struct {
	Content string
	Dot     fixed.Point26_6 // left end of the baseline
	Color   color.Color
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)

	// DrawText paints a text label.
	DrawText(t Text)

	// SetClip restricts the following paths to `rect`.
	// An empty rectangle removes the clipping.
	SetClip(rect image.Rectangle)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6
	LineJoin   JoinMode
	LineCap    CapMode
	Dash       []float64 // values for the dash pattern (nil or an empty slice for no dashes)
}

// Style describes how a shape is painted.
// A nil color disables the corresponding operation.
type Style struct {
	FillColor, LineColor     color.Color
	FillOpacity, LineOpacity float64
	LineWidth                float64 // in figure units (pixels)
	LineJoin                 JoinMode
	LineCap                  CapMode
	Dash                     []float64
}

// DefaultStyle strokes in black with full opacity,
// round joins and butt caps.
var DefaultStyle = Style{
	LineColor:   color.Black,
	FillOpacity: 1.0,
	LineOpacity: 1.0,
	LineWidth:   1.5,
	LineJoin:    Round,
	LineCap:     ButtCap,
}

// Filled returns a copy of the style filling with `c` and not stroking.
func (s Style) Filled(c color.Color) Style {
	s.FillColor, s.LineColor = c, nil
	return s
}

// Stroked returns a copy of the style stroking with `c` and not filling.
func (s Style) Stroked(c color.Color, width float64) Style {
	s.FillColor, s.LineColor, s.LineWidth = nil, c, width
	return s
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// DrawPath sends `path` to the driver `d`, filling then stroking
// according to `style`.
func DrawPath(d Driver, path Path, style Style) {
	filler, stroker := d.SetupDrawers(style.FillColor != nil, style.LineColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(true)

		for _, op := range path {
			op.drawTo(filler)
		}
		filler.Stop(false)

		filler.SetColor(style.FillColor, style.FillOpacity)
		filler.Draw()
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()

		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth:  fToFixed(style.LineWidth),
			MiterLimit: fToFixed(4),
			LineJoin:   style.LineJoin,
			LineCap:    style.LineCap,
			Dash:       style.Dash,
		})

		for _, op := range path {
			op.drawTo(stroker)
		}
		stroker.Stop(false)

		stroker.SetColor(style.LineColor, style.LineOpacity)
		stroker.Draw()
	}
}
