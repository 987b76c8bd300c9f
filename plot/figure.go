// Package plot builds static 2D figures: polylines, markers, rectangles,
// circles and text annotations in data coordinates, with axes, a legend
// and a title.
//
// A Figure holds every drawing state explicitly, so that several figures
// may be built side by side. Figures are reduced to paths in figure
// coordinates and painted by a Driver, see plotraster, plotpdf and plotsvg.
package plot

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// LegendLocation places the legend inside the axes.
type LegendLocation uint8

const (
	NoLegend LegendLocation = iota
	LowerLeft
	LowerRight
	UpperLeft
	UpperRight
)

// Default figure size, in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// figure margins around the axes, in pixels
const (
	marginLeft   = 56
	marginRight  = 20
	marginTop    = 32
	marginBottom = 36

	maxTicks   = 8
	tickLength = 4
	legendPad  = 6
	legendLine = 22 // length of the line sample
)

// Annotation is a text anchored at a data point.
type Annotation struct {
	At   orb.Point
	Text string
}

// Figure is the explicit drawing context.
type Figure struct {
	Width, Height int

	Title  string
	Legend LegendLocation

	Background color.Color

	shapes      []Shape
	annotations []Annotation

	xlim, ylim *[2]float64
	nextColor  int
}

// NewFigure returns an empty figure of the given size in pixels.
func NewFigure(width, height int) *Figure {
	return &Figure{Width: width, Height: height, Background: White}
}

// Add appends a shape.
func (f *Figure) Add(s Shape) { f.shapes = append(f.shapes, s) }

// Plot adds a line through `points` drawn with the next color of the palette.
func (f *Figure) Plot(points orb.LineString, label string, zorder int) *Line {
	style := DefaultStyle.Stroked(PaletteColor(f.nextColor), 2)
	f.nextColor++
	l := &Line{Points: points, Label: label, Style: style, Z: zorder}
	f.Add(l)
	return l
}

// Scatter adds a single marker filled with `c`.
func (f *Figure) Scatter(at orb.Point, c color.Color, zorder int) *Marker {
	m := &Marker{At: at, Radius: 3.5, Style: DefaultStyle.Filled(c), Z: zorder}
	f.Add(m)
	return m
}

// Annotate adds a text whose baseline starts at `at`.
func (f *Figure) Annotate(text string, at orb.Point) {
	f.annotations = append(f.annotations, Annotation{At: at, Text: text})
}

// SetXLim fixes the horizontal range; lo > hi inverts the axis.
func (f *Figure) SetXLim(lo, hi float64) { f.xlim = &[2]float64{lo, hi} }

// SetYLim fixes the vertical range; lo > hi inverts the axis.
func (f *Figure) SetYLim(lo, hi float64) { f.ylim = &[2]float64{lo, hi} }

// SetTitle sets the text drawn above the axes.
func (f *Figure) SetTitle(title string) { f.Title = title }

// SetLegend enables the legend at the given location.
func (f *Figure) SetLegend(loc LegendLocation) { f.Legend = loc }

// Shapes returns the shapes added so far, in insertion order.
func (f *Figure) Shapes() []Shape { return append([]Shape(nil), f.shapes...) }

// Annotations returns the annotations added so far.
func (f *Figure) Annotations() []Annotation { return append([]Annotation(nil), f.annotations...) }

// dataBounds returns the union of the shapes extent, and false
// for an empty figure
func (f *Figure) dataBounds() (orb.Bound, bool) {
	if len(f.shapes) == 0 {
		return orb.Bound{}, false
	}
	b := f.shapes[0].Bounds()
	for _, s := range f.shapes[1:] {
		b = b.Union(s.Bounds())
	}
	return b, true
}

// Limits returns the visible data range: the explicit limits when set,
// the data extent plus a 5% margin otherwise.
func (f *Figure) Limits() Limits {
	b, ok := f.dataBounds()
	var l Limits
	if f.xlim != nil {
		l.X0, l.X1 = f.xlim[0], f.xlim[1]
	} else if ok {
		l.X0, l.X1 = expand(b.Min[0], b.Max[0], autoMargin)
	} else {
		l.X0, l.X1 = 0, 1
	}
	if f.ylim != nil {
		l.Y0, l.Y1 = f.ylim[0], f.ylim[1]
	} else if ok {
		l.Y0, l.Y1 = expand(b.Min[1], b.Max[1], autoMargin)
	} else {
		l.Y0, l.Y1 = 0, 1
	}
	// degenerate explicit limits
	if l.X0 == l.X1 {
		l.X0, l.X1 = expand(l.X0, l.X1, 0)
	}
	if l.Y0 == l.Y1 {
		l.Y0, l.Y1 = expand(l.Y0, l.Y1, 0)
	}
	return l
}

func (f *Figure) axesBox() axesBox {
	return axesBox{
		Left:   marginLeft,
		Top:    marginTop,
		Right:  math.Max(float64(f.Width-marginRight), marginLeft+1),
		Bottom: math.Max(float64(f.Height-marginBottom), marginTop+1),
	}
}

// Transform returns the data to figure coordinates matrix.
func (f *Figure) Transform() rasterx.Matrix2D {
	return dataTransform(f.Limits(), f.axesBox())
}

// sortedShapes returns the shapes by increasing z-order,
// insertion order breaking ties
func (f *Figure) sortedShapes() []Shape {
	out := f.Shapes()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZOrder() < out[j].ZOrder() })
	return out
}

func drawText(d Driver, s string, x, y float64, c color.Color) {
	d.DrawText(Text{Content: s, Dot: toFixedP(x, y), Color: c})
}

// Draw paints the whole figure into the driver `d`:
// background, shapes (clipped to the axes), axes, annotations, legend and title.
func (f *Figure) Draw(d Driver) {
	box := f.axesBox()
	lims := f.Limits()
	m := dataTransform(lims, box)

	if f.Background != nil {
		var bg Path
		bg.addRect(rasterx.Identity, 0, 0, float64(f.Width), float64(f.Height))
		DrawPath(d, bg, DefaultStyle.Filled(f.Background))
	}

	d.SetClip(image.Rect(int(box.Left), int(box.Top), int(math.Ceil(box.Right)), int(math.Ceil(box.Bottom))))
	for _, s := range f.sortedShapes() {
		DrawPath(d, s.path(m), s.PathStyle())
	}
	d.SetClip(image.Rectangle{})

	f.drawAxes(d, box, lims, m)
	f.drawAnnotations(d, lims, m)
	f.drawLegend(d, box)

	if f.Title != "" {
		tm := MeasureText(f.Title)
		x := box.Left + (box.width()-tm.Width)/2
		drawText(d, f.Title, x, box.Top-10, Black)
	}
}

func (f *Figure) drawAxes(d Driver, box axesBox, lims Limits, m rasterx.Matrix2D) {
	var frame Path
	frame.addRect(rasterx.Identity, box.Left, box.Top, box.Right, box.Bottom)
	frameStyle := DefaultStyle.Stroked(Black, 1)
	frameStyle.LineJoin = Miter
	DrawPath(d, frame, frameStyle)

	var ticks Path
	for _, t := range Ticks(lims.X0, lims.X1, maxTicks) {
		x, _ := m.Transform(t.Value, lims.Y0)
		ticks.Start(toFixedP(x, box.Bottom))
		ticks.Line(toFixedP(x, box.Bottom+tickLength))
		tm := MeasureText(t.Label)
		drawText(d, t.Label, x-tm.Width/2, box.Bottom+tickLength+2+tm.Ascent, Black)
	}
	for _, t := range Ticks(lims.Y0, lims.Y1, maxTicks) {
		_, y := m.Transform(lims.X0, t.Value)
		ticks.Start(toFixedP(box.Left, y))
		ticks.Line(toFixedP(box.Left-tickLength, y))
		tm := MeasureText(t.Label)
		drawText(d, t.Label, box.Left-tickLength-3-tm.Width, y+tm.Ascent/2, Black)
	}
	DrawPath(d, ticks, DefaultStyle.Stroked(Black, 1))
}

// annotations anchored outside the visible range are not drawn
func (f *Figure) drawAnnotations(d Driver, lims Limits, m rasterx.Matrix2D) {
	layout := newLabelLayout()
	for _, a := range f.annotations {
		if !lims.Contains(a.At) {
			continue
		}
		x, y := m.Transform(a.At[0], a.At[1])
		x, y = layout.place(x, y, MeasureText(a.Text))
		drawText(d, a.Text, x, y, Black)
	}
}

// legendEntries returns the labelled lines
func (f *Figure) legendEntries() []*Line {
	var out []*Line
	for _, s := range f.shapes {
		if l, ok := s.(*Line); ok && l.Label != "" {
			out = append(out, l)
		}
	}
	return out
}

func (f *Figure) drawLegend(d Driver, box axesBox) {
	entries := f.legendEntries()
	if f.Legend == NoLegend || len(entries) == 0 {
		return
	}
	textWidth := 0.
	for _, e := range entries {
		textWidth = math.Max(textWidth, MeasureText(e.Label).Width)
	}
	rowHeight := MeasureText("").Height() + 3
	w := legendPad + legendLine + legendPad + textWidth + legendPad
	h := legendPad*2 + rowHeight*float64(len(entries))

	var x, y float64 // upper left corner
	switch f.Legend {
	case LowerLeft:
		x, y = box.Left+legendPad, box.Bottom-legendPad-h
	case LowerRight:
		x, y = box.Right-legendPad-w, box.Bottom-legendPad-h
	case UpperLeft:
		x, y = box.Left+legendPad, box.Top+legendPad
	case UpperRight:
		x, y = box.Right-legendPad-w, box.Top+legendPad
	}

	var frame Path
	frame.addRect(rasterx.Identity, x, y, x+w, y+h)
	frameStyle := DefaultStyle.Filled(White)
	frameStyle.FillOpacity = 0.8
	frameStyle.LineColor, frameStyle.LineWidth = Gray, 1
	DrawPath(d, frame, frameStyle)

	for i, e := range entries {
		rowTop := y + legendPad + rowHeight*float64(i)
		midY := rowTop + rowHeight/2
		var sample Path
		sample.Start(toFixedP(x+legendPad, midY))
		sample.Line(toFixedP(x+legendPad+legendLine, midY))
		sampleStyle := e.Style
		sampleStyle.FillColor = nil
		DrawPath(d, sample, sampleStyle)

		tm := MeasureText(e.Label)
		drawText(d, e.Label, x+legendPad*2+legendLine, midY+tm.Ascent/2-1, Black)
	}
}

// LegendLabels returns the legend entries, in drawing order.
func (f *Figure) LegendLabels() []string {
	var out []string
	for _, l := range f.legendEntries() {
		out = append(out, l.Label)
	}
	return out
}

// FixedPoint returns the figure position of the data point p,
// using the current limits.
func (f *Figure) FixedPoint(p orb.Point) fixed.Point26_6 {
	return toFixedP(f.Transform().Transform(p[0], p[1]))
}
