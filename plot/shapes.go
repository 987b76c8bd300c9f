package plot

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent.

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating an ellipse.
const maxDx float64 = math.Pi / 8

// Shape is a drawable element of a Figure, expressed in data coordinates.
type Shape interface {
	// Bounds returns the data space extent, used for autoscaling.
	Bounds() orb.Bound

	// ZOrder returns the drawing priority: shapes with a higher
	// value are painted over the others.
	ZOrder() int

	// PathStyle returns the paint settings.
	PathStyle() Style

	// path returns the shape in figure coordinates, given the data to figure transform.
	path(m rasterx.Matrix2D) Path
}

// Line is a polyline through data points, listed in the legend
// when its label is not empty.
type Line struct {
	Points orb.LineString
	Label  string
	Style  Style
	Z      int
}

// Marker is a disk with a radius in figure units, centered on a data point.
type Marker struct {
	At     orb.Point
	Radius float64
	Style  Style
	Z      int
}

// Rectangle is an axis aligned rectangle anchored at Corner.
// Width and Height may be negative.
type Rectangle struct {
	Corner        orb.Point
	Width, Height float64
	Style         Style
	Z             int
}

// Circle is a circle in data coordinates.
type Circle struct {
	Center orb.Point
	Radius float64
	Style  Style
	Z      int
}

func (l *Line) Bounds() orb.Bound { return l.Points.Bound() }
func (m *Marker) Bounds() orb.Bound {
	return orb.Bound{Min: m.At, Max: m.At}
}
func (r *Rectangle) Bounds() orb.Bound {
	return orb.MultiPoint{r.Corner, r.opposite()}.Bound()
}
func (c *Circle) Bounds() orb.Bound {
	return orb.Bound{Min: c.Center, Max: c.Center}.Pad(math.Abs(c.Radius))
}

func (l *Line) ZOrder() int      { return l.Z }
func (m *Marker) ZOrder() int    { return m.Z }
func (r *Rectangle) ZOrder() int { return r.Z }
func (c *Circle) ZOrder() int    { return c.Z }

func (l *Line) PathStyle() Style      { return l.Style }
func (m *Marker) PathStyle() Style    { return m.Style }
func (r *Rectangle) PathStyle() Style { return r.Style }
func (c *Circle) PathStyle() Style    { return c.Style }

func (r *Rectangle) opposite() orb.Point {
	return orb.Point{r.Corner[0] + r.Width, r.Corner[1] + r.Height}
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// matrixAdder applies M to the points before adding them to path
type matrixAdder struct {
	M    rasterx.Matrix2D
	path *Path
}

func (q *matrixAdder) pt(x, y float64) fixed.Point26_6 {
	return toFixedP(q.M.Transform(x, y))
}

func (q *matrixAdder) Start(x, y float64) { q.path.Start(q.pt(x, y)) }

func (q *matrixAdder) Line(x, y float64) { q.path.Line(q.pt(x, y)) }

func (q *matrixAdder) CubeBezier(x1, y1, x2, y2, x3, y3 float64) {
	q.path.CubeBezier(q.pt(x1, y1), q.pt(x2, y2), q.pt(x3, y3))
}

func (l *Line) path(m rasterx.Matrix2D) Path {
	var p Path
	if len(l.Points) == 0 {
		return p
	}
	q := &matrixAdder{M: m, path: &p}
	q.Start(l.Points[0][0], l.Points[0][1])
	for _, pt := range l.Points[1:] {
		q.Line(pt[0], pt[1])
	}
	return p
}

func (r *Rectangle) path(m rasterx.Matrix2D) Path {
	var p Path
	p.addRect(m, r.Corner[0], r.Corner[1], r.Corner[0]+r.Width, r.Corner[1]+r.Height)
	return p
}

func (c *Circle) path(m rasterx.Matrix2D) Path {
	var p Path
	p.addEllipse(m, c.Center[0], c.Center[1], c.Radius, c.Radius)
	return p
}

// the marker keeps its size whatever the transform
func (mk *Marker) path(m rasterx.Matrix2D) Path {
	var p Path
	cx, cy := m.Transform(mk.At[0], mk.At[1])
	p.addEllipse(rasterx.Identity, cx, cy, mk.Radius, mk.Radius)
	return p
}

// addRect adds a closed rectangle with corners (minX, minY), (maxX, maxY),
// transformed by m
func (p *Path) addRect(m rasterx.Matrix2D, minX, minY, maxX, maxY float64) {
	q := &matrixAdder{M: m, path: p}
	q.Start(minX, minY)
	q.Line(maxX, minY)
	q.Line(maxX, maxY)
	q.Line(minX, maxY)
	p.Stop(true)
}

// addEllipse adds a closed ellipse of radii rx and ry, centered on (cx, cy),
// transformed by m. Since m is affine, transforming the bezier control
// points is exact.
func (p *Path) addEllipse(m rasterx.Matrix2D, cx, cy, rx, ry float64) {
	q := &matrixAdder{M: m, path: p}
	segs := int(math.Round(2 * math.Pi / maxDx))
	dEta := 2 * math.Pi / float64(segs)
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := ellipsePointAt(rx, ry, 0, cx, cy)
	ldx, ldy := ellipsePrime(rx, ry, 0)
	q.Start(lx, ly)
	for i := 1; i <= segs; i++ {
		eta := dEta * float64(i)
		px, py := ellipsePointAt(rx, ry, eta, cx, cy)
		if i == segs { // closes exactly, no roundoff error
			px, py = ellipsePointAt(rx, ry, 0, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, eta)
		q.CubeBezier(lx+alpha*ldx, ly+alpha*ldy, px-alpha*dx, py-alpha*dy, px, py)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	p.Stop(true)
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b, radii, eta parameter
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives points for parameterized ellipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
