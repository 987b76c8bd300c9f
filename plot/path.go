package plot

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure.
// Paths are expressed in figure (pixel) coordinates,
// with y pointing down.

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`
	drawTo(d Drawer)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(fixed.Point26_6(op))
}

func (op LineTo) drawTo(d Drawer) {
	d.Line(fixed.Point26_6(op))
}

func (op CubicTo) drawTo(d Drawer) {
	d.CubeBezier(op[0], op[1], op[2])
}

func (op Close) drawTo(d Drawer) {
	d.Stop(true)
}

// Path describes a sequence of basic operations, which should not be nil.
// Higher-level shapes are reduced to a path.
type Path []Operation

func fixedToF(v fixed.Int26_6) float32 { return float32(v) / 64 }

// ToSVGPath returns a string representation of the path,
// suitable for the `d` attribute of an SVG path element.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", fixedToF(op.X), fixedToF(op.Y))
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", fixedToF(op.X), fixedToF(op.Y))
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", fixedToF(op[0].X), fixedToF(op[0].Y),
				fixedToF(op[1].X), fixedToF(op[1].Y), fixedToF(op[2].X), fixedToF(op[2].Y))
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Bounds returns the extent of the points of the path,
// control points included.
func (p Path) Bounds() fixed.Rectangle26_6 {
	var (
		r     fixed.Rectangle26_6
		first = true
	)
	add := func(a fixed.Point26_6) {
		if first {
			r.Min, r.Max = a, a
			first = false
			return
		}
		if a.X < r.Min.X {
			r.Min.X = a.X
		}
		if a.Y < r.Min.Y {
			r.Min.Y = a.Y
		}
		if a.X > r.Max.X {
			r.Max.X = a.X
		}
		if a.Y > r.Max.Y {
			r.Max.Y = a.Y
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			add(fixed.Point26_6(op))
		case LineTo:
			add(fixed.Point26_6(op))
		case CubicTo:
			add(op[0])
			add(op[1])
			add(op[2])
		}
	}
	return r
}
