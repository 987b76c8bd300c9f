// Package render draws the content of a results file
// on a plot.Figure: agent paths with their endpoints,
// the world boundary and the obstacles.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/pathplot/logging"
	"github.com/benoitkugler/pathplot/plot"
	"github.com/benoitkugler/pathplot/results"
	"github.com/paulmach/orb"
)

// Title is the fixed title of the figure.
const Title = "pathfinding results, red=agent, blue=target"

// boundaryMargin is added around the boundary to get the visible extent
const boundaryMargin = 1

// z-orders of the shapes
const (
	zObstacle = 0
	zPath     = 1
	zBoundary = 1
	zStart    = 2
	zEnd      = 3
)

// Options controls the rendering side effects.
type Options struct {
	// Summary receives one line per record. Nil discards them.
	Summary io.Writer

	// Encoding is the charset label of the input file, UTF-8 if empty.
	Encoding string
}

// RenderFile loads the results file at `path` and draws it on `fig`.
// Nothing is drawn if the file can't be read or parsed.
func RenderFile(fig *plot.Figure, path string, opts Options) error {
	set, err := results.Load(path, results.LoadOptions{Encoding: opts.Encoding})
	if err != nil {
		return err
	}
	logging.Infof("loaded %d records from %s", len(set.Records), path)
	Render(fig, set, opts)
	return nil
}

// Render adds the records of `set` to `fig`, in order, then
// sets the legend and the title.
func Render(fig *plot.Figure, set *results.Set, opts Options) {
	sum := summary{w: opts.Summary}
	for _, rec := range set.Records {
		switch rec := rec.(type) {
		case results.NodePath:
			drawNode(fig, rec)
			sum.printf("[Node %d] %s,%s->%s,%s", rec.Index,
				PyFloat(rec.Start[0]), PyFloat(rec.Start[1]), PyFloat(rec.End[0]), PyFloat(rec.End[1]))
		case results.Boundary:
			drawBoundary(fig, rec)
			sum.printf("[Boundary] %s,%s %s,%s", PyFloat(rec.X0), PyFloat(rec.Y0), PyFloat(rec.X1), PyFloat(rec.Y1))
		case results.Obstacle:
			drawObstacle(fig, rec)
			sum.printf("[Obstacle] %s,%s with radius %s", PyFloat(rec.Center[0]), PyFloat(rec.Center[1]), PyFloat(rec.Radius))
		}
	}
	fig.SetLegend(plot.LowerLeft)
	fig.SetTitle(Title)
}

func pointLabel(p orb.Point) string {
	return PyFloat(p[0]) + "," + PyFloat(p[1])
}

func drawNode(fig *plot.Figure, node results.NodePath) {
	fig.Plot(node.Path, fmt.Sprintf("node:%d", node.Index), zPath)
	fig.Scatter(node.Start, plot.Red, zStart)
	fig.Scatter(node.End, plot.Blue, zEnd)
	fig.Annotate(pointLabel(node.Start), node.Start)
	fig.Annotate(pointLabel(node.End), node.End)
}

// the last boundary sets the limits
func drawBoundary(fig *plot.Figure, b results.Boundary) {
	fig.Add(&plot.Rectangle{
		Corner: b.Min(),
		Width:  b.X1 - b.X0,
		Height: b.Y1 - b.Y0,
		Style:  plot.DefaultStyle.Stroked(plot.Black, 1),
		Z:      zBoundary,
	})
	fig.SetXLim(b.X0-boundaryMargin, b.X1+boundaryMargin)
	fig.SetYLim(b.Y0-boundaryMargin, b.Y1+boundaryMargin)
}

func drawObstacle(fig *plot.Figure, o results.Obstacle) {
	fig.Add(&plot.Circle{
		Center: o.Center,
		Radius: o.Radius,
		Style:  plot.DefaultStyle.Filled(plot.PaletteColor(0)),
		Z:      zObstacle,
	})
}

// summary writes the diagnostic lines; failures are logged, never returned
type summary struct {
	w      io.Writer
	failed bool
}

func (s *summary) printf(format string, args ...interface{}) {
	if s.w == nil || s.failed {
		return
	}
	if _, err := fmt.Fprintf(s.w, format+"\n", args...); err != nil {
		logging.Warnf("writing summary: %s", err)
		s.failed = true
	}
}

// PyFloat formats `v` the way Python prints a float:
// shortest representation, always with a fractional part
// or an exponent.
func PyFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
