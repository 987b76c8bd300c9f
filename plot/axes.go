package plot

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/srwiley/rasterx"
)

// autoscale margin, as a fraction of the data range
const autoMargin = 0.05

// Limits is the visible data range. X0 > X1 (or Y0 > Y1)
// means an inverted axis.
type Limits struct {
	X0, X1, Y0, Y1 float64
}

// Contains returns true if p is inside the limits, borders included.
func (l Limits) Contains(p orb.Point) bool {
	in := func(v, a, b float64) bool {
		if a > b {
			a, b = b, a
		}
		return v >= a && v <= b
	}
	return in(p[0], l.X0, l.X1) && in(p[1], l.Y0, l.Y1)
}

// expand returns a non degenerate range padded by `margin` on each side.
func expand(lo, hi, margin float64) (float64, float64) {
	if hi == lo {
		d := math.Max(math.Abs(lo)*autoMargin, 0.5)
		return lo - d, hi + d
	}
	pad := (hi - lo) * margin
	return lo - pad, hi + pad
}

// axesBox is the figure rectangle holding the plot area
type axesBox struct {
	Left, Top, Right, Bottom float64
}

func (b axesBox) width() float64  { return b.Right - b.Left }
func (b axesBox) height() float64 { return b.Bottom - b.Top }

// dataTransform maps data coordinates to figure coordinates,
// with y growing upward in data space and downward on the figure.
func dataTransform(l Limits, box axesBox) rasterx.Matrix2D {
	sx := box.width() / (l.X1 - l.X0)
	sy := box.height() / (l.Y1 - l.Y0)
	return rasterx.Matrix2D{
		A: sx,
		D: -sy,
		E: box.Left - sx*l.X0,
		F: box.Bottom + sy*l.Y0,
	}
}

// Tick is an axis graduation.
type Tick struct {
	Value float64
	Label string
}

// niceStep returns a round step (1, 2, 2.5 or 5 times a power of ten)
// yielding at most maxTicks graduations on [lo, hi].
func niceStep(lo, hi float64, maxTicks int) float64 {
	span := math.Abs(hi - lo)
	if span == 0 || maxTicks < 2 {
		return 1
	}
	raw := span / float64(maxTicks-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range [...]float64{1, 2, 2.5, 5, 10} {
		if step := m * mag; step >= raw {
			return step
		}
	}
	return 10 * mag
}

// Ticks returns the graduations inside [lo, hi] (in any order),
// sorted by increasing value.
func Ticks(lo, hi float64, maxTicks int) []Tick {
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	step := niceStep(lo, hi, maxTicks)
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
		// 2.5 * 10^k needs one more digit
		if r := step * math.Pow(10, float64(decimals)); math.Abs(r-math.Round(r)) > 1e-9 {
			decimals++
		}
	} else if math.Abs(step-math.Round(step)) > 1e-9 {
		decimals = 1
	}

	var out []Tick
	eps := step * 1e-9
	for i := math.Ceil((lo - eps) / step); i*step <= hi+eps; i++ {
		v := i * step
		if math.Abs(v) < eps {
			v = 0 // avoid -0
		}
		out = append(out, Tick{Value: v, Label: strconv.FormatFloat(v, 'f', decimals, 64)})
	}
	return out
}
