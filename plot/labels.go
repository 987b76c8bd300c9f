package plot

import (
	"github.com/dhconnelly/rtreego"
)

// maximum number of upward moves tried to free a label spot
const maxLabelShifts = 12

// labelBox wraps a placed label for R-tree storage
type labelBox struct {
	rect rtreego.Rect
	X, Y float64 // baseline origin
	m    TextMetrics
}

// Bounds implements rtreego.Spatial interface
func (b *labelBox) Bounds() rtreego.Rect { return b.rect }

// labelLayout places labels so that they don't cover each other:
// a label colliding with an already placed one is moved up,
// one line at a time.
type labelLayout struct {
	tree *rtreego.Rtree
}

func newLabelLayout() *labelLayout {
	return &labelLayout{tree: rtreego.NewTree(2, 4, 16)}
}

func labelRect(x, y float64, m TextMetrics) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{x, y - m.Ascent},
		[]float64{m.Width, m.Height()},
	)
}

// place returns the baseline origin chosen for a label
// whose preferred origin is (x, y).
func (ll *labelLayout) place(x, y float64, m TextMetrics) (float64, float64) {
	rect, err := labelRect(x, y, m)
	if err != nil { // empty text
		return x, y
	}
	box := &labelBox{rect: rect, X: x, Y: y, m: m}
	for i := 0; i < maxLabelShifts; i++ {
		if !ll.collides(box) {
			break
		}
		box.Y -= m.Height()
		box.rect, _ = labelRect(box.X, box.Y, m)
	}
	ll.tree.Insert(box)
	return box.X, box.Y
}

// collides reports a strict overlap with a placed label,
// touching borders are accepted
func (ll *labelLayout) collides(box *labelBox) bool {
	for _, item := range ll.tree.SearchIntersect(box.rect) {
		other := item.(*labelBox)
		if overlaps(box, other) {
			return true
		}
	}
	return false
}

func overlaps(a, b *labelBox) bool {
	ax0, ay0 := a.X, a.Y-a.m.Ascent
	bx0, by0 := b.X, b.Y-b.m.Ascent
	return ax0 < bx0+b.m.Width && bx0 < ax0+a.m.Width &&
		ay0 < by0+b.m.Height() && by0 < ay0+a.m.Height()
}
