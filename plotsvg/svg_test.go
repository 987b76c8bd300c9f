package plotsvg

import (
	"bytes"
	"image"
	"testing"

	"github.com/beevik/etree"
	"github.com/benoitkugler/pathplot/plot"
	"github.com/paulmach/orb"
	"golang.org/x/image/math/fixed"
)

func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func renderTestFigure(t *testing.T) *etree.Document {
	fig := plot.NewFigure(plot.DefaultWidth, plot.DefaultHeight)
	fig.SetTitle("pathfinding results")
	fig.Add(&plot.Circle{Center: orb.Point{2, 3}, Radius: 1.5, Style: plot.DefaultStyle.Filled(plot.PaletteColor(0))})
	fig.Plot(orb.LineString{{0, 0}, {5, 5}}, "node:0", 1)
	fig.Scatter(orb.Point{5, 5}, plot.Blue, 3)
	fig.Annotate("5.0,5.0", orb.Point{5, 5})
	fig.SetLegend(plot.LowerLeft)

	var buf bytes.Buffer
	if err := Write(&buf, fig); err != nil {
		t.Fatal(err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buf.Bytes()); err != nil {
		t.Fatalf("invalid SVG output: %s", err)
	}
	return doc
}

func TestWrite(t *testing.T) {
	doc := renderTestFigure(t)

	root := doc.SelectElement("svg")
	if root == nil {
		t.Fatal("missing svg root")
	}
	if w := root.SelectAttrValue("width", ""); w != "640" {
		t.Errorf("unexpected width %s", w)
	}
	if title := root.SelectElement("title"); title == nil || title.Text() != "pathfinding results" {
		t.Error("missing title element")
	}

	texts := map[string]bool{}
	for _, el := range doc.FindElements("//text") {
		texts[el.Text()] = true
	}
	for _, want := range []string{"pathfinding results", "node:0", "5.0,5.0"} {
		if !texts[want] {
			t.Errorf("missing text %q", want)
		}
	}

	var circleFound, markerFound bool
	for _, el := range doc.FindElements("//g/path") {
		switch el.SelectAttrValue("fill", "") {
		case "#1f77b4":
			circleFound = true
		case "#0000ff":
			markerFound = true
		}
	}
	if !circleFound || !markerFound {
		t.Errorf("shapes should be drawn in the clipped group (circle: %v, marker: %v)", circleFound, markerFound)
	}
}

func TestClipGroups(t *testing.T) {
	rd := NewRenderer(100, 100)
	rd.SetClip(image.Rect(10, 10, 90, 90))
	rd.DrawText(plot.Text{Content: "in", Color: plot.Black})
	rd.SetClip(image.Rectangle{})
	rd.DrawText(plot.Text{Content: "out", Color: plot.Black})

	doc := rd.Document()
	if len(doc.FindElements("//defs/clipPath")) != 1 {
		t.Fatal("expected one clip path")
	}
	g := doc.FindElement("//g")
	if g.SelectAttrValue("clip-path", "") != "url(#clip1)" {
		t.Errorf("unexpected clip reference %s", g.SelectAttrValue("clip-path", ""))
	}
	if el := g.SelectElement("text"); el == nil || el.Text() != "in" {
		t.Error("clipped text should be inside the group")
	}
	if el := doc.FindElement("/svg/text"); el == nil || el.Text() != "out" {
		t.Error("unclipped text should be at the root")
	}
}

func TestStrokeAttributes(t *testing.T) {
	rd := NewRenderer(10, 10)
	var p plot.Path
	p.Start(fixedPoint(1, 1))
	p.Line(fixedPoint(5, 5))
	style := plot.DefaultStyle.Stroked(plot.Red, 2)
	style.Dash = []float64{4, 2}
	plot.DrawPath(rd, p, style)

	el := rd.Document().FindElement("//path")
	if el == nil {
		t.Fatal("missing path")
	}
	for attr, want := range map[string]string{
		"d":                "M1.000,1.000 L5.000,5.000",
		"fill":             "none",
		"stroke":           "#ff0000",
		"stroke-width":     "2",
		"stroke-linejoin":  "round",
		"stroke-dasharray": "4,2",
	} {
		if got := el.SelectAttrValue(attr, ""); got != want {
			t.Errorf("attribute %s: expected %q, got %q", attr, want, got)
		}
	}
}
