package plotraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/benoitkugler/pathplot/plot"
	"github.com/paulmach/orb"
)

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func pixelAt(fig *plot.Figure, img *image.RGBA, p orb.Point) color.Color {
	fp := fig.FixedPoint(p)
	return img.At(fp.X.Round(), fp.Y.Round())
}

func testFigure() *plot.Figure {
	fig := plot.NewFigure(200, 160)
	fig.SetXLim(0, 10)
	fig.SetYLim(0, 10)
	return fig
}

func TestRasterizeShapes(t *testing.T) {
	fig := testFigure()
	fig.Add(&plot.Circle{Center: orb.Point{3, 3}, Radius: 1.5, Style: plot.DefaultStyle.Filled(plot.PaletteColor(0))})
	fig.Scatter(orb.Point{8, 8}, plot.Red, 2)

	img := Rasterize(fig)
	if img.Bounds() != image.Rect(0, 0, 200, 160) {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}
	if c := pixelAt(fig, img, orb.Point{3, 3}); !sameColor(c, plot.PaletteColor(0)) {
		t.Errorf("expected obstacle color at circle center, got %v", c)
	}
	if c := pixelAt(fig, img, orb.Point{8, 8}); !sameColor(c, plot.Red) {
		t.Errorf("expected red at marker center, got %v", c)
	}
	if c := pixelAt(fig, img, orb.Point{6, 6}); !sameColor(c, plot.White) {
		t.Errorf("expected background at empty spot, got %v", c)
	}
	if c := img.At(1, 1); !sameColor(c, plot.White) {
		t.Errorf("expected background in the margin, got %v", c)
	}
}

func TestRasterizeZOrder(t *testing.T) {
	fig := testFigure()
	// painted last despite being added first
	fig.Scatter(orb.Point{5, 5}, plot.Blue, 3)
	fig.Add(&plot.Circle{Center: orb.Point{5, 5}, Radius: 2, Style: plot.DefaultStyle.Filled(plot.PaletteColor(0))})

	img := Rasterize(fig)
	if c := pixelAt(fig, img, orb.Point{5, 5}); !sameColor(c, plot.Blue) {
		t.Errorf("marker should be painted over the circle, got %v", c)
	}
}

func TestClipToAxes(t *testing.T) {
	fig := testFigure()
	// a circle overflowing the axes on the left
	fig.Add(&plot.Circle{Center: orb.Point{0, 5}, Radius: 3, Style: plot.DefaultStyle.Filled(plot.PaletteColor(0))})

	img := Rasterize(fig)
	if c := pixelAt(fig, img, orb.Point{-1, 5}); sameColor(c, plot.PaletteColor(0)) {
		t.Error("shapes should be clipped to the axes")
	}
	if c := pixelAt(fig, img, orb.Point{1, 5}); !sameColor(c, plot.PaletteColor(0)) {
		t.Errorf("expected circle color inside the axes, got %v", c)
	}
}

func TestWritePNG(t *testing.T) {
	fig := testFigure()
	fig.SetTitle("title")
	fig.Plot(orb.LineString{{0, 0}, {10, 10}}, "node:0", 1)
	fig.SetLegend(plot.LowerLeft)

	var buf bytes.Buffer
	if err := WritePNG(&buf, fig); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid PNG output: %s", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 160 {
		t.Errorf("unexpected size %v", img.Bounds())
	}
}
