// Implements a raster backend to render figures,
// by wrapping rasterx.
package plotraster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/benoitkugler/pathplot/plot"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
)

var _ plot.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints into an RGBA image.
type Renderer struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *filler  // we use separated instances
	stroker *stroker // sharing the same scanner
}

// NewRenderer returns a renderer drawing on `img`.
func NewRenderer(img *image.RGBA) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		img:     img,
		scanner: scanner,
		filler:  &filler{rasterx.NewFiller(w, h, scanner)},
		stroker: &stroker{rasterx.NewDasher(w, h, scanner)},
	}
}

// Rasterize draws the figure into a new image of the figure size.
func Rasterize(fig *plot.Figure) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fig.Width, fig.Height))
	fig.Draw(NewRenderer(img))
	return img
}

// WritePNG rasterizes the figure and encodes it in PNG format.
func WritePNG(w io.Writer, fig *plot.Figure) error {
	return png.Encode(w, Rasterize(fig))
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f plot.Filler, s plot.Stroker) {
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.stroker
	}
	return f, s
}

func (rd *Renderer) SetClip(rect image.Rectangle) {
	if rect.Empty() {
		rect = rd.img.Bounds()
	}
	rd.scanner.SetClip(rect)
}

func (rd *Renderer) DrawText(t plot.Text) {
	d := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(t.Color),
		Face: plot.Face,
		Dot:  t.Dot,
	}
	d.DrawString(t.Content)
}

type filler struct {
	*rasterx.Filler
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		plot.Round: rasterx.Round,
		plot.Bevel: rasterx.Bevel,
		plot.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		plot.ButtCap:   rasterx.ButtCap,
		plot.SquareCap: rasterx.SquareCap,
		plot.RoundCap:  rasterx.RoundCap,
	}
)

func (s *stroker) SetStrokeOptions(options plot.StrokeOptions) {
	s.Dasher.SetStroke(
		options.LineWidth, options.MiterLimit, capToFunc[options.LineCap],
		capToFunc[options.LineCap], rasterx.FlatGap,
		joinToJoin[options.LineJoin], options.Dash, 0,
	)
}

var (
	_ plot.Filler  = (*filler)(nil)
	_ plot.Stroker = (*stroker)(nil)
)
