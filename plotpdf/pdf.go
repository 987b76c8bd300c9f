// Implements a PDF backend to render figures,
// by wrapping github.com/jung-kurt/gofpdf.
//
// One figure unit is mapped to one PDF point.
package plotpdf

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/benoitkugler/pathplot/plot"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// Courier glyphs advance by 0.6 em: this size matches the
// 7 units advance of plot.Face
const fontSize = 7 / 0.6

// assert interface conformance
var (
	_ plot.Driver  = (*Renderer)(nil)
	_ plot.Filler  = (*filler)(nil)
	_ plot.Stroker = (*stroker)(nil)
)

type Renderer struct {
	pdf       *gofpdf.Fpdf
	filler    *filler
	stroker   *stroker
	clipping  bool
	translate func(string) string
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the current page of the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	pdf.SetFont("Courier", "", fontSize)
	p := pather{pdf: pdf}
	return &Renderer{
		pdf:       pdf,
		filler:    &filler{pather: p},
		stroker:   &stroker{pather: p},
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// NewDocument returns a one page document the size of the figure.
func NewDocument(fig *plot.Figure) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(fig.Width), Ht: float64(fig.Height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(fig.Title, true)
	pdf.AddPage()
	return pdf
}

// Write renders the figure as a PDF document.
func Write(w io.Writer, fig *plot.Figure) error {
	pdf := NewDocument(fig)
	fig.Draw(NewRenderer(pdf))
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func toRGB(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
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
	if rd.clipping {
		rd.pdf.ClipEnd()
		rd.clipping = false
	}
	if rect.Empty() {
		return
	}
	rd.pdf.ClipRect(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), false)
	rd.clipping = true
}

func (rd *Renderer) DrawText(t plot.Text) {
	r, g, b, a := toRGB(t.Color)
	rd.pdf.SetTextColor(r, g, b)
	rd.pdf.SetAlpha(a, "")
	x, y := fixedTof(t.Dot)
	rd.pdf.Text(x, y, rd.translate(t.Content))
}

func (p pather) Clear() {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := toRGB(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*a, "")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := toRGB(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*a, "")
}

func (s *stroker) Draw() {
	s.pdf.DrawPath("D")
}

var (
	joinToStyle = [...]string{
		plot.Round: "round",
		plot.Bevel: "bevel",
		plot.Miter: "miter",
	}

	capToStyle = [...]string{
		plot.ButtCap:   "butt",
		plot.SquareCap: "square",
		plot.RoundCap:  "round",
	}
)

func (s *stroker) SetStrokeOptions(options plot.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineJoinStyle(joinToStyle[options.LineJoin])
	s.pdf.SetLineCapStyle(capToStyle[options.LineCap])
	s.pdf.SetDashPattern(options.Dash, 0)
}
