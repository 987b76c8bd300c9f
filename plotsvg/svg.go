// Implements an SVG backend to render figures,
// by building an XML tree with github.com/beevik/etree.
package plotsvg

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/benoitkugler/pathplot/plot"
	"golang.org/x/image/math/fixed"
)

// font size whose monospace advance matches plot.Face
const fontSize = 7 / 0.6

// assert interface conformance
var (
	_ plot.Driver  = (*Renderer)(nil)
	_ plot.Filler  = (*filler)(nil)
	_ plot.Stroker = (*stroker)(nil)
)

// Renderer appends SVG elements to a document.
type Renderer struct {
	doc    *etree.Document
	root   *etree.Element
	defs   *etree.Element
	parent *etree.Element // receives the painted elements

	clipCount int
	filler    *filler
	stroker   *stroker
}

// pather accumulates the path commands in figure coordinates
type pather struct {
	rd    *Renderer
	path  plot.Path
	color color.Color
	alpha float64
}

type filler struct {
	pather
	useNonZeroWinding bool
}

type stroker struct {
	pather
	options plot.StrokeOptions
}

// NewRenderer returns a renderer writing a new SVG document
// of the given size.
func NewRenderer(width, height int) *Renderer {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("version", "1.1")
	root.CreateAttr("width", strconv.Itoa(width))
	root.CreateAttr("height", strconv.Itoa(height))
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))
	rd := &Renderer{doc: doc, root: root, parent: root}
	rd.defs = root.CreateElement("defs")
	rd.filler = &filler{pather: pather{rd: rd}}
	rd.stroker = &stroker{pather: pather{rd: rd}}
	return rd
}

// Document returns the SVG tree built so far.
func (rd *Renderer) Document() *etree.Document { return rd.doc }

// Write renders the figure as an SVG document.
func Write(w io.Writer, fig *plot.Figure) error {
	rd := NewRenderer(fig.Width, fig.Height)
	if title := fig.Title; title != "" {
		rd.root.CreateElement("title").SetText(title)
	}
	fig.Draw(rd)
	rd.doc.Indent(2)
	if _, err := rd.doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}

func formatF(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// hexColor returns the #rrggbb form and the alpha component of c
func hexColor(c color.Color) (string, float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B), float64(nc.A) / 255
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

// SetClip starts a new group clipped to rect, or
// goes back to the root element for an empty rect.
func (rd *Renderer) SetClip(rect image.Rectangle) {
	if rect.Empty() {
		rd.parent = rd.root
		return
	}
	rd.clipCount++
	id := fmt.Sprintf("clip%d", rd.clipCount)
	clip := rd.defs.CreateElement("clipPath")
	clip.CreateAttr("id", id)
	r := clip.CreateElement("rect")
	r.CreateAttr("x", strconv.Itoa(rect.Min.X))
	r.CreateAttr("y", strconv.Itoa(rect.Min.Y))
	r.CreateAttr("width", strconv.Itoa(rect.Dx()))
	r.CreateAttr("height", strconv.Itoa(rect.Dy()))

	g := rd.root.CreateElement("g")
	g.CreateAttr("clip-path", "url(#"+id+")")
	rd.parent = g
}

func (rd *Renderer) DrawText(t plot.Text) {
	el := rd.parent.CreateElement("text")
	el.CreateAttr("x", formatF(float64(t.Dot.X)/64))
	el.CreateAttr("y", formatF(float64(t.Dot.Y)/64))
	el.CreateAttr("font-family", "monospace")
	el.CreateAttr("font-size", strconv.FormatFloat(fontSize, 'f', 2, 64))
	el.CreateAttr("xml:space", "preserve")
	hex, a := hexColor(t.Color)
	el.CreateAttr("fill", hex)
	if a < 1 {
		el.CreateAttr("fill-opacity", formatF(a))
	}
	el.SetText(t.Content)
}

func (p *pather) Clear() { p.path.Clear() }

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) { p.path.CubeBezier(b, c, d) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

func (p *pather) SetColor(c color.Color, opacity float64) {
	p.color, p.alpha = c, opacity
}

// newPath adds a path element with the accumulated commands
func (p *pather) newPath() *etree.Element {
	el := p.rd.parent.CreateElement("path")
	el.CreateAttr("d", p.path.ToSVGPath())
	return el
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *filler) Draw() {
	if len(f.path) == 0 {
		return
	}
	el := f.newPath()
	hex, a := hexColor(f.color)
	el.CreateAttr("fill", hex)
	if op := a * f.alpha; op < 1 {
		el.CreateAttr("fill-opacity", formatF(op))
	}
	if !f.useNonZeroWinding {
		el.CreateAttr("fill-rule", "evenodd")
	}
	el.CreateAttr("stroke", "none")
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
	s.options = options
}

func (s *stroker) Draw() {
	if len(s.path) == 0 {
		return
	}
	el := s.newPath()
	el.CreateAttr("fill", "none")
	hex, a := hexColor(s.color)
	el.CreateAttr("stroke", hex)
	if op := a * s.alpha; op < 1 {
		el.CreateAttr("stroke-opacity", formatF(op))
	}
	el.CreateAttr("stroke-width", formatF(float64(s.options.LineWidth)/64))
	el.CreateAttr("stroke-linejoin", joinToStyle[s.options.LineJoin])
	el.CreateAttr("stroke-linecap", capToStyle[s.options.LineCap])
	if s.options.LineJoin == plot.Miter {
		el.CreateAttr("stroke-miterlimit", formatF(float64(s.options.MiterLimit)/64))
	}
	if len(s.options.Dash) != 0 {
		chunks := make([]string, len(s.options.Dash))
		for i, d := range s.options.Dash {
			chunks[i] = formatF(d)
		}
		el.CreateAttr("stroke-dasharray", strings.Join(chunks, ","))
	}
}
