package plot

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the font every backend mimics: 7 pixels per glyph,
// 13 pixels per line.
var Face = basicfont.Face7x13

// TextMetrics holds the extent of a single line of text,
// in figure units.
type TextMetrics struct {
	Width, Ascent, Descent float64
}

// Height returns Ascent + Descent.
func (m TextMetrics) Height() float64 { return m.Ascent + m.Descent }

// MeasureText returns the extent of `s` drawn with Face.
func MeasureText(s string) TextMetrics {
	met := Face.Metrics()
	return TextMetrics{
		Width:   float64(font.MeasureString(Face, s)) / 64,
		Ascent:  float64(met.Ascent) / 64,
		Descent: float64(met.Descent) / 64,
	}
}
