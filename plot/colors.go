package plot

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// tableau palette, cycled through by successive lines
var paletteHex = [...]string{
	"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd",
	"8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf",
}

var palette = func() []color.Color {
	out := make([]color.Color, len(paletteHex))
	for i, h := range paletteHex {
		out[i] = drawing.ColorFromHex(h)
	}
	return out
}()

// Named colors.
var (
	Red   color.Color = drawing.ColorFromHex("ff0000")
	Blue  color.Color = drawing.ColorFromHex("0000ff")
	Black color.Color = drawing.ColorFromHex("000000")
	White color.Color = drawing.ColorFromHex("ffffff")
	Gray  color.Color = drawing.ColorFromHex("cccccc")
)

// PaletteColor returns the i-th color of the cycle.
// Negative indices count from the end.
func PaletteColor(i int) color.Color {
	n := len(palette)
	return palette[(i%n+n)%n]
}

// HexColor parses a "rrggbb" or "#rrggbb" color.
func HexColor(s string) color.Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	return drawing.ColorFromHex(s)
}
