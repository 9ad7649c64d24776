package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/mmcdougall/ECCheckParser/treemap"
)

// viridisAnchors are evenly spaced stops of the viridis colormap.
var viridisAnchors = [...]color.RGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
	{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// viridis maps t in [0, 1] onto the ramp.
func viridis(t float64) color.RGBA {
	if t <= 0 {
		return viridisAnchors[0]
	}
	if t >= 1 {
		return viridisAnchors[len(viridisAnchors)-1]
	}
	scaled := t * float64(len(viridisAnchors)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	a, b := viridisAnchors[i], viridisAnchors[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + frac*(float64(y)-float64(x))))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// valueScale normalizes leaf values onto [0, 1] for the color ramp.
// When every leaf has the same value the midpoint is used.
func valueScale(leaves []*treemap.Node) func(float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, leaf := range leaves {
		lo = math.Min(lo, leaf.Value)
		hi = math.Max(hi, leaf.Value)
	}
	if hi <= lo {
		return func(float64) float64 { return 0.5 }
	}
	return func(v float64) float64 { return (v - lo) / (hi - lo) }
}
