package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mmcdougall/ECCheckParser/treemap"
)

// WriteTreemapPNG draws the treemap onto a width x height canvas:
// filled leaf rectangles on the viridis ramp, one-pixel white borders,
// labels where they fit.
func WriteTreemapPNG(w io.Writer, node *treemap.Node, width, height int) error {
	if node == nil {
		return errors.New("nil treemap")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	leaves := node.Leaves()
	scale := valueScale(leaves)
	sx := float64(width) / node.Rect.Width
	sy := float64(height) / node.Rect.Height

	face := basicfont.Face7x13
	for _, leaf := range leaves {
		// Rounding the edges, not the sizes, keeps adjacent tiles
		// seamless.
		x0 := int(math.Round((leaf.Rect.X - node.Rect.X) * sx))
		x1 := int(math.Round((leaf.Rect.Right() - node.Rect.X) * sx))
		y0 := int(math.Round((node.Rect.Top() - leaf.Rect.Top()) * sy))
		y1 := int(math.Round((node.Rect.Top() - leaf.Rect.Bottom()) * sy))
		tile := image.Rect(x0, y0, x1, y1)

		fill := viridis(scale(leaf.Value))
		draw.Draw(img, tile, image.NewUniform(color.White), image.Point{}, draw.Src)
		draw.Draw(img, tile.Inset(1), image.NewUniform(fill), image.Point{}, draw.Src)

		if labelFits(face, leaf.Label, tile) {
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.White),
				Face: face,
				Dot:  fixed.P(tile.Min.X+4, tile.Min.Y+face.Ascent+3),
			}
			d.DrawString(leaf.Label)
		}
	}
	return png.Encode(w, img)
}

// WriteTreemapPNGFile writes the PNG treemap to path.
func WriteTreemapPNGFile(path string, node *treemap.Node, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()
	return WriteTreemapPNG(f, node, width, height)
}

func labelFits(face *basicfont.Face, label string, tile image.Rectangle) bool {
	if label == "" {
		return false
	}
	return font.MeasureString(face, label).Ceil()+8 <= tile.Dx() &&
		face.Ascent+face.Descent+6 <= tile.Dy()
}
