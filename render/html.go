package render

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/mmcdougall/ECCheckParser/treemap"
)

const (
	htmlCanvasWidth  = 1200
	htmlCanvasHeight = 800
)

var treemapTmpl = template.Must(template.New("treemap").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 20px; background: #fafafa; }
h1 { font-size: 18px; font-weight: 600; }
.treemap { position: relative; width: {{.Width}}px; height: {{.Height}}px; background: #fff; }
.box { position: absolute; overflow: hidden; border: 1px solid #fff; box-sizing: border-box; color: #fff; font-size: 11px; }
.box span { display: block; padding: 2px 4px; text-shadow: 0 0 2px rgba(0,0,0,0.6); }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="treemap">
{{- range .Boxes}}
<div class="box" style="left:{{printf "%.2f" .Left}}px;top:{{printf "%.2f" .Top}}px;width:{{printf "%.2f" .Width}}px;height:{{printf "%.2f" .Height}}px;background:{{.Color}}" title="{{.Tooltip}}"><span>{{.Label}}</span></div>
{{- end}}
</div>
</body>
</html>
`))

type htmlBox struct {
	Left, Top, Width, Height float64
	Color                    string
	Label                    string
	Tooltip                  string
}

type htmlPage struct {
	Title  string
	Width  int
	Height int
	Boxes  []htmlBox
}

// WriteTreemapHTML writes a standalone HTML treemap: one absolutely
// positioned div per leaf, colored by value on a viridis ramp, with the
// payee, amount, and share of total in the hover tooltip.
func WriteTreemapHTML(w io.Writer, node *treemap.Node, title string) error {
	if node == nil {
		return errors.New("nil treemap")
	}
	leaves := node.Leaves()
	scale := valueScale(leaves)
	sx := float64(htmlCanvasWidth) / node.Rect.Width
	sy := float64(htmlCanvasHeight) / node.Rect.Height

	page := htmlPage{Title: title, Width: htmlCanvasWidth, Height: htmlCanvasHeight}
	for _, leaf := range leaves {
		pct := 0.0
		if node.Value > 0 {
			pct = leaf.Value / node.Value * 100
		}
		page.Boxes = append(page.Boxes, htmlBox{
			Left:   (leaf.Rect.X - node.Rect.X) * sx,
			Top:    (node.Rect.Top() - leaf.Rect.Top()) * sy,
			Width:  leaf.Rect.Width * sx,
			Height: leaf.Rect.Height * sy,
			Color:  hexColor(viridis(scale(leaf.Value))),
			Label:  leaf.Label,
			Tooltip: fmt.Sprintf("%s $%.2f (%.1f%% of total)",
				leaf.Label, leaf.Value, pct),
		})
	}
	return treemapTmpl.Execute(w, page)
}

// WriteTreemapHTMLFile writes the HTML treemap to path.
func WriteTreemapHTMLFile(path string, node *treemap.Node, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()
	return WriteTreemapHTML(f, node, title)
}
