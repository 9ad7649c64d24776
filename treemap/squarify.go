package treemap

import (
	"math"

	"github.com/mmcdougall/ECCheckParser/model"
)

func init() {
	Register(Squarified{})
}

// Squarified lays items out in rows along the shorter side of the
// remaining space, extending each row while its worst aspect ratio
// keeps improving. Leaves come out close to square.
type Squarified struct{}

// Name implements Layout.
func (Squarified) Name() string { return "squarified" }

// Layout implements Layout.
func (Squarified) Layout(items []Item, bounds model.Rect) (*Node, error) {
	if err := validate(items); err != nil {
		return nil, err
	}

	total := sumItems(items)
	root := &Node{Value: total, Rect: bounds}
	sorted := sortedByValue(items)

	// Work in area units so row math needs no further scaling.
	scale := bounds.Area() / total
	areas := make([]float64, len(sorted))
	for i, it := range sorted {
		areas[i] = it.Value * scale
	}

	remaining := bounds
	var row []int
	for i := 0; i < len(sorted); {
		side := remaining.ShorterSide()
		candidate := append(row[:len(row):len(row)], i)
		if len(row) == 0 || worstAspect(candidate, areas, side) <= worstAspect(row, areas, side) {
			row = candidate
			i++
			continue
		}
		layRow(row, sorted, areas, &remaining, root)
		row = nil
	}
	if len(row) > 0 {
		layRow(row, sorted, areas, &remaining, root)
	}
	return root, nil
}

// worstAspect returns the worst leaf aspect ratio the row would have
// if laid along a side of the given length.
func worstAspect(row []int, areas []float64, side float64) float64 {
	if len(row) == 0 {
		return math.Inf(1)
	}
	var sum float64
	amin, amax := math.Inf(1), 0.0
	for _, idx := range row {
		a := areas[idx]
		sum += a
		amin = math.Min(amin, a)
		amax = math.Max(amax, a)
	}
	ss := sum * sum
	ww := side * side
	return math.Max(ww*amax/ss, ss/(ww*amin))
}

// layRow places one finished row against the shorter side of the
// remaining rectangle and shrinks it by the row's thickness.
func layRow(row []int, items []Item, areas []float64, remaining *model.Rect, root *Node) {
	var sum float64
	for _, idx := range row {
		sum += areas[idx]
	}

	r := *remaining
	if r.Width >= r.Height {
		// Vertical strip on the left, filled top to bottom.
		var thick float64
		if r.Height > 0 {
			thick = sum / r.Height
		}
		y := r.Top()
		for _, idx := range row {
			var h float64
			if thick > 0 {
				h = areas[idx] / thick
			}
			y -= h
			root.Children = append(root.Children, &Node{
				Label: items[idx].Label,
				Value: items[idx].Value,
				Rect:  model.Rect{X: r.X, Y: y, Width: thick, Height: h},
			})
		}
		remaining.X += thick
		remaining.Width -= thick
	} else {
		// Horizontal strip along the top, filled left to right.
		var thick float64
		if r.Width > 0 {
			thick = sum / r.Width
		}
		x := r.X
		for _, idx := range row {
			var w float64
			if thick > 0 {
				w = areas[idx] / thick
			}
			root.Children = append(root.Children, &Node{
				Label: items[idx].Label,
				Value: items[idx].Value,
				Rect:  model.Rect{X: x, Y: r.Top() - thick, Width: w, Height: thick},
			})
			x += w
		}
		remaining.Height -= thick
	}
}
