package treemap

import "github.com/mmcdougall/ECCheckParser/model"

func init() {
	Register(Quadtree{})
}

// Quadtree lays items out by recursive four-way splitting. Items are
// divided into two greedily balanced halves for the x split, each half
// again for its y split, and the quadrant edges land at the weight
// fractions, so every leaf's area matches its share of the total.
type Quadtree struct{}

// Name implements Layout.
func (Quadtree) Name() string { return "quadtree" }

// Layout implements Layout.
func (Quadtree) Layout(items []Item, bounds model.Rect) (*Node, error) {
	if err := validate(items); err != nil {
		return nil, err
	}
	root := &Node{Value: sumItems(items), Rect: bounds}
	quadSplit(items, bounds, root)
	return root, nil
}

func quadSplit(items []Item, r model.Rect, root *Node) {
	if len(items) == 0 {
		return
	}
	if len(items) == 1 {
		root.Children = append(root.Children, &Node{Label: items[0].Label, Value: items[0].Value, Rect: r})
		return
	}

	left, right := greedySplit(items)
	nw, sw := greedySplit(left)
	ne, se := greedySplit(right)

	total := sumItems(items)
	sumLeft := sumItems(left)
	sumRight := sumItems(right)

	topFracLeft, topFracRight := 0.5, 0.5
	if sumLeft > 0 {
		topFracLeft = sumItems(nw) / sumLeft
	}
	if sumRight > 0 {
		topFracRight = sumItems(ne) / sumRight
	}

	leftRect, rightRect := r.SplitX(r.Width * sumLeft / total)
	swRect, nwRect := leftRect.SplitY(leftRect.Height * (1 - topFracLeft))
	seRect, neRect := rightRect.SplitY(rightRect.Height * (1 - topFracRight))

	quadSplit(nw, nwRect, root)
	quadSplit(sw, swRect, root)
	quadSplit(ne, neRect, root)
	quadSplit(se, seRect, root)
}

// greedySplit deals items, heaviest first, onto whichever side is
// lighter. Left gets the first item and wins ties.
func greedySplit(items []Item) (left, right []Item) {
	var sumLeft, sumRight float64
	for _, it := range sortedByValue(items) {
		if sumLeft <= sumRight {
			left = append(left, it)
			sumLeft += it.Value
		} else {
			right = append(right, it)
			sumRight += it.Value
		}
	}
	return left, right
}
