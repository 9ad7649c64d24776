// Package treemap lays out weighted items as nested rectangles whose
// areas are proportional to their values.
//
// Two strategies are registered by default. The quadtree layout splits
// items into four greedily balanced quadrants and recurses; it favors
// stable, blocky output. The squarified layout builds rows along the
// shorter side of the remaining space, keeping aspect ratios close to
// square. Both guarantee that the leaf areas sum to the bounds' area
// and that the same input always produces the same output.
//
// # Usage
//
//	node, err := treemap.Build(aggregates, model.NewRect(0, 0, 1200, 800), treemap.DefaultStrategy)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, leaf := range node.Leaves() {
//	    fmt.Println(leaf.Label, leaf.Rect)
//	}
//
// Additional strategies can be added with [Register]; [List] names the
// available ones.
package treemap
