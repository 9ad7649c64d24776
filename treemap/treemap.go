package treemap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mmcdougall/ECCheckParser/model"
)

// DefaultStrategy is the layout used when none is named.
const DefaultStrategy = "quadtree"

// ErrNoItems means there was nothing to lay out.
var ErrNoItems = errors.New("no items to lay out")

// Item is one weighted entry. Value must be positive.
type Item struct {
	Label string
	Value float64
}

// Node is one rectangle of the laid-out map. Leaves carry items;
// the root covers the full bounds.
type Node struct {
	Label    string
	Value    float64
	Rect     model.Rect
	Children []*Node
}

// Leaves returns the childless nodes under n in layout order.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	if len(n.Children) == 0 {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Layout turns items into a node tree filling bounds. Implementations
// must be deterministic: the same items and bounds always produce the
// same tree.
type Layout interface {
	Layout(items []Item, bounds model.Rect) (*Node, error)
	Name() string
}

// InvalidValueError reports an item whose value cannot be drawn.
type InvalidValueError struct {
	Label string
	Value float64
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("item %q has non-positive value %v", e.Label, e.Value)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Layout)
)

// Register makes a layout available under its own name, replacing any
// previous layout with that name.
func Register(l Layout) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[l.Name()] = l
}

// Get returns the named layout.
func Get(name string) (Layout, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := registry[name]
	return l, ok
}

// List returns the registered layout names, sorted.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build lays out payee aggregates with the named strategy. Aggregates
// with non-positive totals are dropped rather than rejected, since a
// record set of only voided rows is legitimate input. An empty
// strategy means DefaultStrategy.
func Build(aggs []model.PayeeAggregate, bounds model.Rect, strategy string) (*Node, error) {
	if strategy == "" {
		strategy = DefaultStrategy
	}
	layout, ok := Get(strategy)
	if !ok {
		return nil, fmt.Errorf("unknown treemap strategy %q (have %v)", strategy, List())
	}
	items := make([]Item, 0, len(aggs))
	for _, agg := range aggs {
		v, _ := agg.Total.Float64()
		if v <= 0 {
			continue
		}
		items = append(items, Item{Label: agg.Payee, Value: v})
	}
	return layout.Layout(items, bounds)
}

func validate(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, it := range items {
		if it.Value <= 0 {
			return InvalidValueError{Label: it.Label, Value: it.Value}
		}
	}
	return nil
}

func sumItems(items []Item) float64 {
	var s float64
	for _, it := range items {
		s += it.Value
	}
	return s
}

// sortedByValue returns a copy ordered by descending value. The sort
// is stable so equal values keep their input order.
func sortedByValue(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
