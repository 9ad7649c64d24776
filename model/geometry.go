package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle. The treemap layout engine
// subdivides Rects; the origin convention (top-left vs bottom-left) is
// the caller's choice since subdivision only uses widths and heights.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from its origin and size
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// UnitRect returns the unit square with origin (0, 0)
func UnitRect() Rect {
	return Rect{Width: 1, Height: 1}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// AspectRatio returns the larger of width/height and height/width,
// so 1.0 is a perfect square. Returns +Inf for degenerate rectangles.
func (r Rect) AspectRatio() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return math.Inf(1)
	}
	return math.Max(r.Width/r.Height, r.Height/r.Width)
}

// ShorterSide returns the length of the shorter side
func (r Rect) ShorterSide() float64 {
	return math.Min(r.Width, r.Height)
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Intersects checks if two rectangles intersect
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Top() < other.Bottom() ||
		r.Bottom() > other.Top())
}

// SplitX splits the rectangle vertically at the given width offset,
// returning the left and right parts.
func (r Rect) SplitX(width float64) (Rect, Rect) {
	left := Rect{X: r.X, Y: r.Y, Width: width, Height: r.Height}
	right := Rect{X: r.X + width, Y: r.Y, Width: r.Width - width, Height: r.Height}
	return left, right
}

// SplitY splits the rectangle horizontally at the given height offset,
// returning the bottom and top parts.
func (r Rect) SplitY(height float64) (Rect, Rect) {
	bottom := Rect{X: r.X, Y: r.Y, Width: r.Width, Height: height}
	top := Rect{X: r.X, Y: r.Y + height, Width: r.Width, Height: r.Height - height}
	return bottom, top
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsValid returns true if the rectangle has positive dimensions
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}
