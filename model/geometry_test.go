package model

import (
	"math"
	"testing"
)

func TestRectBasics(t *testing.T) {
	r := NewRect(1, 2, 4, 3)

	if r.Left() != 1 || r.Right() != 5 {
		t.Errorf("Expected left 1 right 5, got %v %v", r.Left(), r.Right())
	}
	if r.Bottom() != 2 || r.Top() != 5 {
		t.Errorf("Expected bottom 2 top 5, got %v %v", r.Bottom(), r.Top())
	}
	if r.Area() != 12 {
		t.Errorf("Expected area 12, got %v", r.Area())
	}
	if c := r.Center(); c.X != 3 || c.Y != 3.5 {
		t.Errorf("Expected center (3, 3.5), got (%v, %v)", c.X, c.Y)
	}
	if r.ShorterSide() != 3 {
		t.Errorf("Expected shorter side 3, got %v", r.ShorterSide())
	}
}

func TestRectAspectRatio(t *testing.T) {
	tests := []struct {
		rect Rect
		want float64
	}{
		{NewRect(0, 0, 2, 1), 2},
		{NewRect(0, 0, 1, 2), 2},
		{NewRect(0, 0, 3, 3), 1},
	}
	for _, tt := range tests {
		if got := tt.rect.AspectRatio(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AspectRatio(%+v): expected %v, got %v", tt.rect, tt.want, got)
		}
	}

	if !math.IsInf(Rect{}.AspectRatio(), 1) {
		t.Error("Expected +Inf aspect ratio for empty rect")
	}
}

func TestRectSplit(t *testing.T) {
	r := NewRect(0, 0, 10, 4)

	left, right := r.SplitX(4)
	if left.Width != 4 || right.Width != 6 || right.X != 4 {
		t.Errorf("SplitX: expected widths 4/6 at x=4, got %+v %+v", left, right)
	}
	if math.Abs(left.Area()+right.Area()-r.Area()) > 1e-9 {
		t.Error("SplitX: expected areas to sum to the original")
	}

	bottom, top := r.SplitY(1)
	if bottom.Height != 1 || top.Height != 3 || top.Y != 1 {
		t.Errorf("SplitY: expected heights 1/3 at y=1, got %+v %+v", bottom, top)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 1, 1)
	if !r.Contains(Point{0.5, 0.5}) {
		t.Error("Expected rect to contain its center")
	}
	if r.Contains(Point{1.5, 0.5}) {
		t.Error("Expected rect not to contain an outside point")
	}
}

func TestRectValidity(t *testing.T) {
	if !UnitRect().IsValid() {
		t.Error("Expected unit rect to be valid")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("Expected zero rect to be empty")
	}
	if (Rect{Width: -1, Height: 2}).IsValid() {
		t.Error("Expected negative-width rect to be invalid")
	}
}
