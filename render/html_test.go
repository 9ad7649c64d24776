package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/treemap"
)

func sampleTreemap(t *testing.T) *treemap.Node {
	t.Helper()
	node, err := treemap.Quadtree{}.Layout([]treemap.Item{
		{Label: "A<B CO", Value: 600},
		{Label: "CITY OF RICHMOND", Value: 400},
	}, model.NewRect(0, 0, 100, 100))
	if err != nil {
		t.Fatalf("Expected layout to succeed, got %v", err)
	}
	return node
}

func TestWriteTreemapHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTreemapHTML(&buf, sampleTreemap(t), "Payees June 2025"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("Expected a standalone HTML document")
	}
	if !strings.Contains(out, "<title>Payees June 2025</title>") {
		t.Error("Expected the title rendered")
	}
	if !strings.Contains(out, "A&lt;B CO") {
		t.Error("Expected the label HTML-escaped")
	}
	if !strings.Contains(out, "$600.00 (60.0% of total)") {
		t.Error("Expected the tooltip with amount and share")
	}
	if !strings.Contains(out, "position: absolute") {
		t.Error("Expected absolutely positioned boxes")
	}
	if strings.Count(out, "class=\"box\"") != 2 {
		t.Errorf("Expected 2 boxes, got %d", strings.Count(out, "class=\"box\""))
	}
}

func TestWriteTreemapHTMLNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTreemapHTML(&buf, nil, "x"); err == nil {
		t.Error("Expected an error for a nil treemap")
	}
}

func TestViridisRamp(t *testing.T) {
	tests := []struct {
		t    float64
		want string
	}{
		{0, "#440154"},
		{0.5, "#21918c"},
		{1, "#fde725"},
		{-3, "#440154"},
		{7, "#fde725"},
	}
	for _, tt := range tests {
		if got := hexColor(viridis(tt.t)); got != tt.want {
			t.Errorf("viridis(%v): expected %s, got %s", tt.t, tt.want, got)
		}
	}
}

func TestValueScale(t *testing.T) {
	scale := valueScale([]*treemap.Node{{Value: 100}, {Value: 300}})
	if got := scale(100); got != 0 {
		t.Errorf("Expected the minimum to map to 0, got %v", got)
	}
	if got := scale(300); got != 1 {
		t.Errorf("Expected the maximum to map to 1, got %v", got)
	}
	if got := scale(200); got != 0.5 {
		t.Errorf("Expected the midpoint to map to 0.5, got %v", got)
	}

	flat := valueScale([]*treemap.Node{{Value: 42}, {Value: 42}})
	if got := flat(42); got != 0.5 {
		t.Errorf("Expected equal values to map to the middle, got %v", got)
	}
}
