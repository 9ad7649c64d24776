package model

import "testing"

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		period Period
		want   string
	}{
		{Period{Year: 2025, Month: 6}, "2025-06"},
		{Period{Year: 2025, Month: 12}, "2025-12"},
		{Period{Year: 999, Month: 1}, "0999-01"},
	}

	for _, tt := range tests {
		if got := tt.period.Label(); got != tt.want {
			t.Errorf("Label(%+v): expected %q, got %q", tt.period, tt.want, got)
		}
	}
}

func TestSpanLabel(t *testing.T) {
	tests := []struct {
		name    string
		periods []Period
		want    string
	}{
		{"empty", nil, "unknown"},
		{"single month", []Period{{2025, 6}}, "2025-06"},
		{"same year span", []Period{{2025, 6}, {2025, 7}}, "2025-06-07"},
		{"cross year span", []Period{{2025, 12}, {2026, 1}}, "2025-12-2026-01"},
		{"three months", []Period{{2025, 6}, {2025, 7}, {2025, 8}}, "2025-06-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpanLabel(tt.periods); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPageRangeLabel(t *testing.T) {
	rng := PageRange{Start: 7, End: 21, Periods: []Period{{2025, 6}, {2025, 7}}}
	if got := rng.Label(); got != "2025-06-07" {
		t.Errorf("Expected 2025-06-07, got %q", got)
	}
	if got := rng.PageCount(); got != 15 {
		t.Errorf("Expected 15 pages, got %d", got)
	}
	if !rng.Contains(7) || !rng.Contains(21) {
		t.Error("Expected range to contain its bounds")
	}
	if rng.Contains(6) || rng.Contains(22) {
		t.Error("Expected range to exclude pages outside its bounds")
	}
}

func TestSortPeriods(t *testing.T) {
	in := []Period{{2026, 1}, {2025, 12}, {2025, 6}, {2025, 12}}
	got := SortPeriods(in)

	want := []Period{{2025, 6}, {2025, 12}, {2026, 1}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d periods, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// Input must not be reordered.
	if in[0] != (Period{2026, 1}) {
		t.Error("Expected input slice to be untouched")
	}
}

func TestPeriodBefore(t *testing.T) {
	a := Period{2025, 12}
	b := Period{2026, 1}
	if !a.Before(b) {
		t.Error("Expected 2025-12 before 2026-01")
	}
	if b.Before(a) {
		t.Error("Expected 2026-01 not before 2025-12")
	}
	if a.Before(a) {
		t.Error("Expected a period not to be before itself")
	}
}
