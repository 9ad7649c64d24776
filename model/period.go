package model

import "fmt"

// Period identifies one reporting month of a check register section.
// The zero value means "unknown period".
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Label returns the period in YYYY-MM form, e.g. "2025-06".
func (p Period) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Before reports whether p sorts before other chronologically.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// PageRange bounds one contiguous check register section within a
// packet. Start and End are 1-indexed and inclusive. Periods lists
// every reporting month the section covers, in ascending order.
type PageRange struct {
	Start   int      `json:"start"`
	End     int      `json:"end"`
	Periods []Period `json:"periods"`
}

// PageCount returns the number of pages in the range.
func (r PageRange) PageCount() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether the 1-indexed page falls inside the range.
func (r PageRange) Contains(page int) bool {
	return page >= r.Start && page <= r.End
}

// Label returns the period label for the whole range: "2025-06" for a
// single month, "2025-06-07" for a same-year span, "2025-12-2026-01"
// across a year boundary, or "unknown" when no period was identified.
func (r PageRange) Label() string {
	return SpanLabel(r.Periods)
}

// SpanLabel builds the label covering the first and last of the given
// periods. The slice must be sorted ascending.
func SpanLabel(periods []Period) string {
	if len(periods) == 0 {
		return "unknown"
	}
	first := periods[0]
	last := periods[len(periods)-1]
	switch {
	case first == last:
		return first.Label()
	case first.Year == last.Year:
		return fmt.Sprintf("%s-%02d", first.Label(), last.Month)
	default:
		return fmt.Sprintf("%s-%s", first.Label(), last.Label())
	}
}

// SortPeriods returns a copy of periods sorted ascending with
// duplicates removed.
func SortPeriods(periods []Period) []Period {
	out := make([]Period, 0, len(periods))
	seen := make(map[Period]bool, len(periods))
	for _, p := range periods {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Before(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
