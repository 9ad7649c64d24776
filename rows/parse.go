package rows

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/payee"
)

// RowParseError describes one chunk that could not be turned into a
// row. Errors are collected per range and reported next to the rows;
// one bad row never aborts the rest.
type RowParseError struct {
	Page   int
	Line   int
	Text   string
	Reason string
}

func (e RowParseError) Error() string {
	return fmt.Sprintf("page %d line %d: %s: %q", e.Page, e.Line, e.Reason, e.Text)
}

// ParseChunks closes collected chunks into raw rows and finished
// records. The splitter receives each row's combined block along with
// its positioned words and the table's modal column boundary. Rows and
// records come back in chunk order; chunks that fail to parse come back
// as RowParseErrors instead.
func ParseChunks(chunks []Chunk, splitter payee.Splitter) ([]model.RawRow, []model.CheckRecord, []RowParseError) {
	var (
		raws    []model.RawRow
		records []model.CheckRecord
		errs    []RowParseError
	)
	boundary := modalBoundary(chunks)

	for i := range chunks {
		c := &chunks[i]
		raw, perr := parseChunk(c)
		if perr != nil {
			errs = append(errs, *perr)
			continue
		}
		raws = append(raws, raw)

		res := splitter.Split(raw.Combined, payee.Context{Words: c.Words, BoundaryX: boundary})
		records = append(records, model.CheckRecord{
			Number:        raw.Number,
			Date:          raw.Date,
			Status:        raw.Status,
			Source:        raw.Source,
			Payee:         res.Payee,
			Description:   res.Description,
			Amount:        raw.Amount,
			Kind:          raw.Kind,
			Period:        raw.Period,
			Voided:        raw.Voided,
			LowConfidence: !res.Confident,
		})
	}
	return raws, records, errs
}

func parseChunk(c *Chunk) (model.RawRow, *RowParseError) {
	fail := func(text, reason string) (model.RawRow, *RowParseError) {
		return model.RawRow{}, &RowParseError{Page: c.Page, Line: c.Line, Text: text, Reason: reason}
	}
	if len(c.Lines) == 0 {
		return fail("", "empty chunk")
	}
	first := c.Lines[0]
	start, ok := matchRowStart(first)
	if !ok {
		return fail(first, "malformed row start")
	}

	// Chunks fresh from CollectChunks carry their metadata already;
	// chunks rebuilt from archived JSON may not.
	number, date, status, source := c.Number, c.Date, c.Status, c.Source
	if number == "" {
		number = start.number
	}
	if date == "" {
		date = start.date
	}
	if status == "" {
		status = start.status
	}
	if source == "" {
		source = start.source
	}

	parts := append([]string{start.rest}, c.Lines[1:]...)
	body := strings.TrimSpace(strings.Join(parts, " "))
	body, amountText, found := splitAmountTail(body)
	if !found {
		return fail(first, "no amount found")
	}
	amount, err := model.ParseAmount(amountText)
	if err != nil {
		return fail(first, fmt.Sprintf("bad amount %q", amountText))
	}

	kind := c.Kind
	if kind == "" {
		kind = model.KindCheck
	}

	return model.RawRow{
		Number:   number,
		Date:     date,
		Status:   status,
		Source:   source,
		Combined: body,
		Amount:   amount,
		Kind:     kind,
		Period:   c.Period,
		Page:     c.Page,
		Voided:   voidPat.MatchString(status) || voidPat.MatchString(first),
		Words:    c.Words,
	}, nil
}

// modalBoundary derives the table-wide payee/description column
// boundary: per-row positional thresholds are bucketed to the nearest
// ten points and the heaviest bucket's mean wins. Zero means no
// agreement, leaving rows to their own thresholds.
func modalBoundary(chunks []Chunk) float64 {
	type bucket struct {
		sum float64
		n   int
	}
	buckets := make(map[int]*bucket)
	for i := range chunks {
		t, ok := payee.RowThreshold(chunks[i].Words)
		if !ok {
			continue
		}
		k := int(math.Round(t / 10))
		b := buckets[k]
		if b == nil {
			b = &bucket{}
			buckets[k] = b
		}
		b.sum += t
		b.n++
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	bestKey, bestN := 0, 0
	for _, k := range keys {
		if buckets[k].n > bestN {
			bestKey, bestN = k, buckets[k].n
		}
	}
	if bestN < 2 {
		return 0
	}
	return buckets[bestKey].sum / float64(bestN)
}
