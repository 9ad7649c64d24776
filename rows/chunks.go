package rows

import (
	"strings"

	"github.com/mmcdougall/ECCheckParser/model"
)

// Chunk is the raw material of one payment row: the metadata from its
// opening line plus every line belonging to the row, page breaks
// included. Chunks are what the archive stores, so a parse can be
// replayed without the source PDF.
type Chunk struct {
	Period model.Period      `json:"period"`
	Kind   model.PaymentKind `json:"kind"`
	Number string            `json:"number"`
	Date   string            `json:"date"`
	Status string            `json:"status"`
	Source string            `json:"source"`
	Page   int               `json:"page"`
	Line   int               `json:"line"` // 1-indexed line on the page where the row starts
	Lines  []string          `json:"lines"`
	// Words carries the positioned words of each line when the chunk
	// came from a PDF, for position-based splitting. Absent after a
	// JSON round trip.
	Words [][]model.Word `json:"-"`
}

// complete reports whether the chunk's last line carries the closing
// amount.
func (c *Chunk) complete() bool {
	if len(c.Lines) == 0 {
		return false
	}
	_, _, ok := splitAmountTail(c.Lines[len(c.Lines)-1])
	return ok
}

// CollectChunks walks the pages of one located range and groups row
// lines into chunks. Subtotal and total lines carrying amounts are
// captured as control totals for the reconciler; furniture is dropped.
// An open chunk survives page boundaries: repeated banners, block
// headers, and column headers on the next page are skipped, and the
// row's remaining lines join the same chunk.
func CollectChunks(pages []model.PageText, rng model.PageRange) ([]Chunk, []model.ControlTotal) {
	var (
		chunks []Chunk
		totals []model.ControlTotal
		open   *Chunk
		period model.Period
		kind   = model.KindCheck
	)

	closeOpen := func() {
		if open != nil {
			chunks = append(chunks, *open)
			open = nil
		}
	}

	for _, page := range pages {
		if !rng.Contains(page.Number) {
			continue
		}
		for i, line := range page.Lines {
			s := strings.TrimSpace(line.Text)
			if s == "" {
				continue
			}

			if p, ok := BlockHeader(s); ok {
				// A new payment date block. Rows default to the
				// checks subsection until a header says otherwise.
				// An open chunk keeps the period it started under.
				period = p
				kind = model.KindCheck
				continue
			}
			if k, ok := SectionHeader(s); ok {
				kind = k
				continue
			}
			if start, ok := matchRowStart(s); ok {
				closeOpen()
				open = &Chunk{
					Period: period,
					Kind:   kind,
					Number: start.number,
					Date:   start.date,
					Status: start.status,
					Source: start.source,
					Page:   page.Number,
					Line:   i + 1,
					Lines:  []string{s},
					Words:  [][]model.Word{line.Words},
				}
				if open.complete() {
					closeOpen()
				}
				continue
			}
			if tkind, grand, ok := matchTotal(s); ok {
				if body, amount, found := splitAmountTail(s); found {
					if amt, err := model.ParseAmount(amount); err == nil {
						totals = append(totals, model.ControlTotal{
							Label:  body,
							Amount: amt,
							Kind:   tkind,
							Grand:  grand,
							Period: period,
							Page:   page.Number,
						})
					}
				}
				continue
			}
			if IsFurniture(s) {
				continue
			}
			if open != nil {
				open.Lines = append(open.Lines, s)
				open.Words = append(open.Words, line.Words)
				if open.complete() {
					closeOpen()
				}
			}
		}
	}
	closeOpen()

	return chunks, totals
}
