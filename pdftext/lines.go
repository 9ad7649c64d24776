package pdftext

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/mmcdougall/ECCheckParser/model"
)

const (
	// yTolerance is the vertical slack, in points, within which two
	// text fragments belong to the same visual line.
	yTolerance = 2.0

	// mergeGap is the horizontal gap, in points, under which adjacent
	// fragments on a line are glued into one word. Some PDFs emit text
	// a few characters at a time; gluing reassembles the words.
	mergeGap = 3.0

	// wideGap is the horizontal gap, in points, at which adjacent words
	// are joined with a double space instead of a single one. Column
	// gaps in register reports run far past this.
	wideGap = 12.0
)

type lineAccum struct {
	y     float64
	words []model.Word
}

// AssembleLines groups raw positioned text into visual lines. Fragments
// within yTolerance of each other share a line; lines are ordered top to
// bottom and words within a line left to right. Fragment text is
// normalized to NFKC before assembly.
func AssembleLines(texts []pdf.Text) []model.Line {
	var rows []lineAccum
	for _, t := range texts {
		s := strings.TrimSpace(norm.NFKC.String(t.S))
		if s == "" {
			continue
		}
		w := model.Word{Text: s, X: t.X, Y: t.Y, W: t.W}
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < yTolerance {
				rows[i].words = append(rows[i].words, w)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, lineAccum{y: t.Y, words: []model.Word{w}})
		}
	}

	// PDF y coordinates grow upward, so top of page first means
	// descending y.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]model.Line, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row.words, func(i, j int) bool { return row.words[i].X < row.words[j].X })
		words := mergeFragments(row.words)
		lines = append(lines, model.Line{
			Text:  joinWords(words),
			Words: words,
		})
	}
	return lines
}

// mergeFragments glues fragments separated by less than mergeGap into
// single words. Input must already be sorted by X.
func mergeFragments(frags []model.Word) []model.Word {
	if len(frags) == 0 {
		return frags
	}
	words := make([]model.Word, 0, len(frags))
	cur := frags[0]
	for _, f := range frags[1:] {
		if f.X-(cur.X+cur.W) < mergeGap {
			cur.Text += f.Text
			cur.W = (f.X + f.W) - cur.X
			continue
		}
		words = append(words, cur)
		cur = f
	}
	return append(words, cur)
}

// joinWords renders a line's words as text, preserving wide column gaps
// as double spaces so downstream parsing can still see them.
func joinWords(words []model.Word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			prev := words[i-1]
			if w.X-(prev.X+prev.W) >= wideGap {
				b.WriteString("  ")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(w.Text)
	}
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
