package payee

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/mmcdougall/ECCheckParser/model"
)

var amountPat = regexp.MustCompile(`^\$-?\d{1,3}(?:,\d{3})*(?:\.\d{2})?$`)

// squeezeGap is the x-origin spacing, in points, under which adjacent
// single letters are rejoined into one word.
const squeezeGap = 6.0

// RowThreshold computes the x boundary between a row's payee and
// description columns by two-way clustering of its word origins. ok is
// false when the row's words do not resemble a register row. The row
// parser pools these per-row thresholds into the table's modal
// boundary.
func RowThreshold(words [][]model.Word) (float64, bool) {
	tokens := rowTokens(words)
	if len(tokens) == 0 {
		return 0, false
	}
	return clusterThreshold(tokens)
}

// positionalSplit clusters the row's word origins into two columns.
// When a modal boundary is known and the row's own threshold strays
// more than slack from it, the row defers to the modal boundary.
func positionalSplit(ctx Context, slack float64) (Result, bool) {
	tokens := rowTokens(ctx.Words)
	if len(tokens) == 0 {
		return Result{}, false
	}
	threshold, ok := clusterThreshold(tokens)
	if !ok {
		return Result{}, false
	}
	if ctx.BoundaryX > 0 && math.Abs(threshold-ctx.BoundaryX) > slack {
		threshold = ctx.BoundaryX
	}

	var payeeParts, descParts []string
	for _, t := range tokens {
		if t.X <= threshold {
			payeeParts = append(payeeParts, t.Text)
		} else {
			descParts = append(descParts, t.Text)
		}
	}
	payee := strings.TrimSpace(strings.TrimRight(strings.Join(payeeParts, " "), ","))
	desc := strings.TrimSpace(strings.Join(descParts, " "))
	if payee == "" && desc == "" {
		return Result{}, false
	}
	return Result{Payee: payee, Description: desc, Confident: true, Method: MethodPositional}, true
}

// rowTokens extracts the payee and description words from a row's
// lines: everything after the "Payable" marker on the first line, all
// of every later line, minus a trailing amount token. Single-letter
// runs are rejoined so letter-spaced payees do not fake a column gap.
func rowTokens(words [][]model.Word) []model.Word {
	if len(words) == 0 {
		return nil
	}

	var tokens []model.Word
	foundPayable := false
	for _, w := range words[0] {
		if !foundPayable {
			// Suffix match survives extraction glue such as
			// "AccountsPayable" arriving as one word.
			if strings.HasSuffix(strings.ToUpper(w.Text), "PAYABLE") {
				foundPayable = true
			}
			continue
		}
		tokens = append(tokens, w)
	}
	if !foundPayable {
		return nil
	}
	for _, lw := range words[1:] {
		tokens = append(tokens, lw...)
	}
	if len(tokens) == 0 {
		return nil
	}

	if amountPat.MatchString(tokens[len(tokens)-1].Text) {
		tokens = tokens[:len(tokens)-1]
	}
	return squeezeLetters(tokens)
}

// squeezeLetters merges runs of adjacent single letters, so "P E R S"
// becomes one word again.
func squeezeLetters(tokens []model.Word) []model.Word {
	if len(tokens) == 0 {
		return tokens
	}
	squeezed := make([]model.Word, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if len(t.Text) == 1 && isAlpha(t.Text) {
			var run strings.Builder
			run.WriteString(t.Text)
			count := 1
			xLast := t.X
			end := t.X + t.W
			j := i + 1
			for j < len(tokens) &&
				len(tokens[j].Text) == 1 &&
				isAlpha(tokens[j].Text) &&
				tokens[j].X-xLast <= squeezeGap {
				run.WriteString(tokens[j].Text)
				count++
				xLast = tokens[j].X
				end = tokens[j].X + tokens[j].W
				j++
			}
			if count > 1 {
				squeezed = append(squeezed, model.Word{Text: run.String(), X: t.X, Y: t.Y, W: end - t.X})
				i = j
				continue
			}
		}
		squeezed = append(squeezed, t)
		i++
	}
	return squeezed
}

// clusterThreshold finds the split of the sorted x origins that
// minimizes within-cluster variance and returns the midpoint between
// the two clusters.
func clusterThreshold(tokens []model.Word) (float64, bool) {
	xs := make([]float64, 0, len(tokens))
	for _, t := range tokens {
		xs = append(xs, t.X)
	}
	sort.Float64s(xs)
	if len(xs) < 2 {
		return 0, false
	}

	bestCost := math.Inf(1)
	threshold, found := 0.0, false
	for i := 1; i < len(xs); i++ {
		cost := sumSquares(xs[:i]) + sumSquares(xs[i:])
		if cost < bestCost {
			bestCost = cost
			threshold = (xs[i-1] + xs[i]) / 2
			found = true
		}
	}
	return threshold, found
}

func sumSquares(xs []float64) float64 {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var s float64
	for _, x := range xs {
		d := x - mean
		s += d * d
	}
	return s
}
