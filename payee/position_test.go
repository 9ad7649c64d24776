package payee

import (
	"math"
	"testing"

	"github.com/mmcdougall/ECCheckParser/model"
)

func word(text string, x float64) model.Word {
	return model.Word{Text: text, X: x, W: float64(len(text)) * 5}
}

// metaWords builds the first-line prefix every register row carries
// before the payee column.
func metaWords() []model.Word {
	return []model.Word{
		word("84561", 36),
		word("06/06/2025", 80),
		word("Open", 150),
		word("Accounts", 190),
		word("Payable", 230),
	}
}

func TestPositionalSplit(t *testing.T) {
	line1 := append(metaWords(),
		word("ACME", 300),
		word("SUPPLY", 330),
		word("CO", 365),
		word("OFFICE", 450),
		word("CHAIRS", 485),
		word("$1,897.22", 560),
	)

	res := Positional{}.Split("", Context{Words: [][]model.Word{line1}})

	if !res.Confident {
		t.Fatal("Expected confident positional split")
	}
	if res.Method != MethodPositional {
		t.Errorf("Expected method %q, got %q", MethodPositional, res.Method)
	}
	if res.Payee != "ACME SUPPLY CO" {
		t.Errorf("Expected payee 'ACME SUPPLY CO', got %q", res.Payee)
	}
	if res.Description != "OFFICE CHAIRS" {
		t.Errorf("Expected description 'OFFICE CHAIRS', got %q", res.Description)
	}
}

func TestPositionalSplitIncludesContinuationLines(t *testing.T) {
	line1 := append(metaWords(),
		word("ACME", 300),
		word("SUPPLY", 330),
		word("CO", 365),
		word("OFFICE", 450),
		word("CHAIRS", 485),
	)
	line2 := []model.Word{
		word("QTY", 450),
		word("4", 475),
		word("$1,897.22", 560),
	}

	res := Positional{}.Split("", Context{Words: [][]model.Word{line1, line2}})

	if res.Payee != "ACME SUPPLY CO" {
		t.Errorf("Expected payee 'ACME SUPPLY CO', got %q", res.Payee)
	}
	if res.Description != "OFFICE CHAIRS QTY 4" {
		t.Errorf("Expected description 'OFFICE CHAIRS QTY 4', got %q", res.Description)
	}
}

func TestPositionalSqueezesLetterRuns(t *testing.T) {
	line1 := append(metaWords(),
		word("P", 300),
		word("E", 305),
		word("R", 310),
		word("S", 315),
		word("RETIREMENT", 400),
		word("$12,407.88", 560),
	)

	res := Positional{}.Split("", Context{Words: [][]model.Word{line1}})

	if res.Payee != "PERS" {
		t.Errorf("Expected letters squeezed into 'PERS', got %q", res.Payee)
	}
	if res.Description != "RETIREMENT" {
		t.Errorf("Expected description 'RETIREMENT', got %q", res.Description)
	}
}

func TestPositionalDefersToModalBoundary(t *testing.T) {
	line1 := append(metaWords(),
		word("ACME", 300),
		word("SUPPLY", 330),
		word("CO", 365),
		word("OFFICE", 450),
		word("CHAIRS", 485),
	)
	// The row's own threshold sits near 407; a modal boundary at 350
	// is further away than the slack allows, so the row must defer.
	res := Positional{}.Split("", Context{
		Words:     [][]model.Word{line1},
		BoundaryX: 350,
	})

	if res.Payee != "ACME SUPPLY" {
		t.Errorf("Expected modal boundary to move CO out of payee, got %q", res.Payee)
	}
	if res.Description != "CO OFFICE CHAIRS" {
		t.Errorf("Expected description 'CO OFFICE CHAIRS', got %q", res.Description)
	}
}

func TestPositionalFallsBackWithoutPayableMarker(t *testing.T) {
	line1 := []model.Word{
		word("ACME", 300),
		word("OFFICE", 450),
	}

	res := Positional{}.Split("ACME OFFICE", Context{Words: [][]model.Word{line1}})

	if res.Confident {
		t.Fatal("Expected fallback when the row metadata marker is missing")
	}
	if res.Payee != "ACME OFFICE" {
		t.Errorf("Expected combined block kept as payee, got %q", res.Payee)
	}
}

func TestPositionalFallsBackWithSingleWord(t *testing.T) {
	line1 := append(metaWords(), word("ACME", 300))

	res := Positional{}.Split("ACME", Context{Words: [][]model.Word{line1}})

	if res.Confident {
		t.Fatal("Expected fallback with one x position")
	}
}

func TestRowThreshold(t *testing.T) {
	line1 := append(metaWords(),
		word("ACME", 300),
		word("SUPPLY", 330),
		word("CO", 365),
		word("OFFICE", 450),
		word("CHAIRS", 485),
	)

	threshold, ok := RowThreshold([][]model.Word{line1})
	if !ok {
		t.Fatal("Expected a threshold")
	}
	if math.Abs(threshold-407.5) > 1e-9 {
		t.Errorf("Expected threshold 407.5, got %v", threshold)
	}
}

func TestRowThresholdNoWords(t *testing.T) {
	if _, ok := RowThreshold(nil); ok {
		t.Error("Expected no threshold without words")
	}
}
