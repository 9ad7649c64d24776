package payee

import "testing"

func TestLexicalSplit(t *testing.T) {
	tests := []struct {
		name  string
		block string
		payee string
		desc  string
	}{
		{
			name:  "suffix and stopword agree",
			block: "ACME SUPPLY CO OFFICE CHAIRS QTY 4",
			payee: "ACME SUPPLY CO",
			desc:  "OFFICE CHAIRS QTY 4",
		},
		{
			name:  "city of",
			block: "CITY OF RICHMOND Fire services",
			payee: "CITY OF RICHMOND",
			desc:  "Fire services",
		},
		{
			name:  "known prefix beats month",
			block: "KAISER FOUNDATION HEALTH PLAN JULY PREMIUMS",
			payee: "KAISER FOUNDATION HEALTH PLAN",
			desc:  "JULY PREMIUMS",
		},
		{
			name:  "title case name pair uppercased",
			block: "Rodriguez, Maria April rent reimbursement",
			payee: "RODRIGUEZ MARIA",
			desc:  "April rent reimbursement",
		},
		{
			name:  "all caps last first",
			block: "GARCIA, LUIS TRAINING PER DIEM",
			payee: "GARCIA, LUIS",
			desc:  "TRAINING PER DIEM",
		},
		{
			name:  "missing space after comma restored",
			block: "OLSEN,MARK PARKS DEPOSIT REFUND",
			payee: "OLSEN, MARK",
			desc:  "PARKS DEPOSIT REFUND",
		},
		{
			name:  "tie goes to earliest boundary",
			block: "BLUE OAK ELECTRIC REPAIR STREETLIGHTS 2ND ST",
			payee: "BLUE OAK ELECTRIC",
			desc:  "REPAIR STREETLIGHTS 2ND ST",
		},
		{
			name:  "letter spaced payee reunited",
			block: "P E R S RETIREMENT CONTRIBUTIONS JUNE",
			payee: "PERS",
			desc:  "RETIREMENT CONTRIBUTIONS JUNE",
		},
		{
			name:  "repair pass rescues leaked stopword",
			block: "SMITH JOHN REIMBURSE OFFICE SUPPLY CO PURCHASE",
			payee: "SMITH JOHN",
			desc:  "REIMBURSE OFFICE SUPPLY CO PURCHASE",
		},
		{
			name:  "trailing year folds into payee",
			block: "MUNICIPAL POOLING AUTHORITY 2025",
			payee: "MUNICIPAL POOLING AUTHORITY 2025",
			desc:  "",
		},
		{
			name:  "date starts description",
			block: "MARTIN, SUSAN 06/12/2025 REFUND",
			payee: "MARTIN, SUSAN",
			desc:  "06/12/2025 REFUND",
		},
		{
			name:  "single token is all payee",
			block: "PERS",
			payee: "PERS",
			desc:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Lexical{}.Split(tt.block, Context{})
			if !res.Confident {
				t.Fatalf("Expected confident split for %q, got fallback", tt.block)
			}
			if res.Payee != tt.payee {
				t.Errorf("Expected payee %q, got %q", tt.payee, res.Payee)
			}
			if res.Description != tt.desc {
				t.Errorf("Expected description %q, got %q", tt.desc, res.Description)
			}
			if res.Method != MethodLexical {
				t.Errorf("Expected method %q, got %q", MethodLexical, res.Method)
			}
		})
	}
}

func TestLexicalLowConfidenceFallback(t *testing.T) {
	// A bare two-token name gives the voters nothing to work with; the
	// whole block must survive as the payee.
	res := Lexical{}.Split("JOHN SMITH", Context{})
	if res.Confident {
		t.Fatal("Expected low-confidence result")
	}
	if res.Payee != "JOHN SMITH" || res.Description != "" {
		t.Errorf("Expected block kept as payee, got %q / %q", res.Payee, res.Description)
	}
	if res.Method != MethodFallback {
		t.Errorf("Expected method %q, got %q", MethodFallback, res.Method)
	}
}

func TestLexicalEmptyBlock(t *testing.T) {
	res := Lexical{}.Split("   ", Context{})
	if res.Confident {
		t.Fatal("Expected low-confidence result for blank block")
	}
	if res.Payee != "" || res.Description != "" {
		t.Errorf("Expected empty result, got %q / %q", res.Payee, res.Description)
	}
}

func TestLexicalDeterminism(t *testing.T) {
	const block = "ACME SUPPLY CO OFFICE CHAIRS QTY 4"
	first := Lexical{}.Split(block, Context{})
	for i := 0; i < 50; i++ {
		if got := (Lexical{}).Split(block, Context{}); got != first {
			t.Fatalf("Split of %q changed between calls: %+v vs %+v", block, first, got)
		}
	}
}
