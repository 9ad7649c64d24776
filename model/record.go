package model

import "github.com/shopspring/decimal"

// PaymentKind identifies which register subsection a row came from.
type PaymentKind string

const (
	// KindCheck is the "Accounts Payable - Checks" subsection.
	KindCheck PaymentKind = "check"
	// KindEFT is the "Accounts Payable - EFT's" subsection.
	KindEFT PaymentKind = "eft"
)

// RawRow is one parsed register row before payee/description splitting.
// Combined holds the unsplit payee+description block; Words (optional)
// carries its positioned source words for position-based splitting.
type RawRow struct {
	Number   string // check or EFT number, kept as text to preserve leading zeros
	Date     string // MM/DD/YYYY as printed
	Status   string // Open / Voided / Voided/Reissued / ...
	Source   string // usually "Accounts Payable"
	Combined string
	Amount   decimal.Decimal
	Kind     PaymentKind
	Period   Period
	Page     int // 1-indexed page the row started on
	Voided   bool
	Words    [][]Word // positioned words per source line, nil if unavailable
}

// CheckRecord is a finalized register row: the RawRow with its combined
// block split into payee and description. Records are immutable once
// produced; downstream stages only read them.
type CheckRecord struct {
	Number      string          `json:"number"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	Source      string          `json:"source"`
	Payee       string          `json:"payee"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        PaymentKind     `json:"kind"`
	Period      Period          `json:"period"`
	Voided      bool            `json:"voided"`
	// LowConfidence marks rows where no split heuristic was confident;
	// the full combined text was kept as the payee.
	LowConfidence bool `json:"low_confidence"`
}

// ControlTotal is a stated total captured from a subtotal or total line
// of the report. Kind is empty for totals that cover both subsections;
// of those, Grand marks explicit grand-total wording as opposed to the
// weaker status-count Total line.
type ControlTotal struct {
	Label  string
	Amount decimal.Decimal
	Kind   PaymentKind
	Grand  bool
	Period Period
	Page   int
}

// ReconciliationResult compares the computed sum of one period's
// records against the period's stated control total.
type ReconciliationResult struct {
	Period   Period
	Computed decimal.Decimal
	Stated   decimal.Decimal
	Delta    decimal.Decimal // absolute difference
	Passed   bool
	// RecordCount and LowConfidence describe the record set the
	// computed total was built from.
	RecordCount   int
	LowConfidence int
}

// PayeeAggregate is the per-payee rollup used for reporting and the
// treemap. Aggregates are always rebuilt from the full record set,
// never patched in place.
type PayeeAggregate struct {
	Payee string
	Total decimal.Decimal
	Count int
}
