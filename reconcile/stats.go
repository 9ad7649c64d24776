package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/mmcdougall/ECCheckParser/model"
)

// Totals sums every record, voided included.
func Totals(records []model.CheckRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, rec := range records {
		sum = sum.Add(rec.Amount)
	}
	return sum
}

// NonVoidTotal sums the records still worth money.
func NonVoidTotal(records []model.CheckRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, rec := range records {
		if !rec.Voided {
			sum = sum.Add(rec.Amount)
		}
	}
	return sum
}

// CountByKind counts records per payment kind, voided included.
func CountByKind(records []model.CheckRecord) map[model.PaymentKind]int {
	out := make(map[model.PaymentKind]int)
	for _, rec := range records {
		out[rec.Kind]++
	}
	return out
}

// MonthRollup holds one period's sums with voided rows excluded.
type MonthRollup struct {
	Checks decimal.Decimal
	EFTs   decimal.Decimal
	Grand  decimal.Decimal
}

// MonthRollups sums each period's checks, EFTs, and combined spend.
// A voided row still claims its period but adds nothing to the sums.
func MonthRollups(records []model.CheckRecord) map[model.Period]MonthRollup {
	out := make(map[model.Period]MonthRollup)
	for _, rec := range records {
		r := out[rec.Period]
		if !rec.Voided {
			switch rec.Kind {
			case model.KindCheck:
				r.Checks = r.Checks.Add(rec.Amount)
			case model.KindEFT:
				r.EFTs = r.EFTs.Add(rec.Amount)
			}
			r.Grand = r.Grand.Add(rec.Amount)
		}
		out[rec.Period] = r
	}
	return out
}
