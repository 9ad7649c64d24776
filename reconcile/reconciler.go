package reconcile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmcdougall/ECCheckParser/model"
)

// ErrNoControlTotal means a period's records had no stated total line
// to reconcile against.
var ErrNoControlTotal = errors.New("no control total for period")

// DefaultTolerance is one cent, the smallest unit the reports print.
var DefaultTolerance = decimal.New(1, -2)

// Reconcile compares each period's computed sum against the total the
// report states for it and returns one result per period, oldest first.
// Voided rows stay in the computed sum because the report's own totals
// count every printed row. A period with no stated total is reported
// through the returned error and does not block the other periods.
//
// Stated-total selection per period: an explicit grand total line wins;
// failing that, the count-style Total summary line; failing that, the
// sum of the checks and EFT subtotals. When the report repeats a line,
// the last occurrence is taken.
func Reconcile(records []model.CheckRecord, totals []model.ControlTotal, tol decimal.Decimal) ([]model.ReconciliationResult, error) {
	type acc struct {
		computed decimal.Decimal
		count    int
		lowConf  int
	}
	byPeriod := make(map[model.Period]*acc)
	for _, rec := range records {
		a := byPeriod[rec.Period]
		if a == nil {
			a = &acc{}
			byPeriod[rec.Period] = a
		}
		a.computed = a.computed.Add(rec.Amount)
		a.count++
		if rec.LowConfidence {
			a.lowConf++
		}
	}

	periods := make([]model.Period, 0, len(byPeriod))
	for p := range byPeriod {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	var (
		results []model.ReconciliationResult
		errs    []error
	)
	for _, p := range periods {
		a := byPeriod[p]
		stated, ok := statedTotal(p, totals)
		if !ok {
			errs = append(errs, fmt.Errorf("period %s: %w", p.Label(), ErrNoControlTotal))
			continue
		}
		delta := a.computed.Sub(stated).Abs()
		results = append(results, model.ReconciliationResult{
			Period:        p,
			Computed:      a.computed,
			Stated:        stated,
			Delta:         delta,
			Passed:        delta.Cmp(tol) <= 0,
			RecordCount:   a.count,
			LowConfidence: a.lowConf,
		})
	}
	return results, errors.Join(errs...)
}

func statedTotal(p model.Period, totals []model.ControlTotal) (decimal.Decimal, bool) {
	var (
		grand, weak, checks, efts  decimal.Decimal
		hasGrand, hasWeak, hasKind bool
	)
	for _, ct := range totals {
		if ct.Period != p {
			continue
		}
		switch {
		case ct.Kind == model.KindCheck:
			checks = ct.Amount
			hasKind = true
		case ct.Kind == model.KindEFT:
			efts = ct.Amount
			hasKind = true
		case ct.Grand:
			grand = ct.Amount
			hasGrand = true
		default:
			weak = ct.Amount
			hasWeak = true
		}
	}
	switch {
	case hasGrand:
		return grand, true
	case hasWeak:
		return weak, true
	case hasKind:
		return checks.Add(efts), true
	}
	return decimal.Decimal{}, false
}
