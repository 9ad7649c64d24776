package reconcile

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mmcdougall/ECCheckParser/model"
)

// Aggregates rolls non-voided records up by payee. Payees match
// case-insensitively with whitespace runs collapsed, so "ACME Supply"
// and "acme  supply" share a bucket; the first spelling seen is the one
// reported. Results are rebuilt from scratch on every call and come
// back sorted by descending total, ties broken by name.
func Aggregates(records []model.CheckRecord) []model.PayeeAggregate {
	fold := cases.Fold()
	var (
		out   []model.PayeeAggregate
		index = make(map[string]int)
	)
	for _, rec := range records {
		if rec.Voided {
			continue
		}
		display := strings.Join(strings.Fields(rec.Payee), " ")
		key := fold.String(display)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, model.PayeeAggregate{Payee: display})
		}
		out[i].Total = out[i].Total.Add(rec.Amount)
		out[i].Count++
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Payee < out[j].Payee
	})
	return out
}
