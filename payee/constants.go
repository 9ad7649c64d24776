package payee

import "strings"

// Vocabulary behind the lexical heuristics, drawn from several years of
// municipal register data. Entries are matched uppercase.

// stopwords are tokens that almost always open a description.
var stopwords = map[string]struct{}{
	"MERCHANT":      {},
	"OFFICE":        {},
	"SUPPLIES":      {},
	"EXPENSE":       {},
	"FEE":           {},
	"FEES":          {},
	"PAYMENT":       {},
	"RE":            {},
	"RE:":           {},
	"TOTAL":         {},
	"REIMBURSEMENT": {},
	"REIMBURSE":     {},
	"PERFORMANCE":   {},
	"CONTRACT":      {},
	"RENTAL":        {},
	"PROGRAM":       {},
	"TRAINING":      {},
	"PER":           {},
	"DIEM":          {},
	"INVOICE":       {},
	"PROFESSIONAL":  {},
	"TUITION":       {},
}

// knownPrefixes are payees whose token count is known exactly. Order
// matters: the first match wins.
var knownPrefixes = []string{
	"ALAMEDA COUNTY FIRE DEPARTMENT",
	"BAY AREA NEWS GROUP",
	"DIEGO TRUCK REPAIR",
	"L.N. CURTIS & SONS",
	"J & O'S COMMERCIAL TIRE CENTER",
	"MUNICIPAL POOLING AUTHORITY",
	"KAISER FOUNDATION HEALTH PLAN",
	"EAST BAY REGIONAL COMMUNICATIONS SYSTEM",
	"CONTRA COSTA HEALTH SERVICES",
	"GHIRARDELLI ASSOCIATES",
	"FLOCK SAFETY",
	"PERS",
}

// suffixes end organization names.
var suffixes = map[string]struct{}{
	"LLP":         {},
	"LLC":         {},
	"INC":         {},
	"CORP":        {},
	"CORPORATION": {},
	"CO":          {},
	"COMPANY":     {},
	"LTD":         {},
	"ASSOCIATES":  {},
	"SUPPLY":      {},
	"SERVICE":     {},
	"SERVICES":    {},
	"MANAGEMENT":  {},
	"ELECTRIC":    {},
}

var months = map[string]struct{}{
	"JAN": {}, "JANUARY": {},
	"FEB": {}, "FEBRUARY": {},
	"MAR": {}, "MARCH": {},
	"APR": {}, "APRIL": {},
	"MAY": {},
	"JUN": {}, "JUNE": {},
	"JUL": {}, "JULY": {},
	"AUG": {}, "AUGUST": {},
	"SEP": {}, "SEPT": {}, "SEPTEMBER": {},
	"OCT": {}, "OCTOBER": {},
	"NOV": {}, "NOVEMBER": {},
	"DEC": {}, "DECEMBER": {},
}

// prefixSet holds the known prefixes for exact whole-payee lookups,
// such as reuniting the letters of "P E R S".
var prefixSet = make(map[string]struct{}, len(knownPrefixes))

func init() {
	for _, p := range knownPrefixes {
		prefixSet[strings.ToUpper(p)] = struct{}{}
	}
}
