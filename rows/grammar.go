package rows

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mmcdougall/ECCheckParser/model"
)

// Line grammar of the register report. The locator shares these
// predicates so both stages agree on what counts as register content.
var (
	// From Payment Date: 6/1/2025 - To Payment Date: 6/30/2025
	blockHeaderPat = regexp.MustCompile(`(?i)^From Payment Date:\s*(\d{1,2})/(\d{1,2})/(\d{4})\s*-\s*To Payment Date:\s*(\d{1,2})/(\d{1,2})/(\d{4})$`)

	checksHeaderPat = regexp.MustCompile(`(?i)^Accounts Payable\s*-?\s*Checks$`)
	eftHeaderPat    = regexp.MustCompile(`(?i)^Accounts Payable\s*-?\s*EFT'?s$`)

	// 84561 06/06/2025 Open Accounts Payable ACME SUPPLY CO ... $123.45
	rowStartPat = regexp.MustCompile(`^\s*(\d{3,7})\s+(\d{2}/\d{2}/\d{4})\s+([A-Za-z /]+?)\s+(Accounts Payable)\s+(.*)$`)

	// Amount at the end of a line closes a row.
	amountTailPat = regexp.MustCompile(`\$-?\d{1,3}(?:,\d{3})*(?:\.\d{2})?$`)

	voidPat = regexp.MustCompile(`(?i)\bVOID(?:ED|ED/REISSUED)?\b`)

	// Subtotal and total lines. Checks and EFT subtotals keep their
	// kind; the rest are report-wide.
	totalChecksPat = regexp.MustCompile(`(?i)^TOTAL CHECKS\b`)
	totalEFTPat    = regexp.MustCompile(`(?i)^TOTAL EFT'?S?\b`)
	grandTotalPat  = regexp.MustCompile(`(?i)^(?:GRAND TOTAL\b|Checks\s*&\s*EFT'?s)`)
	statusTotalPat = regexp.MustCompile(`^Total\s+\d+\b`)

	// Page furniture: banners, column headers, status-count summaries.
	furniturePat = regexp.MustCompile(`^(?:All Status\b|ACCOUNTS PAYABLE\b|PAYROLL\b|City of\s+\S|Payment Register\b|Monthly Disbursement\b|Number\s+Date\s+Status\b|Open\s+\d+|Voided\b)`)
)

// BlockHeader reports whether s is a payment date block header and, if
// so, the period its To date names.
func BlockHeader(s string) (model.Period, bool) {
	m := blockHeaderPat.FindStringSubmatch(s)
	if m == nil {
		return model.Period{}, false
	}
	month, _ := strconv.Atoi(m[4])
	year, _ := strconv.Atoi(m[6])
	if month < 1 || month > 12 {
		return model.Period{}, false
	}
	return model.Period{Year: year, Month: month}, true
}

// SectionHeader reports whether s is a subsection header and which
// payment kind it introduces.
func SectionHeader(s string) (model.PaymentKind, bool) {
	switch {
	case checksHeaderPat.MatchString(s):
		return model.KindCheck, true
	case eftHeaderPat.MatchString(s):
		return model.KindEFT, true
	}
	return "", false
}

// IsRowStart reports whether s opens a payment row.
func IsRowStart(s string) bool {
	return rowStartPat.MatchString(s)
}

// IsFurniture reports whether s is report furniture: a banner, column
// header, count summary, or total line. Furniture never joins a row.
func IsFurniture(s string) bool {
	if furniturePat.MatchString(s) {
		return true
	}
	_, _, ok := matchTotal(s)
	return ok
}

type rowStart struct {
	number string
	date   string
	status string
	source string
	rest   string
}

func matchRowStart(s string) (rowStart, bool) {
	m := rowStartPat.FindStringSubmatch(s)
	if m == nil {
		return rowStart{}, false
	}
	return rowStart{
		number: m[1],
		date:   m[2],
		status: strings.TrimSpace(m[3]),
		source: m[4],
		rest:   strings.TrimSpace(m[5]),
	}, true
}

// matchTotal classifies subtotal and total lines. Kind is KindCheck or
// KindEFT for subsection subtotals and empty for report-wide totals.
// grand distinguishes explicit grand-total wording from the Total-with-
// count summary line, which the reconciler treats as a weaker candidate.
func matchTotal(s string) (kind model.PaymentKind, grand bool, ok bool) {
	switch {
	case totalChecksPat.MatchString(s):
		return model.KindCheck, false, true
	case totalEFTPat.MatchString(s):
		return model.KindEFT, false, true
	case grandTotalPat.MatchString(s):
		return "", true, true
	case statusTotalPat.MatchString(s):
		return "", false, true
	}
	return "", false, false
}

// splitAmountTail splits a trailing dollar amount off s. It returns the
// text before the amount, the amount token, and whether one was found.
func splitAmountTail(s string) (body, amount string, ok bool) {
	loc := amountTailPat.FindStringIndex(s)
	if loc == nil {
		return s, "", false
	}
	return strings.TrimSpace(s[:loc[0]]), s[loc[0]:loc[1]], true
}
