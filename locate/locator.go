package locate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/rows"
)

// ErrNoRegister reports that no page of the document carries a check
// register. It is the only fatal locator outcome.
var ErrNoRegister = errors.New("no check register section found")

// headingPat matches the report title. The canonical heading is
// "Monthly Disbursement and Check Register Report"; the substring also
// covers packets that shorten it.
var headingPat = regexp.MustCompile(`(?i)CHECK\s+REGISTER`)

// Find scans pages for register sections and returns their page
// ranges in document order. A range starts at a page bearing both a
// payment date block header and a register heading or subsection
// header, and extends across contiguous pages that still carry
// register content. Each range's Periods are the distinct months its
// block headers name, ascending.
func Find(pages []model.PageText) ([]model.PageRange, error) {
	var ranges []model.PageRange

	i := 0
	for i < len(pages) {
		if !isRegisterStart(pages[i]) {
			i++
			continue
		}

		start := i
		periods := pagePeriods(pages[i])
		j := i + 1
		for j < len(pages) &&
			pages[j].Number == pages[j-1].Number+1 &&
			hasRegisterContent(pages[j]) {
			periods = append(periods, pagePeriods(pages[j])...)
			j++
		}

		ranges = append(ranges, model.PageRange{
			Start:   pages[start].Number,
			End:     pages[j-1].Number,
			Periods: model.SortPeriods(periods),
		})
		i = j
	}

	if len(ranges) == 0 {
		return nil, ErrNoRegister
	}
	return ranges, nil
}

// isRegisterStart reports whether the page opens a register section: a
// payment date block header plus a heading or subsection header.
func isRegisterStart(page model.PageText) bool {
	hasBlock, hasHeading := false, false
	for _, line := range page.Lines {
		s := strings.TrimSpace(line.Text)
		if s == "" {
			continue
		}
		if _, ok := rows.BlockHeader(s); ok {
			hasBlock = true
		}
		if headingPat.MatchString(s) {
			hasHeading = true
		}
		if _, ok := rows.SectionHeader(s); ok {
			hasHeading = true
		}
		if hasBlock && hasHeading {
			return true
		}
	}
	return false
}

// hasRegisterContent reports whether the page still belongs to an open
// register section: any block header, subsection header, payment row,
// or register furniture counts, so trailing summary pages stay in.
func hasRegisterContent(page model.PageText) bool {
	for _, line := range page.Lines {
		s := strings.TrimSpace(line.Text)
		if s == "" {
			continue
		}
		if _, ok := rows.BlockHeader(s); ok {
			return true
		}
		if _, ok := rows.SectionHeader(s); ok {
			return true
		}
		if rows.IsRowStart(s) || rows.IsFurniture(s) {
			return true
		}
	}
	return false
}

// pagePeriods collects the periods named by the page's block headers.
func pagePeriods(page model.PageText) []model.Period {
	var periods []model.Period
	for _, line := range page.Lines {
		if p, ok := rows.BlockHeader(strings.TrimSpace(line.Text)); ok {
			periods = append(periods, p)
		}
	}
	return periods
}
