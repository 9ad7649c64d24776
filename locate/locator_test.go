package locate

import (
	"errors"
	"testing"

	"github.com/mmcdougall/ECCheckParser/model"
)

func page(number int, lines ...string) model.PageText {
	pt := model.PageText{Number: number}
	for _, s := range lines {
		pt.Lines = append(pt.Lines, model.Line{Text: s})
	}
	return pt
}

const (
	heading   = "Monthly Disbursement and Check Register Report"
	blockJun  = "From Payment Date: 6/1/2025 - To Payment Date: 6/30/2025"
	blockJul  = "From Payment Date: 7/1/2025 - To Payment Date: 7/31/2025"
	checksHdr = "Accounts Payable - Checks"
	rowLine   = "84561 06/06/2025 Open Accounts Payable ACME SUPPLY CO OFFICE CHAIRS QTY 4 $1,897.22"
)

func TestFindSingleRange(t *testing.T) {
	pages := []model.PageText{
		page(1, "CITY COUNCIL AGENDA", "Call to order"),
		page(2, "Minutes of the previous meeting"),
		page(3, "City of Mapleton", heading, blockJun, checksHdr, rowLine),
		page(4, "City of Mapleton", blockJun, rowLine, rowLine),
		page(5, "City of Mapleton", blockJun, "TOTAL CHECKS $45,210.11", "GRAND TOTAL $45,210.11"),
		page(6, "Staff report on paving contract"),
	}

	ranges, err := Find(pages)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("Expected 1 range, got %d", len(ranges))
	}
	rng := ranges[0]
	if rng.Start != 3 || rng.End != 5 {
		t.Errorf("Expected range 3-5, got %d-%d", rng.Start, rng.End)
	}
	if len(rng.Periods) != 1 || rng.Periods[0] != (model.Period{Year: 2025, Month: 6}) {
		t.Errorf("Expected single period 2025-06, got %v", rng.Periods)
	}
}

func TestFindNoRegister(t *testing.T) {
	pages := []model.PageText{
		page(1, "CITY COUNCIL AGENDA"),
		page(2, "Resolution 2025-41"),
	}

	if _, err := Find(pages); !errors.Is(err, ErrNoRegister) {
		t.Errorf("Expected ErrNoRegister, got %v", err)
	}
}

func TestFindHeadingAloneIsNotAStart(t *testing.T) {
	// An agenda item referring to the register is not the register.
	pages := []model.PageText{
		page(1, "Item 7: Approve the Check Register for June"),
	}

	if _, err := Find(pages); !errors.Is(err, ErrNoRegister) {
		t.Errorf("Expected ErrNoRegister, got %v", err)
	}
}

func TestFindNonContiguousSections(t *testing.T) {
	pages := []model.PageText{
		page(1, heading, blockJun, checksHdr, rowLine),
		page(2, "Unrelated staff report"),
		page(3, heading, blockJul, checksHdr, rowLine),
	}

	ranges, err := Find(pages)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("Expected 2 ranges, got %d", len(ranges))
	}
	if ranges[0].Start != 1 || ranges[0].End != 1 {
		t.Errorf("Expected first range 1-1, got %d-%d", ranges[0].Start, ranges[0].End)
	}
	if ranges[1].Start != 3 || ranges[1].End != 3 {
		t.Errorf("Expected second range 3-3, got %d-%d", ranges[1].Start, ranges[1].End)
	}
}

func TestFindMergesContinuationPages(t *testing.T) {
	// Every register page repeats the block header; repeats must extend
	// the range, not split it.
	pages := []model.PageText{
		page(7, heading, blockJun, checksHdr, rowLine),
		page(8, heading, blockJun, rowLine),
		page(9, heading, blockJul, checksHdr, rowLine),
	}

	ranges, err := Find(pages)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("Expected 1 merged range, got %d", len(ranges))
	}
	if ranges[0].Start != 7 || ranges[0].End != 9 {
		t.Errorf("Expected range 7-9, got %d-%d", ranges[0].Start, ranges[0].End)
	}
	want := []model.Period{{Year: 2025, Month: 6}, {Year: 2025, Month: 7}}
	if len(ranges[0].Periods) != 2 || ranges[0].Periods[0] != want[0] || ranges[0].Periods[1] != want[1] {
		t.Errorf("Expected periods %v, got %v", want, ranges[0].Periods)
	}
}

func TestFindStopsAtNonRegisterPage(t *testing.T) {
	pages := []model.PageText{
		page(1, heading, blockJun, checksHdr, rowLine),
		page(2, "Ordinance No. 1530 second reading"),
		page(3, "Adjournment"),
	}

	ranges, err := Find(pages)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(ranges) != 1 || ranges[0].End != 1 {
		t.Fatalf("Expected one range ending at page 1, got %v", ranges)
	}
}
