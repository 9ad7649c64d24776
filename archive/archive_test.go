package archive

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/mmcdougall/ECCheckParser/locate"
	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/rows"
)

func registerPage(number int, lines ...string) model.PageText {
	pt := model.PageText{Number: number}
	for _, s := range lines {
		pt.Lines = append(pt.Lines, model.Line{Text: s})
	}
	return pt
}

func stubCopyPages(t *testing.T) {
	t.Helper()
	orig := copyPages
	copyPages = func(src, dst string, rng model.PageRange) error {
		return os.WriteFile(dst, []byte("%PDF-1.4 stub"), 0o644)
	}
	t.Cleanup(func() { copyPages = orig })
}

func TestBuildFromPages(t *testing.T) {
	stubCopyPages(t)
	dir := t.TempDir()

	pages := []model.PageText{
		registerPage(1, "City Council Agenda"),
		registerPage(7,
			"CHECK REGISTER",
			"From Payment Date: 6/1/2025 - To Payment Date: 6/30/2025",
			"Accounts Payable - Checks",
			"84561 06/06/2025 Open Accounts Payable ACME SUPPLY CO OFFICE CHAIRS QTY 4 $1,897.22",
			"84562 06/07/2025 Open Accounts Payable CITY OF RICHMOND Fire services $1,234.56",
			"TOTAL CHECKS $3,131.78",
		),
		registerPage(12, "Adjournment"),
	}

	m, err := BuildFromPages(context.Background(), pages, "packet.pdf", dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(m.RunID) != 36 {
		t.Errorf("Expected a UUID run ID, got %q", m.RunID)
	}
	if m.CreatedAt.IsZero() {
		t.Error("Expected a timestamp")
	}
	if m.Source != "packet.pdf" {
		t.Errorf("Expected source packet.pdf, got %q", m.Source)
	}
	if m.PageRange.Start != 7 || m.PageRange.End != 7 {
		t.Errorf("Expected page range 7-7, got %+v", m.PageRange)
	}
	if m.ChunkCount != 2 || m.RecordCount != 2 || m.PeriodCount != 1 || m.ParseErrors != 0 {
		t.Errorf("Unexpected counts in manifest: %+v", m)
	}

	paths := NewPaths(dir, m.PageRange.Periods)
	if _, err := os.Stat(paths.RegisterPDF()); err != nil {
		t.Errorf("Expected the register PDF written: %v", err)
	}

	chunkData, err := os.ReadFile(paths.ChunksJSON())
	if err != nil {
		t.Fatalf("Expected the chunks artifact written: %v", err)
	}
	var chunks []rows.Chunk
	if err := json.Unmarshal(chunkData, &chunks); err != nil {
		t.Fatalf("Expected valid chunks JSON, got %v", err)
	}
	if len(chunks) != 2 || chunks[0].Number != "84561" {
		t.Errorf("Unexpected chunks artifact: %+v", chunks)
	}

	csvData, err := os.ReadFile(paths.CSV())
	if err != nil {
		t.Fatalf("Expected the CSV artifact written: %v", err)
	}
	if !strings.Contains(string(csvData), "ACME SUPPLY CO") {
		t.Errorf("Expected parsed records in the CSV, got %q", csvData)
	}

	loaded, err := ReadManifest(paths.Manifest())
	if err != nil {
		t.Fatalf("Expected a readable manifest, got %v", err)
	}
	if loaded.RunID != m.RunID {
		t.Errorf("Expected manifest round trip, got run ID %q", loaded.RunID)
	}
}

func TestBuildFromPagesNoRegister(t *testing.T) {
	stubCopyPages(t)

	pages := []model.PageText{registerPage(1, "City Council Agenda")}
	_, err := BuildFromPages(context.Background(), pages, "packet.pdf", t.TempDir())

	if !errors.Is(err, locate.ErrNoRegister) {
		t.Fatalf("Expected ErrNoRegister, got %v", err)
	}
}

func TestBuildFromPagesUsesFirstRange(t *testing.T) {
	stubCopyPages(t)
	dir := t.TempDir()

	pages := []model.PageText{
		registerPage(3,
			"CHECK REGISTER",
			"From Payment Date: 6/1/2025 - To Payment Date: 6/30/2025",
			"Accounts Payable - Checks",
			"84561 06/06/2025 Open Accounts Payable ACME SUPPLY CO OFFICE CHAIRS $1,897.22",
		),
		registerPage(4, "Unrelated resolution"),
		registerPage(9,
			"CHECK REGISTER",
			"From Payment Date: 7/1/2025 - To Payment Date: 7/31/2025",
			"Accounts Payable - Checks",
			"84570 07/02/2025 Open Accounts Payable CITY OF RICHMOND Fire services $1,234.56",
		),
	}

	m, err := BuildFromPages(context.Background(), pages, "packet.pdf", dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.PageRange.Start != 3 || m.PageRange.End != 3 {
		t.Errorf("Expected the first section archived, got %+v", m.PageRange)
	}
	if m.RecordCount != 1 {
		t.Errorf("Expected 1 record, got %d", m.RecordCount)
	}
}
