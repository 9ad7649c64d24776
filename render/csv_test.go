package render

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmcdougall/ECCheckParser/model"
)

func sampleRecords() []model.CheckRecord {
	return []model.CheckRecord{
		{
			Number: "84561", Date: "06/06/2025", Status: "Open", Source: "Accounts Payable",
			Payee: "ACME SUPPLY CO", Description: "OFFICE CHAIRS, QTY 4",
			Amount: decimal.RequireFromString("1897.22"), Kind: model.KindCheck,
			Period: model.Period{Year: 2025, Month: 6},
		},
		{
			Number: "2101", Date: "06/10/2025", Status: "Voided", Source: "Accounts Payable",
			Payee: "OLSEN, MARK", Description: "PARKS DEPOSIT REFUND",
			Amount: decimal.RequireFromString("150.00"), Kind: model.KindEFT,
			Period: model.Period{Year: 2025, Month: 6}, Voided: true,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	lines, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Expected parseable CSV, got %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}

	for i, col := range CSVHeader {
		if lines[0][i] != col {
			t.Errorf("Header column %d: expected %q, got %q", i, col, lines[0][i])
		}
	}

	want := []string{"2025-06", "check", "84561", "06/06/2025", "Open", "Accounts Payable",
		"ACME SUPPLY CO", "OFFICE CHAIRS, QTY 4", "1897.22", "N"}
	for i, field := range want {
		if lines[1][i] != field {
			t.Errorf("Row 1 column %d: expected %q, got %q", i, field, lines[1][i])
		}
	}

	if lines[2][1] != "eft" {
		t.Errorf("Expected kind eft, got %q", lines[2][1])
	}
	if lines[2][8] != "150.00" {
		t.Errorf("Expected amount 150.00, got %q", lines[2][8])
	}
	if lines[2][9] != "Y" {
		t.Errorf("Expected voided Y, got %q", lines[2][9])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	lines, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Expected parseable CSV, got %v", err)
	}
	if len(lines) != 1 {
		t.Errorf("Expected only the header, got %d lines", len(lines))
	}
}
