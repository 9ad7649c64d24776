package checkregister

import (
	"strings"
	"testing"
)

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("Expected empty string for no warnings, got %q", got)
	}

	warnings := []Warning{
		{Type: WarningMessyRow, Message: "page 7 line 3: no amount found"},
		{Type: WarningLowConfidence, Message: "check 84563 (2025-06): kept \"ZYDECO WIDGETRY\" unsplit"},
	}
	got := FormatWarnings(warnings)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "messy_row: page 7 line 3: no amount found" {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "low_confidence_split: ") {
		t.Errorf("Unexpected second line: %q", lines[1])
	}
}
