package checkregister

import (
	"fmt"
	"strings"
)

// WarningType classifies a non-fatal extraction problem.
type WarningType string

const (
	// WarningMessyRow reports a register line that opened a row but
	// never became a parseable record.
	WarningMessyRow WarningType = "messy_row"

	// WarningLowConfidence reports a payee/description split that fell
	// below the confidence floor; the record keeps the whole block as
	// its payee.
	WarningLowConfidence WarningType = "low_confidence_split"

	// WarningNoControlTotal reports a period whose register stated no
	// total to reconcile against.
	WarningNoControlTotal WarningType = "no_control_total"
)

// Warning describes a non-fatal issue found while processing. The run
// succeeded, but the results may be incomplete or imprecise in the
// reported way.
type Warning struct {
	Type    WarningType
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Type, w.Message)
}

// FormatWarnings renders warnings one per line for CLI display or
// logging.
//
// Example:
//
//	records, warnings, err := checkregister.Open("packet.pdf").Records()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + checkregister.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// addWarning appends a formatted warning to the extractor.
func (e *Extractor) addWarning(t WarningType, format string, args ...any) {
	e.warnings = append(e.warnings, Warning{Type: t, Message: fmt.Sprintf(format, args...)})
}
