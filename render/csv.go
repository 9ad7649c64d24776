package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/mmcdougall/ECCheckParser/model"
)

// CSVHeader is the column order of the records CSV.
var CSVHeader = []string{"period", "kind", "number", "date", "status", "source", "payee", "description", "amount", "voided"}

// WriteCSV writes one row per record in CSVHeader order. Amounts are
// fixed to two decimals; voided is Y or N.
func WriteCSV(w io.Writer, records []model.CheckRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		voided := "N"
		if rec.Voided {
			voided = "Y"
		}
		row := []string{
			rec.Period.Label(),
			string(rec.Kind),
			rec.Number,
			rec.Date,
			rec.Status,
			rec.Source,
			rec.Payee,
			rec.Description,
			model.FormatAmount(rec.Amount),
			voided,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the records CSV to path.
func WriteCSVFile(path string, records []model.CheckRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, records)
}
