package archive

import (
	"fmt"
	"path/filepath"

	"github.com/mmcdougall/ECCheckParser/model"
)

// Paths resolves the artifact locations for one register span.
type Paths struct {
	Dir    string // archive root
	Year   string // year subdirectory, "unknown" when no period was found
	Prefix string // period span label, e.g. "2025-06" or "2025-06-07"
}

// NewPaths builds the layout for a register covering the given
// periods, which must be sorted ascending.
func NewPaths(dir string, periods []model.Period) Paths {
	year := "unknown"
	if len(periods) > 0 {
		year = fmt.Sprintf("%04d", periods[0].Year)
	}
	return Paths{Dir: dir, Year: year, Prefix: model.SpanLabel(periods)}
}

// YearDir returns the year subdirectory.
func (p Paths) YearDir() string { return filepath.Join(p.Dir, p.Year) }

// RegisterPDF returns the standalone register PDF path.
func (p Paths) RegisterPDF() string { return filepath.Join(p.YearDir(), p.Prefix+"-register.pdf") }

// ChunksJSON returns the raw chunks artifact path.
func (p Paths) ChunksJSON() string { return filepath.Join(p.YearDir(), "chunks", p.Prefix+".json") }

// CSV returns the records CSV path.
func (p Paths) CSV() string { return filepath.Join(p.YearDir(), "csv", p.Prefix+".csv") }

// Manifest returns the manifest path. The manifest describes the most
// recent run into the year directory.
func (p Paths) Manifest() string { return filepath.Join(p.YearDir(), "manifest.json") }
