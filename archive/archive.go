package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/mmcdougall/ECCheckParser/internal/logger"
	"github.com/mmcdougall/ECCheckParser/locate"
	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/payee"
	"github.com/mmcdougall/ECCheckParser/pdftext"
	"github.com/mmcdougall/ECCheckParser/render"
	"github.com/mmcdougall/ECCheckParser/rows"
)

// Manifest records one archive run.
type Manifest struct {
	RunID       string          `json:"run_id"`
	Source      string          `json:"source"`
	CreatedAt   time.Time       `json:"created_at"`
	PageRange   model.PageRange `json:"page_range"`
	ChunkCount  int             `json:"chunk_count"`
	RecordCount int             `json:"record_count"`
	PeriodCount int             `json:"period_count"`
	ParseErrors int             `json:"parse_errors"`
	RegisterPDF string          `json:"register_pdf"`
	ChunksJSON  string          `json:"chunks_json"`
	CSV         string          `json:"csv"`
}

// copyPages extracts a 1-indexed inclusive page span of src into its
// own PDF at dst. Swappable for tests that have no PDF on hand.
var copyPages = func(src, dst string, rng model.PageRange) error {
	span := []string{fmt.Sprintf("%d-%d", rng.Start, rng.End)}
	return api.TrimFile(src, dst, span, nil)
}

// ExtractRegisterPDF copies the register's page span out of the packet
// into its own PDF at dst.
func ExtractRegisterPDF(packetPDF, dst string, rng model.PageRange) error {
	if err := copyPages(packetPDF, dst, rng); err != nil {
		return fmt.Errorf("failed to extract register pages: %w", err)
	}
	return nil
}

// Build reads an agenda packet PDF, locates its check register, and
// writes the archive artifacts under dir. When the packet holds more
// than one register section only the first is archived. The logger is
// taken from ctx.
func Build(ctx context.Context, packetPDF, dir string) (*Manifest, error) {
	pages, err := pdftext.Read(packetPDF)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", packetPDF, err)
	}
	return BuildFromPages(ctx, pages, packetPDF, dir)
}

// BuildFromPages archives an already-extracted packet. packetPDF is
// still needed as the source for the standalone register PDF.
func BuildFromPages(ctx context.Context, pages []model.PageText, packetPDF, dir string) (*Manifest, error) {
	log := logger.FromContext(ctx)

	ranges, err := locate.Find(pages)
	if err != nil {
		return nil, err
	}
	rng := ranges[0]
	log.Info().Int("start", rng.Start).Int("end", rng.End).Str("span", rng.Label()).
		Msg("located check register")

	chunks, _ := rows.CollectChunks(pages, rng)
	_, records, perrs := rows.ParseChunks(chunks, payee.Default())
	if len(perrs) > 0 {
		log.Warn().Int("count", len(perrs)).Msg("rows failed to parse")
	}

	paths := NewPaths(dir, rng.Periods)
	for _, sub := range []string{filepath.Dir(paths.ChunksJSON()), filepath.Dir(paths.CSV())} {
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %q: %w", sub, err)
		}
	}

	if err := copyPages(packetPDF, paths.RegisterPDF(), rng); err != nil {
		return nil, fmt.Errorf("failed to extract register pages: %w", err)
	}
	log.Info().Str("pdf", paths.RegisterPDF()).Msg("wrote register PDF")

	if err := render.WriteChunksJSONFile(paths.ChunksJSON(), chunks); err != nil {
		return nil, err
	}
	if err := render.WriteCSVFile(paths.CSV(), records); err != nil {
		return nil, err
	}

	m := &Manifest{
		RunID:       uuid.NewString(),
		Source:      packetPDF,
		CreatedAt:   time.Now().UTC(),
		PageRange:   rng,
		ChunkCount:  len(chunks),
		RecordCount: len(records),
		PeriodCount: len(rng.Periods),
		ParseErrors: len(perrs),
		RegisterPDF: paths.RegisterPDF(),
		ChunksJSON:  paths.ChunksJSON(),
		CSV:         paths.CSV(),
	}
	if err := writeManifest(paths.Manifest(), m); err != nil {
		return nil, err
	}
	log.Info().Str("run_id", m.RunID).Int("records", m.RecordCount).Msg("archive updated")
	return m, nil
}
