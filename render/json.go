package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/rows"
)

// WriteRecordsJSON writes the records as an indented JSON array.
// Amounts serialize as strings so no precision is lost.
func WriteRecordsJSON(w io.Writer, records []model.CheckRecord) error {
	if records == nil {
		records = []model.CheckRecord{}
	}
	return writeJSON(w, records)
}

// WriteRecordsJSONFile writes the records JSON to path.
func WriteRecordsJSONFile(path string, records []model.CheckRecord) error {
	return writeJSONFile(path, func(w io.Writer) error { return WriteRecordsJSON(w, records) })
}

// WriteChunksJSON writes the raw row chunks as an indented JSON array,
// the debugging artifact a parse can later be replayed from.
func WriteChunksJSON(w io.Writer, chunks []rows.Chunk) error {
	if chunks == nil {
		chunks = []rows.Chunk{}
	}
	return writeJSON(w, chunks)
}

// WriteChunksJSONFile writes the chunks JSON to path.
func WriteChunksJSONFile(path string, chunks []rows.Chunk) error {
	return writeJSONFile(path, func(w io.Writer) error { return WriteChunksJSON(w, chunks) })
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeJSONFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
