package pdftext

import (
	"fmt"
	"os"
)

// IsPDF checks the file's magic bytes. Agenda packets are sometimes
// delivered as HTML error pages or zero-byte downloads under a .pdf
// name; catching that here gives a clear message instead of a parser
// failure deep inside the reader.
func IsPDF(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	magic := make([]byte, 4)
	n, err := f.Read(magic)
	if err != nil || n < 4 {
		return false, nil
	}
	// PDF magic: %PDF
	return magic[0] == '%' && magic[1] == 'P' && magic[2] == 'D' && magic[3] == 'F', nil
}

// checkMagic rejects non-PDF input before the parser sees it.
func checkMagic(path string) error {
	ok, err := IsPDF(path)
	if err != nil {
		return fmt.Errorf("open pdf %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("%s is not a PDF file", path)
	}
	return nil
}
