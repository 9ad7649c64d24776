package pdftext

import (
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/mmcdougall/ECCheckParser/model"
)

// Reader extracts positioned text from the pages of one PDF file.
type Reader struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the PDF at path for page-by-page text extraction. The
// caller must Close the returned Reader when done.
func Open(path string) (*Reader, error) {
	if err := checkMagic(path); err != nil {
		return nil, err
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Reader{f: f, r: r}, nil
}

// NewReader wraps an already-open PDF. The caller keeps ownership of r;
// Close on the returned Reader is a no-op.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	pr, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return &Reader{r: pr}, nil
}

// Close releases the underlying file. Safe to call more than once.
func (rd *Reader) Close() error {
	if rd.f == nil {
		return nil
	}
	err := rd.f.Close()
	rd.f = nil
	return err
}

// PageCount returns the number of pages in the document.
func (rd *Reader) PageCount() int {
	return rd.r.NumPage()
}

// Page extracts the text of a single page. Page numbers are 1-indexed,
// matching how pages are cited in the agenda packet itself. A page that
// exists but carries no extractable text yields a PageText with no
// lines, not an error.
func (rd *Reader) Page(number int) (model.PageText, error) {
	total := rd.r.NumPage()
	if number < 1 || number > total {
		return model.PageText{}, fmt.Errorf("page %d out of range (document has %d pages)", number, total)
	}
	p := rd.r.Page(number)
	if p.V.IsNull() {
		return model.PageText{Number: number}, nil
	}
	return model.PageText{
		Number: number,
		Lines:  AssembleLines(p.Content().Text),
	}, nil
}

// Pages extracts the text of every page in document order.
func (rd *Reader) Pages() ([]model.PageText, error) {
	total := rd.r.NumPage()
	pages := make([]model.PageText, 0, total)
	for n := 1; n <= total; n++ {
		pt, err := rd.Page(n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, pt)
	}
	return pages, nil
}

// Read opens the PDF at path, extracts the text of every page, and
// closes the file. It is the one-shot convenience most callers want.
func Read(path string) ([]model.PageText, error) {
	rd, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return rd.Pages()
}

// ReadFile extracts the text of every page from an already-open PDF.
// Useful when the document arrives as an upload or archive entry
// rather than a file on disk.
func ReadFile(r io.ReaderAt, size int64) ([]model.PageText, error) {
	rd, err := NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return rd.Pages()
}
