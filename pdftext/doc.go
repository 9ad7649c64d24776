// Package pdftext extracts positioned text from packet PDFs.
//
// This package is the pipeline's input collaborator: it turns a PDF
// file into []model.PageText, one entry per page, each holding the
// page's visual lines with their positioned words. The locator and row
// parser operate entirely on that product and never touch the PDF
// themselves.
//
// # Usage
//
//	pages, err := pdftext.Read("packet.pdf")
//	if err != nil {
//	    // handle error
//	}
//
// Or with an explicit reader when multiple extractions share one file:
//
//	r, err := pdftext.Open("packet.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	page, err := r.Page(7)
//
// # Line assembly
//
// PDF text arrives as individual positioned words. Words are grouped
// into lines by y coordinate (tolerance 2pt), ordered left to right,
// and joined with single spaces, or a double space where the horizontal
// gap is wide enough to indicate a column boundary. Text is normalized
// to NFKC so ligatures and full-width forms compare cleanly downstream.
package pdftext
