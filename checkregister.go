// Package checkregister extracts disbursement records from the check
// register section of city agenda packet PDFs, reconciles them against
// the report's stated totals, and lays out a payee treemap.
//
// Basic usage:
//
//	records, warnings, err := checkregister.Open("packet.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + checkregister.FormatWarnings(warnings))
//	}
//
// With options:
//
//	results, _, err := checkregister.Open("packet.pdf").
//	    Tolerance(decimal.RequireFromString("0.01")).
//	    Workers(4).
//	    Reconcile()
//
// The stage packages (locate, rows, payee, reconcile, treemap, render)
// remain available to callers that need a single step on its own.
package checkregister

import (
	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/payee"
	"github.com/mmcdougall/ECCheckParser/pdftext"
)

// Open opens an agenda packet PDF and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done,
// either explicitly via Close() or implicitly by a terminal operation
// like Records().
//
// Example:
//
//	records, warnings, err := checkregister.Open("packet.pdf").Records()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		config:   DefaultConfig(),
		splitter: payee.Default(),
	}
}

// FromReader creates an Extractor from an already-opened
// pdftext.Reader. The caller remains responsible for closing the
// reader.
//
// Example:
//
//	r, err := pdftext.Open("packet.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	records, warnings, err := checkregister.FromReader(r).Records()
func FromReader(r *pdftext.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		config:       DefaultConfig(),
		splitter:     payee.Default(),
	}
}

// FromPages creates an Extractor over already-extracted page text.
// This is the path for replaying archived text and for tests that have
// no PDF on hand.
//
// Example:
//
//	records, warnings, err := checkregister.FromPages(pages).Records()
func FromPages(pages []model.PageText) *Extractor {
	return &Extractor{
		pages:     pages,
		havePages: true,
		config:    DefaultConfig(),
		splitter:  payee.Default(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := checkregister.Must(checkregister.Open("packet.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords is a helper that wraps a call to Records() or another
// terminal operation and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	records := checkregister.MustRecords(checkregister.Open("packet.pdf").Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
