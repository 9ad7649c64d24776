package checkregister

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmcdougall/ECCheckParser/locate"
	"github.com/mmcdougall/ECCheckParser/model"
	"github.com/mmcdougall/ECCheckParser/payee"
	"github.com/mmcdougall/ECCheckParser/pdftext"
	"github.com/mmcdougall/ECCheckParser/reconcile"
	"github.com/mmcdougall/ECCheckParser/rows"
	"github.com/mmcdougall/ECCheckParser/treemap"
)

// rangeOutput holds the parse products of one register section.
type rangeOutput struct {
	chunks  []rows.Chunk
	raw     []model.RawRow
	records []model.CheckRecord
	totals  []model.ControlTotal
	errs    []rows.RowParseError
}

// ParseResult bundles everything one parse run produced, in document
// order: the located sections, the raw chunks (the archivable
// intermediate), the rows before and after the payee split, the
// captured control totals, and the rows that failed to parse.
type ParseResult struct {
	Ranges  []model.PageRange
	Chunks  []rows.Chunk
	Raw     []model.RawRow
	Records []model.CheckRecord
	Totals  []model.ControlTotal
	Errors  []rows.RowParseError
}

// Report is the full product of a run: the parse plus the derived
// reconciliation, aggregation, and rollup views a caller prints or
// renders.
type Report struct {
	Parse      *ParseResult
	Results    []model.ReconciliationResult
	Aggregates []model.PayeeAggregate
	Rollups    map[model.Period]reconcile.MonthRollup
	Total      decimal.Decimal
}

// Extractor provides a fluent interface for pulling check register
// data out of agenda packet PDFs. Each configuration method returns a
// new Extractor instance, making it safe for concurrent use and
// allowing method chaining.
type Extractor struct {
	// Source
	filename string

	reader    *pdftext.Reader
	pages     []model.PageText // pre-extracted input (FromPages)
	havePages bool

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	config   Config
	splitter payee.Splitter

	// Page window restricting the register search, 1-indexed
	// inclusive; zero means the whole document.
	windowStart int
	windowEnd   int

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with its own warnings
// slice. This ensures immutability - each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		pages:        e.pages,
		havePages:    e.havePages,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		config:       e.config,
		splitter:     e.splitter,
		windowStart:  e.windowStart,
		windowEnd:    e.windowEnd,
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	r, err := pdftext.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Tolerance sets how far a computed period total may differ from the
// report's stated total and still reconcile. The default is zero:
// exact match required.
//
// Example:
//
//	results, _, err := checkregister.Open("packet.pdf").
//	    Tolerance(decimal.RequireFromString("0.01")).
//	    Reconcile()
func (e *Extractor) Tolerance(tol decimal.Decimal) *Extractor {
	newExt := e.clone()
	newExt.config.Tolerance = tol
	return newExt
}

// Workers sets how many register sections may parse concurrently.
// The default is 1; results come back in document order regardless.
//
// Example:
//
//	records, _, err := checkregister.Open("packet.pdf").Workers(4).Records()
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.config.Workers = n
	return newExt
}

// Strategy selects the treemap layout algorithm by registry name,
// "quadtree" or "squarified".
//
// Example:
//
//	node, _, err := checkregister.Open("packet.pdf").
//	    Strategy("squarified").
//	    Treemap(model.NewRect(0, 0, 1200, 800))
func (e *Extractor) Strategy(name string) *Extractor {
	newExt := e.clone()
	newExt.config.Strategy = name
	return newExt
}

// PageWindow restricts the register search to a 1-indexed inclusive
// page span. Useful for large packets where the register's rough
// position is already known.
//
// Example:
//
//	records, _, err := checkregister.Open("packet.pdf").PageWindow(100, 140).Records()
func (e *Extractor) PageWindow(start, end int) *Extractor {
	newExt := e.clone()
	newExt.windowStart = start
	newExt.windowEnd = end
	return newExt
}

// WithSplitter replaces the payee/description splitter. The default is
// payee.Default(), the composite positional-then-lexical splitter.
//
// Example:
//
//	records, _, err := checkregister.FromPages(pages).
//	    WithSplitter(payee.Lexical{}).
//	    Records()
func (e *Extractor) WithSplitter(s payee.Splitter) *Extractor {
	newExt := e.clone()
	newExt.splitter = s
	return newExt
}

// WithConfig replaces the whole configuration at once.
func (e *Extractor) WithConfig(cfg Config) *Extractor {
	newExt := e.clone()
	newExt.config = cfg
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// PageCount returns the number of pages in the source document.
// The reader remains open.
//
// Example:
//
//	ext := checkregister.Open("packet.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.havePages {
		return len(e.pages), nil
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.reader.PageCount(), nil
}

// Ranges locates the check register sections and returns their page
// ranges in document order. This is a terminal operation that closes
// the underlying reader.
//
// Returns locate.ErrNoRegister when the document has no register at
// all.
//
// Example:
//
//	ranges, warnings, err := checkregister.Open("packet.pdf").Ranges()
func (e *Extractor) Ranges() ([]model.PageRange, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	pages, err := e.loadPages()
	if err != nil {
		return nil, nil, err
	}
	defer e.Close()

	ranges, err := locate.Find(pages)
	if err != nil {
		return nil, e.warnings, err
	}
	return ranges, e.warnings, nil
}

// Parse locates every register section and runs the two-phase row
// parser over each. This is a terminal operation that closes the
// underlying reader.
//
// Returns the full parse product, any warnings encountered during
// processing, and an error if parsing failed outright. Warnings
// indicate non-fatal issues (e.g., a row that never produced an
// amount) where parsing succeeded but results may be incomplete.
//
// Example:
//
//	result, warnings, err := checkregister.Open("packet.pdf").Parse()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + checkregister.FormatWarnings(warnings))
//	}
func (e *Extractor) Parse() (*ParseResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	pr, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	return pr, e.warnings, nil
}

// Records parses the document and returns the finalized check records
// in document order. This is a terminal operation that closes the
// underlying reader.
//
// Example:
//
//	records, warnings, err := checkregister.Open("packet.pdf").Records()
func (e *Extractor) Records() ([]model.CheckRecord, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	pr, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	return pr.Records, e.warnings, nil
}

// Reconcile parses the document and checks each period's computed sum
// against the report's stated total, under the configured tolerance.
// Periods with no stated total are reported as warnings, not errors,
// and yield no result. This is a terminal operation that closes the
// underlying reader.
//
// Example:
//
//	results, warnings, err := checkregister.Open("packet.pdf").Reconcile()
//	for _, res := range results {
//	    fmt.Printf("%s: passed=%v delta=%s\n", res.Period.Label(), res.Passed, res.Delta)
//	}
func (e *Extractor) Reconcile() ([]model.ReconciliationResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	pr, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	results, err := e.reconcileRecords(pr)
	if err != nil {
		return nil, e.warnings, err
	}
	return results, e.warnings, nil
}

// Aggregates parses the document and returns per-payee spending
// totals, largest first. Voided rows carry no spend and are skipped.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	aggs, _, err := checkregister.Open("packet.pdf").Aggregates()
func (e *Extractor) Aggregates() ([]model.PayeeAggregate, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	pr, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	return reconcile.Aggregates(pr.Records), e.warnings, nil
}

// Treemap parses the document, aggregates spending by payee, and lays
// the aggregates out as a treemap within bounds using the configured
// strategy. This is a terminal operation that closes the underlying
// reader.
//
// Example:
//
//	node, _, err := checkregister.Open("packet.pdf").
//	    Treemap(model.NewRect(0, 0, 1200, 800))
func (e *Extractor) Treemap(bounds model.Rect) (*treemap.Node, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	pr, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	node, err := treemap.Build(reconcile.Aggregates(pr.Records), bounds, e.config.Strategy)
	if err != nil {
		return nil, e.warnings, err
	}
	return node, e.warnings, nil
}

// Report runs the whole pipeline and returns every view at once: the
// parse, the reconciliation results, the payee aggregates, the
// per-month rollups, and the grand total. This is the one-call path
// for CLI-style consumers. It is a terminal operation that closes the
// underlying reader.
//
// Example:
//
//	rep, warnings, err := checkregister.Open("packet.pdf").Report()
func (e *Extractor) Report() (*Report, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	pr, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	results, err := e.reconcileRecords(pr)
	if err != nil {
		return nil, e.warnings, err
	}
	rep := &Report{
		Parse:      pr,
		Results:    results,
		Aggregates: reconcile.Aggregates(pr.Records),
		Rollups:    reconcile.MonthRollups(pr.Records),
		Total:      reconcile.Totals(pr.Records),
	}
	return rep, e.warnings, nil
}

// ============================================================================
// Pipeline internals
// ============================================================================

// run executes the parse pipeline: load pages, locate sections, parse
// each section, reassemble in document order, accumulate warnings.
func (e *Extractor) run() (*ParseResult, error) {
	if err := e.config.Validate(); err != nil {
		return nil, err
	}

	pages, err := e.loadPages()
	if err != nil {
		return nil, err
	}
	defer e.Close()

	ranges, err := locate.Find(pages)
	if err != nil {
		return nil, err
	}

	// Sections are independent; parse them in parallel up to the
	// configured limit, then reassemble in document order.
	outputs := make([]rangeOutput, len(ranges))
	g := new(errgroup.Group)
	g.SetLimit(e.config.Workers)
	for i, rng := range ranges {
		i, rng := i, rng
		g.Go(func() error {
			outputs[i] = parseRange(pages, rng, e.splitter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pr := &ParseResult{Ranges: ranges}
	for _, out := range outputs {
		pr.Chunks = append(pr.Chunks, out.chunks...)
		pr.Raw = append(pr.Raw, out.raw...)
		pr.Records = append(pr.Records, out.records...)
		pr.Totals = append(pr.Totals, out.totals...)
		pr.Errors = append(pr.Errors, out.errs...)
	}

	for _, perr := range pr.Errors {
		e.addWarning(WarningMessyRow, "%s", perr.Error())
	}
	for _, rec := range pr.Records {
		if rec.LowConfidence {
			e.addWarning(WarningLowConfidence, "check %s (%s): kept %q unsplit",
				rec.Number, rec.Period.Label(), rec.Payee)
		}
	}
	return pr, nil
}

// parseRange runs the two-phase row parser over one register section.
func parseRange(pages []model.PageText, rng model.PageRange, sp payee.Splitter) rangeOutput {
	chunks, totals := rows.CollectChunks(pages, rng)
	raw, records, errs := rows.ParseChunks(chunks, sp)
	return rangeOutput{chunks: chunks, raw: raw, records: records, totals: totals, errs: errs}
}

// reconcileRecords reconciles a parse against its control totals.
// Missing control totals become warnings; anything else is an error.
func (e *Extractor) reconcileRecords(pr *ParseResult) ([]model.ReconciliationResult, error) {
	results, err := reconcile.Reconcile(pr.Records, pr.Totals, e.config.Tolerance)
	if err != nil {
		if !errors.Is(err, reconcile.ErrNoControlTotal) {
			return nil, err
		}
		for _, one := range unwrapAll(err) {
			e.addWarning(WarningNoControlTotal, "%s", one.Error())
		}
	}
	return results, nil
}

// unwrapAll flattens an errors.Join result; a plain error comes back
// as a one-element slice.
func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// loadPages produces the page text the pipeline works on, from the
// pre-supplied pages or the reader, honoring any page window.
func (e *Extractor) loadPages() ([]model.PageText, error) {
	if e.havePages {
		return e.applyWindow(e.pages)
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	pages, err := e.reader.Pages()
	if err != nil {
		return nil, err
	}
	return e.applyWindow(pages)
}

// applyWindow filters pages to the configured window.
func (e *Extractor) applyWindow(pages []model.PageText) ([]model.PageText, error) {
	if e.windowStart == 0 && e.windowEnd == 0 {
		return pages, nil
	}
	if e.windowStart < 1 || e.windowEnd < e.windowStart {
		return nil, fmt.Errorf("page window %d-%d out of order", e.windowStart, e.windowEnd)
	}
	var out []model.PageText
	for _, p := range pages {
		if p.Number >= e.windowStart && p.Number <= e.windowEnd {
			out = append(out, p)
		}
	}
	return out, nil
}
