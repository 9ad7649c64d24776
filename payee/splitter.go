package payee

import (
	"strings"

	"github.com/mmcdougall/ECCheckParser/model"
)

// Methods reported in Result.Method.
const (
	MethodPositional = "positional"
	MethodLexical    = "lexical"
	MethodFallback   = "fallback"
)

// Context carries what the row parser knows about a row beyond its
// text. Both fields are optional; text-only callers pass the zero
// value.
type Context struct {
	// Words holds the row's positioned words, one slice per source
	// line, when the row came straight from a PDF.
	Words [][]model.Word
	// BoundaryX is the table's modal payee/description column
	// boundary, zero when unknown.
	BoundaryX float64
}

// Result is one split outcome. When no strategy was confident,
// Confident is false and the whole block is kept in Payee.
type Result struct {
	Payee       string
	Description string
	Confident   bool
	Method      string
}

// Splitter turns a combined payee and description block into its two
// halves. Implementations must be deterministic: the same block and
// context always yield the same Result.
type Splitter interface {
	Split(combined string, ctx Context) Result
}

// Options tune the composite splitter.
type Options struct {
	// ConfidenceFloor is the minimum winning vote score before a
	// lexical split is trusted.
	ConfidenceFloor int
	// BoundarySlack is how far, in points, a row's own column
	// threshold may stray from the table's modal boundary before the
	// row defers to the modal boundary.
	BoundarySlack float64
}

// DefaultOptions returns the tuning used by Default.
func DefaultOptions() Options {
	return Options{ConfidenceFloor: 3, BoundarySlack: 24}
}

// Composite is the production splitter: positional when geometry is
// available, lexical otherwise, and an explicit low-confidence
// fallback when neither strategy commits.
type Composite struct {
	opts Options
}

// New returns a Composite with the given options; zero fields fall
// back to DefaultOptions.
func New(opts Options) *Composite {
	def := DefaultOptions()
	if opts.ConfidenceFloor <= 0 {
		opts.ConfidenceFloor = def.ConfidenceFloor
	}
	if opts.BoundarySlack <= 0 {
		opts.BoundarySlack = def.BoundarySlack
	}
	return &Composite{opts: opts}
}

// Default returns a Composite with DefaultOptions.
func Default() *Composite {
	return New(DefaultOptions())
}

// Split implements Splitter.
func (c *Composite) Split(combined string, ctx Context) Result {
	if res, ok := positionalSplit(ctx, c.opts.BoundarySlack); ok {
		return res
	}
	if res, ok := lexicalSplit(combined, c.opts.ConfidenceFloor); ok {
		return res
	}
	return fallback(combined)
}

// Lexical splits on text alone. It is the strategy for archived chunks
// and other inputs with no geometry.
type Lexical struct {
	// Floor overrides the default confidence floor when positive.
	Floor int
}

// Split implements Splitter.
func (l Lexical) Split(combined string, _ Context) Result {
	floor := l.Floor
	if floor <= 0 {
		floor = DefaultOptions().ConfidenceFloor
	}
	if res, ok := lexicalSplit(combined, floor); ok {
		return res
	}
	return fallback(combined)
}

// Positional splits on word geometry alone, falling back immediately
// when the context carries no usable words.
type Positional struct {
	// Slack overrides the default boundary slack when positive.
	Slack float64
}

// Split implements Splitter.
func (p Positional) Split(combined string, ctx Context) Result {
	slack := p.Slack
	if slack <= 0 {
		slack = DefaultOptions().BoundarySlack
	}
	if res, ok := positionalSplit(ctx, slack); ok {
		return res
	}
	return fallback(combined)
}

// fallback keeps the whole block as the payee; the row stays usable
// and the caller can flag it for review.
func fallback(combined string) Result {
	return Result{
		Payee:  strings.TrimSpace(combined),
		Method: MethodFallback,
	}
}
