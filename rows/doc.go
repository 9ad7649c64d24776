// Package rows turns located register pages into parsed payment rows.
//
// Parsing is two-phase, so the raw material of every row survives for
// archiving and debugging:
//
//  1. [CollectChunks] walks a page range with a small state machine and
//     groups the lines of each payment row into a [Chunk]. A row whose
//     amount lands on the next page stays one chunk; report furniture
//     and subtotal lines never leak into it. Subtotal and total lines
//     that carry amounts are captured as [model.ControlTotal] values
//     for the reconciler.
//  2. [ParseChunks] closes each chunk: it strips the trailing amount,
//     derives the voided flag, and hands the remaining payee plus
//     description block to a [payee.Splitter].
//
// A chunk that cannot be parsed produces a [RowParseError]; errors are
// collected and returned next to the rows, never aborting the range.
package rows
