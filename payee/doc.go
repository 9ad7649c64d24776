// Package payee splits a register row's combined payee and description
// block into its two halves.
//
// Register reports print payee and description as adjacent columns, but
// extracted text flattens them into one run of tokens. Two strategies
// recover the boundary:
//
//   - [Positional] clusters word x-origins into two columns when the
//     row's positioned words are available. Geometry beats guessing.
//   - [Lexical] works on text alone: a panel of weighted heuristics
//     votes on token boundaries and the highest score wins.
//
// [Composite] is the default [Splitter]: positional first, lexical when
// geometry is missing or inconclusive, and when neither is confident
// the whole block is kept as the payee with the row flagged
// low-confidence. Splitting is deterministic: the same block and
// context always produce the same [Result].
//
// # Example
//
//	res := payee.Default().Split("ACME SUPPLY CO OFFICE CHAIRS QTY 4", payee.Context{})
//	// res.Payee == "ACME SUPPLY CO"
//	// res.Description == "OFFICE CHAIRS QTY 4"
package payee
