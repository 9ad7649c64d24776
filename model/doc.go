// Package model provides the value types shared by every stage of the
// check register pipeline.
//
// This package defines the user-facing data structures produced and
// consumed by the locator, row parser, splitter, and reconciler. All of
// them are plain values: once a stage returns one, nothing mutates it.
//
// # Monetary amounts
//
// Amounts are decimal.Decimal throughout. [ParseAmount] accepts the
// register's printed forms ("$6,847.50", "$-120.00") and [FormatAmount]
// renders the canonical two-decimal form. Floats never carry money;
// they appear only in layout geometry.
//
// # Periods and page ranges
//
// A [Period] is one reporting month. A [PageRange] bounds one contiguous
// register section within a packet and carries every Period it covers:
//
//	rng := model.PageRange{Start: 7, End: 21, Periods: []model.Period{{Year: 2025, Month: 6}}}
//	rng.Label() // "2025-06"
//
// Multi-month ranges join first and last months ("2025-06-07", or
// "2025-12-2026-01" across a year boundary).
//
// # Records
//
// [RawRow] is a parsed-but-unsplit table row; [CheckRecord] is the
// finalized form after payee/description splitting. [ControlTotal],
// [ReconciliationResult], and [PayeeAggregate] carry the reconciliation
// side of the pipeline.
//
// # Geometry
//
// [Rect] is the rectangle type used by the treemap layout engine.
package model
