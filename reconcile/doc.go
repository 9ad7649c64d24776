// Package reconcile checks parsed check records against the totals the
// register itself states, and rolls records up for reporting.
//
// The register prints its own arithmetic: per-subsection subtotals
// (TOTAL CHECKS, TOTAL EFT'S) and a grand total per reporting period.
// [Reconcile] recomputes each period's sum from the parsed records and
// compares it to the stated figure within a tolerance. A mismatch is
// reported, never corrected; the parsed records always stand as
// extracted.
//
// [Aggregates] and [MonthRollups] produce the per-payee and per-period
// rollups behind the treemap and the CLI summary.
package reconcile
