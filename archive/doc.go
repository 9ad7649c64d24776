// Package archive extracts a packet's check register into a standalone
// set of artifacts: the register pages as their own PDF, the raw row
// chunks as JSON, the parsed records as CSV, and a manifest describing
// the run.
//
// Artifacts land under <dir>/<year>/ named by the register's period
// span, so a June 2025 register becomes 2025/2025-06-register.pdf and
// a June+July one 2025/2025-06-07-register.pdf. Re-running over the
// same packet overwrites the same files.
package archive
