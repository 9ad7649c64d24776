// Package locate finds check register sections inside agenda packets.
//
// Agenda packets bury the disbursement register somewhere among staff
// reports and minutes. [Find] scans extracted page text for the
// register's heading signals and returns the page ranges that hold
// register content, each annotated with the payment periods its block
// headers name. Non-contiguous register sections become separate
// ranges; continuation pages extend the range they belong to.
//
// When no page carries the register signals, Find returns
// [ErrNoRegister].
package locate
