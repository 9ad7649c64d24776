// Package render writes parse results in their reporting formats: CSV
// and JSON for the records and raw chunks, standalone HTML and PNG
// treemaps for the payee rollup.
//
// Every writer takes an io.Writer; each has a *File convenience that
// creates the path and closes it. Writers never reorder or filter what
// they are given.
package render
