// Package roster answers "is this a real group?" against a spreadsheet
// column of registered group numbers. The roster is fetched lazily and
// cached; Refresh re-reads it on demand. Callers are expected to fail open
// when a lookup errors, since queue correctness never depends on the roster.
package roster
