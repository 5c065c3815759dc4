/*
Package storage implements the persistent response history.

Every submission is appended as one row of a comma-delimited UTF-8 file:

	Q1,Q2,...,QN
	5,4,3,...

The header is written once, when the file is created. Rows are never
rewritten or deleted. The store assumes a single writer: two processes
appending to the same file at the same time may interleave rows.
*/
package storage

// Store defines the interface for persistent response storage.
type Store interface {
	// LoadHistory returns every record in submission order. A missing file
	// yields an empty history, not an error.
	LoadHistory() (History, error)

	// Append adds one record to the end of the history. Appends are not
	// idempotent and must not be retried blindly.
	Append(rec Record) error

	// Path returns the location of the backing file.
	Path() string
}
