package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnMismatch is returned when a record's width differs from the
	// width of the existing file. Nothing is written.
	ErrColumnMismatch = errors.New("record width does not match response file")

	// ErrInvalidValue is returned when a record holds a value outside
	// MinValue..MaxValue. Nothing is written.
	ErrInvalidValue = errors.New("answer value out of range")
)

// StoreError reports a response file that exists but cannot be parsed.
type StoreError struct {
	Path string
	Line int // 1-based; 0 when unknown
	Err  error
}

func (e *StoreError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt response file %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("corrupt response file %s: %v", e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
