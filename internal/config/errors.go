package config

import "fmt"

// Error marks a configuration failure. The process cannot serve the form
// without a valid catalog and category map, so callers treat it as fatal.
// Use errors.As(err, new(*config.Error)) to detect it.
type Error struct {
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func wrap(err error) error {
	return &Error{Err: err}
}

// PermissionError represents a permission-related config error
type PermissionError struct {
	Path    string
	Fix     string // Suggested fix command
	Details string // Additional context
}

func (e *PermissionError) Error() string {
	msg := fmt.Sprintf("permission denied (cannot read config): %s\n", e.Path)
	if e.Details != "" {
		msg += e.Details + "\n"
	}
	msg += "Fix: " + e.Fix
	return msg
}

// NotFoundError represents a missing config resource
type NotFoundError struct {
	Path string
	What string // "question catalog", "category map", ...
	Hint string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found: %s", e.What, e.Path)
	if e.Hint != "" {
		msg += "\n\n" + e.Hint
	}
	return msg
}

// InvalidConfigError represents a malformed config resource
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid config: %s", e.Path)
	if e.Message != "" {
		msg += "\n" + e.Message
	}
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}
