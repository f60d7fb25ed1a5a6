package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrConfig indicates a malformed or semantically invalid configuration:
	// a template's .hatch.toml, a bookmark default or an ignore rule.
	ErrConfig = errors.New("configuration error")

	// ErrNotFound indicates a bookmark, template or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrCancelled indicates the operator aborted an interactive prompt.
	ErrCancelled = errors.New("cancelled by user")

	// ErrIO indicates a filesystem or repository operation failed.
	ErrIO = errors.New("i/o error")
)
