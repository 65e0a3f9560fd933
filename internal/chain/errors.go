package chain

import "errors"

var (
	// ErrNotFound reports that a point lookup had no match in the selected
	// source.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument reports malformed caller input rejected at the
	// facade boundary before any source is touched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSourceUnavailable signals that a source cannot serve the request.
	// It only ever triggers fallback and is never surfaced to callers.
	ErrSourceUnavailable = errors.New("source unavailable")
)
