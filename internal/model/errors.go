package model

import "errors"

var (
	// ErrNotFound is returned when a lookup by id or slug yields no match.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a unique field would be duplicated on
	// creation.
	ErrConflict = errors.New("conflict")

	// ErrBrokenReference is returned when a stored foreign id does not
	// resolve. Unlike ErrNotFound it signals a data-integrity fault, not a
	// bad request.
	ErrBrokenReference = errors.New("broken reference")
)
