package repository

import "errors"

var (
	// ErrConflict is returned by CreateIfFree when another non-cancelled
	// reservation already occupies the table within the conflict window.
	ErrConflict = errors.New("conflicting reservation exists")
)
