package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateDate is returned when a farewell insert or update
	// collides with the unique date index.
	ErrDuplicateDate = errors.New("a farewell already exists for that date")
)
