package domain

import "errors"

var (
	// ErrDuplicateUser means a record already exists for the username.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrRecordNotFound means no record exists for the username.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidDate means the string is not an ISO calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrBlankText means a note text was empty or whitespace-only.
	ErrBlankText = errors.New("text required")

	// ErrStorage wraps I/O failures from the record store's write path.
	// Read-side corruption degrades to an empty collection instead.
	ErrStorage = errors.New("storage failure")
)
