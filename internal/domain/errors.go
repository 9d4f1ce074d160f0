package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a record with the same identifier is present.
	ErrAlreadyExists = errors.New("already exists")
)
