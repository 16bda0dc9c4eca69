package services

import "errors"

var (
	// ErrUserNameTaken is returned when a create or update would give two
	// authors the same user name.
	ErrUserNameTaken = errors.New("username already taken")

	// ErrAuthorNotFound is returned when a post references an author id
	// that does not resolve.
	ErrAuthorNotFound = errors.New("author not found")
)
