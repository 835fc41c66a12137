package store

import "errors"

var (
	// ErrDuplicateUser indicates a registration attempt for an email that
	// already has a stored credential record. Registration never
	// overwrites an existing record.
	ErrDuplicateUser = errors.New("user already registered")

	// ErrUnknownUser indicates no credential record exists for the email.
	ErrUnknownUser = errors.New("no user registered with that email")

	// ErrWrongPassword indicates the hash derived from the presented
	// password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")
)
