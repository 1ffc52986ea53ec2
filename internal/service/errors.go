package service

import "errors"

var (
	// ErrNotFound covers both truly absent records and records owned by
	// another user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned on registration with a duplicate username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers unknown usernames, wrong passwords, and
	// bad bearer tokens alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
