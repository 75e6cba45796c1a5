package repository

import "errors"

// ErrNotFound is returned when a requested user is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a user with the same pseudo exists.
var ErrAlreadyExists = errors.New("already exists")
