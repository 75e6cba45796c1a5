package repository

import "errors"

// ErrNotFound is returned when no credentials exist for a pseudo.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when credentials already exist for a pseudo.
var ErrAlreadyExists = errors.New("already exists")
