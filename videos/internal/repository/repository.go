package repository

import "errors"

// ErrNotFound is returned when a requested video is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a video with the same hash exists.
var ErrAlreadyExists = errors.New("already exists")
