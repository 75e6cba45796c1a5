package repository

import "errors"

// ErrNotFound is returned when a requested review is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when the user already reviewed the video.
var ErrAlreadyExists = errors.New("already exists")
