package model

import "strings"

// Video is a published video. Hash is its immutable identifier and Author the
// pseudo of the user who published it.
type Video struct {
	Hash         string `json:"hash"`
	Name         string `json:"name"`
	Author       string `json:"author"`
	CreationYear int    `json:"creationYear"`
	Duration     int    `json:"duration"`
	URL          string `json:"url"`
}

// Valid reports whether the video can be stored.
func (v Video) Valid() bool {
	return strings.TrimSpace(v.Hash) != "" &&
		strings.TrimSpace(v.Name) != "" &&
		strings.TrimSpace(v.Author) != "" &&
		v.CreationYear >= 1970 &&
		v.Duration > 0
}
