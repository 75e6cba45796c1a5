package model

import "strings"

// Review is the rating a user gives to a video. A user reviews a video at
// most once: (Pseudo, Hash) identifies a review. ID is a storage surrogate
// and is never exposed.
type Review struct {
	ID      int64  `json:"-"`
	Pseudo  string `json:"pseudo"`
	Hash    string `json:"hash"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// MinRating and MaxRating bound Review.Rating.
const (
	MinRating = 0
	MaxRating = 10
)

// Valid reports whether the review can be stored.
func (r Review) Valid() bool {
	return strings.TrimSpace(r.Pseudo) != "" &&
		strings.TrimSpace(r.Hash) != "" &&
		r.Rating >= MinRating && r.Rating <= MaxRating
}

// ReviewEvent is a review change published by an external provider.
type ReviewEvent struct {
	Review
	ProviderID string          `json:"providerId"`
	EventType  ReviewEventType `json:"eventType"`
}

// ReviewEventType defines the type of a review event.
type ReviewEventType string

const (
	ReviewEventTypePut    = ReviewEventType("put")
	ReviewEventTypeDelete = ReviewEventType("delete")
)
