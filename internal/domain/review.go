package domain

import "time"

type Review struct {
	ID        string
	CafeID    string
	Rating    int // 1..5
	Comment   string
	Author    string
	CreatedAt time.Time
}

// NewReview is the pre-validation submission payload; the service
// assigns ID and CreatedAt.
type NewReview struct {
	CafeID  string
	Rating  int
	Comment string
	Author  string
}

// Aggregate is a derived view over a cafe's reviews, never persisted.
// Average is the unrounded value used for ranking; Display is rounded
// to one decimal for presentation only. The two are kept as distinct
// fields so rounding never leaks into comparisons.
type Aggregate struct {
	Average float64
	Display float64
	Count   int
}
