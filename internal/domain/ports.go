package domain

import "context"

// ReviewStore is the persistence boundary for reviews. The catalog is
// static in-process data; only reviews cross a network.
type ReviewStore interface {
	// Write path
	CreateReview(ctx context.Context, r Review) error

	// Read paths
	ListReviews(ctx context.Context, cafeID string, pg PageQuery) (ReviewsPage, error)
	ListAllReviews(ctx context.Context) ([]Review, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models & queries

// CafeView decorates a catalog entry with derived state for responses.
type CafeView struct {
	Cafe
	Open   bool
	Rating *RatingView // nil when the cafe has no reviews yet
}

type RatingView struct {
	Average float64
	Count   int
}

// Filters are the explicit toggle values for the ranking pipeline;
// they are parameters, never ambient state.
type Filters struct {
	Area     string // "", "cbd" or "outside"
	OpenOnly bool
}

type PageQuery struct {
	Limit int
	Sort  string
}

type ReviewsPage struct {
	Items []Review
}

// MapView is the feed the map surface consumes: pinned locations in
// display order plus a center/zoom hint.
type MapView struct {
	Pins   []MapPin
	Center Coords
	Zoom   int
}

type MapPin struct {
	CafeID string
	Coords Coords
	Open   bool
}

type Coords struct{ Lat, Lng float64 }
