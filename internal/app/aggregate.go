package app

import (
	"math"

	"matcha_map/internal/domain"
)

// AggregateRatings reduces a review set to one Aggregate per cafe.
// A cafe with no matching reviews has no map entry at all; callers use
// absence to tell "no ratings yet" apart from a rated-zero value.
func AggregateRatings(reviews []domain.Review) map[string]domain.Aggregate {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range reviews {
		sums[r.CafeID] += r.Rating
		counts[r.CafeID]++
	}

	out := make(map[string]domain.Aggregate, len(counts))
	for id, n := range counts {
		avg := float64(sums[id]) / float64(n)
		out[id] = domain.Aggregate{
			Average: avg,
			Display: math.Round(avg*10) / 10,
			Count:   n,
		}
	}
	return out
}

// AggregateFor returns the aggregate for one cafe; ok is false when the
// cafe has no reviews in the set.
func AggregateFor(reviews []domain.Review, cafeID string) (domain.Aggregate, bool) {
	var sum, n int
	for _, r := range reviews {
		if r.CafeID == cafeID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return domain.Aggregate{}, false
	}
	avg := float64(sum) / float64(n)
	return domain.Aggregate{Average: avg, Display: math.Round(avg*10) / 10, Count: n}, true
}
