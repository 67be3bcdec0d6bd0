package app

import (
	"sort"
	"time"

	"matcha_map/internal/domain"
)

// Rank filters and orders the catalog for display. Filters are
// independent toggles: area classification and open-at-now. The sort is
// rating-dominant with name as the only tie-break:
//
//  1. both cafes aggregated: higher unrounded average first
//  2. exactly one aggregated: the rated cafe first, whatever its value
//  3. neither aggregated: name ascending
//
// The sort is stable and deterministic for identical inputs, and the
// input slice is never mutated; callers get a fresh slice back.
func Rank(cafes []domain.Cafe, aggs map[string]domain.Aggregate, f domain.Filters, now time.Time) []domain.Cafe {
	out := make([]domain.Cafe, 0, len(cafes))
	for _, c := range cafes {
		if f.Area != "" && c.Area != f.Area {
			continue
		}
		if f.OpenOnly && !IsOpen(c, now) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessRanked(out[i], out[j], aggs)
	})
	return out
}

func lessRanked(a, b domain.Cafe, aggs map[string]domain.Aggregate) bool {
	ra, okA := aggs[a.ID]
	rb, okB := aggs[b.ID]
	switch {
	case okA && okB:
		return ra.Average > rb.Average
	case okA != okB:
		return okA // a rated cafe outranks an unrated one
	default:
		return a.Name < b.Name
	}
}
