package app_test

import (
	"math"
	"testing"

	"matcha_map/internal/app"
	"matcha_map/internal/domain"
)

func rev(cafeID string, rating int) domain.Review {
	return domain.Review{CafeID: cafeID, Rating: rating}
}

func TestAggregateRatings_AbsentNotZero(t *testing.T) {
	aggs := app.AggregateRatings([]domain.Review{rev("munch-deli", 5)})
	if _, ok := aggs["luxxe"]; ok {
		t.Fatal("cafe with no reviews must have no aggregate entry, not a zero value")
	}
	if len(aggs) != 1 {
		t.Fatalf("want exactly one aggregate, got %d", len(aggs))
	}
}

func TestAggregateRatings_AverageAndCount(t *testing.T) {
	aggs := app.AggregateRatings([]domain.Review{
		rev("munch-deli", 5),
		rev("munch-deli", 4),
		rev("munch-deli", 3),
		rev("luxxe", 2),
	})

	md, ok := aggs["munch-deli"]
	if !ok {
		t.Fatal("missing munch-deli aggregate")
	}
	if md.Count != 3 || md.Average != 4.0 {
		t.Fatalf("munch-deli: got avg %v count %d, want 4.0 / 3", md.Average, md.Count)
	}
	if lx := aggs["luxxe"]; lx.Count != 1 || lx.Average != 2.0 {
		t.Fatalf("luxxe: got %+v", lx)
	}
}

func TestAggregateRatings_DisplayRoundedAverageNot(t *testing.T) {
	// ratings [5,4,4] -> average 4.333..., display 4.3
	aggs := app.AggregateRatings([]domain.Review{
		rev("blended", 5), rev("blended", 4), rev("blended", 4),
	})
	a := aggs["blended"]
	if a.Display != 4.3 {
		t.Fatalf("display: got %v, want 4.3", a.Display)
	}
	if math.Abs(a.Average-13.0/3.0) > 1e-12 {
		t.Fatalf("average must stay unrounded, got %v", a.Average)
	}
}

func TestAggregateFor_MatchesMapForm(t *testing.T) {
	set := []domain.Review{rev("munch-deli", 5), rev("munch-deli", 4), rev("munch-deli", 3)}

	a, ok := app.AggregateFor(set, "munch-deli")
	if !ok || a.Average != 4.0 || a.Count != 3 {
		t.Fatalf("got %+v ok=%v", a, ok)
	}
	if _, ok := app.AggregateFor(set, "yuku-do"); ok {
		t.Fatal("unreviewed cafe must report absent")
	}
}
