package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"matcha_map/internal/domain"
)

type QueryService struct {
	cafes    []domain.Cafe
	store    domain.ReviewStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(cafes []domain.Cafe, s domain.ReviewStore, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{cafes: cafes, store: s, cache: c, cacheTTL: ttl}
}

// ListCafes returns the catalog filtered and ranked for display.
// Aggregates are recomputed from the full review set on every call;
// only raw review pages are cached, never derived values.
func (s *QueryService) ListCafes(ctx context.Context, f domain.Filters, now time.Time) ([]domain.CafeView, error) {
	all, err := s.store.ListAllReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews for ranking: %w", err)
	}
	aggs := AggregateRatings(all)

	ranked := Rank(s.cafes, aggs, f, now)
	out := make([]domain.CafeView, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, view(c, aggs, now))
	}
	return out, nil
}

// GetCafe returns a single decorated catalog entry.
func (s *QueryService) GetCafe(ctx context.Context, id string, now time.Time) (domain.CafeView, error) {
	c, ok := lookup(s.cafes, id)
	if !ok {
		return domain.CafeView{}, domain.ErrNotFound
	}
	all, err := s.store.ListAllReviews(ctx)
	if err != nil {
		return domain.CafeView{}, fmt.Errorf("list reviews for cafe %s: %w", id, err)
	}
	v := domain.CafeView{Cafe: c, Open: IsOpen(c, now)}
	if a, ok := AggregateFor(all, id); ok {
		v.Rating = &domain.RatingView{Average: a.Display, Count: a.Count}
	}
	return v, nil
}

// ListReviews returns a cafe's reviews newest first, behind the cache.
func (s *QueryService) ListReviews(ctx context.Context, id string, pg domain.PageQuery) (domain.ReviewsPage, error) {
	if _, ok := lookup(s.cafes, id); !ok {
		return domain.ReviewsPage{}, domain.ErrNotFound
	}

	key := reviewsKey(id, pg)
	var out domain.ReviewsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	rs, err := s.store.ListReviews(ctx, id, pg)
	if err != nil {
		return domain.ReviewsPage{}, err
	}

	// copy before caching so callers can't mutate the cached value
	// through the shared backing array
	cp := deepCopyReviewsPage(rs)
	if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return cp, nil
}

// MapPins builds the feed for the map surface: pins in ranked order and
// a center/zoom hint matched to the area filter.
func (s *QueryService) MapPins(ctx context.Context, f domain.Filters, now time.Time) (domain.MapView, error) {
	all, err := s.store.ListAllReviews(ctx)
	if err != nil {
		return domain.MapView{}, fmt.Errorf("list reviews for map: %w", err)
	}
	ranked := Rank(s.cafes, AggregateRatings(all), f, now)

	mv := domain.MapView{Pins: make([]domain.MapPin, 0, len(ranked))}
	mv.Center, mv.Zoom = mapSettings(f.Area)
	for _, c := range ranked {
		mv.Pins = append(mv.Pins, domain.MapPin{
			CafeID: c.ID,
			Coords: domain.Coords{Lat: c.Lat, Lng: c.Lng},
			Open:   IsOpen(c, now),
		})
	}
	return mv, nil
}

func mapSettings(area string) (domain.Coords, int) {
	switch area {
	case domain.AreaCBD:
		return domain.Coords{Lat: -34.9285, Lng: 138.6007}, 15
	case domain.AreaOutside:
		return domain.Coords{Lat: -34.89, Lng: 138.56}, 12
	default:
		return domain.Coords{Lat: -34.91, Lng: 138.58}, 12
	}
}

func view(c domain.Cafe, aggs map[string]domain.Aggregate, now time.Time) domain.CafeView {
	v := domain.CafeView{Cafe: c, Open: IsOpen(c, now)}
	if a, ok := aggs[c.ID]; ok {
		v.Rating = &domain.RatingView{Average: a.Display, Count: a.Count}
	}
	return v
}

func lookup(cafes []domain.Cafe, id string) (domain.Cafe, bool) {
	for _, c := range cafes {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Cafe{}, false
}

func reviewsKey(id string, pg domain.PageQuery) string {
	return fmt.Sprintf("reviews:%s:%d:%s", id, pg.Limit, pg.Sort)
}

func deepCopyReviewsPage(in domain.ReviewsPage) domain.ReviewsPage {
	var out domain.ReviewsPage
	if n := len(in.Items); n > 0 {
		out.Items = make([]domain.Review, n)
		copy(out.Items, in.Items)
	}
	return out
}
