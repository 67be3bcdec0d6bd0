package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"matcha_map/internal/domain"
)

type ReviewService struct {
	cafes []domain.Cafe
	store domain.ReviewStore
	cache domain.Cache
}

func NewReviewService(cafes []domain.Cafe, s domain.ReviewStore, c domain.Cache) *ReviewService {
	return &ReviewService{cafes: cafes, store: s, cache: c}
}

// SubmitReview validates a submission, persists it, and evicts the
// review-page caches for that cafe. Validation runs first; a rejected
// submission never reaches the store. There is no retry on store
// failure; the error surfaces to the caller as-is.
func (s *ReviewService) SubmitReview(ctx context.Context, in domain.NewReview) (domain.Review, error) {
	if err := s.validate(in); err != nil {
		return domain.Review{}, err
	}

	r := domain.Review{
		ID:        uuid.NewString(),
		CafeID:    in.CafeID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		Author:    strings.TrimSpace(in.Author),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateReview(ctx, r); err != nil {
		return domain.Review{}, fmt.Errorf("create review for %s: %w", in.CafeID, err)
	}

	if s.cache != nil {
		s.invalidateReviews(ctx, in.CafeID)
	}
	return r, nil
}

func (s *ReviewService) validate(in domain.NewReview) error {
	fields := make(map[string]string)

	if _, ok := lookup(s.cafes, in.CafeID); !ok {
		return domain.ErrNotFound
	}
	if in.Rating < 1 || in.Rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}
	if strings.TrimSpace(in.Comment) == "" {
		fields["comment"] = "comment must not be empty"
	}
	if strings.TrimSpace(in.Author) == "" {
		fields["author"] = "author must not be empty"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// invalidate the common review-page cache variants for a cafe. The API
// default is limit=50 sort=-created_at; clear a couple more limits too.
func (s *ReviewService) invalidateReviews(ctx context.Context, cafeID string) {
	for _, lim := range []int{50, 100, 200} {
		_ = s.cache.Del(ctx, reviewsKey(cafeID, domain.PageQuery{Limit: lim, Sort: "-created_at"}))
	}
}
