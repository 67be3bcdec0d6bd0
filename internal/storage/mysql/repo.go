package mysql

import (
	"context"
	"database/sql"

	"matcha_map/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) error {
	var createdAt any
	if !rv.CreatedAt.IsZero() {
		createdAt = rv.CreatedAt.UTC()
	}
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID,
		rv.CafeID,
		rv.Rating,
		rv.Comment,
		rv.Author,
		createdAt, // nil lets the DB stamp CURRENT_TIMESTAMP
	)
	return err
}

func (r *Repo) ListReviews(ctx context.Context, cafeID string, pg domain.PageQuery) (domain.ReviewsPage, error) {
	limit := pg.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, cafeID, limit)
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	defer rows.Close()

	items, err := scanReviews(rows)
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	return domain.ReviewsPage{Items: items}, nil
}

func (r *Repo) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listAllReviewsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func scanReviews(rows *sql.Rows) ([]domain.Review, error) {
	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rv.ID,
			&rv.CafeID,
			&rv.Rating,
			&rv.Comment,
			&rv.Author,
			&createdAt,
		); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			rv.CreatedAt = createdAt.Time.UTC()
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
