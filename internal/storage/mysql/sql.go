package mysql

const insertReviewSQL = `
INSERT INTO reviews
  (id, cafe_id, rating, comment, author, created_at)
VALUES
  (?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Detail view: newest first, aligned with the index on
// (cafe_id, created_at, id).
const listReviewsSQL = `
SELECT id, cafe_id, rating, comment, author, created_at
FROM reviews
WHERE cafe_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`

// Catalog-wide aggregation input: the whole set, no ordering contract.
const listAllReviewsSQL = `
SELECT id, cafe_id, rating, comment, author, created_at
FROM reviews
`
