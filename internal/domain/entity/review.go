package entity

import "time"

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating with a comment left by a user on a product.
type Review struct {
	ID        int64
	UserID    int64
	ProductID int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ValidRating reports whether r is within the accepted bounds.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// ReviewWithAuthor is a review enriched with the author's display name.
// AuthorName is nil when the author no longer exists.
type ReviewWithAuthor struct {
	Review
	AuthorName *string
}

// ReviewSummary aggregates the ratings of one product.
type ReviewSummary struct {
	ProductID int64
	Average   float64
	Count     int
}
