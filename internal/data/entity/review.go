package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewKey is the composite identity of a review. Comparable, so it works
// as a map key in the in-memory store.
type ReviewKey struct {
	VisitorID    uuid.UUID `db:"visitor_id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
}

type Review struct {
	Key        ReviewKey
	Rating     int       `db:"rating"` // 1-5
	ReviewText *string   `db:"review_text"`
	CreatedAt  time.Time `db:"created_at"`
}
