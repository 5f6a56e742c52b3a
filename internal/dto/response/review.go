package response

import (
	"time"

	"restaurant-rating/internal/data/entity"
)

type ReviewResponse struct {
	VisitorID    string    `json:"visitor_id"`
	RestaurantID string    `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	ReviewText   *string   `json:"review_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		VisitorID:    review.Key.VisitorID.String(),
		RestaurantID: review.Key.RestaurantID.String(),
		Rating:       review.Rating,
		ReviewText:   review.ReviewText,
		CreatedAt:    review.CreatedAt,
	}
}
