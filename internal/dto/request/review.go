package request

type CreateReviewRequest struct {
	VisitorID    string  `json:"visitor_id" validate:"required,uuid4"`
	RestaurantID string  `json:"restaurant_id" validate:"required,uuid4"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText   *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
}

// UpdateReviewRequest replaces rating and text; the composite identity is
// immutable and comes from the URL.
type UpdateReviewRequest struct {
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
}
