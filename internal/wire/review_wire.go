package wire

import (
	"restaurant-rating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// Reviews are addressed by their composite (visitor, restaurant) key
	r.Post("/api/reviews", reviewHandler.CreateReview)
	r.Get("/api/reviews/{visitorId}/{restaurantId}", reviewHandler.GetReview)
	r.Put("/api/reviews/{visitorId}/{restaurantId}", reviewHandler.UpdateReview)
	r.Delete("/api/reviews/{visitorId}/{restaurantId}", reviewHandler.DeleteReview)

	// Paged, sorted review queries per restaurant
	r.Get("/api/restaurants/{id}/reviews", reviewHandler.GetRestaurantReviews)
	r.Get("/api/restaurants/{id}/reviews/by-rating", reviewHandler.GetRestaurantReviewsByRating)
}
