package wire

import (
	"restaurant-rating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRestaurant(r chi.Router, restaurantHandler *adaptor.RestaurantHandler) {
	r.Post("/api/restaurants", restaurantHandler.CreateRestaurant)
	r.Get("/api/restaurants", restaurantHandler.GetRestaurants)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurantByID)
	r.Put("/api/restaurants/{id}", restaurantHandler.UpdateRestaurant)

	// Deleting a restaurant cascades deletion of its reviews
	r.Delete("/api/restaurants/{id}", restaurantHandler.DeleteRestaurant)
}
