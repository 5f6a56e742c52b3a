package response

import (
	"time"

	"restaurant-rating/internal/data/entity"
)

type RestaurantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CuisineType string    `json:"cuisine_type"`
	AverageBill float64   `json:"average_bill"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID.String(),
		Name:        restaurant.Name,
		Description: restaurant.Description,
		CuisineType: string(restaurant.CuisineType),
		AverageBill: restaurant.AverageBill,
		Rating:      restaurant.Rating,
		CreatedAt:   restaurant.CreatedAt,
		UpdatedAt:   restaurant.UpdatedAt,
	}
}
