package usecase_test

import (
	"context"
	"testing"

	"restaurant-rating/internal/dto/request"
	"restaurant-rating/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurant_StartsUnrated(t *testing.T) {
	svc := newTestService(t)

	restaurant, err := svc.Restaurant.CreateRestaurant(context.Background(), &request.CreateRestaurantRequest{
		Name:        "Trattoria",
		Description: "family-run",
		CuisineType: "ITALIAN",
		AverageBill: 32.00,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, restaurant.ID)
	assert.Equal(t, "ITALIAN", restaurant.CuisineType)
	assert.Equal(t, 0.00, restaurant.Rating)
}

func TestRestaurantCRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurantID := createRestaurant(t, svc, "Bistro")

	fetched, err := svc.Restaurant.GetRestaurantByID(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, "Bistro", fetched.Name)

	updated, err := svc.Restaurant.UpdateRestaurant(ctx, restaurantID, &request.UpdateRestaurantRequest{
		Name:        "Le Bistro",
		Description: "renamed",
		CuisineType: "FRENCH",
		AverageBill: 45.00,
	})
	require.NoError(t, err)
	assert.Equal(t, "Le Bistro", updated.Name)
	assert.Equal(t, "FRENCH", updated.CuisineType)

	restaurants, err := svc.Restaurant.GetRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)

	require.NoError(t, svc.Restaurant.DeleteRestaurant(ctx, restaurantID))

	_, err = svc.Restaurant.GetRestaurantByID(ctx, restaurantID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRestaurant_NotFoundPaths(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	unknown := uuid.NewString()

	_, err := svc.Restaurant.GetRestaurantByID(ctx, unknown)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Restaurant.UpdateRestaurant(ctx, unknown, &request.UpdateRestaurantRequest{
		Name:        "x",
		Description: "x",
		CuisineType: "CHINESE",
		AverageBill: 10,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = svc.Restaurant.DeleteRestaurant(ctx, unknown)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// Editing a restaurant must never touch the derived rating.
func TestUpdateRestaurant_PreservesRating(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurantID := createRestaurant(t, svc, "Bistro")
	visitorID := createVisitor(t, svc, "Alice")
	createReview(t, svc, visitorID, restaurantID, 4)
	require.Equal(t, 4.00, restaurantRating(t, svc, restaurantID))

	_, err := svc.Restaurant.UpdateRestaurant(ctx, restaurantID, &request.UpdateRestaurantRequest{
		Name:        "Bistro Nuevo",
		Description: "remodeled",
		CuisineType: "MEXICAN",
		AverageBill: 18.00,
	})
	require.NoError(t, err)

	assert.Equal(t, 4.00, restaurantRating(t, svc, restaurantID))
}

func TestDeleteRestaurant_CascadesReviews(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	restaurantID := createRestaurant(t, svc, "Bistro")
	v1 := createVisitor(t, svc, "Alice")
	v2 := createVisitor(t, svc, "Bob")
	createReview(t, svc, v1, restaurantID, 5)
	createReview(t, svc, v2, restaurantID, 3)

	require.NoError(t, svc.Restaurant.DeleteRestaurant(ctx, restaurantID))

	_, err := svc.Review.GetReview(ctx, v1, restaurantID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.Review.GetReview(ctx, v2, restaurantID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// Visitors are untouched by the cascade
	_, err = svc.Visitor.GetVisitorByID(ctx, v1)
	assert.NoError(t, err)
}
