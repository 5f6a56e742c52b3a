package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-rating/internal/data/entity"
	"restaurant-rating/internal/data/repository"
	"restaurant-rating/internal/dto/request"
	"restaurant-rating/internal/dto/response"
	"restaurant-rating/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error)
	GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error)
	GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error)
	UpdateRestaurant(ctx context.Context, restaurantID string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error)
	DeleteRestaurant(ctx context.Context, restaurantID string) error
}

type restaurantService struct {
	repo  *repository.Repository
	locks *ratingGuard
	log   *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, locks *ratingGuard, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo:  repo,
		locks: locks,
		log:   log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error) {
	now := time.Now()
	restaurant := &entity.Restaurant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		CuisineType: entity.CuisineType(req.CuisineType),
		AverageBill: req.AverageBill,
		Rating:      0, // no reviews yet
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.log.Error("Failed to create restaurant", zap.Error(err))
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	s.log.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", restaurant.Name),
	)

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("restaurant ID %q: %w", restaurantID, apperr.ErrInvalidArgument)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		return nil, fmt.Errorf("find restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, apperr.ErrNotFound)
	}

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error) {
	restaurants, err := s.repo.Restaurant.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	responses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		responses[i] = response.RestaurantToResponse(restaurant)
	}

	return responses, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, restaurantID string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("restaurant ID %q: %w", restaurantID, apperr.ErrInvalidArgument)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		return nil, fmt.Errorf("find restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, apperr.ErrNotFound)
	}

	// Rating stays untouched: the repository Update never writes it.
	restaurant.Name = req.Name
	restaurant.Description = req.Description
	restaurant.CuisineType = entity.CuisineType(req.CuisineType)
	restaurant.AverageBill = req.AverageBill

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("update restaurant: %w", err)
	}

	s.log.Info("Restaurant updated", zap.String("restaurant_id", restaurantID))

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

// DeleteRestaurant removes the restaurant and cascades deletion of every
// review referencing it. The restaurant's lock is held so an in-flight
// review mutation cannot interleave with the cascade.
func (s *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID string) error {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("restaurant ID %q: %w", restaurantID, apperr.ErrInvalidArgument)
	}

	s.locks.Lock(restaurantUUID)
	defer s.locks.Unlock(restaurantUUID)

	exists, err := s.repo.Restaurant.Exists(ctx, restaurantUUID)
	if err != nil {
		return fmt.Errorf("check restaurant exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("restaurant %s: %w", restaurantID, apperr.ErrNotFound)
	}

	deleted, err := s.repo.Review.DeleteByRestaurantID(ctx, restaurantUUID)
	if err != nil {
		return fmt.Errorf("cascade delete reviews: %w", err)
	}

	if err := s.repo.Restaurant.Delete(ctx, restaurantUUID); err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}

	s.log.Info("Restaurant deleted",
		zap.String("restaurant_id", restaurantID),
		zap.Int64("cascaded_reviews", deleted),
	)

	return nil
}
