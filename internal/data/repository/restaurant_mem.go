package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"restaurant-rating/internal/data/entity"
	"restaurant-rating/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type restaurantMemoryRepository struct {
	mu          sync.RWMutex
	restaurants map[uuid.UUID]entity.Restaurant
	log         *zap.Logger
}

func NewRestaurantMemoryRepository(log *zap.Logger) RestaurantRepository {
	return &restaurantMemoryRepository{
		restaurants: make(map[uuid.UUID]entity.Restaurant),
		log:         log.With(zap.String("repository", "restaurant-memory")),
	}
}

func (r *restaurantMemoryRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[restaurant.ID]; ok {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID.String(), apperr.ErrConflict)
	}

	r.restaurants[restaurant.ID] = *restaurant
	return nil
}

func (r *restaurantMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, nil
	}

	return &restaurant, nil
}

func (r *restaurantMemoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.restaurants[id]
	return ok, nil
}

func (r *restaurantMemoryRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.restaurants[restaurant.ID]
	if !ok {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID.String(), apperr.ErrNotFound)
	}

	// Rating is owned by the recompute path; keep the stored value.
	updated := *restaurant
	updated.Rating = existing.Rating
	updated.UpdatedAt = time.Now()
	r.restaurants[restaurant.ID] = updated

	return nil
}

func (r *restaurantMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[id]; !ok {
		return fmt.Errorf("restaurant %s: %w", id.String(), apperr.ErrNotFound)
	}

	delete(r.restaurants, id)
	return nil
}

func (r *restaurantMemoryRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurants := make([]*entity.Restaurant, 0, len(r.restaurants))
	for _, restaurant := range r.restaurants {
		rest := restaurant
		restaurants = append(restaurants, &rest)
	}

	sort.Slice(restaurants, func(i, j int) bool {
		if restaurants[i].CreatedAt.Equal(restaurants[j].CreatedAt) {
			return restaurants[i].ID.String() < restaurants[j].ID.String()
		}
		return restaurants[i].CreatedAt.Before(restaurants[j].CreatedAt)
	})

	return restaurants, nil
}

func (r *restaurantMemoryRepository) UpdateRating(ctx context.Context, restaurantID uuid.UUID, newRating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	restaurant, ok := r.restaurants[restaurantID]
	if !ok {
		return fmt.Errorf("restaurant %s: %w", restaurantID.String(), apperr.ErrNotFound)
	}

	restaurant.Rating = newRating
	restaurant.UpdatedAt = time.Now()
	r.restaurants[restaurantID] = restaurant

	return nil
}
