package usecase

import (
	"context"
	"fmt"
	"sync"

	"restaurant-rating/internal/data/repository"
	"restaurant-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ratingGuard serializes the read-reviews -> compute -> write-rating sequence
// per restaurant. Mutations on different restaurants never contend; a global
// lock would be wrong here.
type ratingGuard struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newRatingGuard() *ratingGuard {
	return &ratingGuard{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Lock acquires the mutex for a restaurant id, creating it on first use.
// The per-id mutexes are never removed; the table grows with the number of
// distinct restaurants touched, which is bounded by the dataset.
func (g *ratingGuard) Lock(restaurantID uuid.UUID) {
	g.mu.Lock()
	lock, ok := g.locks[restaurantID]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[restaurantID] = lock
	}
	g.mu.Unlock()

	lock.Lock()
}

func (g *ratingGuard) Unlock(restaurantID uuid.UUID) {
	g.mu.Lock()
	lock := g.locks[restaurantID]
	g.mu.Unlock()

	lock.Unlock()
}

// recomputeRating re-derives a restaurant's rating from the full current set
// of its reviews and persists it: mean of the integer ratings rounded half-up
// to two decimals, or exactly 0 when no reviews remain. Always a full rescan,
// never an incremental adjustment, so no drift can accumulate.
//
// Callers must hold the ratingGuard lock for the restaurant.
func recomputeRating(ctx context.Context, repo *repository.Repository, log *zap.Logger, restaurantID uuid.UUID) error {
	reviews, err := repo.Review.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("fetch reviews for recompute: %w", err)
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	rating := utils.MeanHalfUp(sum, len(reviews))

	if err := repo.Restaurant.UpdateRating(ctx, restaurantID, rating); err != nil {
		return fmt.Errorf("persist recomputed rating: %w", err)
	}

	log.Debug("Restaurant rating recomputed",
		zap.String("restaurant_id", restaurantID.String()),
		zap.Int("review_count", len(reviews)),
		zap.Float64("rating", rating),
	)

	return nil
}
