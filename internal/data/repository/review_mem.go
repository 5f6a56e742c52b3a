package repository

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"restaurant-rating/internal/data/entity"
	"restaurant-rating/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reviewMemoryRepository struct {
	mu      sync.RWMutex
	reviews map[entity.ReviewKey]entity.Review
	log     *zap.Logger
}

func NewReviewMemoryRepository(log *zap.Logger) ReviewRepository {
	return &reviewMemoryRepository{
		reviews: make(map[entity.ReviewKey]entity.Review),
		log:     log.With(zap.String("repository", "review-memory")),
	}
}

func (r *reviewMemoryRepository) Save(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[review.Key] = *review
	return nil
}

func (r *reviewMemoryRepository) FindByKey(ctx context.Context, key entity.ReviewKey) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[key]
	if !ok {
		return nil, nil
	}

	return &review, nil
}

func (r *reviewMemoryRepository) ExistsByKey(ctx context.Context, key entity.ReviewKey) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.reviews[key]
	return ok, nil
}

func (r *reviewMemoryRepository) DeleteByKey(ctx context.Context, key entity.ReviewKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[key]; !ok {
		return fmt.Errorf("review by visitor %s for restaurant %s: %w",
			key.VisitorID.String(), key.RestaurantID.String(), apperr.ErrNotFound)
	}

	delete(r.reviews, key)
	return nil
}

func (r *reviewMemoryRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []*entity.Review
	for key, review := range r.reviews {
		if key.RestaurantID == restaurantID {
			rev := review
			reviews = append(reviews, &rev)
		}
	}

	return reviews, nil
}

func (r *reviewMemoryRepository) FindByVisitorID(ctx context.Context, visitorID uuid.UUID) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []*entity.Review
	for key, review := range r.reviews {
		if key.VisitorID == visitorID {
			rev := review
			reviews = append(reviews, &rev)
		}
	}

	return reviews, nil
}

func (r *reviewMemoryRepository) DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for key := range r.reviews {
		if key.RestaurantID == restaurantID {
			delete(r.reviews, key)
			deleted++
		}
	}

	return deleted, nil
}

func (r *reviewMemoryRepository) DeleteByVisitorID(ctx context.Context, visitorID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for key := range r.reviews {
		if key.VisitorID == visitorID {
			delete(r.reviews, key)
			deleted++
		}
	}

	return deleted, nil
}

func (r *reviewMemoryRepository) CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for key := range r.reviews {
		if key.RestaurantID == restaurantID {
			count++
		}
	}

	return count, nil
}

func (r *reviewMemoryRepository) FindByRestaurantIDPaged(ctx context.Context, restaurantID uuid.UUID, limit, offset int, sortField string, desc bool) ([]*entity.Review, error) {
	if _, ok := reviewSortColumns[sortField]; !ok {
		return nil, fmt.Errorf("sort field %q: %w", sortField, apperr.ErrInvalidArgument)
	}

	reviews, _ := r.FindByRestaurantID(ctx, restaurantID)

	sort.SliceStable(reviews, func(i, j int) bool {
		c := compareReviewField(reviews[i], reviews[j], sortField)
		if c != 0 {
			if desc {
				return c > 0
			}
			return c < 0
		}
		// Ties broken by composite key ascending, regardless of direction.
		return lessReviewKey(reviews[i].Key, reviews[j].Key)
	})

	if offset >= len(reviews) {
		return nil, nil
	}

	end := offset + limit
	if end > len(reviews) {
		end = len(reviews)
	}

	return reviews[offset:end], nil
}

func compareReviewField(a, b *entity.Review, field string) int {
	switch field {
	case "rating":
		return a.Rating - b.Rating
	case "reviewText":
		return strings.Compare(derefText(a.ReviewText), derefText(b.ReviewText))
	case "visitorId":
		return bytes.Compare(a.Key.VisitorID[:], b.Key.VisitorID[:])
	case "restaurantId":
		return bytes.Compare(a.Key.RestaurantID[:], b.Key.RestaurantID[:])
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

func lessReviewKey(a, b entity.ReviewKey) bool {
	if c := bytes.Compare(a.VisitorID[:], b.VisitorID[:]); c != 0 {
		return c < 0
	}
	return bytes.Compare(a.RestaurantID[:], b.RestaurantID[:]) < 0
}

func derefText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
