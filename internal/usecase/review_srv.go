package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-rating/internal/data/entity"
	"restaurant-rating/internal/data/repository"
	"restaurant-rating/internal/dto/request"
	"restaurant-rating/internal/dto/response"
	"restaurant-rating/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultSortField is used when a paged query names no sort field.
const defaultSortField = "rating"

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReview(ctx context.Context, visitorID, restaurantID string) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, visitorID, restaurantID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, visitorID, restaurantID string) error

	// Query layer: read-only, never mutates ratings.
	GetRestaurantReviews(ctx context.Context, restaurantID string, req *request.PageRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetRestaurantReviewsByRating(ctx context.Context, restaurantID string, page, size int, ascending bool) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo  *repository.Repository
	locks *ratingGuard
	log   *zap.Logger
}

func NewReviewService(repo *repository.Repository, locks *ratingGuard, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:  repo,
		locks: locks,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	key, err := parseReviewKey(req.VisitorID, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	// Existence and uniqueness checks plus the recompute run under the
	// restaurant's lock so two concurrent creates cannot both pass the
	// uniqueness check.
	s.locks.Lock(key.RestaurantID)
	defer s.locks.Unlock(key.RestaurantID)

	visitorExists, err := s.repo.Visitor.Exists(ctx, key.VisitorID)
	if err != nil {
		return nil, fmt.Errorf("check visitor exists: %w", err)
	}
	if !visitorExists {
		return nil, fmt.Errorf("visitor %s: %w", req.VisitorID, apperr.ErrNotFound)
	}

	restaurantExists, err := s.repo.Restaurant.Exists(ctx, key.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("check restaurant exists: %w", err)
	}
	if !restaurantExists {
		return nil, fmt.Errorf("restaurant %s: %w", req.RestaurantID, apperr.ErrNotFound)
	}

	exists, err := s.repo.Review.ExistsByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("review by visitor %s for restaurant %s: %w",
			req.VisitorID, req.RestaurantID, apperr.ErrConflict)
	}

	review := &entity.Review{
		Key:        key,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Review.Save(ctx, review); err != nil {
		s.log.Error("Failed to save review",
			zap.Error(err),
			zap.String("visitor_id", req.VisitorID),
			zap.String("restaurant_id", req.RestaurantID),
		)
		return nil, fmt.Errorf("save review: %w", err)
	}

	if err := recomputeRating(ctx, s.repo, s.log, key.RestaurantID); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("visitor_id", req.VisitorID),
		zap.String("restaurant_id", req.RestaurantID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReview(ctx context.Context, visitorID, restaurantID string) (*response.ReviewResponse, error) {
	key, err := parseReviewKey(visitorID, restaurantID)
	if err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review by visitor %s for restaurant %s: %w",
			visitorID, restaurantID, apperr.ErrNotFound)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, visitorID, restaurantID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	key, err := parseReviewKey(visitorID, restaurantID)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(key.RestaurantID)
	defer s.locks.Unlock(key.RestaurantID)

	review, err := s.repo.Review.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review by visitor %s for restaurant %s: %w",
			visitorID, restaurantID, apperr.ErrNotFound)
	}

	// Only rating and text change; the composite identity is immutable.
	review.Rating = req.Rating
	review.ReviewText = req.ReviewText

	if err := s.repo.Review.Save(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("visitor_id", visitorID),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	if err := recomputeRating(ctx, s.repo, s.log, key.RestaurantID); err != nil {
		return nil, err
	}

	s.log.Info("Review updated",
		zap.String("visitor_id", visitorID),
		zap.String("restaurant_id", restaurantID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, visitorID, restaurantID string) error {
	key, err := parseReviewKey(visitorID, restaurantID)
	if err != nil {
		return err
	}

	s.locks.Lock(key.RestaurantID)
	defer s.locks.Unlock(key.RestaurantID)

	if err := s.repo.Review.DeleteByKey(ctx, key); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if err := recomputeRating(ctx, s.repo, s.log, key.RestaurantID); err != nil {
		return err
	}

	s.log.Info("Review deleted",
		zap.String("visitor_id", visitorID),
		zap.String("restaurant_id", restaurantID),
	)

	return nil
}

func (s *reviewService) GetRestaurantReviews(ctx context.Context, restaurantID string, req *request.PageRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("restaurant ID %q: %w", restaurantID, apperr.ErrInvalidArgument)
	}

	if req.Page < 0 || req.Size < 1 {
		return nil, fmt.Errorf("page %d size %d: %w", req.Page, req.Size, apperr.ErrInvalidArgument)
	}

	sortField := req.Sort
	if sortField == "" {
		sortField = defaultSortField
	}

	desc, err := parseDirection(req.Direction)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Restaurant.Exists(ctx, restaurantUUID)
	if err != nil {
		return nil, fmt.Errorf("check restaurant exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, apperr.ErrNotFound)
	}

	reviews, err := s.repo.Review.FindByRestaurantIDPaged(ctx, restaurantUUID, req.Limit(), req.Offset(), sortField, desc)
	if err != nil {
		return nil, fmt.Errorf("get restaurant reviews: %w", err)
	}

	total, err := s.repo.Review.CountByRestaurantID(ctx, restaurantUUID)
	if err != nil {
		return nil, fmt.Errorf("count restaurant reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	s.log.Debug("Restaurant reviews retrieved",
		zap.String("restaurant_id", restaurantID),
		zap.Int("count", len(reviews)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("size", req.Size),
		zap.String("sort", sortField),
	)

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.Limit(), total), nil
}

func (s *reviewService) GetRestaurantReviewsByRating(ctx context.Context, restaurantID string, page, size int, ascending bool) (*response.PaginatedResponse[response.ReviewResponse], error) {
	direction := "desc"
	if ascending {
		direction = "asc"
	}

	return s.GetRestaurantReviews(ctx, restaurantID, &request.PageRequest{
		Page:      page,
		Size:      size,
		Sort:      "rating",
		Direction: direction,
	})
}

func parseReviewKey(visitorID, restaurantID string) (entity.ReviewKey, error) {
	visitorUUID, err := uuid.Parse(visitorID)
	if err != nil {
		return entity.ReviewKey{}, fmt.Errorf("visitor ID %q: %w", visitorID, apperr.ErrInvalidArgument)
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return entity.ReviewKey{}, fmt.Errorf("restaurant ID %q: %w", restaurantID, apperr.ErrInvalidArgument)
	}

	return entity.ReviewKey{VisitorID: visitorUUID, RestaurantID: restaurantUUID}, nil
}

func parseDirection(direction string) (bool, error) {
	switch strings.ToLower(direction) {
	case "", "asc":
		return false, nil
	case "desc":
		return true, nil
	default:
		return false, fmt.Errorf("sort direction %q: %w", direction, apperr.ErrInvalidArgument)
	}
}
