package usecase

import (
	"context"
	"errors"
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

type VisitorService interface {
	CreateVisitor(ctx context.Context, req *request.CreateVisitorRequest) (*response.VisitorResponse, error)
	GetVisitorByID(ctx context.Context, visitorID string) (*response.VisitorResponse, error)
	GetVisitors(ctx context.Context) ([]response.VisitorResponse, error)
	UpdateVisitor(ctx context.Context, visitorID string, req *request.UpdateVisitorRequest) (*response.VisitorResponse, error)
	DeleteVisitor(ctx context.Context, visitorID string) error
}

type visitorService struct {
	repo  *repository.Repository
	locks *ratingGuard
	log   *zap.Logger
}

func NewVisitorService(repo *repository.Repository, locks *ratingGuard, log *zap.Logger) VisitorService {
	return &visitorService{
		repo:  repo,
		locks: locks,
		log:   log.With(zap.String("service", "visitor")),
	}
}

func (s *visitorService) CreateVisitor(ctx context.Context, req *request.CreateVisitorRequest) (*response.VisitorResponse, error) {
	visitor := &entity.Visitor{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:   req.Name,
		Age:    req.Age,
		Gender: entity.Gender(req.Gender),
	}

	if err := s.repo.Visitor.Create(ctx, visitor); err != nil {
		s.log.Error("Failed to create visitor", zap.Error(err))
		return nil, fmt.Errorf("create visitor: %w", err)
	}

	s.log.Info("Visitor created",
		zap.String("visitor_id", visitor.ID.String()),
		zap.Bool("anonymous", visitor.Name == nil),
	)

	resp := response.VisitorToResponse(visitor)
	return &resp, nil
}

func (s *visitorService) GetVisitorByID(ctx context.Context, visitorID string) (*response.VisitorResponse, error) {
	visitorUUID, err := uuid.Parse(visitorID)
	if err != nil {
		return nil, fmt.Errorf("visitor ID %q: %w", visitorID, apperr.ErrInvalidArgument)
	}

	visitor, err := s.repo.Visitor.FindByID(ctx, visitorUUID)
	if err != nil {
		return nil, fmt.Errorf("find visitor: %w", err)
	}
	if visitor == nil {
		return nil, fmt.Errorf("visitor %s: %w", visitorID, apperr.ErrNotFound)
	}

	resp := response.VisitorToResponse(visitor)
	return &resp, nil
}

func (s *visitorService) GetVisitors(ctx context.Context) ([]response.VisitorResponse, error) {
	visitors, err := s.repo.Visitor.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}

	responses := make([]response.VisitorResponse, len(visitors))
	for i, visitor := range visitors {
		responses[i] = response.VisitorToResponse(visitor)
	}

	return responses, nil
}

func (s *visitorService) UpdateVisitor(ctx context.Context, visitorID string, req *request.UpdateVisitorRequest) (*response.VisitorResponse, error) {
	visitorUUID, err := uuid.Parse(visitorID)
	if err != nil {
		return nil, fmt.Errorf("visitor ID %q: %w", visitorID, apperr.ErrInvalidArgument)
	}

	visitor, err := s.repo.Visitor.FindByID(ctx, visitorUUID)
	if err != nil {
		return nil, fmt.Errorf("find visitor: %w", err)
	}
	if visitor == nil {
		return nil, fmt.Errorf("visitor %s: %w", visitorID, apperr.ErrNotFound)
	}

	visitor.Name = req.Name
	visitor.Age = req.Age
	visitor.Gender = entity.Gender(req.Gender)

	if err := s.repo.Visitor.Update(ctx, visitor); err != nil {
		s.log.Error("Failed to update visitor",
			zap.Error(err),
			zap.String("visitor_id", visitorID),
		)
		return nil, fmt.Errorf("update visitor: %w", err)
	}

	s.log.Info("Visitor updated", zap.String("visitor_id", visitorID))

	resp := response.VisitorToResponse(visitor)
	return &resp, nil
}

// DeleteVisitor removes the visitor and cascades: its reviews are deleted
// first, then every restaurant that lost a review gets its rating recomputed.
func (s *visitorService) DeleteVisitor(ctx context.Context, visitorID string) error {
	visitorUUID, err := uuid.Parse(visitorID)
	if err != nil {
		return fmt.Errorf("visitor ID %q: %w", visitorID, apperr.ErrInvalidArgument)
	}

	exists, err := s.repo.Visitor.Exists(ctx, visitorUUID)
	if err != nil {
		return fmt.Errorf("check visitor exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("visitor %s: %w", visitorID, apperr.ErrNotFound)
	}

	reviews, err := s.repo.Review.FindByVisitorID(ctx, visitorUUID)
	if err != nil {
		return fmt.Errorf("find visitor reviews: %w", err)
	}

	deleted, err := s.repo.Review.DeleteByVisitorID(ctx, visitorUUID)
	if err != nil {
		return fmt.Errorf("cascade delete reviews: %w", err)
	}

	if err := s.repo.Visitor.Delete(ctx, visitorUUID); err != nil {
		return fmt.Errorf("delete visitor: %w", err)
	}

	// Affected restaurants lost a review each; bring their ratings back in
	// line under the same per-restaurant serialization as review mutations.
	seen := make(map[uuid.UUID]bool)
	for _, review := range reviews {
		restaurantID := review.Key.RestaurantID
		if seen[restaurantID] {
			continue
		}
		seen[restaurantID] = true

		s.locks.Lock(restaurantID)
		err := recomputeRating(ctx, s.repo, s.log, restaurantID)
		s.locks.Unlock(restaurantID)
		// The restaurant may have been deleted concurrently; nothing left
		// to recompute then.
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return err
		}
	}

	s.log.Info("Visitor deleted",
		zap.String("visitor_id", visitorID),
		zap.Int64("cascaded_reviews", deleted),
	)

	return nil
}
