package usecase

import (
	"restaurant-rating/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Visitor    VisitorService
	Restaurant RestaurantService
	Review     ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	// One lock table shared by every path that recomputes ratings.
	locks := newRatingGuard()

	return &Service{
		Visitor:    NewVisitorService(repo, locks, log),
		Restaurant: NewRestaurantService(repo, locks, log),
		Review:     NewReviewService(repo, locks, log),
	}
}
