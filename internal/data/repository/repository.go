package repository

import (
	"restaurant-rating/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Visitor    VisitorRepository
	Restaurant RestaurantRepository
	Review     ReviewRepository
}

// NewRepository wires the Postgres-backed stores.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Visitor:    NewVisitorRepository(db, log),
		Restaurant: NewRestaurantRepository(db, log),
		Review:     NewReviewRepository(db, log),
	}
}

// NewMemoryRepository wires the in-memory stores. Used as the "memory"
// storage driver and as the test backend.
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Visitor:    NewVisitorMemoryRepository(log),
		Restaurant: NewRestaurantMemoryRepository(log),
		Review:     NewReviewMemoryRepository(log),
	}
}
