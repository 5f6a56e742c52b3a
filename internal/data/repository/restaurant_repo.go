package repository

import (
	"context"
	"fmt"

	"restaurant-rating/internal/data/entity"
	"restaurant-rating/pkg/apperr"
	"restaurant-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Update writes every field except Rating, which belongs to the
	// recompute path alone.
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// UpdateRating persists a recomputed rating
	UpdateRating(ctx context.Context, restaurantID uuid.UUID, newRating float64) error
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, description, cuisine_type, average_bill,
		                         rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Description,
		restaurant.CuisineType,
		restaurant.AverageBill,
		restaurant.Rating,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("name", restaurant.Name),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.ID.String(), err)
	}

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `
		SELECT id, name, description, cuisine_type, average_bill, rating,
		       created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.CuisineType,
		&restaurant.AverageBill,
		&restaurant.Rating,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check restaurant existence",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return false, fmt.Errorf("check restaurant %s exists: %w", id.String(), err)
	}

	return exists, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, description = $3, cuisine_type = $4, average_bill = $5,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Description,
		restaurant.CuisineType,
		restaurant.AverageBill,
	)

	if err != nil {
		r.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurant.ID.String()),
		)
		return fmt.Errorf("update restaurant %s: %w", restaurant.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM restaurants WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return fmt.Errorf("delete restaurant %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s: %w", id.String(), apperr.ErrNotFound)
	}

	return nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, description, cuisine_type, average_bill, rating,
		       created_at, updated_at
		FROM restaurants
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list restaurants", zap.Error(err))
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*entity.Restaurant
	for rows.Next() {
		var restaurant entity.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Description,
			&restaurant.CuisineType,
			&restaurant.AverageBill,
			&restaurant.Rating,
			&restaurant.CreatedAt,
			&restaurant.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

func (r *restaurantRepository) UpdateRating(ctx context.Context, restaurantID uuid.UUID, newRating float64) error {
	query := `UPDATE restaurants SET rating = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, restaurantID, newRating)
	if err != nil {
		r.log.Error("Failed to update restaurant rating",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
			zap.Float64("new_rating", newRating),
		)
		return fmt.Errorf("update rating for restaurant %s: %w", restaurantID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s: %w", restaurantID.String(), apperr.ErrNotFound)
	}

	return nil
}
