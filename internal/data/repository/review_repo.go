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

// reviewSortColumns whitelists the sortable review fields. Keys are the wire
// names accepted by the paged query, values the Postgres columns.
var reviewSortColumns = map[string]string{
	"rating":       "rating",
	"reviewText":   "review_text",
	"visitorId":    "visitor_id",
	"restaurantId": "restaurant_id",
	"createdAt":    "created_at",
}

type ReviewRepository interface {
	// Save is insert-or-replace keyed by the composite identity.
	Save(ctx context.Context, review *entity.Review) error
	FindByKey(ctx context.Context, key entity.ReviewKey) (*entity.Review, error)
	ExistsByKey(ctx context.Context, key entity.ReviewKey) (bool, error)
	DeleteByKey(ctx context.Context, key entity.ReviewKey) error

	// Recompute and cascade inputs
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error)
	FindByVisitorID(ctx context.Context, visitorID uuid.UUID) ([]*entity.Review, error)
	DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error)
	DeleteByVisitorID(ctx context.Context, visitorID uuid.UUID) (int64, error)

	// Paged queries
	CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error)
	FindByRestaurantIDPaged(ctx context.Context, restaurantID uuid.UUID, limit, offset int, sortField string, desc bool) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Save(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (visitor_id, restaurant_id, rating, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (visitor_id, restaurant_id)
		DO UPDATE SET rating = EXCLUDED.rating, review_text = EXCLUDED.review_text
	`

	_, err := r.db.Exec(ctx, query,
		review.Key.VisitorID,
		review.Key.RestaurantID,
		review.Rating,
		review.ReviewText,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to save review",
			zap.Error(err),
			zap.String("visitor_id", review.Key.VisitorID.String()),
			zap.String("restaurant_id", review.Key.RestaurantID.String()),
		)
		return fmt.Errorf("save review for restaurant %s by visitor %s: %w",
			review.Key.RestaurantID.String(), review.Key.VisitorID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByKey(ctx context.Context, key entity.ReviewKey) (*entity.Review, error) {
	query := `
		SELECT visitor_id, restaurant_id, rating, review_text, created_at
		FROM reviews
		WHERE visitor_id = $1 AND restaurant_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, key.VisitorID, key.RestaurantID).Scan(
		&review.Key.VisitorID,
		&review.Key.RestaurantID,
		&review.Rating,
		&review.ReviewText,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by key",
			zap.Error(err),
			zap.String("visitor_id", key.VisitorID.String()),
			zap.String("restaurant_id", key.RestaurantID.String()),
		)
		return nil, fmt.Errorf("find review by visitor %s and restaurant %s: %w",
			key.VisitorID.String(), key.RestaurantID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) ExistsByKey(ctx context.Context, key entity.ReviewKey) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE visitor_id = $1 AND restaurant_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, key.VisitorID, key.RestaurantID).Scan(&exists); err != nil {
		r.log.Error("Failed to check review existence",
			zap.Error(err),
			zap.String("visitor_id", key.VisitorID.String()),
			zap.String("restaurant_id", key.RestaurantID.String()),
		)
		return false, fmt.Errorf("check review exists: %w", err)
	}

	return exists, nil
}

func (r *reviewRepository) DeleteByKey(ctx context.Context, key entity.ReviewKey) error {
	query := `DELETE FROM reviews WHERE visitor_id = $1 AND restaurant_id = $2`

	result, err := r.db.Exec(ctx, query, key.VisitorID, key.RestaurantID)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("visitor_id", key.VisitorID.String()),
			zap.String("restaurant_id", key.RestaurantID.String()),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review by visitor %s for restaurant %s: %w",
			key.VisitorID.String(), key.RestaurantID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT visitor_id, restaurant_id, rating, review_text, created_at
		FROM reviews
		WHERE restaurant_id = $1
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find reviews by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find reviews by restaurant ID %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	return scanReviews(rows, r.log)
}

func (r *reviewRepository) FindByVisitorID(ctx context.Context, visitorID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT visitor_id, restaurant_id, rating, review_text, created_at
		FROM reviews
		WHERE visitor_id = $1
	`

	rows, err := r.db.Query(ctx, query, visitorID)
	if err != nil {
		r.log.Error("Failed to find reviews by visitor ID",
			zap.Error(err),
			zap.String("visitor_id", visitorID.String()),
		)
		return nil, fmt.Errorf("find reviews by visitor ID %s: %w", visitorID.String(), err)
	}
	defer rows.Close()

	return scanReviews(rows, r.log)
}

func (r *reviewRepository) DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	query := `DELETE FROM reviews WHERE restaurant_id = $1`

	result, err := r.db.Exec(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to delete reviews by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return 0, fmt.Errorf("delete reviews by restaurant ID %s: %w", restaurantID.String(), err)
	}

	return result.RowsAffected(), nil
}

func (r *reviewRepository) DeleteByVisitorID(ctx context.Context, visitorID uuid.UUID) (int64, error) {
	query := `DELETE FROM reviews WHERE visitor_id = $1`

	result, err := r.db.Exec(ctx, query, visitorID)
	if err != nil {
		r.log.Error("Failed to delete reviews by visitor ID",
			zap.Error(err),
			zap.String("visitor_id", visitorID.String()),
		)
		return 0, fmt.Errorf("delete reviews by visitor ID %s: %w", visitorID.String(), err)
	}

	return result.RowsAffected(), nil
}

func (r *reviewRepository) CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE restaurant_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, restaurantID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return 0, fmt.Errorf("count reviews by restaurant ID %s: %w", restaurantID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) FindByRestaurantIDPaged(ctx context.Context, restaurantID uuid.UUID, limit, offset int, sortField string, desc bool) ([]*entity.Review, error) {
	column, ok := reviewSortColumns[sortField]
	if !ok {
		return nil, fmt.Errorf("sort field %q: %w", sortField, apperr.ErrInvalidArgument)
	}

	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	// Secondary order on the composite key keeps pagination deterministic
	// across equal sort values.
	query := fmt.Sprintf(`
		SELECT visitor_id, restaurant_id, rating, review_text, created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY %s %s, visitor_id ASC, restaurant_id ASC
		LIMIT $2 OFFSET $3
	`, column, direction)

	rows, err := r.db.Query(ctx, query, restaurantID, limit, offset)
	if err != nil {
		r.log.Error("Failed to page reviews by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.String("sort", sortField),
		)
		return nil, fmt.Errorf("page reviews by restaurant ID %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	return scanReviews(rows, r.log)
}

func scanReviews(rows pgx.Rows, log *zap.Logger) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.Key.VisitorID,
			&review.Key.RestaurantID,
			&review.Rating,
			&review.ReviewText,
			&review.CreatedAt,
		)
		if err != nil {
			log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
