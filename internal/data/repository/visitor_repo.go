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

type VisitorRepository interface {
	Create(ctx context.Context, visitor *entity.Visitor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, visitor *entity.Visitor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*entity.Visitor, error)
}

type visitorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVisitorRepository(db database.PgxIface, log *zap.Logger) VisitorRepository {
	return &visitorRepository{
		db:  db,
		log: log.With(zap.String("repository", "visitor")),
	}
}

func (r *visitorRepository) Create(ctx context.Context, visitor *entity.Visitor) error {
	query := `
		INSERT INTO visitors (id, name, age, gender, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		visitor.ID,
		visitor.Name,
		visitor.Age,
		visitor.Gender,
		visitor.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create visitor",
			zap.Error(err),
			zap.String("visitor_id", visitor.ID.String()),
		)
		return fmt.Errorf("create visitor %s: %w", visitor.ID.String(), err)
	}

	return nil
}

func (r *visitorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	query := `
		SELECT id, name, age, gender, created_at
		FROM visitors
		WHERE id = $1
	`

	var visitor entity.Visitor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&visitor.ID,
		&visitor.Name,
		&visitor.Age,
		&visitor.Gender,
		&visitor.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find visitor by ID",
			zap.Error(err),
			zap.String("visitor_id", id.String()),
		)
		return nil, fmt.Errorf("find visitor by ID %s: %w", id.String(), err)
	}

	return &visitor, nil
}

func (r *visitorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM visitors WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check visitor existence",
			zap.Error(err),
			zap.String("visitor_id", id.String()),
		)
		return false, fmt.Errorf("check visitor %s exists: %w", id.String(), err)
	}

	return exists, nil
}

func (r *visitorRepository) Update(ctx context.Context, visitor *entity.Visitor) error {
	query := `
		UPDATE visitors
		SET name = $2, age = $3, gender = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		visitor.ID,
		visitor.Name,
		visitor.Age,
		visitor.Gender,
	)

	if err != nil {
		r.log.Error("Failed to update visitor",
			zap.Error(err),
			zap.String("visitor_id", visitor.ID.String()),
		)
		return fmt.Errorf("update visitor %s: %w", visitor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("visitor %s: %w", visitor.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (r *visitorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM visitors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete visitor",
			zap.Error(err),
			zap.String("visitor_id", id.String()),
		)
		return fmt.Errorf("delete visitor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("visitor %s: %w", id.String(), apperr.ErrNotFound)
	}

	return nil
}

func (r *visitorRepository) FindAll(ctx context.Context) ([]*entity.Visitor, error) {
	query := `
		SELECT id, name, age, gender, created_at
		FROM visitors
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list visitors", zap.Error(err))
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	var visitors []*entity.Visitor
	for rows.Next() {
		var visitor entity.Visitor
		err := rows.Scan(
			&visitor.ID,
			&visitor.Name,
			&visitor.Age,
			&visitor.Gender,
			&visitor.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan visitor row", zap.Error(err))
			return nil, fmt.Errorf("scan visitor row: %w", err)
		}
		visitors = append(visitors, &visitor)
	}

	return visitors, nil
}
