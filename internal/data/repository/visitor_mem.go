package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"restaurant-rating/internal/data/entity"
	"restaurant-rating/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// visitorMemoryRepository keeps visitors in a map guarded by a RWMutex.
type visitorMemoryRepository struct {
	mu       sync.RWMutex
	visitors map[uuid.UUID]entity.Visitor
	log      *zap.Logger
}

func NewVisitorMemoryRepository(log *zap.Logger) VisitorRepository {
	return &visitorMemoryRepository{
		visitors: make(map[uuid.UUID]entity.Visitor),
		log:      log.With(zap.String("repository", "visitor-memory")),
	}
}

func (r *visitorMemoryRepository) Create(ctx context.Context, visitor *entity.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.visitors[visitor.ID]; ok {
		return fmt.Errorf("visitor %s: %w", visitor.ID.String(), apperr.ErrConflict)
	}

	r.visitors[visitor.ID] = *visitor
	return nil
}

func (r *visitorMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visitor, ok := r.visitors[id]
	if !ok {
		return nil, nil
	}

	return &visitor, nil
}

func (r *visitorMemoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.visitors[id]
	return ok, nil
}

func (r *visitorMemoryRepository) Update(ctx context.Context, visitor *entity.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.visitors[visitor.ID]; !ok {
		return fmt.Errorf("visitor %s: %w", visitor.ID.String(), apperr.ErrNotFound)
	}

	r.visitors[visitor.ID] = *visitor
	return nil
}

func (r *visitorMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.visitors[id]; !ok {
		return fmt.Errorf("visitor %s: %w", id.String(), apperr.ErrNotFound)
	}

	delete(r.visitors, id)
	return nil
}

func (r *visitorMemoryRepository) FindAll(ctx context.Context) ([]*entity.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visitors := make([]*entity.Visitor, 0, len(r.visitors))
	for _, visitor := range r.visitors {
		v := visitor
		visitors = append(visitors, &v)
	}

	sort.Slice(visitors, func(i, j int) bool {
		if visitors[i].CreatedAt.Equal(visitors[j].CreatedAt) {
			return visitors[i].ID.String() < visitors[j].ID.String()
		}
		return visitors[i].CreatedAt.Before(visitors[j].CreatedAt)
	})

	return visitors, nil
}
