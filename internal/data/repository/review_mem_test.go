package repository_test

import (
	"context"
	"testing"
	"time"

	"restaurant-rating/internal/data/entity"
	"restaurant-rating/internal/data/repository"
	"restaurant-rating/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReviewStore(t *testing.T) repository.ReviewRepository {
	t.Helper()
	return repository.NewReviewMemoryRepository(zap.NewNop())
}

func makeReview(restaurantID uuid.UUID, rating int) *entity.Review {
	return &entity.Review{
		Key: entity.ReviewKey{
			VisitorID:    uuid.New(),
			RestaurantID: restaurantID,
		},
		Rating:    rating,
		CreatedAt: time.Now(),
	}
}

func TestReviewStore_SaveIsInsertOrReplace(t *testing.T) {
	store := newReviewStore(t)
	ctx := context.Background()

	review := makeReview(uuid.New(), 4)
	require.NoError(t, store.Save(ctx, review))

	exists, err := store.ExistsByKey(ctx, review.Key)
	require.NoError(t, err)
	assert.True(t, exists)

	// Replacing by the same key keeps a single review
	review.Rating = 2
	require.NoError(t, store.Save(ctx, review))

	found, err := store.FindByKey(ctx, review.Key)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 2, found.Rating)

	count, err := store.CountByRestaurantID(ctx, review.Key.RestaurantID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReviewStore_FindByKeyAbsent(t *testing.T) {
	store := newReviewStore(t)

	found, err := store.FindByKey(context.Background(), entity.ReviewKey{
		VisitorID:    uuid.New(),
		RestaurantID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestReviewStore_DeleteByKeyNotFound(t *testing.T) {
	store := newReviewStore(t)

	err := store.DeleteByKey(context.Background(), entity.ReviewKey{
		VisitorID:    uuid.New(),
		RestaurantID: uuid.New(),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReviewStore_CascadeDeletes(t *testing.T) {
	store := newReviewStore(t)
	ctx := context.Background()

	restaurantID := uuid.New()
	visitorID := uuid.New()

	require.NoError(t, store.Save(ctx, &entity.Review{
		Key:    entity.ReviewKey{VisitorID: visitorID, RestaurantID: restaurantID},
		Rating: 5,
	}))
	require.NoError(t, store.Save(ctx, makeReview(restaurantID, 3)))
	require.NoError(t, store.Save(ctx, &entity.Review{
		Key:    entity.ReviewKey{VisitorID: visitorID, RestaurantID: uuid.New()},
		Rating: 4,
	}))

	deleted, err := store.DeleteByRestaurantID(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = store.DeleteByVisitorID(ctx, visitorID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestReviewStore_PagedSorting(t *testing.T) {
	store := newReviewStore(t)
	ctx := context.Background()

	restaurantID := uuid.New()
	for _, rating := range []int{3, 1, 5, 2, 4} {
		require.NoError(t, store.Save(ctx, makeReview(restaurantID, rating)))
	}

	// Descending by rating, first page of two
	page, err := store.FindByRestaurantIDPaged(ctx, restaurantID, 2, 0, "rating", true)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 5, page[0].Rating)
	assert.Equal(t, 4, page[1].Rating)

	// Ascending, offset into the middle
	page, err = store.FindByRestaurantIDPaged(ctx, restaurantID, 2, 2, "rating", false)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].Rating)
	assert.Equal(t, 4, page[1].Rating)

	// Offset past the end yields an empty page
	page, err = store.FindByRestaurantIDPaged(ctx, restaurantID, 2, 10, "rating", false)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestReviewStore_PagedTieBreakDeterministic(t *testing.T) {
	store := newReviewStore(t)
	ctx := context.Background()

	restaurantID := uuid.New()
	for i := 0; i < 6; i++ {
		require.NoError(t, store.Save(ctx, makeReview(restaurantID, 3)))
	}

	first, err := store.FindByRestaurantIDPaged(ctx, restaurantID, 6, 0, "rating", false)
	require.NoError(t, err)
	second, err := store.FindByRestaurantIDPaged(ctx, restaurantID, 6, 0, "rating", false)
	require.NoError(t, err)

	require.Len(t, first, 6)
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
	}

	// Equal ratings are ordered by the composite key ascending
	for i := 1; i < len(first); i++ {
		prev, curr := first[i-1].Key, first[i].Key
		assert.True(t, prev.VisitorID.String() <= curr.VisitorID.String())
	}
}

func TestReviewStore_PagedUnknownSortField(t *testing.T) {
	store := newReviewStore(t)

	_, err := store.FindByRestaurantIDPaged(context.Background(), uuid.New(), 10, 0, "sneaky", false)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
