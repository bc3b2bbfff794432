//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/infra/repository"
	repositorymock "venuebook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBlockRepository_ReplaceFeed(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	newBlock := func(t *testing.T, uid string, day int) *reservation.Block {
		interval, err := reservation.NewInterval(
			time.Date(2030, 3, day, 0, 0, 0, 0, time.UTC),
			time.Date(2030, 3, day+1, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		b, err := reservation.NewBlock(&listingID, nil, reservation.BlockSourceCalendar, uid, interval, "Private event")
		require.NoError(t, err)
		return b
	}

	t.Run("success: old feed rows deleted before inserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBlockWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBlockRepository(mockQueries, mockDB)

		blocks := []*reservation.Block{newBlock(t, "a@feed", 1), newBlock(t, "b@feed", 2)}

		var inserted []string
		gomock.InOrder(
			mockQueries.EXPECT().DeleteBlocksByFeed(ctx, mockDB, "loft-airbnb").Return(int64(5), nil),
			mockQueries.EXPECT().InsertBlock(ctx, mockDB, gomock.Any()).Times(2).
				DoAndReturn(func(_ context.Context, _ any, arg pgq.InsertBlockParams) error {
					assert.Equal(t, "loft-airbnb", arg.FeedName.String)
					assert.True(t, arg.ListingID.Valid)
					assert.False(t, arg.VendorID.Valid)
					inserted = append(inserted, arg.ExternalUID)
					return nil
				}),
		)

		n, err := repo.ReplaceFeed(ctx, mockDB, "loft-airbnb", blocks)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"a@feed", "b@feed"}, inserted)
	})

	t.Run("success: empty feed only clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBlockWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBlockRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteBlocksByFeed(ctx, mockDB, "empty").Return(int64(3), nil)

		n, err := repo.ReplaceFeed(ctx, mockDB, "empty", nil)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error: insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBlockWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBlockRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteBlocksByFeed(ctx, mockDB, "f").Return(int64(0), nil)
		mockQueries.EXPECT().InsertBlock(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		_, err := repo.ReplaceFeed(ctx, mockDB, "f", []*reservation.Block{newBlock(t, "x", 1)})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
