//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"venuebook/internal/infra"
	"venuebook/internal/usecase/queries"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name    string
		stub    func(m *queriesmock.MockReservationReadStore)
		wantErr error
	}{
		{
			name: "found",
			stub: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByID(gomock.Any(), id).Return(&queries.ReservationView{ID: id, Status: "confirmed"}, nil)
			},
		},
		{
			name: "not found maps to the query sentinel",
			stub: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("failed to get reservation", pgx.ErrNoRows))
			},
			wantErr: queries.ErrReservationNotFound,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			c.stub(store)

			view, err := queries.NewReservationQueries(store).GetByID(context.Background(), id)

			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
		})
	}

	t.Run("other failures pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		boom := errors.New("connection reset")
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, boom)

		_, err := queries.NewReservationQueries(store).GetByID(context.Background(), id)

		require.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, queries.ErrReservationNotFound)
	})
}
