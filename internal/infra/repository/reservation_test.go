//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/infra/repository"
	"venuebook/tests/common/builder"
	repositorymock "venuebook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx db.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ db.DBTX, arg pgq.CreateReservationParams) (uuid.UUID, error) {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, res.CheckIn(), arg.CheckIn)
						assert.Equal(t, res.CheckOut(), arg.CheckOut)
						assert.Equal(t, res.Price().Cents(), arg.PriceCents)
						assert.JSONEq(t, `[{"name":"projector","price_cents":1550}]`, string(arg.AddOns))
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: overlap rejected by exclusion constraint",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx db.DBTX) {
				pgErr := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: listing does not exist",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx db.DBTX) {
				pgErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx db.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.AddOns = map[string]int64{"projector": 1550}
			}).MustBuildDomain()

			tc.setupMock(mockQueries, res, mockDB)

			id, err := repo.Create(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, res.ID(), id)
			}
		})
	}
}

// =============================================================================
// Update Window Tests
// =============================================================================

func TestReservationRepository_UpdateWindow(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: window updated", affected: 1},
		{name: "error: reservation vanished", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{
			name:          "error: extension overlaps another booking",
			queryErr:      &pgconn.PgError{Code: "23P01"},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().MustBuildDomain()
			newCheckOut := res.CheckOut().Add(time.Hour)
			require.NoError(t, res.Extend(newCheckOut, res.Price(), res.UpdatedAt().Add(time.Minute)))

			mockQueries.EXPECT().UpdateReservationWindow(ctx, mockDB, pgq.UpdateReservationWindowParams{
				ID:         res.ID(),
				CheckOut:   newCheckOut,
				PriceCents: res.Price().Cents(),
				UpdatedAt:  res.UpdatedAt(),
			}).Return(tc.affected, tc.queryErr)

			err := repo.UpdateWindow(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		row := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Note = "late arrival"
		}).BuildInfra()
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		res, err := repo.GetForUpdate(ctx, mockDB, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, "late arrival", res.Note().String())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, id).Return(pgq.Reservation{}, pgx.ErrNoRows)

		_, err := repo.GetForUpdate(ctx, mockDB, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Mock DBTX
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
