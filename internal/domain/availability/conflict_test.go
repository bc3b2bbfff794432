//go:build unit

package availability_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConflictDetector_Modes(t *testing.T) {
	listingID := uuid.New()
	buffer := 15 * time.Minute

	// existing booking ends exactly where the request begins
	setup := func(t *testing.T) (*fixture, availability.Request) {
		f := newFixture(t)
		f.noBlocks()
		booked := existing(t, listingID, at(9, 0), at(12, 0), reservation.StatusConfirmed)
		f.reservations.EXPECT().
			FindOverlapping(gomock.Any(), listingID, gomock.Any()).
			Return([]*reservation.Reservation{booked}, nil)
		return f, availability.Request{
			ListingID: listingID,
			Interval:  interval(t, at(12, 0), at(13, 0)),
			Buffer:    buffer,
		}
	}

	t.Run("strict mode treats touching intervals as free", func(t *testing.T) {
		f, req := setup(t)

		conflict, err := f.detector.Strict(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("buffered mode rejects touching intervals", func(t *testing.T) {
		f, req := setup(t)

		conflict, err := f.detector.Buffered(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, at(12, 15), conflict.NextAvailableAt)
		assert.Equal(t, at(9, 0), conflict.Interval.Start())
	})

	t.Run("buffered mode with zero buffer equals strict", func(t *testing.T) {
		f, req := setup(t)
		req.Buffer = 0

		conflict, err := f.detector.Buffered(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, conflict)
	})
}

func TestConflictDetector_IgnoresReleasedReservations(t *testing.T) {
	listingID := uuid.New()

	for _, status := range []reservation.Status{reservation.StatusCancelled, reservation.StatusRejected, reservation.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			f.noBlocks()
			f.reservations.EXPECT().
				FindOverlapping(gomock.Any(), listingID, gomock.Any()).
				Return([]*reservation.Reservation{existing(t, listingID, at(10, 0), at(12, 0), status)}, nil)

			conflict, err := f.detector.Strict(context.Background(), availability.Request{
				ListingID: listingID,
				Interval:  interval(t, at(11, 0), at(13, 0)),
			})

			require.NoError(t, err)
			assert.Nil(t, conflict)
		})
	}
}

func TestConflictDetector_ReportsEarliestConflictAndLatestEnd(t *testing.T) {
	listingID := uuid.New()
	f := newFixture(t)
	f.noBlocks()

	first := existing(t, listingID, at(9, 0), at(11, 0), reservation.StatusConfirmed)
	second := existing(t, listingID, at(12, 0), at(15, 0), reservation.StatusPending)
	f.reservations.EXPECT().
		FindOverlapping(gomock.Any(), listingID, gomock.Any()).
		Return([]*reservation.Reservation{second, first}, nil)

	conflict, err := f.detector.Strict(context.Background(), availability.Request{
		ListingID: listingID,
		Interval:  interval(t, at(10, 0), at(13, 0)),
	})

	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, first.ID(), *conflict.ReservationID)
	assert.Equal(t, at(15, 0), conflict.NextAvailableAt)
}

func TestConflictDetector_UnavailableAmong(t *testing.T) {
	f := newFixture(t)
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	vendor := uuid.New()
	window := interval(t, at(10, 0), at(12, 0))

	f.reservations.EXPECT().
		FindOverlappingForListings(gomock.Any(), []uuid.UUID{a, b, c}, window).
		Return([]*reservation.Reservation{existing(t, a, at(11, 0), at(13, 0), reservation.StatusConfirmed)}, nil)

	vendorBlock, err := reservation.NewBlock(nil, &vendor, reservation.BlockSourceManual, "", interval(t, at(8, 0), at(10, 30)), "")
	require.NoError(t, err)
	f.blocks.EXPECT().
		FindOverlappingForScopes(gomock.Any(), []uuid.UUID{a, b, c}, []uuid.UUID{vendor}, window).
		Return([]*reservation.Block{vendorBlock}, nil)

	busy, err := f.detector.UnavailableAmong(context.Background(), []availability.Candidate{
		{ListingID: a},
		{ListingID: b, VendorID: &vendor},
		{ListingID: c},
	}, window)

	require.NoError(t, err)
	assert.Len(t, busy, 2)
	assert.Contains(t, busy, a)
	assert.Contains(t, busy, b)
	assert.NotContains(t, busy, c)
}

func TestConflictDetector_UnavailableAmongEmpty(t *testing.T) {
	f := newFixture(t)

	busy, err := f.detector.UnavailableAmong(context.Background(), nil, interval(t, at(10, 0), at(12, 0)))

	require.NoError(t, err)
	assert.Empty(t, busy)
}
