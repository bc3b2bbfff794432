//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/reservation"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	availabilitymock "venuebook/tests/mock/availability"
	queriesmock "venuebook/tests/mock/queries"
	sharedmock "venuebook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

type reservationFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	txReads      *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	listings     *sharedmock.MockListingRepository
	idempotency  *sharedmock.MockIdempotencyRepository
	outbox       *sharedmock.MockOutboxRepository
	finder       *availabilitymock.MockReservationFinder
	blocks       *availabilitymock.MockBlockFinder
	queries      *queriesmock.MockReservationQueries
	sut          commands.ReservationCommands
}

func newReservationFixture(t *testing.T) *reservationFixture {
	ctrl := gomock.NewController(t)
	f := &reservationFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		txReads:      sharedmock.NewMockCommandReads(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		listings:     sharedmock.NewMockListingRepository(ctrl),
		idempotency:  sharedmock.NewMockIdempotencyRepository(ctrl),
		outbox:       sharedmock.NewMockOutboxRepository(ctrl),
		finder:       availabilitymock.NewMockReservationFinder(ctrl),
		blocks:       availabilitymock.NewMockBlockFinder(ctrl),
		queries:      queriesmock.NewMockReservationQueries(ctrl),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Listings().Return(f.listings).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.txReads).AnyTimes()
	f.txReads.EXPECT().Reservations().Return(f.finder).AnyTimes()
	f.txReads.EXPECT().Blocks().Return(f.blocks).AnyTimes()

	f.sut = commands.NewReservationCommands(
		f.uow,
		f.queries,
		pricing.NewScheduleCalculator(),
		clock.NewMockClock(fixedNow),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		noop.NewTracerProvider().Tracer("test"),
	)
	return f
}

func (f *reservationFixture) runsTransaction() {
	f.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func (f *reservationFixture) noIdempotencyRecord() {
	f.reads.EXPECT().
		IdempotencyByKey(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("failed to get idempotency key", pgx.ErrNoRows)).
		AnyTimes()
}

func (f *reservationFixture) calendarFree() {
	f.finder.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.finder.EXPECT().FindOverlappingExcluding(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.blocks.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func monday(h, m int) time.Time {
	return time.Date(2030, 1, 7, h, m, 0, 0, time.UTC)
}

func createRequest(listingID uuid.UUID) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ListingID: listingID,
		CheckIn:   monday(10, 0),
		CheckOut:  monday(12, 0),
		AddOns:    []string{"catering"},
	}
}

func hashOf(t *testing.T, req reqdto.CreateReservationRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestReservationCommands_CreateReservation(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	l := builder.NewListingBuilder().WithAddOn("Catering", 1500).WithBuffer(30, listing.BufferMinutes).MustBuildDomain()

	t.Run("reserves a free interval", func(t *testing.T) {
		f := newReservationFixture(t)
		f.noIdempotencyRecord()
		f.runsTransaction()
		f.calendarFree()

		var created *reservation.Reservation
		var event shared.OutboxEvent
		f.listings.EXPECT().LockByID(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		f.reservations.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) (uuid.UUID, error) {
				created = res
				return res.ID(), nil
			})
		f.idempotency.EXPECT().
			Save(gomock.Any(), gomock.Any(), key, hashOf(t, createRequest(l.ID())), gomock.Any()).
			Return(nil)
		f.outbox.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e shared.OutboxEvent) error {
				event = e
				return nil
			})
		f.queries.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
				return &queries.ReservationView{ID: id, Status: "pending", PriceCents: created.Price().Cents()}, nil
			})

		result, err := f.sut.CreateReservation(ctx, createRequest(l.ID()), key)

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		require.NotNil(t, created)
		assert.Equal(t, int64(3500), created.Price().Cents())
		assert.Equal(t, reservation.StatusPending, created.Status())
		assert.Equal(t, created.ID(), result.Reservation.ID)

		assert.Equal(t, commands.EventReservationAccepted, event.EventType)
		assert.Equal(t, created.ID(), event.AggregateID)
		assert.Equal(t, fixedNow, event.OccurredAt)
		var payload commands.ReservationEvent
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, l.ID(), payload.ListingID)
		assert.Equal(t, []string{"Catering"}, payload.AddOns)
	})

	t.Run("replays a completed request", func(t *testing.T) {
		f := newReservationFixture(t)
		req := createRequest(l.ID())
		existingID := uuid.New()
		f.reads.EXPECT().
			IdempotencyByKey(gomock.Any(), key).
			Return(&shared.IdempotencyRecord{Key: key, RequestHash: hashOf(t, req), ReservationID: existingID}, nil)
		f.queries.EXPECT().GetByID(gomock.Any(), existingID).Return(&queries.ReservationView{ID: existingID}, nil)

		result, err := f.sut.CreateReservation(ctx, req, key)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, existingID, result.Reservation.ID)
	})

	t.Run("rejects a reused key with a different body", func(t *testing.T) {
		f := newReservationFixture(t)
		f.reads.EXPECT().
			IdempotencyByKey(gomock.Any(), key).
			Return(&shared.IdempotencyRecord{Key: key, RequestHash: "something-else", ReservationID: uuid.New()}, nil)

		_, err := f.sut.CreateReservation(ctx, createRequest(l.ID()), key)

		require.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("rejects inside the buffer with the conflict", func(t *testing.T) {
		f := newReservationFixture(t)
		f.noIdempotencyRecord()
		f.runsTransaction()
		booked := builder.NewReservationBuilder().
			WithListing(l.ID()).
			WithInterval(monday(8, 0), monday(9, 45)).
			MustBuildDomain()

		f.listings.EXPECT().LockByID(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		f.finder.EXPECT().FindOverlapping(gomock.Any(), l.ID(), gomock.Any()).Return([]*reservation.Reservation{booked}, nil)
		f.blocks.EXPECT().FindOverlapping(gomock.Any(), l.ID(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.sut.CreateReservation(ctx, createRequest(l.ID()), key)

		var rejected *commands.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.False(t, rejected.Decision.Available)
		require.NotNil(t, rejected.Decision.Conflict)
		assert.Equal(t, monday(10, 15), rejected.Decision.Conflict.NextAvailableAt)
		assert.ErrorIs(t, err, commands.ErrReservationRejected)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("maps the exclusion constraint to a conflict", func(t *testing.T) {
		f := newReservationFixture(t)
		f.noIdempotencyRecord()
		f.runsTransaction()
		f.calendarFree()
		f.listings.EXPECT().LockByID(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		f.reservations.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create reservation", &pgconn.PgError{Code: "23P01"}))

		_, err := f.sut.CreateReservation(ctx, createRequest(l.ID()), key)

		require.ErrorIs(t, err, commands.ErrReservationConflict)
	})

	t.Run("unknown listing", func(t *testing.T) {
		f := newReservationFixture(t)
		f.noIdempotencyRecord()
		f.runsTransaction()
		f.listings.EXPECT().
			LockByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to lock listing", pgx.ErrNoRows))

		_, err := f.sut.CreateReservation(ctx, createRequest(uuid.New()), key)

		require.ErrorIs(t, err, commands.ErrListingNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("unknown add-on", func(t *testing.T) {
		f := newReservationFixture(t)
		f.noIdempotencyRecord()
		f.runsTransaction()
		f.listings.EXPECT().LockByID(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		req := createRequest(l.ID())
		req.AddOns = []string{"fireworks"}

		_, err := f.sut.CreateReservation(ctx, req, key)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("inverted interval never opens a transaction", func(t *testing.T) {
		f := newReservationFixture(t)
		req := createRequest(l.ID())
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

		_, err := f.sut.CreateReservation(ctx, req, key)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestReservationCommands_ExtendReservation(t *testing.T) {
	ctx := context.Background()
	l := builder.NewListingBuilder().MustBuildDomain()

	t.Run("extends and reprices", func(t *testing.T) {
		f := newReservationFixture(t)
		f.runsTransaction()
		res := builder.NewReservationBuilder().WithListing(l.ID()).MustBuildDomain()

		f.reservations.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		f.listings.EXPECT().LockByID(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		f.finder.EXPECT().
			FindOverlappingExcluding(gomock.Any(), l.ID(), gomock.Any(), res.ID()).
			Return([]*reservation.Reservation{res}, nil)
		f.blocks.EXPECT().FindOverlapping(gomock.Any(), l.ID(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reservations.EXPECT().
			UpdateWindow(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, updated *reservation.Reservation) error {
				assert.Equal(t, monday(13, 0), updated.CheckOut())
				assert.Equal(t, int64(3000), updated.Price().Cents())
				return nil
			})
		f.outbox.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e shared.OutboxEvent) error {
				assert.Equal(t, commands.EventReservationExtended, e.EventType)
				return nil
			})
		f.queries.EXPECT().GetByID(gomock.Any(), res.ID()).Return(&queries.ReservationView{ID: res.ID(), CheckOut: monday(13, 0)}, nil)

		view, err := f.sut.ExtendReservation(ctx, res.ID(), reqdto.ExtendReservationRequest{CheckOut: monday(13, 0)})

		require.NoError(t, err)
		assert.Equal(t, monday(13, 0), view.CheckOut)
	})

	t.Run("rejects a conflicting neighbour", func(t *testing.T) {
		f := newReservationFixture(t)
		f.runsTransaction()
		res := builder.NewReservationBuilder().WithListing(l.ID()).MustBuildDomain()
		next := builder.NewReservationBuilder().WithListing(l.ID()).WithInterval(monday(12, 30), monday(14, 0)).MustBuildDomain()

		f.reservations.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		f.listings.EXPECT().LockByID(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		f.finder.EXPECT().
			FindOverlappingExcluding(gomock.Any(), l.ID(), gomock.Any(), res.ID()).
			Return([]*reservation.Reservation{next}, nil)
		f.blocks.EXPECT().FindOverlapping(gomock.Any(), l.ID(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.sut.ExtendReservation(ctx, res.ID(), reqdto.ExtendReservationRequest{CheckOut: monday(13, 0)})

		var rejected *commands.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, next.ID(), *rejected.Decision.Conflict.ReservationID)
	})

	cases := []struct {
		name     string
		stub     func(f *reservationFixture, id uuid.UUID)
		want     error
		marker   error
		checkOut time.Time
	}{
		{
			name: "unknown reservation",
			stub: func(f *reservationFixture, id uuid.UUID) {
				f.reservations.EXPECT().
					GetForUpdate(gomock.Any(), gomock.Any(), id).
					Return(nil, infra.WrapRepoErr("failed to get reservation", pgx.ErrNoRows))
			},
			want:     commands.ErrReservationNotFound,
			marker:   errs.ErrNotFound,
			checkOut: monday(13, 0),
		},
		{
			name: "cancelled reservation",
			stub: func(f *reservationFixture, id uuid.UUID) {
				res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
					b.ID = id
				}).WithStatus(reservation.StatusCancelled).MustBuildDomain()
				f.reservations.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), id).Return(res, nil)
			},
			want:     commands.ErrReservationInactive,
			marker:   errs.ErrConflict,
			checkOut: monday(13, 0),
		},
		{
			name: "new check-out is not later",
			stub: func(f *reservationFixture, id uuid.UUID) {
				res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
					b.ID = id
				}).MustBuildDomain()
				f.reservations.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), id).Return(res, nil)
			},
			marker:   errs.ErrValidation,
			checkOut: monday(11, 0),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newReservationFixture(t)
			f.runsTransaction()
			id := uuid.New()
			c.stub(f, id)

			_, err := f.sut.ExtendReservation(ctx, id, reqdto.ExtendReservationRequest{CheckOut: c.checkOut})

			require.Error(t, err)
			if c.want != nil {
				assert.ErrorIs(t, err, c.want)
			}
			assert.True(t, errs.Is(err, c.marker))
		})
	}
}

func TestReservationCommands_CreateReservation_ConcurrentSameKey(t *testing.T) {
	// the first request committed while this one waited on the listing lock
	f := newReservationFixture(t)
	key := uuid.New()
	l := builder.NewListingBuilder().MustBuildDomain()
	req := createRequest(l.ID())
	req.AddOns = nil
	winner := builder.NewReservationBuilder().WithListing(l.ID()).MustBuildDomain()

	gomock.InOrder(
		f.reads.EXPECT().
			IdempotencyByKey(gomock.Any(), key).
			Return(nil, infra.WrapRepoErr("failed to get idempotency key", pgx.ErrNoRows)),
		f.reads.EXPECT().
			IdempotencyByKey(gomock.Any(), key).
			Return(&shared.IdempotencyRecord{Key: key, RequestHash: hashOf(t, req), ReservationID: winner.ID()}, nil),
	)
	f.runsTransaction()
	f.listings.EXPECT().LockByID(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
	f.finder.EXPECT().FindOverlapping(gomock.Any(), l.ID(), gomock.Any()).Return([]*reservation.Reservation{winner}, nil)
	f.blocks.EXPECT().FindOverlapping(gomock.Any(), l.ID(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.queries.EXPECT().GetByID(gomock.Any(), winner.ID()).Return(&queries.ReservationView{ID: winner.ID()}, nil)

	result, err := f.sut.CreateReservation(context.Background(), req, key)

	require.NoError(t, err)
	assert.True(t, result.IsReplayed)
	assert.Equal(t, winner.ID(), result.Reservation.ID)
}
