package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/reservation"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrListingNotFound       = errs.Mark(errs.New("listing not found"), errs.ErrNotFound)
	ErrReservationNotFound   = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrListingNotBookable    = errs.Mark(errs.New("listing is not accepting reservations"), errs.ErrConflict)
	ErrReservationRejected   = errs.Mark(errs.New("reservation rejected"), errs.ErrConflict)
	ErrReservationConflict   = errs.Mark(errs.New("reservation conflict"), errs.ErrConflict)
	ErrReservationInactive   = errs.Mark(errs.New("reservation can no longer be changed"), errs.ErrConflict)
	ErrIdempotencyKeyReused  = errs.Mark(errs.New("idempotency key was used with a different request"), errs.ErrConflict)
	ErrDatabaseOperationFail = errs.New("database operation failed")
)

// RejectedError carries the availability decision that turned a request down.
type RejectedError struct {
	ListingID uuid.UUID
	Interval  reservation.Interval
	Decision  availability.Decision
}

func (e *RejectedError) Error() string {
	return "reservation rejected: " + e.Decision.Reason
}

func (e *RejectedError) Unwrap() error {
	return ErrReservationRejected
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	ExtendReservation(ctx context.Context, id uuid.UUID, req reqdto.ExtendReservationRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	calculator         pricing.PriceCalculator
	clock              clock.Clock
	logger             *slog.Logger
	tracer             trace.Tracer
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	calculator pricing.PriceCalculator,
	clock clock.Clock,
	logger *slog.Logger,
	tracer trace.Tracer,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		calculator:         calculator,
		clock:              clock,
		logger:             logger,
		tracer:             tracer,
	}
}

// CreateReservation reserves the interval only if it is still available. The listing row is
// locked for the whole check-then-insert so concurrent requests for one listing run one at a time.
func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	ctx, span := r.tracer.Start(ctx, "ReservationCommands.CreateReservation",
		trace.WithAttributes(attribute.String("listing.id", req.ListingID.String())))
	defer span.End()

	interval, err := req.Interval()
	if err != nil {
		return nil, errs.Invalid("checkOut", "checkOut must be after checkIn")
	}

	requestHash := calculateRequestHash(req)

	replayed, err := r.replay(ctx, idempotencyKey, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		span.SetAttributes(attribute.Bool("idempotency.replayed", true))
		return &CreateReservationResult{Reservation: replayed, IsReplayed: true}, nil
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := lockListing(ctx, tx, req.ListingID)
		if err != nil {
			return err
		}
		if l.Status() != listing.StatusActive || !l.IsPublishable() {
			return ErrListingNotBookable
		}

		addOns, err := l.SelectAddOns(req.AddOns)
		if err != nil {
			return errs.Invalid("addOns", err.Error())
		}

		if err := r.checkAvailability(ctx, tx, l, interval, nil); err != nil {
			return err
		}

		price := r.calculator.ComputePrice(l.Config(), interval.Start(), interval.End(), addOns)
		res, err := reservation.NewReservation(l.ID(), interval, price, addOns, req.GetNote(), r.clock.Now())
		if err != nil {
			return errs.Invalid("reservation", err.Error())
		}

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFail)
		}

		if err := tx.Idempotency().Save(ctx, tx.DB(), idempotencyKey, requestHash, reservationID); err != nil {
			return err
		}

		return r.enqueue(ctx, tx, EventReservationAccepted, res)
	})
	if err != nil {
		// a concurrent request with the same key may have committed first
		if infra.IsKind(err, infra.KindDuplicateKey) || errors.Is(err, ErrReservationRejected) {
			replayed, replayErr := r.replay(ctx, idempotencyKey, requestHash)
			if replayErr != nil {
				return nil, replayErr
			}
			if replayed != nil {
				return &CreateReservationResult{Reservation: replayed, IsReplayed: true}, nil
			}
		}
		recordError(span, err)
		return nil, err
	}

	r.logger.InfoContext(ctx, "reservation created",
		"reservation_id", reservationID.String(),
		"listing_id", req.ListingID.String())

	view, err := r.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFail)
	}
	return &CreateReservationResult{Reservation: view, IsReplayed: false}, nil
}

// ExtendReservation moves check-out later. The reservation's own interval is excluded from the
// conflict check and the price is recomputed for the whole new interval.
func (r *reservationCommandsImpl) ExtendReservation(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.ExtendReservationRequest,
) (*queries.ReservationView, error) {
	ctx, span := r.tracer.Start(ctx, "ReservationCommands.ExtendReservation",
		trace.WithAttributes(attribute.String("reservation.id", id.String())))
	defer span.End()

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().GetForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFail)
		}
		if !res.BlocksCalendar() {
			return ErrReservationInactive
		}
		if !req.CheckOut.After(res.CheckOut()) {
			return errs.Invalid("checkOut", "checkOut must be later than the current check-out")
		}

		l, err := lockListing(ctx, tx, res.ListingID())
		if err != nil {
			return err
		}

		interval, err := reservation.NewInterval(res.CheckIn(), req.CheckOut)
		if err != nil {
			return errs.Invalid("checkOut", err.Error())
		}

		self := res.ID()
		if err := r.checkAvailability(ctx, tx, l, interval, &self); err != nil {
			return err
		}

		price := r.calculator.ComputePrice(l.Config(), interval.Start(), interval.End(), res.AddOns())
		if err := res.Extend(req.CheckOut, price, r.clock.Now()); err != nil {
			return errs.Invalid("checkOut", err.Error())
		}

		if err := tx.Reservations().UpdateWindow(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationConflict
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFail)
		}

		return r.enqueue(ctx, tx, EventReservationExtended, res)
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	view, err := r.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFail)
	}
	return view, nil
}

func (r *reservationCommandsImpl) replay(ctx context.Context, key uuid.UUID, requestHash string) (*queries.ReservationView, error) {
	record, err := r.uow.CommandReads().IdempotencyByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFail)
	}
	if record.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}
	view, err := r.reservationQueries.GetByID(ctx, record.ReservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFail)
	}
	return view, nil
}

// checkAvailability runs the checker against stores bound to the transaction, so it sees
// rows written by concurrent bookings that committed before the listing lock was granted.
func (r *reservationCommandsImpl) checkAvailability(
	ctx context.Context,
	tx shared.Tx,
	l *listing.Listing,
	interval reservation.Interval,
	excludeReservationID *uuid.UUID,
) error {
	reads := tx.Reads()
	detector := availability.NewConflictDetector(reads.Reservations(), reads.Blocks(), r.logger)
	decision, err := availability.NewAvailabilityChecker(detector).Check(ctx, l, interval, excludeReservationID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFail)
	}
	if !decision.Available {
		return &RejectedError{ListingID: l.ID(), Interval: interval, Decision: decision}
	}
	return nil
}

func (r *reservationCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, eventType string, res *reservation.Reservation) error {
	payload, err := json.Marshal(ReservationEvent{
		ReservationID: res.ID(),
		ListingID:     res.ListingID(),
		CheckIn:       res.CheckIn(),
		CheckOut:      res.CheckOut(),
		Status:        res.Status().String(),
		PriceCents:    res.Price().Cents(),
		AddOns:        res.AddOnNames(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal reservation event")
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxEvent{
		AggregateType: AggregateReservation,
		AggregateID:   res.ID(),
		EventType:     eventType,
		Payload:       payload,
		OccurredAt:    r.clock.Now(),
	})
}

func lockListing(ctx context.Context, tx shared.Tx, id uuid.UUID) (*listing.Listing, error) {
	l, err := tx.Listings().LockByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFail)
	}
	return l, nil
}

func recordError(span trace.Span, err error) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		span.SetAttributes(attribute.String("availability.reason", rejected.Decision.Reason))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func calculateRequestHash(req reqdto.CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
