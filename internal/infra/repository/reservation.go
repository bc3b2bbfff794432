package repository

import (
	"context"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db db.DBTX, arg pgq.CreateReservationParams) (uuid.UUID, error)
	UpdateReservationWindow(ctx context.Context, db db.DBTX, arg pgq.UpdateReservationWindowParams) (int64, error)
	GetReservationForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (pgq.Reservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      db.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db db.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the reservation. A violation of the no-overlap exclusion constraint comes
// back as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params, err := converter.ReservationToInfra(res)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode reservation", err)
	}

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) UpdateWindow(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationWindow(ctx, tx, pgq.UpdateReservationWindowParams{
		ID:         res.ID(),
		CheckOut:   res.CheckOut(),
		PriceCents: res.Price().Cents(),
		UpdatedAt:  res.UpdatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation window", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err)
	}
	return res, nil
}
