package pgq

import (
	"context"
	"time"

	"venuebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `r.id, r.listing_id, r.check_in, r.check_out, r.status, r.price_cents, r.add_ons, r.note, r.created_at, r.updated_at`

func (r *Reservation) scanTargets() []any {
	return []any{&r.ID, &r.ListingID, &r.CheckIn, &r.CheckOut, &r.Status, &r.PriceCents, &r.AddOns, &r.Note, &r.CreatedAt, &r.UpdatedAt}
}

const getReservationByID = `SELECT ` + reservationColumns + `, l.title, l.timezone
FROM reservations r
JOIN listings l ON l.id = r.listing_id
WHERE r.id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db db.DBTX, id uuid.UUID) (ReservationView, error) {
	var row ReservationView
	targets := append(row.Reservation.scanTargets(), &row.ListingTitle, &row.Timezone)
	err := db.QueryRow(ctx, getReservationByID, id).Scan(targets...)
	return row, err
}

type ListOverlappingReservationsParams struct {
	ListingIDs []uuid.UUID
	Start      time.Time
	End        time.Time
	ExcludeID  pgtype.UUID
}

// Half-open overlap: existing.check_in < end AND existing.check_out > start.
const listOverlappingReservations = `SELECT ` + reservationColumns + `
FROM reservations r
WHERE r.listing_id = ANY($1)
  AND r.status IN ('pending', 'confirmed')
  AND r.check_in < $3
  AND r.check_out > $2
  AND ($4::uuid IS NULL OR r.id <> $4)
ORDER BY r.check_in`

func (q *Queries) ListOverlappingReservations(ctx context.Context, db db.DBTX, arg ListOverlappingReservationsParams) ([]Reservation, error) {
	rows, err := db.Query(ctx, listOverlappingReservations, arg.ListingIDs, arg.Start, arg.End, arg.ExcludeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Reservation, error) {
		var res Reservation
		err := r.Scan(res.scanTargets()...)
		return res, err
	})
}

type CreateReservationParams struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
	PriceCents int64
	AddOns     []byte
	Note       pgtype.Text
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const createReservation = `INSERT INTO reservations (id, listing_id, check_in, check_out, status, price_cents, add_ons, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (q *Queries) CreateReservation(ctx context.Context, db db.DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createReservation,
		arg.ID, arg.ListingID, arg.CheckIn, arg.CheckOut, arg.Status, arg.PriceCents, arg.AddOns, arg.Note, arg.CreatedAt, arg.UpdatedAt,
	).Scan(&id)
	return id, err
}

type UpdateReservationWindowParams struct {
	ID         uuid.UUID
	CheckOut   time.Time
	PriceCents int64
	UpdatedAt  time.Time
}

const updateReservationWindow = `UPDATE reservations
SET check_out = $2, price_cents = $3, updated_at = $4
WHERE id = $1`

func (q *Queries) UpdateReservationWindow(ctx context.Context, db db.DBTX, arg UpdateReservationWindowParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationWindow, arg.ID, arg.CheckOut, arg.PriceCents, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getReservationForUpdate = `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1 FOR UPDATE`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (Reservation, error) {
	var row Reservation
	err := db.QueryRow(ctx, getReservationForUpdate, id).Scan(row.scanTargets()...)
	return row, err
}
