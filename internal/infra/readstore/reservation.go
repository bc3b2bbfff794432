package readstore

import (
	"context"

	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationQueries interface {
	GetReservationByID(ctx context.Context, db db.DBTX, id uuid.UUID) (pgq.ReservationView, error)
	ListOverlappingReservations(ctx context.Context, db db.DBTX, arg pgq.ListOverlappingReservationsParams) ([]pgq.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationQueries
	db      db.DBTX
}

func NewReservationReadStore(queries ReservationQueries, db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	addOns, err := converter.UnmarshalAddOns(row.AddOns)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation add-ons are invalid", err)
	}
	return rowToReservationView(row, addOns), nil
}

func (r *ReservationReadStore) FindOverlapping(ctx context.Context, listingID uuid.UUID, interval reservation.Interval) ([]*reservation.Reservation, error) {
	return r.overlapping(ctx, []uuid.UUID{listingID}, interval, nil)
}

func (r *ReservationReadStore) FindOverlappingExcluding(ctx context.Context, listingID uuid.UUID, interval reservation.Interval, excludeID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.overlapping(ctx, []uuid.UUID{listingID}, interval, &excludeID)
}

func (r *ReservationReadStore) FindOverlappingForListings(ctx context.Context, listingIDs []uuid.UUID, interval reservation.Interval) ([]*reservation.Reservation, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}
	return r.overlapping(ctx, listingIDs, interval, nil)
}

func (r *ReservationReadStore) overlapping(ctx context.Context, listingIDs []uuid.UUID, interval reservation.Interval, excludeID *uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListOverlappingReservations(ctx, r.db, pgq.ListOverlappingReservationsParams{
		ListingIDs: listingIDs,
		Start:      interval.Start(),
		End:        interval.End(),
		ExcludeID:  pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation is invalid", err)
		}
		result = append(result, res)
	}
	return result, nil
}

func rowToReservationView(row pgq.ReservationView, addOns []listing.AddOn) *queries.ReservationView {
	views := make([]queries.AddOnView, len(addOns))
	for i, a := range addOns {
		views[i] = queries.AddOnView{Name: a.Name(), PriceCents: a.Price().Cents()}
	}
	return &queries.ReservationView{
		ID:           row.ID,
		ListingID:    row.ListingID,
		ListingTitle: row.ListingTitle,
		Timezone:     row.Timezone,
		CheckIn:      row.CheckIn,
		CheckOut:     row.CheckOut,
		Status:       row.Status,
		PriceCents:   row.PriceCents,
		AddOns:       views,
		Note:         textPtr(row.Note),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
