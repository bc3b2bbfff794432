package repository

import (
	"context"

	"venuebook/internal/domain/listing"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"

	"github.com/google/uuid"
)

type ListingLockQueries interface {
	GetListingForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (pgq.Listing, error)
	ListScheduleEntries(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]pgq.ScheduleEntry, error)
	ListAddOns(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]pgq.AddOn, error)
}

type ListingRepository struct {
	queries ListingLockQueries
	db      db.DBTX
}

func NewListingRepository(queries ListingLockQueries, db db.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

// LockByID serializes every booking write for one listing behind a row lock, so two
// transactions can never both pass the availability check for the same listing.
func (r *ListingRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.GetListingForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}

	ids := []uuid.UUID{row.ID}
	entries, err := r.queries.ListScheduleEntries(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load schedule entries", err)
	}
	addOns, err := r.queries.ListAddOns(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load add-ons", err)
	}

	l, err := converter.ListingToDomain(row, entries, addOns)
	if err != nil {
		return nil, infra.WrapRepoErr("stored listing is invalid", err)
	}
	return l, nil
}
