package readstore

import (
	"context"

	"venuebook/internal/domain/listing"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingQueries interface {
	GetListingByID(ctx context.Context, db db.DBTX, id uuid.UUID) (pgq.Listing, error)
	ListScheduleEntries(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]pgq.ScheduleEntry, error)
	ListAddOns(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]pgq.AddOn, error)
}

type ListingReadStore struct {
	queries ListingQueries
	db      db.DBTX
}

func NewListingReadStore(queries ListingQueries, db db.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID always reads the current schedule; nothing is cached here.
func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	return loadListing(ctx, r.queries, r.db, row)
}

func loadListing(ctx context.Context, q ListingQueries, db db.DBTX, row pgq.Listing) (*listing.Listing, error) {
	ids := []uuid.UUID{row.ID}
	entries, err := q.ListScheduleEntries(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load schedule entries", err)
	}
	addOns, err := q.ListAddOns(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load add-ons", err)
	}

	l, err := converter.ListingToDomain(row, entries, addOns)
	if err != nil {
		return nil, infra.WrapRepoErr("stored listing is invalid", err)
	}
	return l, nil
}
