package readstore

import (
	"context"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"

	"github.com/google/uuid"
)

type BlockQueries interface {
	ListOverlappingBlocks(ctx context.Context, db db.DBTX, arg pgq.ListOverlappingBlocksParams) ([]pgq.Block, error)
}

type BlockReadStore struct {
	queries BlockQueries
	db      db.DBTX
}

func NewBlockReadStore(queries BlockQueries, db db.DBTX) *BlockReadStore {
	return &BlockReadStore{
		queries: queries,
		db:      db,
	}
}

// FindOverlapping returns blocks scoped to the listing and, when vendorID is set, to its vendor.
func (r *BlockReadStore) FindOverlapping(ctx context.Context, listingID uuid.UUID, vendorID *uuid.UUID, interval reservation.Interval) ([]*reservation.Block, error) {
	var vendorIDs []uuid.UUID
	if vendorID != nil {
		vendorIDs = []uuid.UUID{*vendorID}
	}
	return r.FindOverlappingForScopes(ctx, []uuid.UUID{listingID}, vendorIDs, interval)
}

func (r *BlockReadStore) FindOverlappingForScopes(ctx context.Context, listingIDs, vendorIDs []uuid.UUID, interval reservation.Interval) ([]*reservation.Block, error) {
	if len(listingIDs) == 0 && len(vendorIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListOverlappingBlocks(ctx, r.db, pgq.ListOverlappingBlocksParams{
		ListingIDs: listingIDs,
		VendorIDs:  vendorIDs,
		Start:      interval.Start(),
		End:        interval.End(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping blocks", err)
	}

	result := make([]*reservation.Block, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BlockToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored block is invalid", err)
		}
		result = append(result, b)
	}
	return result, nil
}
