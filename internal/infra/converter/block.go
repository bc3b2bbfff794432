package converter

import (
	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BlockToDomain(row pgq.Block) (*reservation.Block, error) {
	interval, err := reservation.NewInterval(row.StartsAt, row.EndsAt)
	if err != nil {
		return nil, errs.Wrapf(err, "block %s", row.ID)
	}
	return reservation.ReconstructBlock(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.ListingID),
		pgconv.UUIDPtrFromPgtype(row.VendorID),
		reservation.BlockSource(row.Source),
		row.ExternalUID,
		interval,
		row.Reason,
	), nil
}

func BlockToInfra(b *reservation.Block, feedName string) pgq.InsertBlockParams {
	params := pgq.InsertBlockParams{
		ID:          b.ID(),
		ListingID:   pgconv.UUIDPtrToPgtype(b.ListingID()),
		VendorID:    pgconv.UUIDPtrToPgtype(b.VendorID()),
		Source:      string(b.Source()),
		ExternalUID: b.ExternalUID(),
		StartsAt:    b.Interval().Start(),
		EndsAt:      b.Interval().End(),
		Reason:      b.Reason(),
	}
	if feedName != "" {
		params.FeedName = pgtype.Text{String: feedName, Valid: true}
	}
	return params
}
