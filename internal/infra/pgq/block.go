package pgq

import (
	"context"
	"time"

	"venuebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListOverlappingBlocksParams struct {
	ListingIDs []uuid.UUID
	VendorIDs  []uuid.UUID
	Start      time.Time
	End        time.Time
}

const listOverlappingBlocks = `SELECT id, listing_id, vendor_id, source, feed_name, external_uid, starts_at, ends_at, reason
FROM blocks
WHERE (listing_id = ANY($1) OR vendor_id = ANY($2))
  AND starts_at < $4
  AND ends_at > $3
ORDER BY starts_at`

func (q *Queries) ListOverlappingBlocks(ctx context.Context, db db.DBTX, arg ListOverlappingBlocksParams) ([]Block, error) {
	if arg.VendorIDs == nil {
		arg.VendorIDs = []uuid.UUID{}
	}
	rows, err := db.Query(ctx, listOverlappingBlocks, arg.ListingIDs, arg.VendorIDs, arg.Start, arg.End)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Block, error) {
		var b Block
		err := r.Scan(&b.ID, &b.ListingID, &b.VendorID, &b.Source, &b.FeedName, &b.ExternalUID, &b.StartsAt, &b.EndsAt, &b.Reason)
		return b, err
	})
}

const deleteBlocksByFeed = `DELETE FROM blocks WHERE feed_name = $1`

func (q *Queries) DeleteBlocksByFeed(ctx context.Context, db db.DBTX, feedName string) (int64, error) {
	tag, err := db.Exec(ctx, deleteBlocksByFeed, feedName)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type InsertBlockParams struct {
	ID          uuid.UUID
	ListingID   pgtype.UUID
	VendorID    pgtype.UUID
	Source      string
	FeedName    pgtype.Text
	ExternalUID string
	StartsAt    time.Time
	EndsAt      time.Time
	Reason      string
}

const insertBlock = `INSERT INTO blocks (id, listing_id, vendor_id, source, feed_name, external_uid, starts_at, ends_at, reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertBlock(ctx context.Context, db db.DBTX, arg InsertBlockParams) error {
	_, err := db.Exec(ctx, insertBlock,
		arg.ID, arg.ListingID, arg.VendorID, arg.Source, arg.FeedName, arg.ExternalUID, arg.StartsAt, arg.EndsAt, arg.Reason,
	)
	return err
}
