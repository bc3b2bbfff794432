package repository

import (
	"context"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
)

type BlockWriteQueries interface {
	DeleteBlocksByFeed(ctx context.Context, db db.DBTX, feedName string) (int64, error)
	InsertBlock(ctx context.Context, db db.DBTX, arg pgq.InsertBlockParams) error
}

type BlockRepository struct {
	queries BlockWriteQueries
	db      db.DBTX
}

func NewBlockRepository(queries BlockWriteQueries, db db.DBTX) *BlockRepository {
	return &BlockRepository{
		queries: queries,
		db:      db,
	}
}

// ReplaceFeed swaps every block previously imported from feedName for blocks. It returns
// the number of blocks inserted.
func (r *BlockRepository) ReplaceFeed(ctx context.Context, tx db.DBTX, feedName string, blocks []*reservation.Block) (int, error) {
	if _, err := r.queries.DeleteBlocksByFeed(ctx, tx, feedName); err != nil {
		return 0, infra.WrapRepoErr("failed to delete feed blocks", err)
	}

	for _, b := range blocks {
		if err := r.queries.InsertBlock(ctx, tx, converter.BlockToInfra(b, feedName)); err != nil {
			return 0, infra.WrapRepoErr("failed to insert block", err)
		}
	}
	return len(blocks), nil
}
