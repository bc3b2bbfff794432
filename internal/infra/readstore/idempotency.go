package readstore

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyQueries interface {
	GetIdempotency(ctx context.Context, db db.DBTX, key uuid.UUID) (pgq.Idempotency, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyQueries
	db      db.DBTX
}

func NewIdempotencyReadStore(queries IdempotencyQueries, db db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyReadStore) FindByKey(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotency(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		RequestHash:   row.RequestHash,
		ReservationID: row.ReservationID,
		CreatedAt:     row.CreatedAt,
	}, nil
}
