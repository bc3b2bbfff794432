package repository

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	InsertIdempotency(ctx context.Context, db db.DBTX, arg pgq.InsertIdempotencyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      db.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// Save records the reservation a key produced. A concurrent request that raced on the same
// key fails with KindDuplicateKey and rolls back its own reservation.
func (r *IdempotencyRepository) Save(ctx context.Context, tx db.DBTX, key uuid.UUID, requestHash string, reservationID uuid.UUID) error {
	err := r.queries.InsertIdempotency(ctx, tx, pgq.InsertIdempotencyParams{
		Key:           key,
		RequestHash:   requestHash,
		ReservationID: reservationID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save idempotency key", err)
	}
	return nil
}
