package pgq

import (
	"context"

	"venuebook/internal/infra/db"

	"github.com/google/uuid"
)

const getIdempotency = `SELECT key, request_hash, reservation_id, created_at FROM reservation_idempotency WHERE key = $1`

func (q *Queries) GetIdempotency(ctx context.Context, db db.DBTX, key uuid.UUID) (Idempotency, error) {
	var row Idempotency
	err := db.QueryRow(ctx, getIdempotency, key).Scan(&row.Key, &row.RequestHash, &row.ReservationID, &row.CreatedAt)
	return row, err
}

type InsertIdempotencyParams struct {
	Key           uuid.UUID
	RequestHash   string
	ReservationID uuid.UUID
}

const insertIdempotency = `INSERT INTO reservation_idempotency (key, request_hash, reservation_id) VALUES ($1, $2, $3)`

func (q *Queries) InsertIdempotency(ctx context.Context, db db.DBTX, arg InsertIdempotencyParams) error {
	_, err := db.Exec(ctx, insertIdempotency, arg.Key, arg.RequestHash, arg.ReservationID)
	return err
}
