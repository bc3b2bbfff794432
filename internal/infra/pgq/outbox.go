package pgq

import (
	"context"
	"time"

	"venuebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InsertOutboxEventParams struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	TraceCarrier  []byte
	CreatedAt     time.Time
}

const insertOutboxEvent = `INSERT INTO outbox_events (id, aggregate_type, aggregate_id, event_type, payload, trace_carrier, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertOutboxEvent(ctx context.Context, db db.DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent,
		arg.ID, arg.AggregateType, arg.AggregateID, arg.EventType, arg.Payload, arg.TraceCarrier, arg.CreatedAt,
	)
	return err
}

// Rows stay locked until the surrounding transaction ends; SKIP LOCKED lets several
// publishers share the table.
const fetchUnpublishedOutbox = `SELECT id, aggregate_type, aggregate_id, event_type, payload, trace_carrier, created_at
FROM outbox_events
WHERE published_at IS NULL
ORDER BY created_at
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) FetchUnpublishedOutbox(ctx context.Context, db db.DBTX, limit int32) ([]OutboxEvent, error) {
	rows, err := db.Query(ctx, fetchUnpublishedOutbox, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (OutboxEvent, error) {
		var e OutboxEvent
		err := r.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Payload, &e.TraceCarrier, &e.CreatedAt)
		return e, err
	})
}

const markOutboxPublished = `UPDATE outbox_events SET published_at = $2 WHERE id = ANY($1)`

func (q *Queries) MarkOutboxPublished(ctx context.Context, db db.DBTX, ids []uuid.UUID, at time.Time) error {
	_, err := db.Exec(ctx, markOutboxPublished, ids, at)
	return err
}
