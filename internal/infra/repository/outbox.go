package repository

import (
	"context"
	"encoding/json"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/propagation"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db db.DBTX, arg pgq.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries    OutboxWriteQueries
	db         db.DBTX
	propagator propagation.TextMapPropagator
}

func NewOutboxRepository(queries OutboxWriteQueries, db db.DBTX, propagator propagation.TextMapPropagator) *OutboxRepository {
	if propagator == nil {
		propagator = propagation.TraceContext{}
	}
	return &OutboxRepository{
		queries:    queries,
		db:         db,
		propagator: propagator,
	}
}

// Enqueue stores the event with the caller's trace context so the publisher can continue
// the same trace when it ships the event.
func (r *OutboxRepository) Enqueue(ctx context.Context, tx db.DBTX, event shared.OutboxEvent) error {
	carrier := propagation.MapCarrier{}
	r.propagator.Inject(ctx, carrier)
	rawCarrier, err := json.Marshal(carrier)
	if err != nil {
		return infra.WrapRepoErr("failed to encode trace carrier", err)
	}

	err = r.queries.InsertOutboxEvent(ctx, tx, pgq.InsertOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       event.Payload,
		TraceCarrier:  rawCarrier,
		CreatedAt:     event.OccurredAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}
