package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/propagation"
)

//go:generate mockgen -source=publisher.go -destination=../../../tests/mock/outbox/publisher_mock.go -package=outboxmock

type Store interface {
	FetchUnpublishedOutbox(ctx context.Context, db db.DBTX, limit int32) ([]pgq.OutboxEvent, error)
	MarkOutboxPublished(ctx context.Context, db db.DBTX, ids []uuid.UUID, at time.Time) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher ships outbox rows to Kafka. Delivery is at-least-once: rows are marked
// only after the broker acknowledged them, in the same transaction that locked them.
type Publisher struct {
	uow        shared.UnitOfWork
	store      Store
	writer     MessageWriter
	propagator propagation.TextMapPropagator
	clock      clock.Clock
	logger     *slog.Logger
	pollEvery  time.Duration
	batchSize  int
}

func NewPublisher(
	uow shared.UnitOfWork,
	store Store,
	cfg config.KafkaConfig,
	propagator propagation.TextMapPropagator,
	clk clock.Clock,
	logger *slog.Logger,
) *Publisher {
	var writer MessageWriter
	if brokers := SplitBrokers(cfg.Brokers); len(brokers) > 0 {
		writer = &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        cfg.ReservationTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		}
	}
	return NewPublisherWithWriter(uow, store, writer, cfg, propagator, clk, logger)
}

// NewPublisherWithWriter accepts any writer; a nil writer disables publishing.
func NewPublisherWithWriter(
	uow shared.UnitOfWork,
	store Store,
	writer MessageWriter,
	cfg config.KafkaConfig,
	propagator propagation.TextMapPropagator,
	clk clock.Clock,
	logger *slog.Logger,
) *Publisher {
	if cfg.OutboxPollEvery <= 0 {
		cfg.OutboxPollEvery = 2 * time.Second
	}
	if cfg.OutboxBatchSize <= 0 {
		cfg.OutboxBatchSize = 50
	}
	if propagator == nil {
		propagator = propagation.TraceContext{}
	}
	return &Publisher{
		uow:        uow,
		store:      store,
		writer:     writer,
		propagator: propagator,
		clock:      clk,
		logger:     logger,
		pollEvery:  cfg.OutboxPollEvery,
		batchSize:  cfg.OutboxBatchSize,
	}
}

func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

// Run polls until ctx is cancelled.
func (p *Publisher) Run(ctx context.Context) {
	if !p.Enabled() {
		p.logger.Warn("outbox publisher disabled (no kafka brokers configured)")
		return
	}

	ticker := time.NewTicker(p.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.PublishBatch(ctx); err != nil {
				p.logger.ErrorContext(ctx, "outbox publish failed", "error", err.Error())
			}
		}
	}
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// PublishBatch ships at most one batch and returns how many events went out.
func (p *Publisher) PublishBatch(ctx context.Context) (int, error) {
	if !p.Enabled() {
		return 0, nil
	}

	var published int
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		records, err := p.store.FetchUnpublishedOutbox(ctx, tx.DB(), int32(p.batchSize))
		if err != nil {
			return errs.Wrap(err, "fetch unpublished outbox events")
		}
		if len(records) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, 0, len(records))
		ids := make([]uuid.UUID, 0, len(records))
		for _, r := range records {
			msgs = append(msgs, p.message(ctx, r))
			ids = append(ids, r.ID)
		}

		if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
			return errs.Wrap(err, "write outbox events to kafka")
		}
		if err := p.store.MarkOutboxPublished(ctx, tx.DB(), ids, p.clock.Now()); err != nil {
			return errs.Wrap(err, "mark outbox events published")
		}
		published = len(records)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if published > 0 {
		p.logger.DebugContext(ctx, "outbox events published", "count", published)
	}
	return published, nil
}

func (p *Publisher) message(ctx context.Context, r pgq.OutboxEvent) kafka.Message {
	msgCtx := ctx
	if len(r.TraceCarrier) > 0 {
		stored := propagation.MapCarrier{}
		if err := json.Unmarshal(r.TraceCarrier, &stored); err == nil {
			msgCtx = p.propagator.Extract(ctx, stored)
		} else {
			p.logger.WarnContext(ctx, "unreadable trace carrier on outbox event", "event_id", r.ID.String())
		}
	}

	carrier := &headerCarrier{headers: []kafka.Header{
		{Key: "event_id", Value: []byte(r.ID.String())},
		{Key: "event_type", Value: []byte(r.EventType)},
		{Key: "aggregate_type", Value: []byte(r.AggregateType)},
	}}
	p.propagator.Inject(msgCtx, carrier)

	return kafka.Message{
		Key:     []byte(r.AggregateID.String()),
		Value:   r.Payload,
		Headers: carrier.headers,
		Time:    r.CreatedAt,
	}
}

func SplitBrokers(raw string) []string {
	var out []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
