//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"venuebook/internal/infra"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/infra/repository"
	"venuebook/internal/usecase/shared"
	repositorymock "venuebook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	event := shared.OutboxEvent{
		AggregateType: "reservation",
		AggregateID:   uuid.New(),
		EventType:     "reservation.created",
		Payload:       []byte(`{"price_cents":2000}`),
		OccurredAt:    time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("success: trace context captured in carrier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, mockDB, propagation.TraceContext{})

		mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, arg pgq.InsertOutboxEventParams) error {
				assert.NotEqual(t, uuid.Nil, arg.ID)
				assert.Equal(t, event.AggregateID, arg.AggregateID)
				assert.Equal(t, "reservation.created", arg.EventType)
				assert.Equal(t, event.OccurredAt, arg.CreatedAt)

				var carrier map[string]string
				require.NoError(t, json.Unmarshal(arg.TraceCarrier, &carrier))
				assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", carrier["traceparent"])
				return nil
			})

		require.NoError(t, repo.Enqueue(ctx, mockDB, event))
	})

	t.Run("success: no span leaves carrier empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, mockDB, nil)

		mockQueries.EXPECT().InsertOutboxEvent(gomock.Any(), mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, arg pgq.InsertOutboxEventParams) error {
				assert.JSONEq(t, `{}`, string(arg.TraceCarrier))
				return nil
			})

		require.NoError(t, repo.Enqueue(context.Background(), mockDB, event))
	})

	t.Run("error: insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, mockDB, nil)

		mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		err := repo.Enqueue(ctx, mockDB, event)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
