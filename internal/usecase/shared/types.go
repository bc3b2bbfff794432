package shared

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	RequestHash   string
	ReservationID uuid.UUID
	CreatedAt     time.Time
}

// OutboxEvent is written in the same transaction as the change it announces.
type OutboxEvent struct {
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	OccurredAt    time.Time
}

// FeedBlock is one busy interval read from an external calendar feed.
type FeedBlock struct {
	ExternalUID string
	Start       time.Time
	End         time.Time
	Summary     string
}
