// Package pgq holds the hand-written SQL and row types used by the Postgres stores.
package pgq

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Listing struct {
	ID              uuid.UUID
	VendorID        uuid.UUID
	Title           string
	Description     string
	Keywords        string
	AddressLine     string
	City            string
	State           string
	Country         string
	Latitude        pgtype.Float8
	Longitude       pgtype.Float8
	Capacity        int32
	ServiceTypeID   pgtype.UUID
	EventTypeID     pgtype.UUID
	Status          string
	AttributeIDs    []uuid.UUID
	PricingModel    string
	BufferTime      int32
	BufferUnit      string
	MinimumDuration int32
	DurationUnit    string
	Timezone        string
	BasePriceCents  int64
	IsPublished     bool
	IsVerified      bool
	DeletedAt       pgtype.Timestamptz
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SearchListingRow struct {
	Listing
	VendorFirstName string
	VendorLastName  string
}

type ScheduleEntry struct {
	ListingID   uuid.UUID
	Weekday     int16
	StartMinute int16
	EndMinute   int16
	RateCents   int64
}

type AddOn struct {
	ListingID  uuid.UUID
	Name       string
	PriceCents int64
}

type Reservation struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
	PriceCents int64
	AddOns     []byte
	Note       pgtype.Text
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReservationView struct {
	Reservation
	ListingTitle string
	Timezone     string
}

type Block struct {
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

type Idempotency struct {
	Key           uuid.UUID
	RequestHash   string
	ReservationID uuid.UUID
	CreatedAt     time.Time
}

type OutboxEvent struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	TraceCarrier  []byte
	CreatedAt     time.Time
}

type SearchStats struct {
	Count         int64
	MinPriceCents pgtype.Int8
	MaxPriceCents pgtype.Int8
}

// Predicate is a compiled WHERE fragment with its positional arguments.
type Predicate struct {
	SQL  string
	Args []any
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
