package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// CalendarFeed is an external ICS calendar whose events block a listing or a whole vendor.
type CalendarFeed struct {
	Name      string
	URL       string
	ListingID *uuid.UUID
	VendorID  *uuid.UUID
}

type CalendarFeeds interface {
	All() []CalendarFeed
	ForListing(listingID uuid.UUID) []CalendarFeed
}

// CalendarFetcher returns the feed's busy intervals that intersect window, with
// recurrences already expanded.
type CalendarFetcher interface {
	Fetch(ctx context.Context, feed CalendarFeed, window reservation.Interval) ([]shared.FeedBlock, error)
}

// ReservationEvent is the outbox payload for reservation changes.
type ReservationEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	ListingID     uuid.UUID `json:"listingId"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Status        string    `json:"status"`
	PriceCents    int64     `json:"priceCents"`
	AddOns        []string  `json:"addOns"`
}

const (
	AggregateReservation = "reservation"

	EventReservationAccepted = "reservation.accepted"
	EventReservationExtended = "reservation.extended"
)
