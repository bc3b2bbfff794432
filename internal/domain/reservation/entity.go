package reservation

import (
	"errors"
	"time"

	"venuebook/internal/domain/listing"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrNotAnExtension      = errors.New("new check-out must be later than the current check-out")
	ErrReservationInactive = errors.New("reservation no longer occupies its interval")
)

type Reservation struct {
	id        uuid.UUID
	listingID uuid.UUID
	interval  Interval
	status    Status
	price     listing.Money
	addOns    []listing.AddOn
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation creates a pending reservation. Availability must already have been
// decided by the caller inside the same transaction.
func NewReservation(
	listingID uuid.UUID,
	interval Interval,
	price listing.Money,
	addOns []listing.AddOn,
	note Note,
	now time.Time,
) (*Reservation, error) {
	if interval.IsZero() {
		return nil, ErrInvalidInterval
	}
	if price.Cents() < 0 {
		return nil, ErrNegativePrice
	}
	return &Reservation{
		id:        uuid.New(),
		listingID: listingID,
		interval:  interval,
		status:    StatusPending,
		price:     price,
		addOns:    addOns,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, listingID uuid.UUID,
	interval Interval,
	status Status,
	price listing.Money,
	addOns []listing.AddOn,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		listingID: listingID,
		interval:  interval,
		status:    status,
		price:     price,
		addOns:    addOns,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Extend moves check-out later and replaces the price.
func (r *Reservation) Extend(newCheckOut time.Time, price listing.Money, now time.Time) error {
	if !r.status.BlocksCalendar() {
		return ErrReservationInactive
	}
	if !newCheckOut.After(r.interval.End()) {
		return ErrNotAnExtension
	}
	if price.Cents() < 0 {
		return ErrNegativePrice
	}
	interval, err := NewInterval(r.interval.Start(), newCheckOut)
	if err != nil {
		return err
	}
	r.interval = interval
	r.price = price
	r.updatedAt = now
	return nil
}

func (r *Reservation) BlocksCalendar() bool {
	return r.status.BlocksCalendar()
}

func (r *Reservation) AddOnNames() []string {
	names := make([]string, len(r.addOns))
	for i, a := range r.addOns {
		names[i] = a.Name()
	}
	return names
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) ListingID() uuid.UUID    { return r.listingID }
func (r *Reservation) Interval() Interval      { return r.interval }
func (r *Reservation) CheckIn() time.Time      { return r.interval.Start() }
func (r *Reservation) CheckOut() time.Time     { return r.interval.End() }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) Price() listing.Money    { return r.price }
func (r *Reservation) AddOns() []listing.AddOn { return r.addOns }
func (r *Reservation) Note() Note              { return r.note }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
