//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/reservation"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Status     reservation.Status
	PriceCents int64
	AddOns     map[string]int64
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReservationBuilder defaults to a confirmed two-hour booking on Monday 2030-01-07 10:00-12:00 UTC.
func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		CheckIn:    time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2030, 1, 7, 12, 0, 0, 0, time.UTC),
		Status:     reservation.StatusConfirmed,
		PriceCents: 2000,
		AddOns:     map[string]int64{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithInterval(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithListing(id uuid.UUID) *ReservationBuilder {
	b.ListingID = id
	return b
}

func (b *ReservationBuilder) BuildAddOns() []listing.AddOn {
	out := make([]listing.AddOn, 0, len(b.AddOns))
	for name, cents := range b.AddOns {
		a, err := listing.NewAddOn(name, cents)
		if err != nil {
			panic(err)
		}
		out = append(out, a)
	}
	return out
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	interval, err := reservation.NewInterval(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		b.ID,
		b.ListingID,
		interval,
		b.Status,
		listing.NewMoney(b.PriceCents),
		b.BuildAddOns(),
		reservation.NewNote(b.Note),
		b.CreatedAt,
		b.UpdatedAt,
	), nil
}

func (b *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) BuildInfra() pgq.Reservation {
	raw, err := converter.MarshalAddOns(b.BuildAddOns())
	if err != nil {
		panic(err)
	}
	row := pgq.Reservation{
		ID:         b.ID,
		ListingID:  b.ListingID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     string(b.Status),
		PriceCents: b.PriceCents,
		AddOns:     raw,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if b.Note != "" {
		row.Note = pgtype.Text{String: b.Note, Valid: true}
	}
	return row
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		ListingID: b.ListingID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
	}
	for name := range b.AddOns {
		req.AddOns = append(req.AddOns, name)
	}
	if b.Note != "" {
		note := b.Note
		req.Note = &note
	}
	return req
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	view := &queries.ReservationView{
		ID:           b.ID,
		ListingID:    b.ListingID,
		ListingTitle: "Rooftop Loft",
		Timezone:     "UTC",
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       string(b.Status),
		PriceCents:   b.PriceCents,
		AddOns:       []queries.AddOnView{},
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	for name, cents := range b.AddOns {
		view.AddOns = append(view.AddOns, queries.AddOnView{Name: name, PriceCents: cents})
	}
	if b.Note != "" {
		note := b.Note
		view.Note = &note
	}
	return view
}
