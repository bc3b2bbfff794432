//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/listing"

	"github.com/google/uuid"
)

type ScheduleRow struct {
	Weekday   time.Weekday
	Start     string
	End       string
	RateCents int64
}

type ListingBuilder struct {
	ID              uuid.UUID
	VendorID        uuid.UUID
	Title           string
	PricingModel    listing.PricingModel
	Schedule        []ScheduleRow
	BufferTime      int
	BufferUnit      listing.BufferUnit
	MinimumDuration int
	DurationUnit    listing.DurationUnit
	Timezone        string
	AddOns          map[string]int64
	BasePriceCents  int64
	Published       bool
	Verified        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewListingBuilder defaults to an hourly listing open 09:00-17:00 on weekdays at 10.00/hour.
func NewListingBuilder() *ListingBuilder {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	b := &ListingBuilder{
		ID:             uuid.New(),
		VendorID:       uuid.New(),
		Title:          "Harbor Loft",
		PricingModel:   listing.PricingHourly,
		BufferUnit:     listing.BufferMinutes,
		DurationUnit:   listing.DurationMinutes,
		Timezone:       "UTC",
		AddOns:         map[string]int64{},
		BasePriceCents: 1000,
		Published:      true,
		Verified:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, d := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		b.Schedule = append(b.Schedule, ScheduleRow{Weekday: d, Start: "09:00", End: "17:00", RateCents: 1000})
	}
	return b
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithDaily() *ListingBuilder {
	b.PricingModel = listing.PricingDaily
	return b
}

func (b *ListingBuilder) WithSchedule(rows ...ScheduleRow) *ListingBuilder {
	b.Schedule = rows
	return b
}

func (b *ListingBuilder) WithBuffer(n int, unit listing.BufferUnit) *ListingBuilder {
	b.BufferTime = n
	b.BufferUnit = unit
	return b
}

func (b *ListingBuilder) WithMinimumDuration(n int, unit listing.DurationUnit) *ListingBuilder {
	b.MinimumDuration = n
	b.DurationUnit = unit
	return b
}

func (b *ListingBuilder) WithTimezone(tz string) *ListingBuilder {
	b.Timezone = tz
	return b
}

func (b *ListingBuilder) WithAddOn(name string, cents int64) *ListingBuilder {
	b.AddOns[name] = cents
	return b
}

// Build methods
func (b *ListingBuilder) BuildConfig() (listing.ScheduleConfig, error) {
	entries := make([]listing.ScheduleEntry, 0, len(b.Schedule))
	for _, row := range b.Schedule {
		start, err := listing.ParseClockTime(row.Start)
		if err != nil {
			return listing.ScheduleConfig{}, err
		}
		end, err := listing.ParseClockTime(row.End)
		if err != nil {
			return listing.ScheduleConfig{}, err
		}
		entry, err := listing.NewScheduleEntry(row.Weekday, start, end, row.RateCents)
		if err != nil {
			return listing.ScheduleConfig{}, err
		}
		entries = append(entries, entry)
	}
	return listing.NewScheduleConfig(listing.ScheduleConfigParams{
		PricingModel:    b.PricingModel,
		Schedule:        entries,
		BufferTime:      b.BufferTime,
		BufferUnit:      b.BufferUnit,
		MinimumDuration: b.MinimumDuration,
		DurationUnit:    b.DurationUnit,
		Timezone:        b.Timezone,
	})
}

func (b *ListingBuilder) BuildAddOns() ([]listing.AddOn, error) {
	out := make([]listing.AddOn, 0, len(b.AddOns))
	for name, cents := range b.AddOns {
		a, err := listing.NewAddOn(name, cents)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	cfg, err := b.BuildConfig()
	if err != nil {
		return nil, err
	}
	addOns, err := b.BuildAddOns()
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(
		b.ID, b.VendorID, b.Title, listing.StatusActive, cfg, addOns,
		listing.NewMoney(b.BasePriceCents), b.Published, b.Verified, nil,
		b.CreatedAt, b.UpdatedAt,
	), nil
}

// MustBuildDomain is for tests where the listing itself is not under test.
func (b *ListingBuilder) MustBuildDomain() *listing.Listing {
	l, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return l
}
