package listing

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid listing status")
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// ScheduleConfig is everything pricing and availability need to know about a listing.
type ScheduleConfig struct {
	pricingModel    PricingModel
	schedule        []ScheduleEntry
	bufferTime      int
	bufferUnit      BufferUnit
	minimumDuration int
	durationUnit    DurationUnit
	timezone        string
	location        *time.Location
}

type ScheduleConfigParams struct {
	PricingModel    PricingModel
	Schedule        []ScheduleEntry
	BufferTime      int
	BufferUnit      BufferUnit
	MinimumDuration int
	DurationUnit    DurationUnit
	Timezone        string
}

func NewScheduleConfig(p ScheduleConfigParams) (ScheduleConfig, error) {
	model, err := ParsePricingModel(string(p.PricingModel))
	if err != nil {
		return ScheduleConfig{}, err
	}
	p.PricingModel = model
	if p.BufferTime < 0 {
		return ScheduleConfig{}, ErrNegativeBuffer
	}
	if p.MinimumDuration < 0 {
		return ScheduleConfig{}, ErrNegativeMinimum
	}
	if p.BufferUnit, err = ParseBufferUnit(string(p.BufferUnit)); err != nil {
		return ScheduleConfig{}, err
	}
	if p.DurationUnit, err = ParseDurationUnit(string(p.DurationUnit)); err != nil {
		return ScheduleConfig{}, err
	}

	tz := strings.TrimSpace(p.Timezone)
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return ScheduleConfig{}, errors.Join(ErrInvalidTimezone, err)
	}

	seen := make(map[time.Weekday]struct{}, len(p.Schedule))
	schedule := make([]ScheduleEntry, 0, len(p.Schedule))
	for _, e := range p.Schedule {
		if _, dup := seen[e.weekday]; dup {
			return ScheduleConfig{}, ErrDuplicateWeekday
		}
		seen[e.weekday] = struct{}{}
		schedule = append(schedule, e)
	}
	sort.Slice(schedule, func(i, j int) bool { return schedule[i].weekday < schedule[j].weekday })

	return ScheduleConfig{
		pricingModel:    p.PricingModel,
		schedule:        schedule,
		bufferTime:      p.BufferTime,
		bufferUnit:      p.BufferUnit,
		minimumDuration: p.MinimumDuration,
		durationUnit:    p.DurationUnit,
		timezone:        tz,
		location:        loc,
	}, nil
}

func (c ScheduleConfig) PricingModel() PricingModel { return c.pricingModel }
func (c ScheduleConfig) BufferTime() int            { return c.bufferTime }
func (c ScheduleConfig) BufferUnit() BufferUnit     { return c.bufferUnit }
func (c ScheduleConfig) MinimumDuration() int       { return c.minimumDuration }
func (c ScheduleConfig) DurationUnit() DurationUnit { return c.durationUnit }
func (c ScheduleConfig) Timezone() string           { return c.timezone }

func (c ScheduleConfig) Schedule() []ScheduleEntry {
	out := make([]ScheduleEntry, len(c.schedule))
	copy(out, c.schedule)
	return out
}

func (c ScheduleConfig) HasSchedule() bool { return len(c.schedule) > 0 }

// Location falls back to UTC for a zero-value config.
func (c ScheduleConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c ScheduleConfig) Buffer() time.Duration {
	return c.bufferUnit.Duration(c.bufferTime)
}

func (c ScheduleConfig) MinimumDurationMinutes() int {
	return c.durationUnit.Minutes(c.minimumDuration)
}

func (c ScheduleConfig) EntryFor(day time.Weekday) (ScheduleEntry, bool) {
	for _, e := range c.schedule {
		if e.weekday == day {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

type Listing struct {
	id        uuid.UUID
	vendorID  uuid.UUID
	title     string
	status    Status
	config    ScheduleConfig
	addOns    []AddOn
	basePrice Money
	published bool
	verified  bool
	deletedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructListing(
	id, vendorID uuid.UUID,
	title string,
	status Status,
	config ScheduleConfig,
	addOns []AddOn,
	basePrice Money,
	published, verified bool,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:        id,
		vendorID:  vendorID,
		title:     title,
		status:    status,
		config:    config,
		addOns:    addOns,
		basePrice: basePrice,
		published: published,
		verified:  verified,
		deletedAt: deletedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// IsPublishable mirrors the fixed constraints applied to every search.
func (l *Listing) IsPublishable() bool {
	return l.published && l.verified && l.deletedAt == nil
}

// SelectAddOns resolves add-on names against the listing's catalog.
func (l *Listing) SelectAddOns(names []string) ([]AddOn, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]AddOn, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		found := false
		for _, a := range l.addOns {
			if strings.EqualFold(a.name, n) {
				out = append(out, a)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrUnknownAddOn
		}
	}
	return out, nil
}

// OfferedAddOns keeps only the names this listing offers, in request order.
func (l *Listing) OfferedAddOns(names []string) []AddOn {
	var out []AddOn
	for _, n := range names {
		n = strings.TrimSpace(n)
		for _, a := range l.addOns {
			if strings.EqualFold(a.name, n) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func (l *Listing) ID() uuid.UUID          { return l.id }
func (l *Listing) VendorID() uuid.UUID    { return l.vendorID }
func (l *Listing) Title() string          { return l.title }
func (l *Listing) Status() Status         { return l.status }
func (l *Listing) Config() ScheduleConfig { return l.config }
func (l *Listing) AddOns() []AddOn        { return l.addOns }
func (l *Listing) BasePrice() Money       { return l.basePrice }
func (l *Listing) IsPublished() bool      { return l.published }
func (l *Listing) IsVerified() bool       { return l.verified }
func (l *Listing) DeletedAt() *time.Time  { return l.deletedAt }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time   { return l.updatedAt }
