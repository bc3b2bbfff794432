package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/reservation"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultGeoRadiusKm = 5.0
	DefaultMaxStay     = 366 * 24 * time.Hour
)

// Params is the fixed set of optional search inputs. Zero values mean "not given".
type Params struct {
	Keyword        string
	AttributeIDs   []uuid.UUID
	FilterIDs      []uuid.UUID
	FilterValues   []float64
	ServiceTypeIDs []uuid.UUID
	Statuses       []listing.Status
	EventTypeID    *uuid.UUID
	City           string
	State          string
	Country        string
	Guests         *int
	CheckInTime    *listing.ClockTime
	CheckOutTime   *listing.ClockTime
	MinPrice       *listing.Money
	MaxPrice       *listing.Money
	Latitude       *float64
	Longitude      *float64
	CheckIn        *time.Time
	CheckOut       *time.Time
	AddOns         []string
}

type PriceRange struct {
	Min *listing.Money
	Max *listing.Money
}

func (r PriceRange) IsZero() bool { return r.Min == nil && r.Max == nil }

func (r PriceRange) Contains(m listing.Money) bool {
	if r.Min != nil && m.Cents() < r.Min.Cents() {
		return false
	}
	if r.Max != nil && m.Cents() > r.Max.Cents() {
		return false
	}
	return true
}

// Filter is the composed predicate. Clauses are AND-ed. When DateRange is set the price
// range is not part of Clauses and must be applied to each candidate's computed price.
type Filter struct {
	Clauses        []Clause
	DateRange      *reservation.Interval
	ComputedPrices PriceRange
	AddOns         []string
}

func (f Filter) HasDateRange() bool { return f.DateRange != nil }

type Composer struct {
	geoRadiusKm float64
	maxStay     time.Duration
}

func NewComposer(geoRadiusKm float64, maxStay time.Duration) *Composer {
	if geoRadiusKm <= 0 {
		geoRadiusKm = DefaultGeoRadiusKm
	}
	if maxStay <= 0 {
		maxStay = DefaultMaxStay
	}
	return &Composer{geoRadiusKm: geoRadiusKm, maxStay: maxStay}
}

// BuildFilter uses the default 5 km radius and maximum stay.
func BuildFilter(p Params) (Filter, error) {
	return NewComposer(DefaultGeoRadiusKm, DefaultMaxStay).BuildFilter(p)
}

// StayInterval validates a requested stay: checkOut after checkIn and no longer than the
// configured maximum.
func (c *Composer) StayInterval(checkIn, checkOut time.Time) (reservation.Interval, error) {
	interval, err := reservation.NewInterval(checkIn, checkOut)
	if err != nil {
		if errors.Is(err, reservation.ErrInvalidInterval) {
			return reservation.Interval{}, errs.Invalid("checkOut", "checkOut must be after checkIn")
		}
		return reservation.Interval{}, err
	}
	if interval.Duration() > c.maxStay {
		return reservation.Interval{}, errs.Invalid("checkOut",
			fmt.Sprintf("stay cannot be longer than %d days", int(c.maxStay/(24*time.Hour))))
	}
	return interval, nil
}

// BuildFilter validates p and translates it into clauses. Absent parameters add nothing.
func (c *Composer) BuildFilter(p Params) (Filter, error) {
	var f Filter

	if len(p.FilterIDs) != len(p.FilterValues) {
		return Filter{}, errs.Invalid("filterValues", "filterIDs and filterValues must have the same length")
	}

	if term := strings.TrimSpace(p.Keyword); term != "" {
		f.Clauses = append(f.Clauses, KeywordClause{Term: term, Fields: KeywordFields})
	}

	if len(p.AttributeIDs) > 0 {
		f.Clauses = append(f.Clauses, MembershipClause{Field: FieldAttributeIDs, Values: uuidStrings(p.AttributeIDs)})
	}

	if len(p.FilterIDs) > 0 {
		thresholds := make([]AttributeThreshold, len(p.FilterIDs))
		for i, id := range p.FilterIDs {
			thresholds[i] = AttributeThreshold{AttributeID: id, Min: p.FilterValues[i]}
		}
		f.Clauses = append(f.Clauses, ThresholdAnyClause{Thresholds: thresholds})
	}

	if len(p.ServiceTypeIDs) > 0 {
		f.Clauses = append(f.Clauses, MembershipClause{Field: FieldServiceType, Values: uuidStrings(p.ServiceTypeIDs)})
	}

	if len(p.Statuses) > 0 {
		values := make([]string, 0, len(p.Statuses))
		for _, s := range p.Statuses {
			if !s.IsValid() {
				return Filter{}, errs.Invalid("status", "unknown listing status "+strconv.Quote(string(s)))
			}
			values = append(values, string(s))
		}
		f.Clauses = append(f.Clauses, MembershipClause{Field: FieldStatus, Values: values})
	}

	if p.EventTypeID != nil {
		f.Clauses = append(f.Clauses, EqualityClause{Field: FieldEventType, Value: p.EventTypeID.String()})
	}

	for _, loc := range []struct {
		field Field
		value string
	}{
		{FieldCity, p.City},
		{FieldState, p.State},
		{FieldCountry, p.Country},
	} {
		if v := strings.TrimSpace(loc.value); v != "" {
			f.Clauses = append(f.Clauses, EqualityClause{Field: loc.field, Value: v, CaseInsensitive: true})
		}
	}

	if p.Guests != nil {
		if *p.Guests < 0 {
			return Filter{}, errs.Invalid("guests", "guests cannot be negative")
		}
		guests := float64(*p.Guests)
		f.Clauses = append(f.Clauses, RangeClause{Field: FieldCapacity, Min: &guests})
	}

	// a time-of-day range needs both ends; a lone bound is ignored
	if p.CheckInTime != nil && p.CheckOutTime != nil {
		f.Clauses = append(f.Clauses, ScheduleWindowClause{From: *p.CheckInTime, To: *p.CheckOutTime})
	}

	if p.MinPrice != nil && p.MinPrice.Cents() < 0 {
		return Filter{}, errs.Invalid("minPrice", "minPrice cannot be negative")
	}
	if p.MaxPrice != nil && p.MaxPrice.Cents() < 0 {
		return Filter{}, errs.Invalid("maxPrice", "maxPrice cannot be negative")
	}
	if p.MinPrice != nil && p.MaxPrice != nil && p.MinPrice.Cents() > p.MaxPrice.Cents() {
		return Filter{}, errs.Invalid("minPrice", "minPrice cannot exceed maxPrice")
	}

	switch {
	case p.CheckIn == nil && p.CheckOut == nil:
		if p.MinPrice != nil || p.MaxPrice != nil {
			f.Clauses = append(f.Clauses, RangeClause{
				Field: FieldBasePrice,
				Min:   centsPtr(p.MinPrice),
				Max:   centsPtr(p.MaxPrice),
			})
		}
	case p.CheckIn != nil && p.CheckOut != nil:
		interval, err := c.StayInterval(*p.CheckIn, *p.CheckOut)
		if err != nil {
			return Filter{}, err
		}
		f.DateRange = &interval
		f.ComputedPrices = PriceRange{Min: p.MinPrice, Max: p.MaxPrice}
		f.AddOns = p.AddOns
	default:
		return Filter{}, errs.Invalid("checkIn", "checkIn and checkOut must be given together")
	}

	geo, err := c.geoClause(p.Latitude, p.Longitude)
	if err != nil {
		return Filter{}, err
	}
	if geo != nil {
		f.Clauses = append(f.Clauses, *geo)
	}

	return f, nil
}

func (c *Composer) geoClause(lat, lng *float64) (*GeoClause, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.Invalid("latitude", "latitude and longitude must be given together")
	}
	if *lat < -90 || *lat > 90 {
		return nil, errs.Invalid("latitude", "latitude must be between -90 and 90")
	}
	if *lng < -180 || *lng > 180 {
		return nil, errs.Invalid("longitude", "longitude must be between -180 and 180")
	}
	return &GeoClause{Latitude: *lat, Longitude: *lng, RadiusKm: c.geoRadiusKm}, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// centsPtr converts to float64 cents for RangeClause.
func centsPtr(m *listing.Money) *float64 {
	if m == nil {
		return nil
	}
	v := float64(m.Cents())
	return &v
}
