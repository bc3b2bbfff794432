package request

import (
	"strings"
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/search"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// SearchListingsRequest is bound from the query string. Repeated keys carry lists,
// e.g. ?filterIds=a&filterIds=b&filterValues=3&filterValues=10.
type SearchListingsRequest struct {
	Keyword        string     `form:"keyword" binding:"omitempty,max=200"`
	AttributeIDs   []string   `form:"attributeIds" binding:"omitempty,dive,uuid"`
	FilterIDs      []string   `form:"filterIds" binding:"omitempty,dive,uuid"`
	FilterValues   []float64  `form:"filterValues"`
	ServiceTypeIDs []string   `form:"serviceTypeIds" binding:"omitempty,dive,uuid"`
	Statuses       []string   `form:"status" binding:"omitempty,dive,oneof=draft active inactive"`
	EventTypeID    string     `form:"eventTypeId" binding:"omitempty,uuid"`
	City           string     `form:"city" binding:"omitempty,max=100"`
	State          string     `form:"state" binding:"omitempty,max=100"`
	Country        string     `form:"country" binding:"omitempty,max=100"`
	Guests         *int       `form:"guests" binding:"omitempty,min=1"`
	CheckInTime    string     `form:"checkInTime" binding:"omitempty,hhmm"`
	CheckOutTime   string     `form:"checkOutTime" binding:"omitempty,hhmm"`
	MinPriceCents  *int64     `form:"minPrice" binding:"omitempty,min=0"`
	MaxPriceCents  *int64     `form:"maxPrice" binding:"omitempty,min=0"`
	Latitude       *float64   `form:"lat"`
	Longitude      *float64   `form:"lng"`
	CheckIn        *time.Time `form:"checkIn" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut       *time.Time `form:"checkOut" time_format:"2006-01-02T15:04:05Z07:00"`
	AddOns         string     `form:"addOns" binding:"omitempty,max=1000"`
	Page           int        `form:"page" binding:"omitempty,min=1,max=10000"`
	PageSize       int        `form:"pageSize" binding:"omitempty,min=1"`
}

func (r SearchListingsRequest) ToParams() (search.Params, error) {
	p := search.Params{
		Keyword:      strings.TrimSpace(r.Keyword),
		FilterValues: r.FilterValues,
		City:         strings.TrimSpace(r.City),
		State:        strings.TrimSpace(r.State),
		Country:      strings.TrimSpace(r.Country),
		Guests:       r.Guests,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		AddOns:       SplitList(r.AddOns),
	}

	var err error
	if p.AttributeIDs, err = parseIDs("attributeIds", r.AttributeIDs); err != nil {
		return search.Params{}, err
	}
	if p.FilterIDs, err = parseIDs("filterIds", r.FilterIDs); err != nil {
		return search.Params{}, err
	}
	if p.ServiceTypeIDs, err = parseIDs("serviceTypeIds", r.ServiceTypeIDs); err != nil {
		return search.Params{}, err
	}
	if r.EventTypeID != "" {
		id, err := uuid.Parse(r.EventTypeID)
		if err != nil {
			return search.Params{}, errs.Invalid("eventTypeId", "must be a UUID")
		}
		p.EventTypeID = &id
	}
	for _, s := range r.Statuses {
		p.Statuses = append(p.Statuses, listing.Status(s))
	}
	if p.CheckInTime, err = parseClock("checkInTime", r.CheckInTime); err != nil {
		return search.Params{}, err
	}
	if p.CheckOutTime, err = parseClock("checkOutTime", r.CheckOutTime); err != nil {
		return search.Params{}, err
	}
	if r.MinPriceCents != nil {
		m := listing.NewMoney(*r.MinPriceCents)
		p.MinPrice = &m
	}
	if r.MaxPriceCents != nil {
		m := listing.NewMoney(*r.MaxPriceCents)
		p.MaxPrice = &m
	}
	return p, nil
}

type AvailabilityQuery struct {
	CheckIn              time.Time `form:"checkIn" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut             time.Time `form:"checkOut" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ExcludeReservationID string    `form:"excludeReservationId" binding:"omitempty,uuid"`
}

func (q AvailabilityQuery) ExcludeID() *uuid.UUID {
	if q.ExcludeReservationID == "" {
		return nil
	}
	id, err := uuid.Parse(q.ExcludeReservationID)
	if err != nil {
		return nil
	}
	return &id
}

type QuoteQuery struct {
	CheckIn  time.Time `form:"checkIn" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut time.Time `form:"checkOut" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	AddOns   string    `form:"addOns" binding:"omitempty,max=1000"`
}

// SplitList splits a comma separated query value and drops empty items.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errs.Invalid(field, "must contain UUIDs")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseClock(field, raw string) (*listing.ClockTime, error) {
	if raw == "" {
		return nil, nil
	}
	c, err := listing.ParseClockTime(raw)
	if err != nil {
		return nil, errs.Invalid(field, "must be HH:MM")
	}
	return &c, nil
}
