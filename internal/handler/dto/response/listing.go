package response

import (
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	VendorID       uuid.UUID  `json:"vendorId"`
	VendorName     string     `json:"vendorName"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Country        string     `json:"country"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	Capacity       int32      `json:"capacity"`
	Status         string     `json:"status"`
	ServiceTypeID  *uuid.UUID `json:"serviceTypeId,omitempty"`
	EventTypeID    *uuid.UUID `json:"eventTypeId,omitempty"`
	BasePriceCents int64      `json:"basePriceCents"`
	PriceCents     int64      `json:"priceCents"`
	Price          string     `json:"price"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type SearchResponse struct {
	Items         []*ListingItemResponse `json:"items"`
	TotalCount    int64                  `json:"totalCount"`
	MinPriceCents *int64                 `json:"minPriceCents"`
	MaxPriceCents *int64                 `json:"maxPriceCents"`
	MinPrice      *string                `json:"minPrice"`
	MaxPrice      *string                `json:"maxPrice"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"pageSize"`
}

func FromSearchResult(r *queries.SearchResult) *SearchResponse {
	items := make([]*ListingItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		item := &ListingItemResponse{}
		_ = copier.Copy(item, it)
		item.Price = listing.NewMoney(it.PriceCents).String()
		items = append(items, item)
	}
	return &SearchResponse{
		Items:         items,
		TotalCount:    r.TotalCount,
		MinPriceCents: r.MinPriceCents,
		MaxPriceCents: r.MaxPriceCents,
		MinPrice:      formatCents(r.MinPriceCents),
		MaxPrice:      formatCents(r.MaxPriceCents),
		Page:          r.Page,
		PageSize:      r.PageSize,
	}
}

type IntervalResponse struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

type ConflictResponse struct {
	Interval        IntervalResponse `json:"interval"`
	NextAvailableAt time.Time        `json:"nextAvailableAt"`
	Kind            string           `json:"kind"`
	ReservationID   *uuid.UUID       `json:"reservationId,omitempty"`
}

type AvailabilityResponse struct {
	ListingID uuid.UUID         `json:"listingId"`
	CheckIn   time.Time         `json:"checkIn"`
	CheckOut  time.Time         `json:"checkOut"`
	Available bool              `json:"available"`
	Reason    *string           `json:"reason"`
	Conflict  *ConflictResponse `json:"conflict"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		ListingID: v.ListingID,
		CheckIn:   v.CheckIn,
		CheckOut:  v.CheckOut,
		Available: v.Available,
		Reason:    v.Reason,
	}
	if c := v.Conflict; c != nil {
		res.Conflict = &ConflictResponse{
			Interval:        IntervalResponse{CheckIn: c.CheckIn, CheckOut: c.CheckOut},
			NextAvailableAt: c.NextAvailableAt,
			Kind:            c.Kind,
			ReservationID:   c.ReservationID,
		}
	}
	return res
}

type QuoteResponse struct {
	ListingID    uuid.UUID       `json:"listingId"`
	CheckIn      time.Time       `json:"checkIn"`
	CheckOut     time.Time       `json:"checkOut"`
	PricingModel string          `json:"pricingModel"`
	AddOns       []AddOnResponse `json:"addOns"`
	PriceCents   int64           `json:"priceCents"`
	Price        string          `json:"price"`
	HasSchedule  bool            `json:"hasSchedule"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	res := &QuoteResponse{}
	_ = copier.Copy(res, v)
	if res.AddOns == nil {
		res.AddOns = []AddOnResponse{}
	}
	res.Price = listing.NewMoney(v.PriceCents).String()
	return res
}

func formatCents(c *int64) *string {
	if c == nil {
		return nil
	}
	s := listing.NewMoney(*c).String()
	return &s
}
