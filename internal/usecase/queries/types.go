package queries

import (
	"fmt"
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
	MaxResultWindow = 10000
)

type AddOnView struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID           uuid.UUID   `json:"id"`
	ListingID    uuid.UUID   `json:"listing_id"`
	ListingTitle string      `json:"listing_title"`
	Timezone     string      `json:"timezone"`
	CheckIn      time.Time   `json:"check_in"`
	CheckOut     time.Time   `json:"check_out"`
	Status       string      `json:"status"`
	PriceCents   int64       `json:"price_cents"`
	AddOns       []AddOnView `json:"add_ons"`
	Note         *string     `json:"note,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ListingSearchItem is one search hit. PriceCents is the stay price when a date range was
// searched and the listing's base price otherwise.
type ListingSearchItem struct {
	ID             uuid.UUID  `json:"id"`
	VendorID       uuid.UUID  `json:"vendor_id"`
	VendorName     string     `json:"vendor_name"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Country        string     `json:"country"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	Capacity       int32      `json:"capacity"`
	Status         string     `json:"status"`
	ServiceTypeID  *uuid.UUID `json:"service_type_id,omitempty"`
	EventTypeID    *uuid.UUID `json:"event_type_id,omitempty"`
	BasePriceCents int64      `json:"base_price_cents"`
	PriceCents     int64      `json:"price_cents"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SearchCandidate pairs a search hit with the listing needed to price it.
type SearchCandidate struct {
	Item    *ListingSearchItem
	Listing *listing.Listing
}

type SearchStats struct {
	Count         int64
	MinPriceCents *int64
	MaxPriceCents *int64
}

type SearchResult struct {
	Items         []*ListingSearchItem
	TotalCount    int64
	MinPriceCents *int64
	MaxPriceCents *int64
	Page          int
	PageSize      int
}

type ConflictView struct {
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	NextAvailableAt time.Time  `json:"next_available_at"`
	Kind            string     `json:"kind"`
	ReservationID   *uuid.UUID `json:"reservation_id,omitempty"`
}

type AvailabilityView struct {
	ListingID uuid.UUID     `json:"listing_id"`
	CheckIn   time.Time     `json:"check_in"`
	CheckOut  time.Time     `json:"check_out"`
	Available bool          `json:"available"`
	Reason    *string       `json:"reason,omitempty"`
	Conflict  *ConflictView `json:"conflict,omitempty"`
}

type QuoteView struct {
	ListingID    uuid.UUID   `json:"listing_id"`
	CheckIn      time.Time   `json:"check_in"`
	CheckOut     time.Time   `json:"check_out"`
	PricingModel string      `json:"pricing_model"`
	AddOns       []AddOnView `json:"add_ons"`
	PriceCents   int64       `json:"price_cents"`
	HasSchedule  bool        `json:"has_schedule"`
}

// Pagination is a validated 1-based page with its row offset.
type Pagination struct {
	Number int
	Size   int
	Offset int
}

// ValidatePage clamps page to >= 1 and pageSize to [1, MaxPageSize], then rejects pages
// that reach past the first MaxResultWindow results.
func ValidatePage(page, pageSize int, cfg config.SearchConfig) (Pagination, error) {
	defaultPageSize, maxPageSize, window := cfg.DefaultPageSize, cfg.MaxPageSize, cfg.MaxResultWindow
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}
	if window <= 0 {
		window = MaxResultWindow
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if window < pageSize {
		window = pageSize
	}

	// compared by division so a huge page cannot overflow the multiplication
	if page-1 > (window-pageSize)/pageSize {
		return Pagination{}, errs.Invalid("page", fmt.Sprintf("page reaches past the first %d results", window))
	}
	return Pagination{Number: page, Size: pageSize, Offset: (page - 1) * pageSize}, nil
}
