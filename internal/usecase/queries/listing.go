package queries

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/domain/reservation"
	"venuebook/internal/domain/search"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrListingNotFound = errs.Mark(errs.New("listing not found"), errs.ErrNotFound)
)

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type SearchReadStore interface {
	Candidates(ctx context.Context, clauses []search.Clause) ([]*SearchCandidate, error)
	Page(ctx context.Context, clauses []search.Clause, limit, offset int) ([]*ListingSearchItem, error)
	Stats(ctx context.Context, clauses []search.Clause) (*SearchStats, error)
}

// QuoteCache returns (nil, nil) on a miss.
type QuoteCache interface {
	Get(ctx context.Context, key string) (*QuoteView, error)
	Set(ctx context.Context, key string, quote *QuoteView) error
}

type ListingQueries interface {
	Search(ctx context.Context, params search.Params, page, pageSize int) (*SearchResult, error)
	CheckAvailability(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time, excludeReservationID *uuid.UUID) (*AvailabilityView, error)
	Quote(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time, addOns []string) (*QuoteView, error)
}

type listingQueriesImpl struct {
	listings   ListingReadStore
	search     SearchReadStore
	composer   *search.Composer
	detector   *availability.ConflictDetector
	checker    *availability.AvailabilityChecker
	calculator pricing.PriceCalculator
	cache      QuoteCache
	logger     *slog.Logger
	tracer     trace.Tracer
	cfg        config.SearchConfig
}

func NewListingQueries(
	listings ListingReadStore,
	searchStore SearchReadStore,
	detector *availability.ConflictDetector,
	checker *availability.AvailabilityChecker,
	calculator pricing.PriceCalculator,
	cache QuoteCache,
	logger *slog.Logger,
	tracer trace.Tracer,
	cfg config.SearchConfig,
) ListingQueries {
	return &listingQueriesImpl{
		listings:   listings,
		search:     searchStore,
		composer:   search.NewComposer(cfg.GeoRadiusKm, cfg.MaxStay),
		detector:   detector,
		checker:    checker,
		calculator: calculator,
		cache:      cache,
		logger:     logger,
		tracer:     tracer,
		cfg:        cfg,
	}
}

// Search runs the listing search. Without a date range both the page and the stats come
// from SQL with the same compiled predicate. With a date range every candidate is loaded,
// unavailable ones are dropped, the rest are priced for the stay and price-filtered, and the
// page and stats are both cut from that one slice.
func (q *listingQueriesImpl) Search(ctx context.Context, params search.Params, page, pageSize int) (*SearchResult, error) {
	ctx, span := q.tracer.Start(ctx, "ListingQueries.Search")
	defer span.End()

	filter, err := q.composer.BuildFilter(params)
	if err != nil {
		return nil, err
	}

	pg, err := ValidatePage(page, pageSize, q.cfg)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("search.clauses", len(filter.Clauses)),
		attribute.Bool("search.date_range", filter.HasDateRange()),
	)

	var result *SearchResult
	if filter.HasDateRange() {
		result, err = q.searchForStay(ctx, filter, pg.Offset, pg.Size)
	} else {
		result, err = q.searchByBasePrice(ctx, filter, pg.Offset, pg.Size)
	}
	if err != nil {
		return nil, err
	}

	result.Page = pg.Number
	result.PageSize = pg.Size
	span.SetAttributes(attribute.Int64("search.total", result.TotalCount))
	return result, nil
}

func (q *listingQueriesImpl) searchByBasePrice(ctx context.Context, filter search.Filter, offset, limit int) (*SearchResult, error) {
	items, err := q.search.Page(ctx, filter.Clauses, limit, offset)
	if err != nil {
		return nil, err
	}
	stats, err := q.search.Stats(ctx, filter.Clauses)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Items:         items,
		TotalCount:    stats.Count,
		MinPriceCents: stats.MinPriceCents,
		MaxPriceCents: stats.MaxPriceCents,
	}, nil
}

func (q *listingQueriesImpl) searchForStay(ctx context.Context, filter search.Filter, offset, limit int) (*SearchResult, error) {
	stay := *filter.DateRange

	candidates, err := q.search.Candidates(ctx, filter.Clauses)
	if err != nil {
		return nil, err
	}

	scopes := make([]availability.Candidate, len(candidates))
	for i, c := range candidates {
		vendorID := c.Listing.VendorID()
		scopes[i] = availability.Candidate{ListingID: c.Listing.ID(), VendorID: &vendorID}
	}
	unavailable, err := q.detector.UnavailableAmong(ctx, scopes, stay)
	if err != nil {
		return nil, err
	}

	matched := make([]*ListingSearchItem, 0, len(candidates))
	for _, c := range candidates {
		if _, busy := unavailable[c.Listing.ID()]; busy {
			continue
		}
		price := q.calculator.ComputePrice(c.Listing.Config(), stay.Start(), stay.End(), c.Listing.OfferedAddOns(filter.AddOns))
		if !filter.ComputedPrices.Contains(price) {
			continue
		}
		item := *c.Item
		item.PriceCents = price.Cents()
		matched = append(matched, &item)
	}

	q.logger.DebugContext(ctx, "search priced for stay",
		"candidates", len(candidates),
		"unavailable", len(unavailable),
		"matched", len(matched))

	result := &SearchResult{TotalCount: int64(len(matched))}
	for _, item := range matched {
		if result.MinPriceCents == nil || item.PriceCents < *result.MinPriceCents {
			v := item.PriceCents
			result.MinPriceCents = &v
		}
		if result.MaxPriceCents == nil || item.PriceCents > *result.MaxPriceCents {
			v := item.PriceCents
			result.MaxPriceCents = &v
		}
	}

	if offset >= len(matched) {
		result.Items = []*ListingSearchItem{}
		return result, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	result.Items = matched[offset:end]
	return result, nil
}

func (q *listingQueriesImpl) CheckAvailability(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time, excludeReservationID *uuid.UUID) (*AvailabilityView, error) {
	ctx, span := q.tracer.Start(ctx, "ListingQueries.CheckAvailability",
		trace.WithAttributes(attribute.String("listing.id", listingID.String())))
	defer span.End()

	interval, err := q.composer.StayInterval(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	l, err := q.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	decision, err := q.checker.Check(ctx, l, interval, excludeReservationID)
	if err != nil {
		return nil, err
	}

	return NewAvailabilityView(listingID, interval, decision), nil
}

// Quote prices a stay. Cache keys include the listing's updated_at, so a schedule edit
// (which bumps updated_at) never serves a stale price.
func (q *listingQueriesImpl) Quote(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time, addOnNames []string) (*QuoteView, error) {
	ctx, span := q.tracer.Start(ctx, "ListingQueries.Quote",
		trace.WithAttributes(attribute.String("listing.id", listingID.String())))
	defer span.End()

	interval, err := q.composer.StayInterval(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	l, err := q.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	addOns, err := l.SelectAddOns(addOnNames)
	if err != nil {
		return nil, errs.Invalid("addOns", err.Error())
	}

	key := QuoteCacheKey(l, interval, addOns)
	if q.cache != nil {
		cached, err := q.cache.Get(ctx, key)
		if err != nil {
			q.logger.WarnContext(ctx, "quote cache read failed", "key", key, "error", err.Error())
		} else if cached != nil {
			span.SetAttributes(attribute.Bool("quote.cached", true))
			return cached, nil
		}
	}

	cfg := l.Config()
	price := q.calculator.ComputePrice(cfg, interval.Start(), interval.End(), addOns)
	view := &QuoteView{
		ListingID:    l.ID(),
		CheckIn:      interval.Start(),
		CheckOut:     interval.End(),
		PricingModel: cfg.PricingModel().String(),
		AddOns:       addOnViews(addOns),
		PriceCents:   price.Cents(),
		HasSchedule:  cfg.HasSchedule(),
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, key, view); err != nil {
			q.logger.WarnContext(ctx, "quote cache write failed", "key", key, "error", err.Error())
		}
	}
	return view, nil
}

func (q *listingQueriesImpl) findListing(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	l, err := q.listings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

// QuoteCacheKey identifies a quote by listing version, stay and add-on set.
func QuoteCacheKey(l *listing.Listing, interval reservation.Interval, addOns []listing.AddOn) string {
	names := make([]string, len(addOns))
	for i, a := range addOns {
		names[i] = strings.ToLower(a.Name())
	}
	sort.Strings(names)
	return fmt.Sprintf("quote:%s:%d:%d:%d:%s",
		l.ID(),
		l.UpdatedAt().UnixNano(),
		interval.Start().Unix(),
		interval.End().Unix(),
		strings.Join(names, ","),
	)
}

func NewAvailabilityView(listingID uuid.UUID, interval reservation.Interval, d availability.Decision) *AvailabilityView {
	view := &AvailabilityView{
		ListingID: listingID,
		CheckIn:   interval.Start(),
		CheckOut:  interval.End(),
		Available: d.Available,
	}
	if !d.Available {
		reason := d.Reason
		view.Reason = &reason
	}
	if d.Conflict != nil {
		view.Conflict = &ConflictView{
			CheckIn:         d.Conflict.Interval.Start(),
			CheckOut:        d.Conflict.Interval.End(),
			NextAvailableAt: d.Conflict.NextAvailableAt,
			Kind:            string(d.Conflict.Kind),
			ReservationID:   d.Conflict.ReservationID,
		}
	}
	return view
}

func addOnViews(addOns []listing.AddOn) []AddOnView {
	out := make([]AddOnView, len(addOns))
	for i, a := range addOns {
		out[i] = AddOnView{Name: a.Name(), PriceCents: a.Price().Cents()}
	}
	return out
}
