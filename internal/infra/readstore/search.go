package readstore

import (
	"context"
	"math"

	"venuebook/internal/domain/search"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SearchQueries interface {
	SearchListings(ctx context.Context, db db.DBTX, p pgq.Predicate) ([]pgq.SearchListingRow, error)
	SearchListingsPage(ctx context.Context, db db.DBTX, p pgq.Predicate, limit, offset int32) ([]pgq.SearchListingRow, error)
	SearchListingStats(ctx context.Context, db db.DBTX, p pgq.Predicate) (pgq.SearchStats, error)
	ListScheduleEntries(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]pgq.ScheduleEntry, error)
	ListAddOns(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]pgq.AddOn, error)
}

// SearchReadStore compiles search clauses once per call, so the page and stats queries of
// one search always share the same WHERE.
type SearchReadStore struct {
	queries SearchQueries
	db      db.DBTX
}

func NewSearchReadStore(queries SearchQueries, db db.DBTX) *SearchReadStore {
	return &SearchReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SearchReadStore) compile(clauses []search.Clause) (pgq.Predicate, error) {
	p, err := CompileFilter(clauses)
	if err != nil {
		return pgq.Predicate{}, infra.WrapRepoErr("failed to compile search filter", err)
	}
	return p, nil
}

// Candidates returns every matching listing together with its schedule and add-ons. Child
// rows are fetched with one query each for the whole candidate set.
func (r *SearchReadStore) Candidates(ctx context.Context, clauses []search.Clause) ([]*queries.SearchCandidate, error) {
	p, err := r.compile(clauses)
	if err != nil {
		return nil, err
	}

	rows, err := r.queries.SearchListings(ctx, r.db, p)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search listings", err)
	}
	if len(rows) == 0 {
		return []*queries.SearchCandidate{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	entries, err := r.queries.ListScheduleEntries(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load schedule entries", err)
	}
	addOns, err := r.queries.ListAddOns(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load add-ons", err)
	}

	entriesByListing := make(map[uuid.UUID][]pgq.ScheduleEntry, len(rows))
	for _, e := range entries {
		entriesByListing[e.ListingID] = append(entriesByListing[e.ListingID], e)
	}
	addOnsByListing := make(map[uuid.UUID][]pgq.AddOn, len(rows))
	for _, a := range addOns {
		addOnsByListing[a.ListingID] = append(addOnsByListing[a.ListingID], a)
	}

	result := make([]*queries.SearchCandidate, 0, len(rows))
	for _, row := range rows {
		l, err := converter.ListingToDomain(row.Listing, entriesByListing[row.ID], addOnsByListing[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("stored listing is invalid", err)
		}
		result = append(result, &queries.SearchCandidate{Item: rowToSearchItem(row), Listing: l})
	}
	return result, nil
}

func (r *SearchReadStore) Page(ctx context.Context, clauses []search.Clause, limit, offset int) ([]*queries.ListingSearchItem, error) {
	p, err := r.compile(clauses)
	if err != nil {
		return nil, err
	}

	if limit < 0 || offset < 0 || int64(limit) > math.MaxInt32 || int64(offset) > math.MaxInt32 {
		return nil, errs.Newf("search page out of range: limit=%d offset=%d", limit, offset)
	}

	rows, err := r.queries.SearchListingsPage(ctx, r.db, p, int32(limit), int32(offset))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search listings page", err)
	}

	result := make([]*queries.ListingSearchItem, len(rows))
	for i, row := range rows {
		result[i] = rowToSearchItem(row)
	}
	return result, nil
}

func (r *SearchReadStore) Stats(ctx context.Context, clauses []search.Clause) (*queries.SearchStats, error) {
	p, err := r.compile(clauses)
	if err != nil {
		return nil, err
	}

	s, err := r.queries.SearchListingStats(ctx, r.db, p)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute search stats", err)
	}

	stats := &queries.SearchStats{Count: s.Count}
	if s.MinPriceCents.Valid {
		stats.MinPriceCents = &s.MinPriceCents.Int64
	}
	if s.MaxPriceCents.Valid {
		stats.MaxPriceCents = &s.MaxPriceCents.Int64
	}
	return stats, nil
}

func rowToSearchItem(row pgq.SearchListingRow) *queries.ListingSearchItem {
	return &queries.ListingSearchItem{
		ID:             row.ID,
		VendorID:       row.VendorID,
		VendorName:     joinName(row.VendorFirstName, row.VendorLastName),
		Title:          row.Title,
		Description:    row.Description,
		City:           row.City,
		State:          row.State,
		Country:        row.Country,
		Latitude:       pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:      pgconv.Float64PtrFromPgtype(row.Longitude),
		Capacity:       row.Capacity,
		Status:         row.Status,
		ServiceTypeID:  pgconv.UUIDPtrFromPgtype(row.ServiceTypeID),
		EventTypeID:    pgconv.UUIDPtrFromPgtype(row.EventTypeID),
		BasePriceCents: row.BasePriceCents,
		PriceCents:     row.BasePriceCents,
		CreatedAt:      row.CreatedAt,
	}
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
