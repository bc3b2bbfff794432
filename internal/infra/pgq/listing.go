package pgq

import (
	"context"

	"venuebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const listingColumns = `l.id, l.vendor_id, l.title, l.description, l.keywords, l.address_line, l.city, l.state,
	l.country, l.latitude, l.longitude, l.capacity, l.service_type_id, l.event_type_id, l.status,
	l.attribute_ids, l.pricing_model, l.buffer_time, l.buffer_unit, l.minimum_duration, l.duration_unit,
	l.timezone, l.base_price_cents, l.is_published, l.is_verified, l.deleted_at, l.created_at, l.updated_at`

func (l *Listing) scanTargets() []any {
	return []any{
		&l.ID, &l.VendorID, &l.Title, &l.Description, &l.Keywords, &l.AddressLine, &l.City, &l.State,
		&l.Country, &l.Latitude, &l.Longitude, &l.Capacity, &l.ServiceTypeID, &l.EventTypeID, &l.Status,
		&l.AttributeIDs, &l.PricingModel, &l.BufferTime, &l.BufferUnit, &l.MinimumDuration, &l.DurationUnit,
		&l.Timezone, &l.BasePriceCents, &l.IsPublished, &l.IsVerified, &l.DeletedAt, &l.CreatedAt, &l.UpdatedAt,
	}
}

const getListingByID = `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1 AND l.deleted_at IS NULL`

func (q *Queries) GetListingByID(ctx context.Context, db db.DBTX, id uuid.UUID) (Listing, error) {
	var row Listing
	err := db.QueryRow(ctx, getListingByID, id).Scan(row.scanTargets()...)
	return row, err
}

// GetListingForUpdate serializes concurrent reservation writes for one listing.
func (q *Queries) GetListingForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (Listing, error) {
	var row Listing
	err := db.QueryRow(ctx, getListingByID+` FOR UPDATE`, id).Scan(row.scanTargets()...)
	return row, err
}

const listScheduleEntries = `SELECT listing_id, weekday, start_minute, end_minute, rate_cents
FROM listing_schedule_entries
WHERE listing_id = ANY($1)
ORDER BY listing_id, weekday`

func (q *Queries) ListScheduleEntries(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]ScheduleEntry, error) {
	rows, err := db.Query(ctx, listScheduleEntries, listingIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (ScheduleEntry, error) {
		var e ScheduleEntry
		err := r.Scan(&e.ListingID, &e.Weekday, &e.StartMinute, &e.EndMinute, &e.RateCents)
		return e, err
	})
}

const listAddOns = `SELECT listing_id, name, price_cents
FROM listing_add_ons
WHERE listing_id = ANY($1)
ORDER BY listing_id, name`

func (q *Queries) ListAddOns(ctx context.Context, db db.DBTX, listingIDs []uuid.UUID) ([]AddOn, error) {
	rows, err := db.Query(ctx, listAddOns, listingIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (AddOn, error) {
		var a AddOn
		err := r.Scan(&a.ListingID, &a.Name, &a.PriceCents)
		return a, err
	})
}
