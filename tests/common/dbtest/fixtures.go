//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"venuebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ListingRow holds the listing columns the builder does not model.
type ListingRow struct {
	Status          string
	City            string
	Country         string
	Capacity        int
	Keywords        string
	Latitude        *float64
	Longitude       *float64
	AttributeIDs    []uuid.UUID
	Attributes      map[uuid.UUID]float64 // listing_attributes values
	VendorFirstName string
	VendorLastName  string
}

func defaultListingRow() ListingRow {
	return ListingRow{
		Status:          "active",
		City:            "Austin",
		Country:         "US",
		Capacity:        20,
		AttributeIDs:    []uuid.UUID{},
		VendorFirstName: "Test",
		VendorLastName:  "Vendor",
	}
}

func CreateTestVendor(t *testing.T, db DBLike, id uuid.UUID) uuid.UUID {
	t.Helper()
	return CreateTestVendorNamed(t, db, id, "Test", "Vendor")
}

func CreateTestVendorNamed(t *testing.T, db DBLike, id uuid.UUID, firstName, lastName string) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO vendors (id, first_name, last_name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		id, firstName, lastName)
	require.NoError(t, err)
	return id
}

// CreateTestListing inserts the listing described by b, its vendor, schedule and add-ons.
func CreateTestListing(t *testing.T, db DBLike, b *builder.ListingBuilder, muts ...func(*ListingRow)) uuid.UUID {
	t.Helper()

	row := defaultListingRow()
	for _, m := range muts {
		m(&row)
	}
	if row.AttributeIDs == nil {
		row.AttributeIDs = []uuid.UUID{}
	}
	ctx := context.Background()
	CreateTestVendorNamed(t, db, b.VendorID, row.VendorFirstName, row.VendorLastName)

	_, err := db.Exec(ctx, `
		INSERT INTO listings (id, vendor_id, title, keywords, city, country, latitude, longitude, capacity, status,
		    attribute_ids, pricing_model, buffer_time, buffer_unit, minimum_duration, duration_unit, timezone,
		    base_price_cents, is_published, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		b.ID, b.VendorID, b.Title, row.Keywords, row.City, row.Country, row.Latitude, row.Longitude, row.Capacity, row.Status,
		row.AttributeIDs, string(b.PricingModel), b.BufferTime, string(b.BufferUnit), b.MinimumDuration, string(b.DurationUnit), b.Timezone,
		b.BasePriceCents, b.Published, b.Verified, b.CreatedAt, b.UpdatedAt)
	require.NoError(t, err)

	for attributeID, value := range row.Attributes {
		_, err := db.Exec(ctx,
			"INSERT INTO listing_attributes (listing_id, attribute_id, value) VALUES ($1, $2, $3)", b.ID, attributeID, value)
		require.NoError(t, err)
	}

	for _, s := range b.Schedule {
		start := clockMinutes(t, s.Start)
		end := clockMinutes(t, s.End)
		_, err := db.Exec(ctx,
			"INSERT INTO listing_schedule_entries (listing_id, weekday, start_minute, end_minute, rate_cents) VALUES ($1, $2, $3, $4, $5)",
			b.ID, int(s.Weekday), start, end, s.RateCents)
		require.NoError(t, err)
	}
	for name, cents := range b.AddOns {
		_, err := db.Exec(ctx,
			"INSERT INTO listing_add_ons (listing_id, name, price_cents) VALUES ($1, $2, $3)", b.ID, name, cents)
		require.NoError(t, err)
	}
	return b.ID
}

func CreateTestReservation(t *testing.T, db DBLike, listingID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, listing_id, check_in, check_out, status, price_cents) VALUES ($1, $2, $3, $4, $5, 0)",
		id, listingID, checkIn, checkOut, status)
	require.NoError(t, err)
	return id
}

func CreateTestBlock(t *testing.T, db DBLike, listingID, vendorID *uuid.UUID, startsAt, endsAt time.Time, reason string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO blocks (id, listing_id, vendor_id, source, starts_at, ends_at, reason) VALUES ($1, $2, $3, 'manual', $4, $5, $6)",
		id, listingID, vendorID, startsAt, endsAt, reason)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func clockMinutes(t *testing.T, hhmm string) int {
	t.Helper()

	var h, m int
	_, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m)
	require.NoError(t, err)
	return h*60 + m
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
