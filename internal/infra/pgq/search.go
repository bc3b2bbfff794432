package pgq

import (
	"context"
	"fmt"

	"venuebook/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// searchFrom joins the vendor so keyword search can match the vendor's full name.
const searchFrom = ` FROM listings l JOIN vendors v ON v.id = l.vendor_id WHERE `

const searchOrder = ` ORDER BY l.created_at DESC, l.id DESC`

func (q *Queries) collectSearchRows(ctx context.Context, db db.DBTX, sql string, args []any) ([]SearchListingRow, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (SearchListingRow, error) {
		var row SearchListingRow
		targets := append(row.Listing.scanTargets(), &row.VendorFirstName, &row.VendorLastName)
		err := r.Scan(targets...)
		return row, err
	})
}

// SearchListings returns every listing matching p, newest first.
func (q *Queries) SearchListings(ctx context.Context, db db.DBTX, p Predicate) ([]SearchListingRow, error) {
	sql := `SELECT ` + listingColumns + `, v.first_name, v.last_name` + searchFrom + p.SQL + searchOrder
	return q.collectSearchRows(ctx, db, sql, p.Args)
}

// SearchListingsPage pages through the same ordering as SearchListings.
func (q *Queries) SearchListingsPage(ctx context.Context, db db.DBTX, p Predicate, limit, offset int32) ([]SearchListingRow, error) {
	n := len(p.Args)
	sql := `SELECT ` + listingColumns + `, v.first_name, v.last_name` + searchFrom + p.SQL + searchOrder +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	args := append(append([]any{}, p.Args...), limit, offset)
	return q.collectSearchRows(ctx, db, sql, args)
}

// SearchListingStats aggregates over base_price_cents with the same predicate as the page query.
func (q *Queries) SearchListingStats(ctx context.Context, db db.DBTX, p Predicate) (SearchStats, error) {
	sql := `SELECT count(*), min(l.base_price_cents), max(l.base_price_cents)` + searchFrom + p.SQL
	var s SearchStats
	err := db.QueryRow(ctx, sql, p.Args...).Scan(&s.Count, &s.MinPriceCents, &s.MaxPriceCents)
	return s, err
}
