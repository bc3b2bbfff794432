//go:build unit

package readstore_test

import (
	"context"
	"math"
	"testing"

	"venuebook/internal/domain/search"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/infra/readstore"
	readstoremock "venuebook/tests/mock/readstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchReadStore_Page(t *testing.T) {
	ctx := context.Background()
	clauses := []search.Clause{search.EqualityClause{Field: search.FieldCity, Value: "Lisbon", CaseInsensitive: true}}

	t.Run("passes the compiled predicate and window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockSearchQueries(ctrl)
		q.EXPECT().
			SearchListingsPage(gomock.Any(), gomock.Any(), gomock.Any(), int32(20), int32(9980)).
			DoAndReturn(func(_ context.Context, _ db.DBTX, p pgq.Predicate, _, _ int32) ([]pgq.SearchListingRow, error) {
				assert.Contains(t, p.SQL, "lower(l.city) = lower($1)")
				return []pgq.SearchListingRow{}, nil
			})

		items, err := readstore.NewSearchReadStore(q, nil).Page(ctx, clauses, 20, 9980)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	for name, offset := range map[string]int{
		"offset beyond int32": math.MaxInt32 + 1,
		"negative offset":     -96,
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockSearchQueries(ctrl)

			_, err := readstore.NewSearchReadStore(q, nil).Page(ctx, clauses, 200, offset)

			assert.Error(t, err)
		})
	}
}
