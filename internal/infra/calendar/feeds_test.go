//go:build unit

package calendar_test

import (
	"os"
	"path/filepath"
	"testing"

	"venuebook/internal/infra/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedCatalog(t *testing.T) {
	listingID := uuid.New()
	vendorID := uuid.New()

	t.Run("listing and vendor feeds", func(t *testing.T) {
		catalog, err := calendar.ParseFeedCatalog([]byte(`
feeds:
  - name: loft-airbnb
    url: https://calendar.example.test/loft.ics
    listing_id: ` + listingID.String() + `
  - name: vendor-google
    url: https://calendar.example.test/vendor.ics
    vendor_id: ` + vendorID.String() + `
`))

		require.NoError(t, err)
		require.Len(t, catalog.All(), 2)

		forListing := catalog.ForListing(listingID)
		require.Len(t, forListing, 1)
		assert.Equal(t, "loft-airbnb", forListing[0].Name)
		assert.Nil(t, forListing[0].VendorID)

		assert.Equal(t, vendorID, *catalog.All()[1].VendorID)
		assert.Empty(t, catalog.ForListing(uuid.New()))
	})

	cases := []struct {
		name string
		yaml string
	}{
		{name: "missing scope", yaml: "feeds:\n  - name: a\n    url: https://x.test/a.ics\n"},
		{name: "missing url", yaml: "feeds:\n  - name: a\n    listing_id: " + listingID.String() + "\n"},
		{name: "bad uuid", yaml: "feeds:\n  - name: a\n    url: https://x.test/a.ics\n    listing_id: nope\n"},
		{name: "duplicate name", yaml: "feeds:\n  - name: a\n    url: https://x.test/a.ics\n    listing_id: " + listingID.String() + "\n  - name: a\n    url: https://x.test/b.ics\n    listing_id: " + listingID.String() + "\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calendar.ParseFeedCatalog([]byte(c.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFeedCatalog(t *testing.T) {
	t.Run("no path means no feeds", func(t *testing.T) {
		catalog, err := calendar.LoadFeedCatalog("")
		require.NoError(t, err)
		assert.Empty(t, catalog.All())
	})

	t.Run("missing file means no feeds", func(t *testing.T) {
		catalog, err := calendar.LoadFeedCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, catalog.All())
	})

	t.Run("reads the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feeds.yaml")
		content := "feeds:\n  - name: a\n    url: https://x.test/a.ics\n    listing_id: " + uuid.NewString() + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		catalog, err := calendar.LoadFeedCatalog(path)

		require.NoError(t, err)
		assert.Len(t, catalog.All(), 1)
	})
}
