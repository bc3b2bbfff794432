package calendar

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type feedFile struct {
	Feeds []feedEntry `yaml:"feeds"`
}

type feedEntry struct {
	Name      string `yaml:"name"`
	URL       string `yaml:"url"`
	ListingID string `yaml:"listing_id"`
	VendorID  string `yaml:"vendor_id"`
}

// FeedCatalog is the static list of external calendars, read once at startup.
type FeedCatalog struct {
	feeds []commands.CalendarFeed
}

// LoadFeedCatalog reads the YAML feed file. An empty path or a missing file yields an
// empty catalog so the service runs without calendar import.
func LoadFeedCatalog(path string) (*FeedCatalog, error) {
	if strings.TrimSpace(path) == "" {
		return &FeedCatalog{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FeedCatalog{}, nil
		}
		return nil, errs.Wrapf(err, "read calendar feeds %s", path)
	}
	return ParseFeedCatalog(data)
}

func ParseFeedCatalog(data []byte) (*FeedCatalog, error) {
	var file feedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.Wrap(err, "parse calendar feeds")
	}

	seen := make(map[string]struct{}, len(file.Feeds))
	feeds := make([]commands.CalendarFeed, 0, len(file.Feeds))
	for i, e := range file.Feeds {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errs.Newf("calendar feed #%d has no name", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, errs.Newf("calendar feed %q is declared twice", name)
		}
		seen[name] = struct{}{}

		url := strings.TrimSpace(e.URL)
		if url == "" {
			return nil, errs.Newf("calendar feed %q has no url", name)
		}

		listingID, err := optionalUUID(e.ListingID)
		if err != nil {
			return nil, errs.Wrapf(err, "calendar feed %q listing_id", name)
		}
		vendorID, err := optionalUUID(e.VendorID)
		if err != nil {
			return nil, errs.Wrapf(err, "calendar feed %q vendor_id", name)
		}
		if listingID == nil && vendorID == nil {
			return nil, errs.Newf("calendar feed %q needs listing_id or vendor_id", name)
		}

		feeds = append(feeds, commands.CalendarFeed{
			Name:      name,
			URL:       url,
			ListingID: listingID,
			VendorID:  vendorID,
		})
	}
	return &FeedCatalog{feeds: feeds}, nil
}

func (c *FeedCatalog) All() []commands.CalendarFeed {
	out := make([]commands.CalendarFeed, len(c.feeds))
	copy(out, c.feeds)
	return out
}

func (c *FeedCatalog) ForListing(listingID uuid.UUID) []commands.CalendarFeed {
	var out []commands.CalendarFeed
	for _, f := range c.feeds {
		if f.ListingID != nil && *f.ListingID == listingID {
			out = append(out, f)
		}
	}
	return out
}

func optionalUUID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
