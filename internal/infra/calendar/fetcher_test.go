//go:build unit

package calendar_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra/calendar"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//venuebook//test//EN
BEGIN:VEVENT
UID:single-1
DTSTAMP:20300101T000000Z
DTSTART:20300108T090000Z
DTEND:20300108T120000Z
SUMMARY:Private dinner
END:VEVENT
BEGIN:VEVENT
UID:weekly-1
DTSTAMP:20300101T000000Z
DTSTART:20300107T180000Z
DTEND:20300107T200000Z
RRULE:FREQ=WEEKLY;COUNT=4
EXDATE:20300114T180000Z
SUMMARY:Yoga class
END:VEVENT
BEGIN:VEVENT
UID:weekly-1
DTSTAMP:20300101T000000Z
RECURRENCE-ID:20300121T180000Z
DTSTART:20300121T190000Z
DTEND:20300121T210000Z
SUMMARY:Yoga class (moved)
END:VEVENT
BEGIN:VEVENT
UID:cancelled-1
DTSTAMP:20300101T000000Z
DTSTART:20300109T090000Z
DTEND:20300109T100000Z
STATUS:CANCELLED
SUMMARY:Called off
END:VEVENT
BEGIN:VEVENT
UID:free-1
DTSTAMP:20300101T000000Z
DTSTART:20300110T090000Z
DTEND:20300110T100000Z
TRANSP:TRANSPARENT
SUMMARY:Reminder
END:VEVENT
END:VCALENDAR
`

func serveFeed(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, strings.ReplaceAll(body, "\n", "\r\n"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func window(t *testing.T, from, to time.Time) reservation.Interval {
	t.Helper()
	i, err := reservation.NewInterval(from, to)
	require.NoError(t, err)
	return i
}

func utc(day, h, m int) time.Time {
	return time.Date(2030, 1, day, h, m, 0, 0, time.UTC)
}

func newFetcher() *calendar.HTTPFetcher {
	return calendar.NewHTTPFetcher(5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	listingID := uuid.New()

	t.Run("expands recurrences and drops free events", func(t *testing.T) {
		srv := serveFeed(t, http.StatusOK, feedICS)
		feed := commands.CalendarFeed{Name: "loft", URL: srv.URL + "/private/token.ics", ListingID: &listingID}

		blocks, err := newFetcher().Fetch(context.Background(), feed, window(t, utc(7, 0, 0), utc(31, 0, 0)))

		require.NoError(t, err)
		byStart := make(map[time.Time]shared.FeedBlock, len(blocks))
		for _, b := range blocks {
			byStart[b.Start] = b
		}
		require.Len(t, blocks, 4)

		assert.Equal(t, utc(8, 12, 0), byStart[utc(8, 9, 0)].End)
		assert.Equal(t, "single-1", byStart[utc(8, 9, 0)].ExternalUID)

		assert.Contains(t, byStart, utc(7, 18, 0))
		assert.NotContains(t, byStart, utc(14, 18, 0), "EXDATE removes the occurrence")
		assert.Contains(t, byStart, utc(28, 18, 0))

		moved, ok := byStart[utc(21, 19, 0)]
		require.True(t, ok, "RECURRENCE-ID override replaces the generated occurrence")
		assert.Equal(t, utc(21, 21, 0), moved.End)
		assert.Equal(t, "Yoga class (moved)", moved.Summary)
		assert.Equal(t, "weekly-1/20300121T180000Z", moved.ExternalUID)
	})

	t.Run("window limits the expansion", func(t *testing.T) {
		srv := serveFeed(t, http.StatusOK, feedICS)
		feed := commands.CalendarFeed{Name: "loft", URL: srv.URL, ListingID: &listingID}

		blocks, err := newFetcher().Fetch(context.Background(), feed, window(t, utc(7, 19, 0), utc(8, 10, 0)))

		require.NoError(t, err)
		require.Len(t, blocks, 2)
		uids := []string{blocks[0].ExternalUID, blocks[1].ExternalUID}
		assert.ElementsMatch(t, []string{"single-1", "weekly-1/20300107T180000Z"}, uids)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := serveFeed(t, http.StatusNotFound, "")
		feed := commands.CalendarFeed{Name: "gone", URL: srv.URL, ListingID: &listingID}

		_, err := newFetcher().Fetch(context.Background(), feed, window(t, utc(7, 0, 0), utc(31, 0, 0)))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("empty body is an error", func(t *testing.T) {
		srv := serveFeed(t, http.StatusOK, "  ")
		feed := commands.CalendarFeed{Name: "blank", URL: srv.URL, ListingID: &listingID}

		_, err := newFetcher().Fetch(context.Background(), feed, window(t, utc(7, 0, 0), utc(31, 0, 0)))

		require.ErrorIs(t, err, calendar.ErrEmptyFeed)
	})
}
