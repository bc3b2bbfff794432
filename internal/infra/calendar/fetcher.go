package calendar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/shared"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxFeedBytes = 10 << 20

type HTTPFetcher struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPFetcher(timeout time.Duration, logger *slog.Logger) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// Fetch downloads the feed, parses it and expands recurrences within window.
func (f *HTTPFetcher) Fetch(ctx context.Context, feed commands.CalendarFeed, window reservation.Interval) ([]shared.FeedBlock, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build feed request")
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errs.Wrapf(err, "get %s", redactURL(feed.URL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Newf("get %s: unexpected status %s", redactURL(feed.URL), resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes+1))
	if err != nil {
		return nil, errs.Wrap(err, "read feed body")
	}
	if len(body) > maxFeedBytes {
		return nil, errs.Newf("feed %s is larger than %d bytes", feed.Name, maxFeedBytes)
	}

	events, skipped, err := parseFeed(body)
	if err != nil {
		return nil, errs.Wrapf(err, "parse feed %s", feed.Name)
	}
	blocks := expand(events, window, f.logger)

	f.logger.DebugContext(ctx, "calendar feed fetched",
		"feed", feed.Name,
		"url", redactURL(feed.URL),
		"events", len(events),
		"unreadable", skipped,
		"blocks", len(blocks))
	return blocks, nil
}

// redactURL keeps scheme and host; private feed URLs carry tokens in the path or query.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "(unparseable url)"
	}
	return fmt.Sprintf("%s://%s/...", u.Scheme, u.Host)
}
