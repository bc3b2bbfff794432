package commands

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/commands/calendar_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNoCalendarFeeds = errs.Mark(errs.New("no calendar feeds configured for listing"), errs.ErrNotFound)
	ErrFeedFetchFailed = errs.Mark(errs.New("calendar feed could not be fetched"), errs.ErrUnavailable)
)

// SyncResult reports one feed. Err is set when the feed was skipped and its blocks left as they were.
type SyncResult struct {
	Feed      string
	Imported  int
	Skipped   int
	Err       error
	SyncedAt  time.Time
	WindowEnd time.Time
}

type CalendarCommands interface {
	SyncAll(ctx context.Context) ([]SyncResult, error)
	SyncListing(ctx context.Context, listingID uuid.UUID) ([]SyncResult, error)
}

type calendarCommandsImpl struct {
	uow     shared.UnitOfWork
	feeds   CalendarFeeds
	fetcher CalendarFetcher
	horizon time.Duration
	clock   clock.Clock
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewCalendarCommands(
	uow shared.UnitOfWork,
	feeds CalendarFeeds,
	fetcher CalendarFetcher,
	horizon time.Duration,
	clock clock.Clock,
	logger *slog.Logger,
	tracer trace.Tracer,
) CalendarCommands {
	return &calendarCommandsImpl{
		uow:     uow,
		feeds:   feeds,
		fetcher: fetcher,
		horizon: horizon,
		clock:   clock,
		logger:  logger,
		tracer:  tracer,
	}
}

// SyncAll imports every configured feed. A failing feed does not stop the others.
func (c *calendarCommandsImpl) SyncAll(ctx context.Context) ([]SyncResult, error) {
	ctx, span := c.tracer.Start(ctx, "CalendarCommands.SyncAll")
	defer span.End()

	feeds := c.feeds.All()
	span.SetAttributes(attribute.Int("calendar.feeds", len(feeds)))
	return c.syncFeeds(ctx, feeds)
}

func (c *calendarCommandsImpl) SyncListing(ctx context.Context, listingID uuid.UUID) ([]SyncResult, error) {
	ctx, span := c.tracer.Start(ctx, "CalendarCommands.SyncListing",
		trace.WithAttributes(attribute.String("listing.id", listingID.String())))
	defer span.End()

	if _, err := c.uow.CommandReads().ListingByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFail)
	}

	feeds := c.feeds.ForListing(listingID)
	if len(feeds) == 0 {
		return nil, ErrNoCalendarFeeds
	}
	return c.syncFeeds(ctx, feeds)
}

func (c *calendarCommandsImpl) syncFeeds(ctx context.Context, feeds []CalendarFeed) ([]SyncResult, error) {
	results := make([]SyncResult, 0, len(feeds))
	for _, feed := range feeds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result := c.syncFeed(ctx, feed)
		if result.Err != nil {
			c.logger.WarnContext(ctx, "calendar feed sync failed",
				"feed", feed.Name,
				"error", result.Err.Error())
		} else {
			c.logger.InfoContext(ctx, "calendar feed synced",
				"feed", feed.Name,
				"imported", result.Imported,
				"skipped", result.Skipped)
		}
		results = append(results, result)
	}
	return results, nil
}

// syncFeed replaces the feed's blocks in one transaction, so readers see either the old set or
// the new one.
func (c *calendarCommandsImpl) syncFeed(ctx context.Context, feed CalendarFeed) SyncResult {
	now := c.clock.Now()
	result := SyncResult{Feed: feed.Name, SyncedAt: now, WindowEnd: now.Add(c.horizon)}

	window, err := reservation.NewInterval(now, now.Add(c.horizon))
	if err != nil {
		result.Err = errs.Wrap(err, "sync window")
		return result
	}

	fetched, err := c.fetcher.Fetch(ctx, feed, window)
	if err != nil {
		result.Err = errs.Mark(errs.Wrapf(err, "fetch feed %s", feed.Name), ErrFeedFetchFailed)
		return result
	}

	blocks := make([]*reservation.Block, 0, len(fetched))
	for _, fb := range fetched {
		interval, err := reservation.NewInterval(fb.Start, fb.End)
		if err != nil {
			result.Skipped++
			continue
		}
		b, err := reservation.NewBlock(feed.ListingID, feed.VendorID, reservation.BlockSourceCalendar, fb.ExternalUID, interval, fb.Summary)
		if err != nil {
			result.Skipped++
			continue
		}
		blocks = append(blocks, b)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Blocks().ReplaceFeed(ctx, tx.DB(), feed.Name, blocks)
		if err != nil {
			return err
		}
		result.Imported = n
		return nil
	})
	if err != nil {
		result.Err = errs.Mark(err, ErrDatabaseOperationFail)
	}
	return result
}
