package bootstrap

import (
	"context"
	"log/slog"

	"venuebook/internal/infra/outbox"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(
		StartCalendarSync,
		StartOutboxPublisher,
	),
)

// StartCalendarSync re-imports every configured feed on CALENDAR_SYNC_SCHEDULE.
func StartCalendarSync(lc fx.Lifecycle, cfg config.Config, cmds commands.CalendarCommands, logger *slog.Logger) error {
	if cfg.Calendar.SyncSchedule == "" || cfg.Calendar.SyncSchedule == "off" {
		logger.Info("calendar sync schedule disabled")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(cfg.Calendar.SyncSchedule, func() {
		results, err := cmds.SyncAll(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "calendar sync failed", "error", err.Error())
			return
		}
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		logger.InfoContext(ctx, "calendar sync finished", "feeds", len(results), "failed", failed)
	})
	if err != nil {
		cancel()
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("calendar sync scheduled", "schedule", cfg.Calendar.SyncSchedule)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-c.Stop().Done():
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return nil
}

func StartOutboxPublisher(lc fx.Lifecycle, p *outbox.Publisher) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				p.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return p.Close()
		},
	})
}
