package components

import (
	"log/slog"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/infra/calendar"
	"venuebook/internal/infra/outbox"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCalendarModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewScheduleCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	availability.NewConflictDetector,
	availability.NewAvailabilityChecker,
	func(cfg config.Config) config.SearchConfig { return cfg.Search },
)

var usecaseCalendarModule = fx.Module("usecase/calendar",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) (*calendar.FeedCatalog, error) {
				return calendar.LoadFeedCatalog(cfg.Calendar.FeedsFile)
			},
			fx.As(new(commands.CalendarFeeds)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *calendar.HTTPFetcher {
				return calendar.NewHTTPFetcher(cfg.Calendar.FetchTimeout, logger)
			},
			fx.As(new(commands.CalendarFetcher)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		NewCalendarCommands,
		outbox.NewPublisher,
		func(cfg config.Config) config.KafkaConfig { return cfg.Kafka },
	),
)

func NewCalendarCommands(
	uow shared.UnitOfWork,
	feeds commands.CalendarFeeds,
	fetcher commands.CalendarFetcher,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
	tracer trace.Tracer,
) commands.CalendarCommands {
	return commands.NewCalendarCommands(uow, feeds, fetcher, cfg.Calendar.Horizon, clk, logger, tracer)
}
