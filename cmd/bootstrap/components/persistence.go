package components

import (
	"venuebook/internal/domain/availability"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/outbox"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/infra/readstore"
	"venuebook/internal/infra/uow"
	"venuebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingQueries)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Search
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SearchQueries)),
		),
		fx.Annotate(
			readstore.NewSearchReadStore,
			fx.As(new(queries.SearchReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(availability.ReservationFinder)),
		),
		// Block
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BlockQueries)),
		),
		fx.Annotate(
			readstore.NewBlockReadStore,
			fx.As(new(availability.BlockFinder)),
		),
	),
)

var writeModule = fx.Module("persistence/write",
	fx.Provide(
		// UnitOfWork; repositories are bound per transaction inside it
		uow.NewPostgresUoW,
		// Outbox relay
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(outbox.Store)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgq.Queries {
	return pgq.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
