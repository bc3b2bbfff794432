package bootstrap

import (
	"context"
	"log/slog"

	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx := context.Background()
	if cfg.DB.Migrate {
		if err := db.Migrate(ctx, cfg.DB.BuildDSN(), logger); err != nil {
			return nil, err
		}
	}

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}
