package bootstrap

import (
	"context"

	"venuebook/internal/infra/tracing"
	"venuebook/internal/pkg/config"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracer,
		tracing.Propagator,
	),
)

// NewTracer installs the tracer provider before anything asks for a tracer.
func NewTracer(lc fx.Lifecycle, cfg config.Config) (trace.Tracer, error) {
	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return tracing.Tracer(), nil
}
