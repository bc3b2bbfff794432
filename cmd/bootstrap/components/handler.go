package components

import (
	"venuebook/internal/handler"
	"venuebook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewReservationHandler,
		api.NewCalendarHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
