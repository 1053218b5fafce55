package components

import (
	"boilerbites/internal/handler"
	"boilerbites/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewClaimHandler,
		api.NewStatsHandler,
		api.NewVenueHandler,
	),
	fx.Invoke(handler.NewRouter),
)
