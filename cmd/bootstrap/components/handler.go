package components

import (
	"dartshop/internal/handler"
	"dartshop/internal/handler/api"
	"dartshop/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInventoryHandler,
		api.NewReservationHandler,
		api.NewWatchlistHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
