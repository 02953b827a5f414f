package components

import (
	"golfclub-backend/internal/handler"
	"golfclub-backend/internal/handler/api"
	"golfclub-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPricingHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
