package components

import (
	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/pkg/clock"
	"golfclub-backend/internal/usecase/commands"
	"golfclub-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	pricing.NewResolver,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewBookingCommands,
	),
)
