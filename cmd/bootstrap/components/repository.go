package components

import (
	"golfclub-backend/internal/infra/readstore"
	"golfclub-backend/internal/infra/repository"
	"golfclub-backend/internal/usecase/commands"
	"golfclub-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewPriceItemReadStore,
			fx.As(new(queries.PriceCatalogReadStore)),
			fx.As(new(queries.PriceItemAdminReadStore)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionCatalogReadStore)),
			fx.As(new(queries.PromotionAdminReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(repository.BookingFinder)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Write side
		fx.Annotate(
			repository.NewPriceItemRepository,
			fx.As(new(commands.PriceItemRepository)),
		),
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)
