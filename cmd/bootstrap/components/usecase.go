package components

import (
	"tienda-api/internal/pkg/clock"
	"tienda-api/internal/pkg/config"
	"tienda-api/internal/usecase/commands"
	"tienda-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.SiteConfig {
		return cfg.Site
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderUseCase,
		commands.NewCartUseCase,
		commands.NewPaymentUseCase,
		commands.NewWebhookUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponQueries,
		queries.NewUbigeoQueries,
	),
)
