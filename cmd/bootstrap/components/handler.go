package components

import (
	"tienda-api/internal/handler"
	"tienda-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewCouponHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewUbigeoHandler,
	),
	fx.Invoke(handler.NewRouter),
)
