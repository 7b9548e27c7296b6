package components

import (
	"tienda-api/internal/infra/readstore"
	"tienda-api/internal/infra/redisstore"
	"tienda-api/internal/infra/uow"
	"tienda-api/internal/infra/writerepo"
	"tienda-api/internal/pkg/config"
	"tienda-api/internal/usecase/commands"
	"tienda-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		// Orders
		fx.Annotate(
			writerepo.NewOrderRepository,
			fx.As(new(commands.OrderWriteRepository)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(commands.OrderReadStore)),
		),
		// Catalog
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.CatalogQueries)),
		),
		// Coupons
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponStore)),
		),
		// Ubigeo
		fx.Annotate(
			readstore.NewUbigeoReadStore,
			fx.As(new(queries.UbigeoStore)),
		),
		// Carts
		fx.Annotate(
			NewCartStore,
			fx.As(new(commands.CartStore)),
		),
	),
)

func NewCartStore(client *redis.Client, cfg config.Config) *redisstore.CartStore {
	return redisstore.NewCartStore(client, cfg.Redis.CartTTL)
}
