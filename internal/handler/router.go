package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tienda-api/internal/handler/api"
	"tienda-api/internal/handler/middleware"
	"tienda-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	orderHandler *api.OrderHandler,
	couponHandler *api.CouponHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	ubigeoHandler *api.UbigeoHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, cartHandler, orderHandler, couponHandler, paymentHandler, webhookHandler, ubigeoHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	orderHandler *api.OrderHandler,
	couponHandler *api.CouponHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	ubigeoHandler *api.UbigeoHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: catalogHandler.ListProducts},
			{Method: http.MethodGet, Path: "/products/:slug", Handler: catalogHandler.GetProduct},
			{Method: http.MethodGet, Path: "/categories", Handler: catalogHandler.ListCategories},
			{Method: http.MethodGet, Path: "/ubigeo", Handler: ubigeoHandler.Tree},
		})

		carts := apiGroup.Group("/carts")
		{
			addRoutes(carts, []route{
				{Method: http.MethodPost, Path: "", Handler: cartHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: cartHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: cartHandler.Clear},
				{Method: http.MethodPost, Path: "/:id/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/:id/items", Handler: cartHandler.SetItemQty},
				{Method: http.MethodDelete, Path: "/:id/items", Handler: cartHandler.RemoveItem},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/orders", Handler: orderHandler.Create},
			{Method: http.MethodPost, Path: "/coupons/validate", Handler: couponHandler.Validate},
		})

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/preference", Handler: paymentHandler.CreatePreference},
				{Method: http.MethodGet, Path: "/webhook", Handler: webhookHandler.Health},
				{Method: http.MethodPost, Path: "/webhook", Handler: webhookHandler.Receive},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
