package routes

import (
	_ "checkout_service/docs"
	"checkout_service/internal/adapter/http/handlers"
	"checkout_service/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathPing     = "/ping"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathSettings = "/settings"
	PathProducts = "/products"
	PathSwagger  = "/swagger/*any"
	apiVersionV1 = "/v1"
	requestIDKey = "request_id"
	requestIDHdr = "X-Request-ID"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Checkout *handlers.CheckoutHandler
	Orders   *handlers.OrderHandler
	Settings *handlers.SettingsHandler
	Products *handlers.ProductHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logging.OrNop(logger).Named("http"))

	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, h)
	return router
}

func getRoutes(router *gin.Engine, h Handlers) {
	v1 := router.Group(apiVersionV1)
	addPingRoutes(v1)
	addCheckoutRoutes(v1, h.Checkout)
	addOrderRoutes(v1, h.Orders)
	addSettingsRoutes(v1, h.Settings)
	addProductRoutes(v1, h.Products)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String(requestIDKey, c.GetString(requestIDKey)),
		)
		c.AbortWithStatus(500)
	}))
}
