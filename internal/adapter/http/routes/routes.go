package routes

import (
	_ "quoteportal/docs"
	"quoteportal/internal/adapter/http/handlers"
	"quoteportal/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const BasePath = "/api"

// Handlers groups everything the router mounts.
type Handlers struct {
	Products *handlers.ProductHandler
	Quotes   *handlers.QuoteHandler
	Payments *handlers.BillingPaymentHandler
}

// NewRouter builds the gin engine with the middleware chain and every route
// under BasePath.
func NewRouter(log *zap.Logger, allowOrigins []string, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log, allowOrigins)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(BasePath)
	addPingRoutes(api)
	addProductRoutes(api, h.Products)
	addQuoteRoutes(api, h.Quotes)
	addPaymentRoutes(api, h.Payments)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger, allowOrigins []string) {
	router.Use(middleware.CorrelationID())
	router.Use(middleware.Logger(log.Named("http")))
	router.Use(middleware.Recover(log.Named("http")))
	router.Use(middleware.CORS(allowOrigins))
}
