package router

import (
	_ "github.com/erp/production/docs"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/config"
	"github.com/erp/production/internal/infrastructure/logger"
	"github.com/erp/production/internal/interfaces/http/handler"
	"github.com/erp/production/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the handlers and cross-cutting collaborators the engine
// is assembled from
type Dependencies struct {
	Logger            *zap.Logger
	HTTP              config.HTTPConfig
	IdempotencyStore  shared.IdempotencyStore
	IdempotencyConfig shared.IdempotencyConfig
	// TracingService enables request spans under that service name when set
	TracingService string

	Health     *handler.HealthHandler
	Production *handler.ProductionOrderHandler
	StockLines *handler.StockLineHandler
	Catalog    *handler.CatalogHandler
}

// NewEngine builds the gin engine with the middleware chain and every route
func NewEngine(deps Dependencies) (*gin.Engine, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(deps.HTTP.TrustedProxies); err != nil {
		return nil, err
	}
	engine.Use(middleware.RequestID())
	if deps.TracingService != "" {
		engine.Use(middleware.Tracing(deps.TracingService), middleware.TraceAttributes())
	}
	engine.Use(
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
	)
	if deps.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(deps.HTTP.MaxBodySize))
	}

	engine.GET("/health", deps.Health.Health)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	idempotent := middleware.Idempotency(deps.IdempotencyStore, deps.IdempotencyConfig, log)

	orders := NewDomainGroup("production", "/production-orders")
	orders.POST("", idempotent, deps.Production.Create)
	orders.GET("/:id", deps.Production.GetByID)
	orders.GET("/:id/pending-lines", deps.Production.PendingLines)
	orders.POST("/:id/lines/complete", idempotent, deps.Production.CompleteLines)
	orders.POST("/:id/lines/:lineId/complete", idempotent, deps.Production.CompleteLine)

	stock := NewDomainGroup("inventory", "/stock-lines")
	stock.POST("", deps.StockLines.Receive)
	stock.GET("", deps.StockLines.List)
	stock.GET("/:id", deps.StockLines.GetByID)
	stock.GET("/:id/movements", deps.StockLines.Movements)

	catalog := NewDomainGroup("catalog", "/catalog")
	catalog.Group("warehouses", "/warehouses").
		POST("", deps.Catalog.CreateWarehouse).
		GET("/:id", deps.Catalog.GetWarehouse)
	catalog.Group("product-types", "/product-types").
		POST("", deps.Catalog.CreateProductType).
		GET("/:id", deps.Catalog.GetProductType)
	catalog.Group("color-codes", "/color-codes").
		POST("", deps.Catalog.CreateColorCode).
		GET("/:id", deps.Catalog.GetColorCode)
	catalog.Group("service-types", "/service-types").
		POST("", deps.Catalog.CreateServiceType).
		GET("/:id", deps.Catalog.GetServiceType)
	catalog.Group("artisans", "/artisans").
		POST("", deps.Catalog.CreateArtisan).
		GET("/:id", deps.Catalog.GetArtisan)

	NewRouter(engine, WithAPIVersion("v1")).
		Register(orders).
		Register(stock).
		Register(catalog).
		Setup()

	return engine, nil
}
