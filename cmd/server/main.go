package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	appcatalog "github.com/erp/production/internal/application/catalog"
	appinv "github.com/erp/production/internal/application/inventory"
	appprod "github.com/erp/production/internal/application/production"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/cache"
	"github.com/erp/production/internal/infrastructure/config"
	"github.com/erp/production/internal/infrastructure/event"
	"github.com/erp/production/internal/infrastructure/logger"
	"github.com/erp/production/internal/infrastructure/persistence"
	"github.com/erp/production/internal/infrastructure/telemetry"
	"github.com/erp/production/internal/interfaces/http/handler"
	"github.com/erp/production/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Production Costing API
//	@version		1.0
//	@description	Production orders, stock lines and cost allocation.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.FromAppConfig(cfg.Log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(cfg, log); err != nil {
		log.Error("Server exited with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting production engine",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, log, err := setupObservability(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := obs.shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Database.SlowQuery))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if err := telemetry.InstrumentDB(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
		DBName:     cfg.Database.DBName,
	}, log); err != nil {
		return fmt.Errorf("instrument database: %w", err)
	}

	// Repositories
	stockLineRepo := persistence.NewGormStockLineRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)
	orderRepo := persistence.NewGormProductionOrderRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Services
	catalogService := appcatalog.NewCatalogService(appcatalog.Repositories{
		Warehouses:   persistence.NewGormWarehouseRepository(db.DB),
		ProductTypes: persistence.NewGormProductTypeRepository(db.DB),
		ColorCodes:   persistence.NewGormColorCodeRepository(db.DB),
		ServiceTypes: persistence.NewGormServiceTypeRepository(db.DB),
		Artisans:     persistence.NewGormArtisanRepository(db.DB),
	}, txScope.CatalogScope(), log)
	inventoryService := appinv.NewInventoryService(stockLineRepo, movementRepo, txScope.InventoryScope(), log)
	productionService := appprod.NewProductionService(orderRepo, txScope.ProductionScope(), log)

	// Events
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(appprod.NewLaborAccrualHandler(event.NewLoggingArtisanLedger(log), log))
	productionMetrics, err := telemetry.NewProductionMetrics(obs.meter.Meter("production"),
		telemetry.NewGormStockLevelProvider(db.DB), log)
	if err != nil {
		return fmt.Errorf("production metrics: %w", err)
	}
	defer func() {
		_ = productionMetrics.Close()
	}()
	eventBus.Subscribe(productionMetrics)
	if err := eventBus.Start(ctx); err != nil {
		return fmt.Errorf("start event bus: %w", err)
	}
	productionService.SetEventPublisher(eventBus)

	// Idempotency keys at the boundary
	idempotencyCfg := shared.IdempotencyConfig{Enabled: cfg.Idempotency.Enabled, TTL: cfg.Idempotency.TTL}
	var idempotencyStore shared.IdempotencyStore
	if cfg.Idempotency.Enabled {
		idempotencyStore, err = cache.NewIdempotencyStoreFactory(cfg.Redis,
			cache.WithLogger(log),
			cache.WithInMemoryFallback(!cfg.Idempotency.RequireRedis),
		).CreateStore(ctx)
		if err != nil {
			return fmt.Errorf("create idempotency store: %w", err)
		}
		defer func() {
			if err := idempotencyStore.Close(); err != nil {
				log.Error("Error closing idempotency store", zap.Error(err))
			}
		}()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	tracingService := ""
	if cfg.Telemetry.Enabled {
		tracingService = cfg.Telemetry.ServiceName
	}
	engine, err := router.NewEngine(router.Dependencies{
		Logger:            log,
		TracingService:    tracingService,
		HTTP:              cfg.HTTP,
		IdempotencyStore:  idempotencyStore,
		IdempotencyConfig: idempotencyCfg,
		Health:            handler.NewHealthHandler(cfg.App.Name, version, db),
		Production:        handler.NewProductionOrderHandler(productionService),
		StockLines:        handler.NewStockLineHandler(inventoryService),
		Catalog:           handler.NewCatalogHandler(catalogService),
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return eventBus.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
