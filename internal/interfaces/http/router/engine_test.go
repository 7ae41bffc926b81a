package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appcatalog "github.com/erp/production/internal/application/catalog"
	appinv "github.com/erp/production/internal/application/inventory"
	appprod "github.com/erp/production/internal/application/production"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/cache"
	"github.com/erp/production/internal/infrastructure/config"
	"github.com/erp/production/internal/infrastructure/persistence"
	"github.com/erp/production/internal/infrastructure/persistence/sqlitetest"
	"github.com/erp/production/internal/interfaces/http/handler"
	"github.com/erp/production/internal/interfaces/http/middleware"
	"github.com/erp/production/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type alwaysUp struct{}

func (alwaysUp) Ping(context.Context) error { return nil }

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := sqlitetest.Open(t)
	scope := persistence.NewGormTransactionScope(db)
	log := zap.NewNop()

	catalogSvc := appcatalog.NewCatalogService(appcatalog.Repositories{
		Warehouses:   persistence.NewGormWarehouseRepository(db),
		ProductTypes: persistence.NewGormProductTypeRepository(db),
		ColorCodes:   persistence.NewGormColorCodeRepository(db),
		ServiceTypes: persistence.NewGormServiceTypeRepository(db),
		Artisans:     persistence.NewGormArtisanRepository(db),
	}, scope.CatalogScope(), log)
	inventorySvc := appinv.NewInventoryService(
		persistence.NewGormStockLineRepository(db),
		persistence.NewGormStockMovementRepository(db),
		scope.InventoryScope(), log)
	productionSvc := appprod.NewProductionService(persistence.NewGormProductionOrderRepository(db), scope.ProductionScope(), log)

	store := cache.NewInMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	engine, err := router.NewEngine(router.Dependencies{
		Logger:            log,
		HTTP:              config.HTTPConfig{MaxBodySize: 1 << 20},
		IdempotencyStore:  store,
		IdempotencyConfig: shared.IdempotencyConfig{Enabled: true, TTL: time.Hour},
		Health:            handler.NewHealthHandler("production", "test", alwaysUp{}),
		Production:        handler.NewProductionOrderHandler(productionSvc),
		StockLines:        handler.NewStockLineHandler(inventorySvc),
		Catalog:           handler.NewCatalogHandler(catalogSvc),
	})
	require.NoError(t, err)
	return engine
}

type client struct {
	t      *testing.T
	engine *gin.Engine
}

func (c client) post(path string, body any, headers ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(c.t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	return w
}

func (c client) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (c client) createdID(w *httptest.ResponseRecorder) string {
	c.t.Helper()
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func TestNewEngine_Health(t *testing.T) {
	c := client{t: t, engine: newEngine(t)}

	w := c.get("/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestNewEngine_SwaggerDocument(t *testing.T) {
	c := client{t: t, engine: newEngine(t)}

	w := c.get("/swagger/doc.json")

	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths["/production-orders"], "post")
	assert.Contains(t, doc.Paths["/production-orders/{id}/lines/complete"], "post")
	assert.Contains(t, doc.Paths["/stock-lines/{id}/movements"], "get")
	assert.Contains(t, doc.Paths["/catalog/artisans"], "post")

	assert.Equal(t, http.StatusOK, c.get("/swagger/index.html").Code)
}

func TestNewEngine_IdempotentOrderCreation(t *testing.T) {
	c := client{t: t, engine: newEngine(t)}

	warehouse := c.createdID(c.post("/api/v1/catalog/warehouses", map[string]any{"name": "Mill"}))
	fleece := c.createdID(c.post("/api/v1/catalog/product-types", map[string]any{"name": "Fleece"}))
	spinning := c.createdID(c.post("/api/v1/catalog/service-types", map[string]any{"name": "Spinning", "overhead_rate": "0.1"}))
	artisan := c.createdID(c.post("/api/v1/catalog/artisans", map[string]any{
		"name":  "Nadia",
		"rates": []any{map[string]any{"service_type_id": spinning, "rate_per_unit": "2"}},
	}))
	stock := c.createdID(c.post("/api/v1/stock-lines", map[string]any{
		"warehouse_id": warehouse, "product_type_id": fleece, "quantity": "10", "unit_cost": "3",
	}))

	order := map[string]any{
		"service_type_id": spinning,
		"artisan_id":      artisan,
		"materials":       []any{map[string]any{"stock_line_id": stock, "quantity_used": "6"}},
	}
	first := c.post("/api/v1/production-orders", order, middleware.IdempotencyKeyHeader, "order-2026-10-18-a")
	retry := c.post("/api/v1/production-orders", order, middleware.IdempotencyKeyHeader, "order-2026-10-18-a")

	assert.Equal(t, c.createdID(first), c.createdID(retry))
	assert.Equal(t, "true", retry.Header().Get(middleware.IdempotencyReplayedHeader))

	// a replay debits nothing; a new key does and then runs short
	w := c.get("/api/v1/stock-lines/" + stock)
	require.Equal(t, http.StatusOK, w.Code)
	var line struct {
		Data appinv.StockLineResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))
	assert.True(t, line.Data.Quantity.Equal(decimal.NewFromInt(4)), line.Data.Quantity.String())

	short := c.post("/api/v1/production-orders", order, middleware.IdempotencyKeyHeader, "order-2026-10-18-b")
	assert.Equal(t, http.StatusUnprocessableEntity, short.Code)
	assert.Contains(t, short.Body.String(), "ERR_INSUFFICIENT_STOCK")

	orderID := c.createdID(first)
	assert.Equal(t, http.StatusOK, c.get("/api/v1/production-orders/"+orderID).Code)
	assert.Equal(t, http.StatusOK, c.get("/api/v1/production-orders/"+orderID+"/pending-lines").Code)
}

func TestNewEngine_BodyLimit(t *testing.T) {
	c := client{t: t, engine: newEngine(t)}

	w := c.post("/api/v1/catalog/warehouses", map[string]any{"name": string(bytes.Repeat([]byte("x"), 2<<20))})

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
