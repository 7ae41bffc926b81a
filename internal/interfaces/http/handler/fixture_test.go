package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	appcatalog "github.com/erp/production/internal/application/catalog"
	appinv "github.com/erp/production/internal/application/inventory"
	appprod "github.com/erp/production/internal/application/production"
	"github.com/erp/production/internal/infrastructure/persistence"
	"github.com/erp/production/internal/infrastructure/persistence/sqlitetest"
	"github.com/erp/production/internal/interfaces/http/dto"
	"github.com/erp/production/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// envelope is dto.Response with a typed payload
type envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *dto.ErrorInfo `json:"error"`
	Meta    *dto.Meta      `json:"meta"`
}

type apiFixture struct {
	router *gin.Engine

	catalog   *appcatalog.CatalogService
	inventory *appinv.InventoryService

	warehouse   uuid.UUID
	fleece      uuid.UUID
	yarn        uuid.UUID
	spinning    uuid.UUID
	artisan     uuid.UUID
	fleeceStock uuid.UUID
}

// newAPIFixture serves the handlers over sqlite with 100 units of fleece
// at 4.00 in stock, a spinning service at 20% overhead and an artisan paid
// 1.50 per unit
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctx := context.Background()
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

	middleware.SetupValidator()
	router := gin.New()
	router.Use(middleware.RequestID())

	orders := NewProductionOrderHandler(productionSvc)
	router.POST("/production-orders", orders.Create)
	router.GET("/production-orders/:id", orders.GetByID)
	router.GET("/production-orders/:id/pending-lines", orders.PendingLines)
	router.POST("/production-orders/:id/lines/complete", orders.CompleteLines)
	router.POST("/production-orders/:id/lines/:lineId/complete", orders.CompleteLine)

	stock := NewStockLineHandler(inventorySvc)
	router.POST("/stock-lines", stock.Receive)
	router.GET("/stock-lines", stock.List)
	router.GET("/stock-lines/:id", stock.GetByID)
	router.GET("/stock-lines/:id/movements", stock.Movements)

	cat := NewCatalogHandler(catalogSvc)
	router.POST("/catalog/warehouses", cat.CreateWarehouse)
	router.GET("/catalog/warehouses/:id", cat.GetWarehouse)
	router.POST("/catalog/product-types", cat.CreateProductType)
	router.POST("/catalog/color-codes", cat.CreateColorCode)
	router.GET("/catalog/color-codes/:id", cat.GetColorCode)
	router.POST("/catalog/service-types", cat.CreateServiceType)
	router.GET("/catalog/service-types/:id", cat.GetServiceType)
	router.POST("/catalog/artisans", cat.CreateArtisan)
	router.GET("/catalog/artisans/:id", cat.GetArtisan)

	f := &apiFixture{router: router, catalog: catalogSvc, inventory: inventorySvc}

	wh, err := catalogSvc.CreateWarehouse(ctx, appcatalog.CreateWarehouseRequest{Name: "Mill"})
	require.NoError(t, err)
	fleece, err := catalogSvc.CreateProductType(ctx, appcatalog.CreateProductTypeRequest{Name: "Fleece", Unit: "kg"})
	require.NoError(t, err)
	yarn, err := catalogSvc.CreateProductType(ctx, appcatalog.CreateProductTypeRequest{Name: "Yarn", Unit: "kg"})
	require.NoError(t, err)
	spin, err := catalogSvc.CreateServiceType(ctx, appcatalog.CreateServiceTypeRequest{
		Name: "Spinning", OverheadRate: decimal.RequireFromString("0.2"),
	})
	require.NoError(t, err)
	artisan, err := catalogSvc.CreateArtisan(ctx, appcatalog.CreateArtisanRequest{
		Name:  "Nadia",
		Rates: []appcatalog.ArtisanRateRequest{{ServiceTypeID: spin.ID, RatePerUnit: decimal.RequireFromString("1.5")}},
	})
	require.NoError(t, err)
	line, err := inventorySvc.ReceiveStock(ctx, appinv.ReceiveStockRequest{
		StockLineKeyInput: appinv.StockLineKeyInput{WarehouseID: wh.ID, ProductTypeID: fleece.ID},
		Quantity:          decimal.NewFromInt(100),
		UnitCost:          decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	f.warehouse, f.fleece, f.yarn = wh.ID, fleece.ID, yarn.ID
	f.spinning, f.artisan, f.fleeceStock = spin.ID, artisan.ID, line.ID
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeAs[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var resp envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func requireStatus(t *testing.T, want int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
}

func decEq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

