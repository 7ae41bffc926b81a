package integration

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	appcatalog "github.com/erp/production/internal/application/catalog"
	appinv "github.com/erp/production/internal/application/inventory"
	appprod "github.com/erp/production/internal/application/production"
	"github.com/erp/production/internal/infrastructure/event"
	"github.com/erp/production/internal/infrastructure/persistence"
	"github.com/erp/production/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// engine wires the services the way cmd/server does, over a real database
type engine struct {
	db         *TestDB
	catalog    *appcatalog.CatalogService
	inventory  *appinv.InventoryService
	production *appprod.ProductionService
	events     *testutil.RecordingHandler
}

func newEngine(t *testing.T, db *TestDB) *engine {
	t.Helper()
	log := zap.NewNop()
	scope := persistence.NewGormTransactionScope(db.DB)

	e := &engine{
		db: db,
		catalog: appcatalog.NewCatalogService(appcatalog.Repositories{
			Warehouses:   persistence.NewGormWarehouseRepository(db.DB),
			ProductTypes: persistence.NewGormProductTypeRepository(db.DB),
			ColorCodes:   persistence.NewGormColorCodeRepository(db.DB),
			ServiceTypes: persistence.NewGormServiceTypeRepository(db.DB),
			Artisans:     persistence.NewGormArtisanRepository(db.DB),
		}, scope.CatalogScope(), log),
		inventory: appinv.NewInventoryService(
			persistence.NewGormStockLineRepository(db.DB),
			persistence.NewGormStockMovementRepository(db.DB),
			scope.InventoryScope(), log),
		production: appprod.NewProductionService(persistence.NewGormProductionOrderRepository(db.DB), scope.ProductionScope(), log),
		events:     testutil.NewRecordingHandler(),
	}

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(e.events)
	bus.Subscribe(appprod.NewLaborAccrualHandler(event.NewLoggingArtisanLedger(log), log))
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })
	e.production.SetEventPublisher(bus)
	return e
}

// setup is the master data most scenarios share
type setup struct {
	warehouse uuid.UUID
	fleece    uuid.UUID
	yarn      uuid.UUID
	service   uuid.UUID
	artisan   uuid.UUID
}

// seed creates a warehouse, two product types, a service at overheadRate
// and an artisan paid laborRate per unit
func (e *engine) seed(t *testing.T, overheadRate, laborRate string) setup {
	t.Helper()
	ctx := context.Background()

	wh, err := e.catalog.CreateWarehouse(ctx, appcatalog.CreateWarehouseRequest{Name: gofakeit.City() + " Mill"})
	require.NoError(t, err)
	fleece, err := e.catalog.CreateProductType(ctx, appcatalog.CreateProductTypeRequest{Name: "Fleece " + gofakeit.Word(), Unit: "kg"})
	require.NoError(t, err)
	yarn, err := e.catalog.CreateProductType(ctx, appcatalog.CreateProductTypeRequest{Name: "Yarn " + gofakeit.Word(), Unit: "kg"})
	require.NoError(t, err)
	svc, err := e.catalog.CreateServiceType(ctx, appcatalog.CreateServiceTypeRequest{
		Name:         "Spinning " + gofakeit.Word(),
		OverheadRate: decimal.RequireFromString(overheadRate),
	})
	require.NoError(t, err)
	artisan, err := e.catalog.CreateArtisan(ctx, appcatalog.CreateArtisanRequest{
		Name:  gofakeit.Name(),
		Rates: []appcatalog.ArtisanRateRequest{{ServiceTypeID: svc.ID, RatePerUnit: decimal.RequireFromString(laborRate)}},
	})
	require.NoError(t, err)

	return setup{warehouse: wh.ID, fleece: fleece.ID, yarn: yarn.ID, service: svc.ID, artisan: artisan.ID}
}

func (e *engine) receive(t *testing.T, warehouse, productType uuid.UUID, qty, cost string) uuid.UUID {
	t.Helper()
	line, err := e.inventory.ReceiveStock(context.Background(), appinv.ReceiveStockRequest{
		StockLineKeyInput: appinv.StockLineKeyInput{WarehouseID: warehouse, ProductTypeID: productType},
		Quantity:          decimal.RequireFromString(qty),
		UnitCost:          decimal.RequireFromString(cost),
	})
	require.NoError(t, err)
	return line.ID
}

func (e *engine) quantity(t *testing.T, stockLineID uuid.UUID) decimal.Decimal {
	t.Helper()
	line, err := e.inventory.GetStockLine(context.Background(), stockLineID)
	require.NoError(t, err)
	return line.Quantity
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}
