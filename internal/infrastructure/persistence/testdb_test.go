package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newSQLiteDB opens a private in-memory database with the full schema
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), GormConfig(nil))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

type catalogFixture struct {
	warehouse   *catalog.Warehouse
	productType *catalog.ProductType
	colorCode   *catalog.ColorCode
	serviceType *catalog.ServiceType
	artisan     *catalog.Artisan
}

// seedCatalog inserts one row of every reference table
func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()
	ctx := context.Background()

	w, err := catalog.NewWarehouse("WH-400001", gofakeit.City(), gofakeit.Street())
	require.NoError(t, err)
	require.NoError(t, NewGormWarehouseRepository(db).Create(ctx, w))

	p, err := catalog.NewProductType("PT-500001", "Raw wool", "kg", "")
	require.NoError(t, err)
	require.NoError(t, NewGormProductTypeRepository(db).Create(ctx, p))

	c, err := catalog.NewColorCode("C-300001", gofakeit.Color(), "#1A2B3C")
	require.NoError(t, err)
	require.NoError(t, NewGormColorCodeRepository(db).Create(ctx, c))

	s, err := catalog.NewServiceType("SRV-600001", "Spinning", decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	require.NoError(t, NewGormServiceTypeRepository(db).Create(ctx, s))

	a, err := catalog.NewArtisan("ART-700001", gofakeit.Name(), gofakeit.Phone(), []catalog.ArtisanRate{
		{ServiceTypeID: s.ID, RatePerUnit: decimal.NewFromInt(2)},
	})
	require.NoError(t, err)
	require.NoError(t, NewGormArtisanRepository(db).Create(ctx, a))

	return catalogFixture{warehouse: w, productType: p, colorCode: c, serviceType: s, artisan: a}
}

func (f catalogFixture) key(color inventory.ColorIdentity) inventory.StockLineKey {
	return inventory.StockLineKey{
		WarehouseID:   f.warehouse.ID,
		ProductTypeID: f.productType.ID,
		Color:         color,
	}
}

// seedStockLine creates a line for key holding quantity at unitCost
func seedStockLine(t *testing.T, db *gorm.DB, key inventory.StockLineKey, quantity, unitCost string) *inventory.StockLine {
	t.Helper()
	ctx := context.Background()
	repo := NewGormStockLineRepository(db)

	line, _, err := repo.GetOrCreateForUpdate(ctx, key, decimal.Zero)
	require.NoError(t, err)
	if q := decimal.RequireFromString(quantity); q.IsPositive() {
		_, err = line.Credit(q, decimal.RequireFromString(unitCost), inventory.MovementSource{Type: inventory.SourceTypeReceipt, ID: uuid.New()})
		require.NoError(t, err)
		require.NoError(t, repo.SaveWithLock(ctx, line))
	}
	return line
}
