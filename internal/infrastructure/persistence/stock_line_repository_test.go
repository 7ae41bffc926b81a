package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStockLineRepository_GetOrCreateForUpdate(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	fx := seedCatalog(t, db)
	repo := NewGormStockLineRepository(db)

	color, err := inventory.CatalogColor(fx.colorCode.ID)
	require.NoError(t, err)
	key := fx.key(color)

	first, created, err := repo.GetOrCreateForUpdate(ctx, key, decimal.NewFromInt(12))
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, first.Quantity.IsZero())
	assert.Equal(t, "12", first.UnitPrice.String())

	second, created, err := repo.GetOrCreateForUpdate(ctx, key, decimal.NewFromInt(99))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "12", second.UnitPrice.String())

	t.Run("different color is a different line", func(t *testing.T) {
		other, created, err := repo.GetOrCreateForUpdate(ctx, fx.key(inventory.NoColor()), decimal.Zero)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, first.ID, other.ID)
	})

	t.Run("free-form descriptions differ by text", func(t *testing.T) {
		red, err := inventory.FreeformColor("brick red")
		require.NoError(t, err)
		blue, err := inventory.FreeformColor("sky blue")
		require.NoError(t, err)

		a, _, err := repo.GetOrCreateForUpdate(ctx, fx.key(red), decimal.Zero)
		require.NoError(t, err)
		b, _, err := repo.GetOrCreateForUpdate(ctx, fx.key(blue), decimal.Zero)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)

		found, err := repo.FindByKey(ctx, fx.key(red))
		require.NoError(t, err)
		assert.Equal(t, a.ID, found.ID)
		desc, ok := found.Color.Description()
		assert.True(t, ok)
		assert.Equal(t, "brick red", desc)
	})
}

func TestGormStockLineRepository_SaveWithLock(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	fx := seedCatalog(t, db)
	repo := NewGormStockLineRepository(db)

	line := seedStockLine(t, db, fx.key(inventory.NoColor()), "100", "5")
	assert.Equal(t, 2, line.Version)

	stale, err := repo.FindByID(ctx, line.ID)
	require.NoError(t, err)

	_, err = line.Debit(decimal.NewFromInt(30), inventory.MovementSource{Type: inventory.SourceTypeProductionInput})
	require.NoError(t, err)
	require.NoError(t, repo.SaveWithLock(ctx, line))
	assert.Equal(t, 3, line.Version)

	reloaded, err := repo.FindByID(ctx, line.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(70).Equal(reloaded.Quantity))
	assert.True(t, decimal.NewFromInt(5).Equal(reloaded.UnitCost))

	_, err = stale.Debit(decimal.NewFromInt(10), inventory.MovementSource{Type: inventory.SourceTypeProductionInput})
	require.NoError(t, err)
	err = repo.SaveWithLock(ctx, stale)
	assert.ErrorIs(t, err, shared.ErrOptimisticLock)
}

func TestGormStockLineRepository_FindByIDsForUpdate(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	fx := seedCatalog(t, db)
	repo := NewGormStockLineRepository(db)

	plain := seedStockLine(t, db, fx.key(inventory.NoColor()), "10", "1")
	red, err := inventory.FreeformColor("red")
	require.NoError(t, err)
	colored := seedStockLine(t, db, fx.key(red), "20", "2")

	lines, err := repo.FindByIDsForUpdate(ctx, []uuid.UUID{colored.ID, plain.ID, colored.ID})
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.True(t, decimal.NewFromInt(20).Equal(lines[colored.ID].Quantity))

	_, err = repo.FindByIDsForUpdate(ctx, []uuid.UUID{plain.ID, uuid.New()})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	empty, err := repo.FindByIDsForUpdate(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGormStockLineRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	fx := seedCatalog(t, db)
	repo := NewGormStockLineRepository(db)

	seedStockLine(t, db, fx.key(inventory.NoColor()), "10", "1")
	for _, desc := range []string{"red", "green", "blue"} {
		c, err := inventory.FreeformColor(desc)
		require.NoError(t, err)
		seedStockLine(t, db, fx.key(c), "0", "0")
	}

	filter := inventory.StockLineFilter{Filter: shared.DefaultFilter(), WarehouseID: &fx.warehouse.ID}
	lines, total, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, lines, 4)

	filter.InStockOnly = true
	lines, total, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, lines, 1)
	assert.Equal(t, inventory.ColorKindNone, lines[0].Color.Kind())

	paged := inventory.StockLineFilter{Filter: shared.Filter{Page: 2, PageSize: 3, OrderBy: "quantity", OrderDir: "desc"}}
	lines, total, err = repo.FindAll(ctx, paged)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, lines, 1)

	other := uuid.New()
	lines, total, err = repo.FindAll(ctx, inventory.StockLineFilter{Filter: shared.DefaultFilter(), ProductTypeID: &other})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, lines)
}

func TestGormStockLineRepository_FindByKey_NotFound(t *testing.T) {
	db := newSQLiteDB(t)
	fx := seedCatalog(t, db)

	_, err := NewGormStockLineRepository(db).FindByKey(context.Background(), fx.key(inventory.NoColor()))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormStockLineRepository_SQL(t *testing.T) {
	t.Run("FindByIDForUpdate takes a row lock", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormStockLineRepository(gormDB)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "stock_lines" WHERE id = \$1 ORDER BY "stock_lines"."id" LIMIT \$2 FOR UPDATE`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "version", "quantity", "unit_cost", "unit_price", "color_kind", "color_key"}).
				AddRow(id.String(), 4, "12.5", "3", "0", "none", "none"))

		line, err := repo.FindByIDForUpdate(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 4, line.Version)
		assert.Equal(t, "12.5", line.Quantity.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SaveWithLock guards on version", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormStockLineRepository(gormDB)

		line := &inventory.StockLine{Quantity: decimal.NewFromInt(1)}
		line.ID = uuid.New()
		line.Version = 7

		mock.ExpectExec(`UPDATE "stock_lines" SET .*"version"=\$\d.* WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SaveWithLock(context.Background(), line)
		assert.ErrorIs(t, err, shared.ErrOptimisticLock)
		assert.Equal(t, 7, line.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
