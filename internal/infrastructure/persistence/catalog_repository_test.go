package persistence

import (
	"context"
	"testing"

	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepositories(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	fx := seedCatalog(t, db)

	t.Run("reads back every reference row", func(t *testing.T) {
		w, err := NewGormWarehouseRepository(db).FindByID(ctx, fx.warehouse.ID)
		require.NoError(t, err)
		assert.Equal(t, fx.warehouse.Name, w.Name)

		p, err := NewGormProductTypeRepository(db).FindByID(ctx, fx.productType.ID)
		require.NoError(t, err)
		assert.Equal(t, "kg", p.Unit)

		c, err := NewGormColorCodeRepository(db).FindByID(ctx, fx.colorCode.ID)
		require.NoError(t, err)
		assert.Equal(t, "#1A2B3C", c.Hex)

		s, err := NewGormServiceTypeRepository(db).FindByID(ctx, fx.serviceType.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.1").Equal(s.OverheadRate))
	})

	t.Run("loads artisan rates", func(t *testing.T) {
		a, err := NewGormArtisanRepository(db).FindByID(ctx, fx.artisan.ID)
		require.NoError(t, err)
		rate, ok := a.RateFor(fx.serviceType.ID)
		require.True(t, ok)
		assert.True(t, decimal.NewFromInt(2).Equal(rate))
	})

	t.Run("duplicate codes are rejected", func(t *testing.T) {
		w, err := catalog.NewWarehouse(fx.warehouse.Code, "Second", "")
		require.NoError(t, err)
		err = NewGormWarehouseRepository(db).Create(ctx, w)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		a, err := catalog.NewArtisan(fx.artisan.Code, "Someone", "", nil)
		require.NoError(t, err)
		err = NewGormArtisanRepository(db).Create(ctx, a)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("missing rows are NOT_FOUND", func(t *testing.T) {
		_, err := NewGormServiceTypeRepository(db).FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = NewGormArtisanRepository(db).FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
