package catalog_test

import (
	"context"
	"testing"

	appcatalog "github.com/erp/production/internal/application/catalog"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/persistence"
	"github.com/erp/production/internal/infrastructure/persistence/sqlitetest"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) *appcatalog.CatalogService {
	t.Helper()
	db := sqlitetest.Open(t)
	return appcatalog.NewCatalogService(appcatalog.Repositories{
		Warehouses:   persistence.NewGormWarehouseRepository(db),
		ProductTypes: persistence.NewGormProductTypeRepository(db),
		ColorCodes:   persistence.NewGormColorCodeRepository(db),
		ServiceTypes: persistence.NewGormServiceTypeRepository(db),
		Artisans:     persistence.NewGormArtisanRepository(db),
	}, persistence.NewGormTransactionScope(db).CatalogScope(), nil)
}

func TestCatalogService_Codes(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	first, err := svc.CreateWarehouse(ctx, appcatalog.CreateWarehouseRequest{Name: gofakeit.City(), Location: gofakeit.Street()})
	require.NoError(t, err)
	second, err := svc.CreateWarehouse(ctx, appcatalog.CreateWarehouseRequest{Name: gofakeit.City()})
	require.NoError(t, err)
	assert.Equal(t, "WH-400001", first.Code)
	assert.Equal(t, "WH-400002", second.Code)

	product, err := svc.CreateProductType(ctx, appcatalog.CreateProductTypeRequest{Name: "Cotton", Unit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, "PT-500001", product.Code)

	color, err := svc.CreateColorCode(ctx, appcatalog.CreateColorCodeRequest{Name: "Madder red", Hex: "#a0302b"})
	require.NoError(t, err)
	assert.Equal(t, "C-300001", color.Code)
	assert.Equal(t, "#A0302B", color.Hex)

	t.Run("rejected rows do not consume codes", func(t *testing.T) {
		_, err := svc.CreateWarehouse(ctx, appcatalog.CreateWarehouseRequest{Name: "   "})
		assert.ErrorIs(t, err, shared.ErrValidation)

		next, err := svc.CreateWarehouse(ctx, appcatalog.CreateWarehouseRequest{Name: "Annex"})
		require.NoError(t, err)
		assert.Equal(t, "WH-400003", next.Code)
	})
}

func TestCatalogService_ServiceTypes(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	tests := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"no overhead", "0", false},
		{"typical", "0.15", false},
		{"rounded to four places", "0.123456", false},
		{"negative", "-0.01", true},
		{"one is the whole labor cost", "1", true},
		{"above one", "1.5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := svc.CreateServiceType(ctx, appcatalog.CreateServiceTypeRequest{
				Name:         gofakeit.Word(),
				OverheadRate: decimal.RequireFromString(tt.rate),
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, shared.ErrValidation)
				return
			}
			require.NoError(t, err)
			got, err := svc.GetServiceType(ctx, st.ID)
			require.NoError(t, err)
			assert.True(t, got.OverheadRate.Equal(decimal.RequireFromString(tt.rate).Round(4)),
				"overhead rate %s", got.OverheadRate)
		})
	}
}

func TestCatalogService_Artisans(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)
	dyeing, err := svc.CreateServiceType(ctx, appcatalog.CreateServiceTypeRequest{Name: "Dyeing", OverheadRate: decimal.RequireFromString("0.2")})
	require.NoError(t, err)
	weaving, err := svc.CreateServiceType(ctx, appcatalog.CreateServiceTypeRequest{Name: "Weaving"})
	require.NoError(t, err)

	artisan, err := svc.CreateArtisan(ctx, appcatalog.CreateArtisanRequest{
		Name:  gofakeit.Name(),
		Phone: "+212 600 000 000",
		Rates: []appcatalog.ArtisanRateRequest{
			{ServiceTypeID: dyeing.ID, RatePerUnit: decimal.RequireFromString("1.25")},
			{ServiceTypeID: weaving.ID, RatePerUnit: decimal.RequireFromString("4")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ART-700001", artisan.Code)

	got, err := svc.GetArtisan(ctx, artisan.ID)
	require.NoError(t, err)
	require.Len(t, got.Rates, 2)
	rates := map[uuid.UUID]decimal.Decimal{}
	for _, r := range got.Rates {
		rates[r.ServiceTypeID] = r.RatePerUnit
	}
	assert.True(t, rates[dyeing.ID].Equal(decimal.RequireFromString("1.25")))
	assert.True(t, rates[weaving.ID].Equal(decimal.NewFromInt(4)))

	t.Run("rate for an unknown service type", func(t *testing.T) {
		_, err := svc.CreateArtisan(ctx, appcatalog.CreateArtisanRequest{
			Name:  gofakeit.Name(),
			Rates: []appcatalog.ArtisanRateRequest{{ServiceTypeID: uuid.New(), RatePerUnit: decimal.NewFromInt(1)}},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("duplicate service type in rates", func(t *testing.T) {
		_, err := svc.CreateArtisan(ctx, appcatalog.CreateArtisanRequest{
			Name: gofakeit.Name(),
			Rates: []appcatalog.ArtisanRateRequest{
				{ServiceTypeID: dyeing.ID, RatePerUnit: decimal.NewFromInt(1)},
				{ServiceTypeID: dyeing.ID, RatePerUnit: decimal.NewFromInt(2)},
			},
		})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("unknown artisan", func(t *testing.T) {
		_, err := svc.GetArtisan(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
