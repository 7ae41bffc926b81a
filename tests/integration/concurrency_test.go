package integration

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	appcatalog "github.com/erp/production/internal/application/catalog"
	appprod "github.com/erp/production/internal/application/production"
	"github.com/erp/production/internal/domain/sequence"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentOrders_Integration races orders for one stock line; the
// row lock lets exactly as many through as the stock covers
func TestConcurrentOrders_Integration(t *testing.T) {
	db := NewTestDB(t)
	e := newEngine(t, db)
	s := e.seed(t, "0", "1")
	ctx := context.Background()

	fleece := e.receive(t, s.warehouse, s.fleece, "100", "4")

	const workers = 5
	var created, rejected atomic.Int32
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			_, err := e.production.CreateOrder(ctx, appprod.CreateOrderRequest{
				ServiceTypeID: s.service,
				ArtisanID:     s.artisan,
				Materials:     []appprod.MaterialRequest{{StockLineID: fleece, QuantityUsed: dec("30")}},
			})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, shared.ErrInsufficientStock):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 3, created.Load())
	assert.EqualValues(t, workers-3, rejected.Load())
	requireDec(t, "10", e.quantity(t, fleece))
}

// TestCrossedLockOrder_Integration mixes batch completions whose targets
// arrive in opposite orders with orders debiting the same two lines. Every
// path takes its stock line locks in ID order, so all of them commit.
func TestCrossedLockOrder_Integration(t *testing.T) {
	db := NewTestDB(t)
	e := newEngine(t, db)
	s := e.seed(t, "0", "1")
	ctx := context.Background()

	fleece := e.receive(t, s.warehouse, s.fleece, "1000", "4")
	yarn := e.receive(t, s.warehouse, s.yarn, "1000", "5")

	const workers = 6
	orders := make([]*appprod.OrderResponse, workers)
	for i := range orders {
		order, err := e.production.CreateOrder(ctx, appprod.CreateOrderRequest{
			ServiceTypeID: s.service,
			ArtisanID:     s.artisan,
			Materials: []appprod.MaterialRequest{
				{StockLineID: fleece, QuantityUsed: dec("10")},
				{StockLineID: fleece, QuantityUsed: dec("10")},
			},
		})
		require.NoError(t, err)
		orders[i] = order
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, order := range orders {
		targets := []uuid.UUID{yarn, fleece}
		if i%2 == 1 {
			targets = []uuid.UUID{fleece, yarn}
		}
		g.Go(func() error {
			_, err := e.production.CompleteOrderLines(gctx, order.ID, []appprod.CompleteLineRequest{
				{ConsumptionID: order.Lines[0].ID, ActualOutputQuantity: dec("5"), Target: appprod.TargetRequest{StockLineID: &targets[0]}},
				{ConsumptionID: order.Lines[1].ID, ActualOutputQuantity: dec("5"), Target: appprod.TargetRequest{StockLineID: &targets[1]}},
			})
			return err
		})
		g.Go(func() error {
			_, err := e.production.CreateOrder(gctx, appprod.CreateOrderRequest{
				ServiceTypeID: s.service,
				ArtisanID:     s.artisan,
				Materials: []appprod.MaterialRequest{
					{StockLineID: yarn, QuantityUsed: dec("1")},
					{StockLineID: fleece, QuantityUsed: dec("1")},
				},
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	// 1000 - 120 prepared + 6x5 produced - 6 debited
	requireDec(t, "904", e.quantity(t, fleece))
	// 1000 + 6x5 produced - 6 debited
	requireDec(t, "1024", e.quantity(t, yarn))
}

// TestConcurrentCodeAllocation_Integration allocates codes in parallel and
// expects a gapless, duplicate-free run
func TestConcurrentCodeAllocation_Integration(t *testing.T) {
	db := NewTestDB(t)
	alloc := persistence.NewGormCodeAllocator(db.DB)
	ctx := context.Background()

	const n = 20
	codes := make([]int64, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			code, err := alloc.NextCode(gctx, sequence.CategoryServiceType)
			codes[i] = code
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, lo.Uniq(codes), n)
	assert.Equal(t, int64(600001), lo.Min(codes))
	assert.Equal(t, int64(600000+n), lo.Max(codes))
}

// TestConcurrentCatalogCreation_Integration checks human codes stay unique
// when entities are created from several goroutines
func TestConcurrentCatalogCreation_Integration(t *testing.T) {
	db := NewTestDB(t)
	e := newEngine(t, db)
	ctx := context.Background()

	const n = 8
	codes := make([]string, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			wh, err := e.catalog.CreateWarehouse(gctx, appcatalog.CreateWarehouseRequest{Name: fmt.Sprintf("Depot %d", i)})
			if err != nil {
				return err
			}
			codes[i] = wh.Code
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, lo.Uniq(codes), n)
}
