package production

import (
	"context"
	"errors"
	"testing"
	"time"

	appinv "github.com/erp/production/internal/application/inventory"
	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/domain/sequence"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStockLineRepository is a mock implementation of StockLineRepository
type MockStockLineRepository struct {
	mock.Mock
}

func (m *MockStockLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLine), args.Error(1)
}

func (m *MockStockLineRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.StockLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLine), args.Error(1)
}

func (m *MockStockLineRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*inventory.StockLine, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*inventory.StockLine), args.Error(1)
}

func (m *MockStockLineRepository) FindByKey(ctx context.Context, key inventory.StockLineKey) (*inventory.StockLine, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLine), args.Error(1)
}

func (m *MockStockLineRepository) GetOrCreateForUpdate(ctx context.Context, key inventory.StockLineKey, unitPrice decimal.Decimal) (*inventory.StockLine, bool, error) {
	args := m.Called(ctx, key, unitPrice)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*inventory.StockLine), args.Bool(1), args.Error(2)
}

func (m *MockStockLineRepository) FindAll(ctx context.Context, filter inventory.StockLineFilter) ([]inventory.StockLine, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.StockLine), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockLineRepository) SaveWithLock(ctx context.Context, line *inventory.StockLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

// MockStockMovementRepository is a mock implementation of StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Create(ctx context.Context, movements ...*inventory.StockMovement) error {
	args := m.Called(ctx, movements)
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByStockLine(ctx context.Context, stockLineID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	args := m.Called(ctx, stockLineID, filter)
	return args.Get(0).([]inventory.StockMovement), args.Get(1).(int64), args.Error(2)
}

// MockProductionOrderRepository is a mock implementation of ProductionOrderRepository
type MockProductionOrderRepository struct {
	mock.Mock
}

func (m *MockProductionOrderRepository) Create(ctx context.Context, order *production.ProductionOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockProductionOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ProductionOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ProductionOrder), args.Error(1)
}

func (m *MockProductionOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*production.ProductionOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ProductionOrder), args.Error(1)
}

func (m *MockProductionOrderRepository) SaveWithLock(ctx context.Context, order *production.ProductionOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockProductionOrderRepository) FindPendingLines(ctx context.Context, orderID uuid.UUID) ([]production.MaterialConsumption, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.MaterialConsumption), args.Error(1)
}

func (m *MockProductionOrderRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockServiceTypeRepository is a mock implementation of ServiceTypeRepository
type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) Create(ctx context.Context, serviceType *catalog.ServiceType) error {
	return m.Called(ctx, serviceType).Error(0)
}

func (m *MockServiceTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ServiceType), args.Error(1)
}

// MockArtisanRepository is a mock implementation of ArtisanRepository
type MockArtisanRepository struct {
	mock.Mock
}

func (m *MockArtisanRepository) Create(ctx context.Context, artisan *catalog.Artisan) error {
	return m.Called(ctx, artisan).Error(0)
}

func (m *MockArtisanRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Artisan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Artisan), args.Error(1)
}

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *catalog.Warehouse) error {
	return m.Called(ctx, warehouse).Error(0)
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Warehouse), args.Error(1)
}

// MockProductTypeRepository is a mock implementation of ProductTypeRepository
type MockProductTypeRepository struct {
	mock.Mock
}

func (m *MockProductTypeRepository) Create(ctx context.Context, productType *catalog.ProductType) error {
	return m.Called(ctx, productType).Error(0)
}

func (m *MockProductTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductType), args.Error(1)
}

// MockCodeAllocator is a mock implementation of CodeAllocator
type MockCodeAllocator struct {
	mock.Mock
}

func (m *MockCodeAllocator) NextCode(ctx context.Context, category sequence.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type serviceFixture struct {
	svc        *ProductionService
	stockLines *MockStockLineRepository
	movements  *MockStockMovementRepository
	orders     *MockProductionOrderRepository
	services   *MockServiceTypeRepository
	artisans   *MockArtisanRepository
	warehouses *MockWarehouseRepository
	products   *MockProductTypeRepository
	allocator  *MockCodeAllocator
	publisher  *MockEventPublisher

	serviceType *catalog.ServiceType
	artisan     *catalog.Artisan
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		stockLines: new(MockStockLineRepository),
		movements:  new(MockStockMovementRepository),
		orders:     new(MockProductionOrderRepository),
		services:   new(MockServiceTypeRepository),
		artisans:   new(MockArtisanRepository),
		warehouses: new(MockWarehouseRepository),
		products:   new(MockProductTypeRepository),
		allocator:  new(MockCodeAllocator),
		publisher:  new(MockEventPublisher),
	}
	scope := NewNoOpTransactionScope(Repositories{
		StockLineRepo:   f.stockLines,
		MovementRepo:    f.movements,
		OrderRepo:       f.orders,
		ServiceTypeRepo: f.services,
		ArtisanRepo:     f.artisans,
		WarehouseRepo:   f.warehouses,
		ProductTypeRepo: f.products,
		Allocator:       f.allocator,
	})
	f.svc = NewProductionService(f.orders, scope, nil)
	f.svc.SetEventPublisher(f.publisher)
	f.svc.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) }

	var err error
	f.serviceType, err = catalog.NewServiceType("SRV-600001", "Dyeing", decimal.RequireFromString("0.25"))
	require.NoError(t, err)
	f.artisan, err = catalog.NewArtisan("ART-700001", "Rosa", "", []catalog.ArtisanRate{
		{ServiceTypeID: f.serviceType.ID, RatePerUnit: decimal.RequireFromString("3")},
	})
	require.NoError(t, err)
	return f
}

func (f *serviceFixture) expectReferences() {
	f.services.On("FindByID", mock.Anything, f.serviceType.ID).Return(f.serviceType, nil)
	f.artisans.On("FindByID", mock.Anything, f.artisan.ID).Return(f.artisan, nil)
}

func newStockLine(t *testing.T, qty, cost string) *inventory.StockLine {
	t.Helper()
	line, err := inventory.NewStockLine(inventory.StockLineKey{
		WarehouseID:   uuid.New(),
		ProductTypeID: uuid.New(),
		Color:         inventory.NoColor(),
	}, decimal.Zero)
	require.NoError(t, err)
	if q := decimal.RequireFromString(qty); q.IsPositive() {
		_, err = line.Credit(q, decimal.RequireFromString(cost), inventory.MovementSource{Type: inventory.SourceTypeReceipt})
		require.NoError(t, err)
	}
	return line
}

func eventTypes(events []shared.DomainEvent) []string {
	return lo.Map(events, func(e shared.DomainEvent, _ int) string { return e.EventType() })
}

func TestProductionService_CreateOrder_ValidationBeforeAnyLookup(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	valid := []MaterialRequest{{StockLineID: uuid.New(), QuantityUsed: decimal.NewFromInt(1)}}

	tests := []struct {
		name string
		req  CreateOrderRequest
	}{
		{"missing service type", CreateOrderRequest{ArtisanID: uuid.New(), Materials: valid}},
		{"missing artisan", CreateOrderRequest{ServiceTypeID: uuid.New(), Materials: valid}},
		{"negative override", CreateOrderRequest{ServiceTypeID: uuid.New(), ArtisanID: uuid.New(), LaborRateOverride: &negative, Materials: valid}},
		{"no materials", CreateOrderRequest{ServiceTypeID: uuid.New(), ArtisanID: uuid.New()}},
		{"negative quantity", CreateOrderRequest{ServiceTypeID: uuid.New(), ArtisanID: uuid.New(),
			Materials: []MaterialRequest{{StockLineID: uuid.New(), QuantityUsed: negative}}}},
		{"missing stock line", CreateOrderRequest{ServiceTypeID: uuid.New(), ArtisanID: uuid.New(),
			Materials: []MaterialRequest{{QuantityUsed: decimal.NewFromInt(1)}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			_, err := f.svc.CreateOrder(context.Background(), tt.req)
			assert.ErrorIs(t, err, shared.ErrValidation)
			f.services.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			f.stockLines.AssertNotCalled(t, "FindByIDsForUpdate", mock.Anything, mock.Anything)
		})
	}
}

func TestProductionService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("debits materials at the current cost and publishes after persisting", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectReferences()
		line := newStockLine(t, "40", "2.5")
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, []uuid.UUID{line.ID}).
			Return(map[uuid.UUID]*inventory.StockLine{line.ID: line}, nil)
		f.allocator.On("NextCode", mock.Anything, sequence.CategoryProductionOrder).Return(int64(800007), nil)
		f.stockLines.On("SaveWithLock", mock.Anything, line).Return(nil)
		f.orders.On("Create", mock.Anything, mock.AnythingOfType("*production.ProductionOrder")).Return(nil)
		f.movements.On("Create", mock.Anything, mock.MatchedBy(func(ms []*inventory.StockMovement) bool {
			return len(ms) == 2 && ms[0].Direction == inventory.MovementDirectionOut && ms[0].Reference == "PRD-800007"
		})).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return assert.ObjectsAreEqual([]string{production.EventTypeProductionOrderCreated}, eventTypes(events))
		})).Return(nil)

		resp, err := f.svc.CreateOrder(ctx, CreateOrderRequest{
			ServiceTypeID: f.serviceType.ID,
			ArtisanID:     f.artisan.ID,
			Materials: []MaterialRequest{
				{StockLineID: line.ID, QuantityUsed: decimal.NewFromInt(10)},
				{StockLineID: line.ID, QuantityUsed: decimal.NewFromInt(6)},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "PRD-800007", resp.OrderNumber)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), resp.OrderDate)
		assert.True(t, resp.LaborCostPerUnit.Equal(decimal.NewFromInt(3)))
		assert.True(t, resp.OverheadRate.Equal(decimal.RequireFromString("0.25")))
		assert.True(t, resp.TotalMaterialCost.Equal(decimal.NewFromInt(40)))
		assert.True(t, resp.Lines[0].UnitCostAtDebit.Equal(decimal.RequireFromString("2.5")))
		assert.True(t, line.Quantity.Equal(decimal.NewFromInt(24)))
		f.publisher.AssertExpectations(t)
		f.movements.AssertExpectations(t)
	})

	t.Run("override rate beats the artisan rate", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectReferences()
		line := newStockLine(t, "5", "1")
		override := decimal.RequireFromString("4.75")
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*inventory.StockLine{line.ID: line}, nil)
		f.allocator.On("NextCode", mock.Anything, mock.Anything).Return(int64(800001), nil)
		f.stockLines.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)
		f.orders.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.movements.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.svc.CreateOrder(ctx, CreateOrderRequest{
			ServiceTypeID:     f.serviceType.ID,
			ArtisanID:         f.artisan.ID,
			LaborRateOverride: &override,
			Materials:         []MaterialRequest{{StockLineID: line.ID, QuantityUsed: decimal.NewFromInt(5)}},
		})
		require.NoError(t, err)
		assert.True(t, resp.LaborCostPerUnit.Equal(override))
		assert.True(t, line.Quantity.IsZero())
	})

	t.Run("artisan without a qualified rate", func(t *testing.T) {
		f := newServiceFixture(t)
		other, err := catalog.NewServiceType("SRV-600002", "Weaving", decimal.Zero)
		require.NoError(t, err)
		f.services.On("FindByID", mock.Anything, other.ID).Return(other, nil)
		f.artisans.On("FindByID", mock.Anything, f.artisan.ID).Return(f.artisan, nil)

		_, err = f.svc.CreateOrder(ctx, CreateOrderRequest{
			ServiceTypeID: other.ID,
			ArtisanID:     f.artisan.ID,
			Materials:     []MaterialRequest{{StockLineID: uuid.New(), QuantityUsed: decimal.NewFromInt(1)}},
		})
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Contains(t, err.Error(), "ART-700001")
		f.stockLines.AssertNotCalled(t, "FindByIDsForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("shortfall stops before numbering or persisting", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectReferences()
		line := newStockLine(t, "3", "1")
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*inventory.StockLine{line.ID: line}, nil)

		_, err := f.svc.CreateOrder(ctx, CreateOrderRequest{
			ServiceTypeID: f.serviceType.ID,
			ArtisanID:     f.artisan.ID,
			Materials:     []MaterialRequest{{StockLineID: line.ID, QuantityUsed: decimal.NewFromInt(4)}},
		})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		f.allocator.AssertNotCalled(t, "NextCode", mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail a committed order", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectReferences()
		line := newStockLine(t, "5", "1")
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*inventory.StockLine{line.ID: line}, nil)
		f.allocator.On("NextCode", mock.Anything, mock.Anything).Return(int64(800002), nil)
		f.stockLines.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)
		f.orders.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.movements.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

		resp, err := f.svc.CreateOrder(ctx, CreateOrderRequest{
			ServiceTypeID: f.serviceType.ID,
			ArtisanID:     f.artisan.ID,
			Materials:     []MaterialRequest{{StockLineID: line.ID, QuantityUsed: decimal.NewFromInt(2)}},
		})
		require.NoError(t, err)
		assert.Equal(t, "PRD-800002", resp.OrderNumber)
	})

	t.Run("persistence failure publishes nothing", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectReferences()
		line := newStockLine(t, "5", "1")
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*inventory.StockLine{line.ID: line}, nil)
		f.allocator.On("NextCode", mock.Anything, mock.Anything).Return(int64(800003), nil)
		f.stockLines.On("SaveWithLock", mock.Anything, mock.Anything).Return(shared.ErrOptimisticLock)

		_, err := f.svc.CreateOrder(ctx, CreateOrderRequest{
			ServiceTypeID: f.serviceType.ID,
			ArtisanID:     f.artisan.ID,
			Materials:     []MaterialRequest{{StockLineID: line.ID, QuantityUsed: decimal.NewFromInt(2)}},
		})
		assert.ErrorIs(t, err, shared.ErrOptimisticLock)
		f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func newOrder(t *testing.T, f *serviceFixture, material *inventory.StockLine, qtys ...string) *production.ProductionOrder {
	t.Helper()
	materials := lo.Map(qtys, func(qty string, _ int) production.MaterialInput {
		return production.MaterialInput{
			StockLineID:     material.ID,
			QuantityUsed:    decimal.RequireFromString(qty),
			UnitCostAtDebit: material.UnitCost,
		}
	})
	order, err := production.NewProductionOrder(production.NewOrderParams{
		OrderNumber:      "PRD-800001",
		OrderDate:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ServiceTypeID:    f.serviceType.ID,
		ArtisanID:        f.artisan.ID,
		LaborCostPerUnit: decimal.NewFromInt(3),
		OverheadRate:     decimal.RequireFromString("0.25"),
		Materials:        materials,
	})
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestProductionService_CompleteOrderLines(t *testing.T) {
	ctx := context.Background()

	t.Run("single line completes the order", func(t *testing.T) {
		f := newServiceFixture(t)
		material := newStockLine(t, "0", "0")
		material.UnitCost = decimal.NewFromInt(2)
		order := newOrder(t, f, material, "10")
		target := newStockLine(t, "0", "0")

		f.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, []uuid.UUID{target.ID}).
			Return(map[uuid.UUID]*inventory.StockLine{target.ID: target}, nil)
		f.stockLines.On("SaveWithLock", mock.Anything, target).Return(nil)
		f.orders.On("SaveWithLock", mock.Anything, order).Return(nil)
		f.movements.On("Create", mock.Anything, mock.MatchedBy(func(ms []*inventory.StockMovement) bool {
			return len(ms) == 1 && ms[0].Direction == inventory.MovementDirectionIn && ms[0].SourceID == order.ID
		})).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return assert.ObjectsAreEqual([]string{
				production.EventTypeProductionLineCompleted,
				production.EventTypeProductionOrderCompleted,
			}, eventTypes(events))
		})).Return(nil)

		res, err := f.svc.CompleteOrderLines(ctx, order.ID, []CompleteLineRequest{{
			ConsumptionID:        order.Lines[0].ID,
			ActualOutputQuantity: decimal.NewFromInt(8),
			Target:               TargetRequest{StockLineID: &target.ID},
		}})
		require.NoError(t, err)
		// material 20 + labor 24 + overhead 6 over 8 units
		assert.True(t, res.Outputs[0].UnitCost.Equal(decimal.RequireFromString("6.25")))
		assert.Equal(t, "completed", res.Order.Status)
		assert.True(t, target.Quantity.Equal(decimal.NewFromInt(8)))
		f.publisher.AssertExpectations(t)
		assert.Empty(t, order.GetDomainEvents())
	})

	t.Run("zero output writes no movement", func(t *testing.T) {
		f := newServiceFixture(t)
		material := newStockLine(t, "0", "0")
		order := newOrder(t, f, material, "10")
		target := newStockLine(t, "0", "0")

		f.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, []uuid.UUID{target.ID}).
			Return(map[uuid.UUID]*inventory.StockLine{target.ID: target}, nil)
		f.orders.On("SaveWithLock", mock.Anything, order).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		out, err := f.svc.CompleteOrderLine(ctx, order.ID, CompleteLineRequest{
			ConsumptionID:        order.Lines[0].ID,
			ActualOutputQuantity: decimal.Zero,
			Target:               TargetRequest{StockLineID: &target.ID},
		})
		require.NoError(t, err)
		assert.True(t, out.UnitCost.IsZero())
		f.stockLines.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
		f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("target is created from a key", func(t *testing.T) {
		f := newServiceFixture(t)
		material := newStockLine(t, "0", "0")
		order := newOrder(t, f, material, "4")
		created := newStockLine(t, "0", "0")
		price := decimal.NewFromInt(30)

		f.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
		f.warehouses.On("FindByID", mock.Anything, created.WarehouseID).Return(&catalog.Warehouse{}, nil)
		f.products.On("FindByID", mock.Anything, created.ProductTypeID).Return(&catalog.ProductType{}, nil)
		f.stockLines.On("FindByKey", mock.Anything, mock.Anything).
			Return(nil, shared.NewNotFoundError("stock line", created.ID))
		f.stockLines.On("GetOrCreateForUpdate", mock.Anything, mock.MatchedBy(func(k inventory.StockLineKey) bool {
			return k.WarehouseID == created.WarehouseID && k.Color.Kind() == inventory.ColorKindNone
		}), price).Return(created, true, nil)
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, []uuid.UUID{created.ID}).
			Return(map[uuid.UUID]*inventory.StockLine{created.ID: created}, nil)
		f.stockLines.On("SaveWithLock", mock.Anything, created).Return(nil)
		f.orders.On("SaveWithLock", mock.Anything, order).Return(nil)
		f.movements.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		key := created.Key()
		out, err := f.svc.CompleteOrderLine(ctx, order.ID, CompleteLineRequest{
			ConsumptionID:        order.Lines[0].ID,
			ActualOutputQuantity: decimal.NewFromInt(4),
			Target: TargetRequest{
				Key:       &appinv.StockLineKeyInput{WarehouseID: key.WarehouseID, ProductTypeID: key.ProductTypeID},
				UnitPrice: &price,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, out.StockLineID)
		assert.True(t, created.Quantity.Equal(decimal.NewFromInt(4)))
	})

	t.Run("targets are locked together in one call", func(t *testing.T) {
		f := newServiceFixture(t)
		material := newStockLine(t, "0", "0")
		order := newOrder(t, f, material, "4", "4")
		first := newStockLine(t, "0", "0")
		second := newStockLine(t, "0", "0")

		f.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, []uuid.UUID{second.ID, first.ID}).
			Return(map[uuid.UUID]*inventory.StockLine{first.ID: first, second.ID: second}, nil).Once()
		f.stockLines.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)
		f.orders.On("SaveWithLock", mock.Anything, order).Return(nil)
		f.movements.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := f.svc.CompleteOrderLines(ctx, order.ID, []CompleteLineRequest{
			{ConsumptionID: order.Lines[0].ID, ActualOutputQuantity: decimal.NewFromInt(2), Target: TargetRequest{StockLineID: &second.ID}},
			{ConsumptionID: order.Lines[1].ID, ActualOutputQuantity: decimal.NewFromInt(3), Target: TargetRequest{StockLineID: &first.ID}},
		})
		require.NoError(t, err)
		f.stockLines.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
		f.stockLines.AssertNumberOfCalls(t, "SaveWithLock", 2)
		assert.True(t, second.Quantity.Equal(decimal.NewFromInt(2)))
		assert.True(t, first.Quantity.Equal(decimal.NewFromInt(3)))
	})

	t.Run("unknown warehouse in the target key", func(t *testing.T) {
		f := newServiceFixture(t)
		material := newStockLine(t, "0", "0")
		order := newOrder(t, f, material, "4")
		warehouseID := uuid.New()

		f.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
		f.warehouses.On("FindByID", mock.Anything, warehouseID).Return(nil, shared.NewNotFoundError("warehouse", warehouseID))

		_, err := f.svc.CompleteOrderLine(ctx, order.ID, CompleteLineRequest{
			ConsumptionID:        order.Lines[0].ID,
			ActualOutputQuantity: decimal.NewFromInt(4),
			Target:               TargetRequest{Key: &appinv.StockLineKeyInput{WarehouseID: warehouseID, ProductTypeID: uuid.New()}},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.stockLines.AssertNotCalled(t, "GetOrCreateForUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("persistence failure publishes nothing", func(t *testing.T) {
		f := newServiceFixture(t)
		material := newStockLine(t, "0", "0")
		order := newOrder(t, f, material, "10")
		target := newStockLine(t, "0", "0")

		f.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
		f.stockLines.On("FindByIDsForUpdate", mock.Anything, []uuid.UUID{target.ID}).
			Return(map[uuid.UUID]*inventory.StockLine{target.ID: target}, nil)
		f.stockLines.On("SaveWithLock", mock.Anything, target).Return(nil)
		f.orders.On("SaveWithLock", mock.Anything, order).Return(shared.ErrOptimisticLock)

		_, err := f.svc.CompleteOrderLine(ctx, order.ID, CompleteLineRequest{
			ConsumptionID:        order.Lines[0].ID,
			ActualOutputQuantity: decimal.NewFromInt(1),
			Target:               TargetRequest{StockLineID: &target.ID},
		})
		assert.ErrorIs(t, err, shared.ErrOptimisticLock)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("request validation", func(t *testing.T) {
		f := newServiceFixture(t)
		id := uuid.New()
		negative := decimal.NewFromInt(-1)
		tests := []struct {
			name string
			req  CompleteLineRequest
		}{
			{"missing consumption", CompleteLineRequest{Target: TargetRequest{StockLineID: &id}}},
			{"negative output", CompleteLineRequest{ConsumptionID: id, ActualOutputQuantity: negative, Target: TargetRequest{StockLineID: &id}}},
			{"negative waste", CompleteLineRequest{ConsumptionID: id, WasteQuantity: &negative, Target: TargetRequest{StockLineID: &id}}},
			{"no target", CompleteLineRequest{ConsumptionID: id}},
			{"negative price", CompleteLineRequest{ConsumptionID: id, Target: TargetRequest{StockLineID: &id, UnitPrice: &negative}}},
		}
		for _, tt := range tests {
			_, err := f.svc.CompleteOrderLine(ctx, uuid.New(), tt.req)
			assert.ErrorIs(t, err, shared.ErrValidation, tt.name)
		}
		_, err := f.svc.CompleteOrderLines(ctx, uuid.Nil, []CompleteLineRequest{{ConsumptionID: id, Target: TargetRequest{StockLineID: &id}}})
		assert.ErrorIs(t, err, shared.ErrValidation)
		f.orders.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
	})
}
