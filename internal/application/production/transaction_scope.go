package production

import (
	"context"

	appinv "github.com/erp/production/internal/application/inventory"
	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/domain/sequence"
)

// TransactionScope runs order creation and completion as one unit of work.
// If the function returns an error, every write inside it is rolled back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to every repository an order
// operation touches. All of them share the same database transaction.
type TransactionalRepositories interface {
	appinv.ReferenceLookup
	StockLines() inventory.StockLineRepository
	Movements() inventory.StockMovementRepository
	Orders() production.ProductionOrderRepository
	ServiceTypes() catalog.ServiceTypeRepository
	Artisans() catalog.ArtisanRepository
	CodeAllocator() sequence.CodeAllocator
}

// NoOpTransactionScope hands out plain repositories without a transaction.
// This is useful for testing.
type NoOpTransactionScope struct {
	Repositories
}

// Repositories is a plain bundle of the repositories an order operation uses
type Repositories struct {
	StockLineRepo   inventory.StockLineRepository
	MovementRepo    inventory.StockMovementRepository
	OrderRepo       production.ProductionOrderRepository
	ServiceTypeRepo catalog.ServiceTypeRepository
	ArtisanRepo     catalog.ArtisanRepository
	WarehouseRepo   catalog.WarehouseRepository
	ProductTypeRepo catalog.ProductTypeRepository
	ColorCodeRepo   catalog.ColorCodeRepository
	Allocator       sequence.CodeAllocator
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over repos
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{Repositories: repos}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockLines returns the stock line repository.
func (r Repositories) StockLines() inventory.StockLineRepository { return r.StockLineRepo }

// Movements returns the stock movement repository.
func (r Repositories) Movements() inventory.StockMovementRepository { return r.MovementRepo }

// Orders returns the production order repository.
func (r Repositories) Orders() production.ProductionOrderRepository { return r.OrderRepo }

// ServiceTypes returns the service type repository.
func (r Repositories) ServiceTypes() catalog.ServiceTypeRepository { return r.ServiceTypeRepo }

// Artisans returns the artisan repository.
func (r Repositories) Artisans() catalog.ArtisanRepository { return r.ArtisanRepo }

// Warehouses returns the warehouse repository.
func (r Repositories) Warehouses() catalog.WarehouseRepository { return r.WarehouseRepo }

// ProductTypes returns the product type repository.
func (r Repositories) ProductTypes() catalog.ProductTypeRepository { return r.ProductTypeRepo }

// ColorCodes returns the color code repository.
func (r Repositories) ColorCodes() catalog.ColorCodeRepository { return r.ColorCodeRepo }

// CodeAllocator returns the code allocator.
func (r Repositories) CodeAllocator() sequence.CodeAllocator { return r.Allocator }

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
