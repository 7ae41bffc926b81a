package inventory

import (
	"context"

	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// If the function returns an error, the transaction is rolled back;
// otherwise it is committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// ReferenceLookup resolves the catalog rows a stock line key points at
type ReferenceLookup interface {
	Warehouses() catalog.WarehouseRepository
	ProductTypes() catalog.ProductTypeRepository
	ColorCodes() catalog.ColorCodeRepository
}

// TransactionalRepositories provides access to all inventory repositories within a transaction.
// All repositories returned share the same underlying database transaction.
type TransactionalRepositories interface {
	ReferenceLookup
	// StockLines returns the stock line repository scoped to the current transaction
	StockLines() inventory.StockLineRepository
	// Movements returns the append-only movement journal scoped to the current transaction
	Movements() inventory.StockMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing.
type NoOpTransactionScope struct {
	stockLines   inventory.StockLineRepository
	movements    inventory.StockMovementRepository
	warehouses   catalog.WarehouseRepository
	productTypes catalog.ProductTypeRepository
	colorCodes   catalog.ColorCodeRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	stockLines inventory.StockLineRepository,
	movements inventory.StockMovementRepository,
	warehouses catalog.WarehouseRepository,
	productTypes catalog.ProductTypeRepository,
	colorCodes catalog.ColorCodeRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockLines:   stockLines,
		movements:    movements,
		warehouses:   warehouses,
		productTypes: productTypes,
		colorCodes:   colorCodes,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockLines returns the stock line repository.
func (s *NoOpTransactionScope) StockLines() inventory.StockLineRepository {
	return s.stockLines
}

// Movements returns the stock movement repository.
func (s *NoOpTransactionScope) Movements() inventory.StockMovementRepository {
	return s.movements
}

// Warehouses returns the warehouse repository.
func (s *NoOpTransactionScope) Warehouses() catalog.WarehouseRepository {
	return s.warehouses
}

// ProductTypes returns the product type repository.
func (s *NoOpTransactionScope) ProductTypes() catalog.ProductTypeRepository {
	return s.productTypes
}

// ColorCodes returns the color code repository.
func (s *NoOpTransactionScope) ColorCodes() catalog.ColorCodeRepository {
	return s.colorCodes
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
