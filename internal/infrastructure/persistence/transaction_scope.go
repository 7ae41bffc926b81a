package persistence

import (
	"context"

	appcatalog "github.com/erp/production/internal/application/catalog"
	appinv "github.com/erp/production/internal/application/inventory"
	appprod "github.com/erp/production/internal/application/production"
	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/domain/sequence"
	"gorm.io/gorm"
)

// GormTransactionScope implements the application transaction scopes using
// GORM transactions. Every repository handed to fn shares the same tx.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

func (s *GormTransactionScope) run(ctx context.Context, fn func(repos *gormTransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// InventoryScope returns the scope used by the inventory service
func (s *GormTransactionScope) InventoryScope() appinv.TransactionScope {
	return inventoryScope{s}
}

// ProductionScope returns the scope used by the production service
func (s *GormTransactionScope) ProductionScope() appprod.TransactionScope {
	return productionScope{s}
}

// CatalogScope returns the scope used by the catalog service
func (s *GormTransactionScope) CatalogScope() appcatalog.TransactionScope {
	return catalogScope{s}
}

type inventoryScope struct{ s *GormTransactionScope }

func (i inventoryScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return i.s.run(ctx, func(r *gormTransactionalRepositories) error { return fn(r) })
}

type productionScope struct{ s *GormTransactionScope }

func (p productionScope) Execute(ctx context.Context, fn func(repos appprod.TransactionalRepositories) error) error {
	return p.s.run(ctx, func(r *gormTransactionalRepositories) error { return fn(r) })
}

type catalogScope struct{ s *GormTransactionScope }

func (c catalogScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return c.s.run(ctx, func(r *gormTransactionalRepositories) error { return fn(r) })
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// StockLines returns the stock line repository scoped to the current transaction.
func (r *gormTransactionalRepositories) StockLines() inventory.StockLineRepository {
	return NewGormStockLineRepository(r.tx)
}

// Movements returns the movement journal scoped to the current transaction.
func (r *gormTransactionalRepositories) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// Orders returns the production order repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Orders() production.ProductionOrderRepository {
	return NewGormProductionOrderRepository(r.tx)
}

// Warehouses returns the warehouse repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Warehouses() catalog.WarehouseRepository {
	return NewGormWarehouseRepository(r.tx)
}

// ProductTypes returns the product type repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductTypes() catalog.ProductTypeRepository {
	return NewGormProductTypeRepository(r.tx)
}

// ColorCodes returns the color code repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ColorCodes() catalog.ColorCodeRepository {
	return NewGormColorCodeRepository(r.tx)
}

// ServiceTypes returns the service type repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ServiceTypes() catalog.ServiceTypeRepository {
	return NewGormServiceTypeRepository(r.tx)
}

// Artisans returns the artisan repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Artisans() catalog.ArtisanRepository {
	return NewGormArtisanRepository(r.tx)
}

// CodeAllocator returns a code allocator whose counter update joins the
// current transaction, so a rolled back operation gives its code back.
func (r *gormTransactionalRepositories) CodeAllocator() sequence.CodeAllocator {
	return NewGormCodeAllocator(r.tx)
}

var (
	_ appinv.TransactionScope     = inventoryScope{}
	_ appprod.TransactionScope    = productionScope{}
	_ appcatalog.TransactionScope = catalogScope{}

	_ appinv.TransactionalRepositories     = (*gormTransactionalRepositories)(nil)
	_ appprod.TransactionalRepositories    = (*gormTransactionalRepositories)(nil)
	_ appcatalog.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
