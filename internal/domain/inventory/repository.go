package inventory

import (
	"context"

	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLineFilter narrows stock line listings
type StockLineFilter struct {
	shared.Filter
	WarehouseID   *uuid.UUID
	ProductTypeID *uuid.UUID
	InStockOnly   bool
}

// StockLineRepository persists StockLine aggregates. The *ForUpdate methods
// take a row lock that is held until the surrounding transaction ends; they
// are only meaningful inside a transaction scope.
type StockLineRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StockLine, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*StockLine, error)
	// FindByIDsForUpdate locks the lines in ascending ID order
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*StockLine, error)
	FindByKey(ctx context.Context, key StockLineKey) (*StockLine, error)
	// GetOrCreateForUpdate returns the locked line for key, inserting an empty
	// one first when the combination does not exist yet.
	GetOrCreateForUpdate(ctx context.Context, key StockLineKey, unitPrice decimal.Decimal) (line *StockLine, created bool, err error)
	FindAll(ctx context.Context, filter StockLineFilter) ([]StockLine, int64, error)
	// SaveWithLock writes a loaded line back if its version is unchanged and
	// bumps the version.
	SaveWithLock(ctx context.Context, line *StockLine) error
}

// StockMovementRepository is the append-only movement journal
type StockMovementRepository interface {
	Create(ctx context.Context, movements ...*StockMovement) error
	FindByStockLine(ctx context.Context, stockLineID uuid.UUID, filter shared.Filter) ([]StockMovement, int64, error)
}
