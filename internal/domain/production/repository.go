package production

import (
	"context"

	"github.com/google/uuid"
)

// ProductionOrderRepository persists orders together with their lines and
// outputs
type ProductionOrderRepository interface {
	// Create inserts the order header and all of its lines
	Create(ctx context.Context, order *ProductionOrder) error
	// FindByID loads the order with lines and outputs
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionOrder, error)
	// FindByIDForUpdate loads and row-locks the order header until the
	// transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ProductionOrder, error)
	// SaveWithLock writes back header totals and status if the version is
	// unchanged, updates its lines and inserts outputs not stored yet
	SaveWithLock(ctx context.Context, order *ProductionOrder) error
	// FindPendingLines returns the order's pending lines in line order
	FindPendingLines(ctx context.Context, orderID uuid.UUID) ([]MaterialConsumption, error)
	// ExistsByID reports whether the order exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
