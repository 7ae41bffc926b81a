package inventory

import (
	"fmt"

	"github.com/erp/production/internal/domain/costing"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLineKey is the natural identity of a stock line
type StockLineKey struct {
	WarehouseID   uuid.UUID
	ProductTypeID uuid.UUID
	Color         ColorIdentity
}

// Validate checks that every component of the key is present
func (k StockLineKey) Validate() error {
	if k.WarehouseID == uuid.Nil {
		return shared.NewValidationError("warehouse ID cannot be empty")
	}
	if k.ProductTypeID == uuid.Nil {
		return shared.NewValidationError("product type ID cannot be empty")
	}
	return nil
}

// String renders the key for logs and error messages
func (k StockLineKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.WarehouseID, k.ProductTypeID, k.Color.Key())
}

// StockLine is an inventory bucket for one (warehouse, product type, color)
// combination. Quantity never goes negative; UnitCost is a running weighted
// average that only moves when stock is credited.
type StockLine struct {
	shared.BaseAggregateRoot
	WarehouseID   uuid.UUID
	ProductTypeID uuid.UUID
	Color         ColorIdentity
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	UnitPrice     decimal.Decimal
}

// NewStockLine creates an empty stock line for key
func NewStockLine(key StockLineKey, unitPrice decimal.Decimal) (*StockLine, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewValidationError("unit price cannot be negative")
	}

	return &StockLine{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarehouseID:       key.WarehouseID,
		ProductTypeID:     key.ProductTypeID,
		Color:             key.Color,
		Quantity:          decimal.Zero,
		UnitCost:          decimal.Zero,
		UnitPrice:         unitPrice,
	}, nil
}

// Key returns the natural identity of the line
func (s *StockLine) Key() StockLineKey {
	return StockLineKey{
		WarehouseID:   s.WarehouseID,
		ProductTypeID: s.ProductTypeID,
		Color:         s.Color,
	}
}

// Value returns quantity x unit cost
func (s *StockLine) Value() decimal.Decimal {
	return costing.MaterialCost(s.Quantity, s.UnitCost)
}

// CanDebit reports whether quantity is available
func (s *StockLine) CanDebit(quantity decimal.Decimal) bool {
	return quantity.LessThanOrEqual(s.Quantity)
}

// Debit removes quantity from the line. The unit cost is unchanged and is
// reported on the returned movement as the cost the stock left at.
func (s *StockLine) Debit(quantity decimal.Decimal, source MovementSource) (*StockMovement, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewValidationError("debit quantity must be positive")
	}
	if !s.CanDebit(quantity) {
		return nil, NewInsufficientStockError(s.ID, quantity, s.Quantity)
	}

	s.Quantity = s.Quantity.Sub(quantity)
	s.Touch()

	return newStockMovement(s, MovementDirectionOut, quantity, s.UnitCost, source), nil
}

// Credit adds quantity at unitCost and reblends the weighted-average cost
func (s *StockLine) Credit(quantity, unitCost decimal.Decimal, source MovementSource) (*StockMovement, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewValidationError("credit quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewValidationError("unit cost cannot be negative")
	}

	s.UnitCost = costing.WeightedAverage(s.Quantity, s.UnitCost, quantity, unitCost)
	s.Quantity = s.Quantity.Add(quantity)
	s.Touch()

	return newStockMovement(s, MovementDirectionIn, quantity, unitCost, source), nil
}

// NewInsufficientStockError reports a debit larger than the line's balance
func NewInsufficientStockError(stockLineID uuid.UUID, requested, available decimal.Decimal) *shared.DomainError {
	return shared.NewDomainError(shared.CodeInsufficientStock,
		fmt.Sprintf("insufficient stock on stock line %s: requested %s, available %s",
			stockLineID, requested.String(), available.String()))
}
