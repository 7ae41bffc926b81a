package production

import (
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderOutput is the stock produced by one completed material line.
// UnitCost is fixed when the line completes.
type OrderOutput struct {
	shared.BaseEntity
	OrderID       uuid.UUID
	ConsumptionID uuid.UUID
	StockLineID   uuid.UUID
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
}

// Credits reports whether the output adds stock to its target line
func (o *OrderOutput) Credits() bool {
	return o.Quantity.IsPositive()
}
