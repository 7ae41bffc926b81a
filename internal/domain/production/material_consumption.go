package production

import (
	"time"

	"github.com/erp/production/internal/domain/costing"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialConsumption is one input line of a production order: stock
// debited at creation and completed independently of its siblings.
// QuantityUsed, UnitCostAtDebit, MaterialCost and ExpectedOutputQuantity
// never change after the order is created.
type MaterialConsumption struct {
	shared.BaseEntity
	OrderID                uuid.UUID
	LineNo                 int
	StockLineID            uuid.UUID
	QuantityUsed           decimal.Decimal
	UnitCostAtDebit        decimal.Decimal
	MaterialCost           decimal.Decimal
	ExpectedOutputQuantity *decimal.Decimal
	ActualOutputQuantity   *decimal.Decimal
	WasteQuantity          decimal.Decimal
	// ExtractionRate is nil unless a positive expected output was recorded
	ExtractionRate *decimal.Decimal
	LaborCost      decimal.Decimal
	OverheadCost   decimal.Decimal
	Status         LineStatus
	CompletedAt    *time.Time
}

// MaterialInput describes a line to create, after its stock was debited
type MaterialInput struct {
	StockLineID            uuid.UUID
	QuantityUsed           decimal.Decimal
	UnitCostAtDebit        decimal.Decimal
	ExpectedOutputQuantity *decimal.Decimal
}

// Validate checks the caller-supplied parts of a material line
func (m MaterialInput) Validate(lineNo int) error {
	if m.StockLineID == uuid.Nil {
		return shared.NewValidationError("material line %d: stock line ID is required", lineNo)
	}
	if !m.QuantityUsed.IsPositive() {
		return shared.NewValidationError("material line %d: quantity used must be positive", lineNo)
	}
	if !costing.FitsScale(m.QuantityUsed) {
		return shared.NewValidationError("material line %d: quantity used allows at most %d decimal places", lineNo, costing.Scale)
	}
	if m.ExpectedOutputQuantity != nil {
		if m.ExpectedOutputQuantity.IsNegative() {
			return shared.NewValidationError("material line %d: expected output quantity cannot be negative", lineNo)
		}
		if !costing.FitsScale(*m.ExpectedOutputQuantity) {
			return shared.NewValidationError("material line %d: expected output quantity allows at most %d decimal places", lineNo, costing.Scale)
		}
	}
	if m.UnitCostAtDebit.IsNegative() {
		return shared.NewValidationError("material line %d: unit cost cannot be negative", lineNo)
	}
	return nil
}

func newMaterialConsumption(orderID uuid.UUID, lineNo int, in MaterialInput) MaterialConsumption {
	var expected *decimal.Decimal
	if in.ExpectedOutputQuantity != nil {
		e := in.ExpectedOutputQuantity.Round(costing.Scale)
		expected = &e
	}
	qty := in.QuantityUsed.Round(costing.Scale)
	return MaterialConsumption{
		BaseEntity:             shared.NewBaseEntity(),
		OrderID:                orderID,
		LineNo:                 lineNo,
		StockLineID:            in.StockLineID,
		QuantityUsed:           qty,
		UnitCostAtDebit:        in.UnitCostAtDebit,
		MaterialCost:           costing.MaterialCost(qty, in.UnitCostAtDebit),
		ExpectedOutputQuantity: expected,
		WasteQuantity:          decimal.Zero,
		LaborCost:              decimal.Zero,
		OverheadCost:           decimal.Zero,
		Status:                 LineStatusPending,
	}
}

// IsPending returns true until the line is completed
func (m *MaterialConsumption) IsPending() bool {
	return m.Status == LineStatusPending
}

// TotalCost is the material, labor and overhead booked on this line
func (m *MaterialConsumption) TotalCost() decimal.Decimal {
	return m.MaterialCost.Add(m.LaborCost).Add(m.OverheadCost)
}
