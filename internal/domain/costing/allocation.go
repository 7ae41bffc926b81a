package costing

import (
	"github.com/erp/production/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places kept for money and quantities
const Scale int32 = 4

var hundred = decimal.NewFromInt(100)

// Input is what the allocation needs to know about one completed line
type Input struct {
	// MaterialCost is the cost locked in when the line's stock was debited
	MaterialCost decimal.Decimal
	// LaborRate is the labor cost per produced unit
	LaborRate decimal.Decimal
	// OverheadRate is the fraction of labor cost charged as overhead
	OverheadRate decimal.Decimal
	// OutputQuantity is the actual quantity produced
	OutputQuantity decimal.Decimal
}

// Allocation is the cost breakdown of one completed line
type Allocation struct {
	MaterialCost decimal.Decimal
	LaborCost    decimal.Decimal
	OverheadCost decimal.Decimal
	TotalCost    decimal.Decimal
	UnitCost     decimal.Decimal
}

// Allocate spreads material, labor and overhead over the produced quantity.
// Waste is absorbed: the whole material cost lands on the units actually
// produced. A zero output yields a zero unit cost.
func Allocate(in Input) (Allocation, error) {
	if err := in.validate(); err != nil {
		return Allocation{}, err
	}

	labor := in.LaborRate.Mul(in.OutputQuantity).Round(Scale)
	overhead := labor.Mul(in.OverheadRate).Round(Scale)
	total := in.MaterialCost.Add(labor).Add(overhead)

	unitCost := decimal.Zero
	if in.OutputQuantity.IsPositive() {
		unitCost = total.Div(in.OutputQuantity).Round(Scale)
	}

	return Allocation{
		MaterialCost: in.MaterialCost,
		LaborCost:    labor,
		OverheadCost: overhead,
		TotalCost:    total,
		UnitCost:     unitCost,
	}, nil
}

func (in Input) validate() error {
	switch {
	case in.MaterialCost.IsNegative():
		return shared.NewValidationError("material cost cannot be negative")
	case in.LaborRate.IsNegative():
		return shared.NewValidationError("labor rate cannot be negative")
	case in.OverheadRate.IsNegative():
		return shared.NewValidationError("overhead rate cannot be negative")
	case in.OutputQuantity.IsNegative():
		return shared.NewValidationError("output quantity cannot be negative")
	}
	return nil
}

// FitsScale reports whether d is representable at storage precision
// without rounding
func FitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(Scale))
}

// MaterialCost returns quantity x unitCost at storage precision
func MaterialCost(quantity, unitCost decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitCost).Round(Scale)
}

// WeightedAverage blends an existing balance with an incoming one:
// (oldQty*oldCost + qty*cost) / (oldQty + qty).
// An empty existing balance takes the incoming cost unchanged.
func WeightedAverage(oldQty, oldCost, qty, cost decimal.Decimal) decimal.Decimal {
	totalQty := oldQty.Add(qty)
	if oldQty.IsZero() || !totalQty.IsPositive() {
		return cost
	}
	totalValue := oldQty.Mul(oldCost).Add(qty.Mul(cost))
	return totalValue.Div(totalQty).Round(Scale)
}

// ExtractionRate returns actual/expected x 100, or nil when no positive
// expectation was recorded. nil means "not measured" and is never zero.
func ExtractionRate(actual decimal.Decimal, expected *decimal.Decimal) *decimal.Decimal {
	if expected == nil || !expected.IsPositive() {
		return nil
	}
	rate := actual.Div(*expected).Mul(hundred).Round(Scale)
	return &rate
}
