package production

import (
	"strings"
	"time"

	"github.com/erp/production/internal/domain/costing"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const maxNotesLength = 2000

// ProductionOrder sends material stock to an artisan for one service and
// tracks each material line until it has been turned into output stock.
//
// Material cost is locked when the order is created. Labor and overhead are
// recognized line by line as lines complete, so TotalCost always equals
// TotalMaterialCost + TotalLaborCost + OverheadCost.
type ProductionOrder struct {
	shared.BaseAggregateRoot
	OrderNumber      string
	OrderDate        time.Time
	ServiceTypeID    uuid.UUID
	ArtisanID        uuid.UUID
	LaborCostPerUnit decimal.Decimal
	// OverheadRate is the service type's rate when the order was created
	OverheadRate      decimal.Decimal
	Status            OrderStatus
	TotalMaterialCost decimal.Decimal
	TotalLaborCost    decimal.Decimal
	OverheadCost      decimal.Decimal
	TotalCost         decimal.Decimal
	Notes             string
	Lines             []MaterialConsumption
	Outputs           []OrderOutput
}

// NewOrderParams carries everything needed to create an order. Materials
// must already be debited; UnitCostAtDebit is the cost they left stock at.
type NewOrderParams struct {
	OrderNumber      string
	OrderDate        time.Time
	ServiceTypeID    uuid.UUID
	ArtisanID        uuid.UUID
	LaborCostPerUnit decimal.Decimal
	OverheadRate     decimal.Decimal
	Materials        []MaterialInput
	Notes            string
}

// ValidateMaterials checks a material list before any stock is touched
func ValidateMaterials(materials []MaterialInput) error {
	if len(materials) == 0 {
		return shared.NewValidationError("a production order needs at least one material line")
	}
	for i, m := range materials {
		if err := m.Validate(i + 1); err != nil {
			return err
		}
	}
	return nil
}

// NewProductionOrder creates an open order with all lines pending
func NewProductionOrder(p NewOrderParams) (*ProductionOrder, error) {
	if strings.TrimSpace(p.OrderNumber) == "" {
		return nil, shared.NewValidationError("order number is required")
	}
	if p.OrderDate.IsZero() {
		return nil, shared.NewValidationError("order date is required")
	}
	if p.ServiceTypeID == uuid.Nil {
		return nil, shared.NewValidationError("service type ID is required")
	}
	if p.ArtisanID == uuid.Nil {
		return nil, shared.NewValidationError("artisan ID is required")
	}
	if p.LaborCostPerUnit.IsNegative() {
		return nil, shared.NewValidationError("labor cost per unit cannot be negative")
	}
	if p.OverheadRate.IsNegative() || p.OverheadRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, shared.NewValidationError("overhead rate must be within [0, 1)")
	}
	if len(p.Notes) > maxNotesLength {
		return nil, shared.NewValidationError("notes cannot exceed %d characters", maxNotesLength)
	}
	if err := ValidateMaterials(p.Materials); err != nil {
		return nil, err
	}

	order := &ProductionOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       p.OrderNumber,
		OrderDate:         p.OrderDate,
		ServiceTypeID:     p.ServiceTypeID,
		ArtisanID:         p.ArtisanID,
		LaborCostPerUnit:  p.LaborCostPerUnit.Round(costing.Scale),
		OverheadRate:      p.OverheadRate,
		Notes:             p.Notes,
		Lines:             make([]MaterialConsumption, 0, len(p.Materials)),
		Outputs:           make([]OrderOutput, 0, len(p.Materials)),
	}
	for i, m := range p.Materials {
		order.Lines = append(order.Lines, newMaterialConsumption(order.ID, i+1, m))
	}
	order.recalculate()

	order.AddDomainEvent(NewProductionOrderCreatedEvent(order))

	return order, nil
}

// Completion is the outcome reported for one material line
type Completion struct {
	ConsumptionID        uuid.UUID
	ActualOutputQuantity decimal.Decimal
	// WasteQuantity defaults to zero when nil
	WasteQuantity     *decimal.Decimal
	TargetStockLineID uuid.UUID
}

// Validate checks the quantities and target of a completion
func (c Completion) Validate() error {
	if c.ConsumptionID == uuid.Nil {
		return shared.NewValidationError("consumption ID is required")
	}
	if c.ActualOutputQuantity.IsNegative() {
		return shared.NewValidationError("actual output quantity cannot be negative")
	}
	if !costing.FitsScale(c.ActualOutputQuantity) {
		return shared.NewValidationError("actual output quantity allows at most %d decimal places", costing.Scale)
	}
	if c.WasteQuantity != nil {
		if c.WasteQuantity.IsNegative() {
			return shared.NewValidationError("waste quantity cannot be negative")
		}
		if !costing.FitsScale(*c.WasteQuantity) {
			return shared.NewValidationError("waste quantity allows at most %d decimal places", costing.Scale)
		}
	}
	if c.TargetStockLineID == uuid.Nil {
		return shared.NewValidationError("target stock line is required")
	}
	return nil
}

// Line returns the material line with the given ID
func (o *ProductionOrder) Line(consumptionID uuid.UUID) (*MaterialConsumption, bool) {
	for i := range o.Lines {
		if o.Lines[i].ID == consumptionID {
			return &o.Lines[i], true
		}
	}
	return nil, false
}

// EnsureCompletable returns the line if it can still be completed. A
// completed order is reported before the state of the line itself.
func (o *ProductionOrder) EnsureCompletable(consumptionID uuid.UUID) (*MaterialConsumption, error) {
	if o.Status.IsTerminal() {
		return nil, NewOrderTerminalError(o.OrderNumber)
	}
	line, ok := o.Line(consumptionID)
	if !ok {
		return nil, shared.NewNotFoundError("material line", consumptionID)
	}
	if !line.IsPending() {
		return nil, NewAlreadyCompletedError(consumptionID)
	}
	return line, nil
}

// CompleteLine records the outcome of one material line, allocates its
// cost and returns the produced output. The caller credits the output's
// stock line when Credits() is true.
func (o *ProductionOrder) CompleteLine(c Completion) (*OrderOutput, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	line, err := o.EnsureCompletable(c.ConsumptionID)
	if err != nil {
		return nil, err
	}

	actual := c.ActualOutputQuantity.Round(costing.Scale)
	alloc, err := costing.Allocate(costing.Input{
		MaterialCost:   line.MaterialCost,
		LaborRate:      o.LaborCostPerUnit,
		OverheadRate:   o.OverheadRate,
		OutputQuantity: actual,
	})
	if err != nil {
		return nil, err
	}

	waste := decimal.Zero
	if c.WasteQuantity != nil {
		waste = c.WasteQuantity.Round(costing.Scale)
	}

	now := time.Now()
	line.ActualOutputQuantity = &actual
	line.WasteQuantity = waste
	line.ExtractionRate = costing.ExtractionRate(actual, line.ExpectedOutputQuantity)
	line.LaborCost = alloc.LaborCost
	line.OverheadCost = alloc.OverheadCost
	line.Status = LineStatusCompleted
	line.CompletedAt = &now
	line.UpdatedAt = now

	output := OrderOutput{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       o.ID,
		ConsumptionID: line.ID,
		StockLineID:   c.TargetStockLineID,
		Quantity:      actual,
		UnitCost:      alloc.UnitCost,
		TotalCost:     alloc.TotalCost,
	}
	o.Outputs = append(o.Outputs, output)

	wasTerminal := o.Status.IsTerminal()
	o.recalculate()
	o.Touch()

	o.AddDomainEvent(NewProductionLineCompletedEvent(o, line, &output))
	if !wasTerminal && o.Status.IsTerminal() {
		o.AddDomainEvent(NewProductionOrderCompletedEvent(o))
	}

	return &o.Outputs[len(o.Outputs)-1], nil
}

// PendingLines returns the lines still awaiting completion, in line order
func (o *ProductionOrder) PendingLines() []MaterialConsumption {
	return lo.Filter(o.Lines, func(l MaterialConsumption, _ int) bool {
		return l.IsPending()
	})
}

// Output returns the output produced by a material line
func (o *ProductionOrder) Output(consumptionID uuid.UUID) (*OrderOutput, bool) {
	for i := range o.Outputs {
		if o.Outputs[i].ConsumptionID == consumptionID {
			return &o.Outputs[i], true
		}
	}
	return nil, false
}

// recalculate rebuilds totals and status from the lines
func (o *ProductionOrder) recalculate() {
	sum := func(pick func(MaterialConsumption) decimal.Decimal) decimal.Decimal {
		return lo.Reduce(o.Lines, func(acc decimal.Decimal, l MaterialConsumption, _ int) decimal.Decimal {
			return acc.Add(pick(l))
		}, decimal.Zero)
	}

	o.TotalMaterialCost = sum(func(l MaterialConsumption) decimal.Decimal { return l.MaterialCost })
	o.TotalLaborCost = sum(func(l MaterialConsumption) decimal.Decimal { return l.LaborCost })
	o.OverheadCost = sum(func(l MaterialConsumption) decimal.Decimal { return l.OverheadCost })
	o.TotalCost = o.TotalMaterialCost.Add(o.TotalLaborCost).Add(o.OverheadCost)
	o.Status = DeriveStatus(o.Lines)
}
