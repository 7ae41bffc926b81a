package production

import (
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeProductionOrder = "ProductionOrder"

// Event type constants
const (
	EventTypeProductionOrderCreated   = "ProductionOrderCreated"
	EventTypeProductionLineCompleted  = "ProductionLineCompleted"
	EventTypeProductionOrderCompleted = "ProductionOrderCompleted"
)

// ProductionOrderCreatedEvent is published when an order and its debits commit
type ProductionOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID           uuid.UUID       `json:"order_id"`
	OrderNumber       string          `json:"order_number"`
	ServiceTypeID     uuid.UUID       `json:"service_type_id"`
	ArtisanID         uuid.UUID       `json:"artisan_id"`
	LineCount         int             `json:"line_count"`
	TotalMaterialCost decimal.Decimal `json:"total_material_cost"`
}

// NewProductionOrderCreatedEvent creates a new ProductionOrderCreatedEvent
func NewProductionOrderCreatedEvent(order *ProductionOrder) *ProductionOrderCreatedEvent {
	return &ProductionOrderCreatedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeProductionOrderCreated, AggregateTypeProductionOrder, order.ID),
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		ServiceTypeID:     order.ServiceTypeID,
		ArtisanID:         order.ArtisanID,
		LineCount:         len(order.Lines),
		TotalMaterialCost: order.TotalMaterialCost,
	}
}

// ProductionLineCompletedEvent is published per completed material line.
// The artisan ledger accrues LaborCost from it.
type ProductionLineCompletedEvent struct {
	shared.BaseDomainEvent
	OrderID        uuid.UUID       `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	ConsumptionID  uuid.UUID       `json:"consumption_id"`
	ArtisanID      uuid.UUID       `json:"artisan_id"`
	ServiceTypeID  uuid.UUID       `json:"service_type_id"`
	StockLineID    uuid.UUID       `json:"stock_line_id"`
	OutputQuantity decimal.Decimal `json:"output_quantity"`
	LaborCost      decimal.Decimal `json:"labor_cost"`
	OverheadCost   decimal.Decimal `json:"overhead_cost"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
}

// NewProductionLineCompletedEvent creates a new ProductionLineCompletedEvent
func NewProductionLineCompletedEvent(order *ProductionOrder, line *MaterialConsumption, output *OrderOutput) *ProductionLineCompletedEvent {
	return &ProductionLineCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductionLineCompleted, AggregateTypeProductionOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		ConsumptionID:   line.ID,
		ArtisanID:       order.ArtisanID,
		ServiceTypeID:   order.ServiceTypeID,
		StockLineID:     output.StockLineID,
		OutputQuantity:  output.Quantity,
		LaborCost:       line.LaborCost,
		OverheadCost:    line.OverheadCost,
		UnitCost:        output.UnitCost,
	}
}

// ProductionOrderCompletedEvent is published when the last line completes
type ProductionOrderCompletedEvent struct {
	shared.BaseDomainEvent
	OrderID           uuid.UUID       `json:"order_id"`
	OrderNumber       string          `json:"order_number"`
	TotalMaterialCost decimal.Decimal `json:"total_material_cost"`
	TotalLaborCost    decimal.Decimal `json:"total_labor_cost"`
	OverheadCost      decimal.Decimal `json:"overhead_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
}

// NewProductionOrderCompletedEvent creates a new ProductionOrderCompletedEvent
func NewProductionOrderCompletedEvent(order *ProductionOrder) *ProductionOrderCompletedEvent {
	return &ProductionOrderCompletedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeProductionOrderCompleted, AggregateTypeProductionOrder, order.ID),
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		TotalMaterialCost: order.TotalMaterialCost,
		TotalLaborCost:    order.TotalLaborCost,
		OverheadCost:      order.OverheadCost,
		TotalCost:         order.TotalCost,
	}
}
