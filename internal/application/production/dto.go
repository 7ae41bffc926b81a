package production

import (
	"time"

	appinv "github.com/erp/production/internal/application/inventory"
	"github.com/erp/production/internal/domain/production"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MaterialRequest is one material line of a new order
type MaterialRequest struct {
	StockLineID            uuid.UUID        `json:"stock_line_id" binding:"required"`
	QuantityUsed           decimal.Decimal  `json:"quantity_used"`
	ExpectedOutputQuantity *decimal.Decimal `json:"expected_output_quantity,omitempty"`
}

// CreateOrderRequest creates a production order and debits its materials.
// A zero OrderDate means today.
type CreateOrderRequest struct {
	OrderDate         time.Time         `json:"order_date"`
	ServiceTypeID     uuid.UUID         `json:"service_type_id" binding:"required"`
	ArtisanID         uuid.UUID         `json:"artisan_id" binding:"required"`
	LaborRateOverride *decimal.Decimal  `json:"labor_rate_override,omitempty"`
	Materials         []MaterialRequest `json:"materials" binding:"required,min=1,dive"`
	Notes             string            `json:"notes,omitempty" binding:"max=2000"`
}

// TargetRequest names the stock line that receives a line's output, either
// by ID or by key. A key naming a new combination creates the line.
type TargetRequest struct {
	StockLineID *uuid.UUID                `json:"stock_line_id,omitempty"`
	Key         *appinv.StockLineKeyInput `json:"key,omitempty"`
	// UnitPrice is used only when the stock line is created
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CompleteLineRequest reports the outcome of one material line
type CompleteLineRequest struct {
	ConsumptionID        uuid.UUID        `json:"consumption_id"`
	ActualOutputQuantity decimal.Decimal  `json:"actual_output_quantity"`
	WasteQuantity        *decimal.Decimal `json:"waste_quantity,omitempty"`
	Target               TargetRequest    `json:"target"`
}

// MaterialLineResponse represents a material line in API responses
type MaterialLineResponse struct {
	ID                     uuid.UUID        `json:"id"`
	LineNo                 int              `json:"line_no"`
	StockLineID            uuid.UUID        `json:"stock_line_id"`
	QuantityUsed           decimal.Decimal  `json:"quantity_used"`
	UnitCostAtDebit        decimal.Decimal  `json:"unit_cost_at_debit"`
	MaterialCost           decimal.Decimal  `json:"material_cost"`
	ExpectedOutputQuantity *decimal.Decimal `json:"expected_output_quantity"`
	ActualOutputQuantity   *decimal.Decimal `json:"actual_output_quantity"`
	WasteQuantity          decimal.Decimal  `json:"waste_quantity"`
	ExtractionRate         *decimal.Decimal `json:"extraction_rate"`
	LaborCost              decimal.Decimal  `json:"labor_cost"`
	OverheadCost           decimal.Decimal  `json:"overhead_cost"`
	Status                 string           `json:"status"`
	CompletedAt            *time.Time       `json:"completed_at,omitempty"`
}

// OutputResponse represents an order output in API responses
type OutputResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	ConsumptionID uuid.UUID       `json:"consumption_id"`
	StockLineID   uuid.UUID       `json:"stock_line_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderResponse represents a production order in API responses
type OrderResponse struct {
	ID                uuid.UUID              `json:"id"`
	OrderNumber       string                 `json:"order_number"`
	OrderDate         time.Time              `json:"order_date"`
	ServiceTypeID     uuid.UUID              `json:"service_type_id"`
	ArtisanID         uuid.UUID              `json:"artisan_id"`
	LaborCostPerUnit  decimal.Decimal        `json:"labor_cost_per_unit"`
	OverheadRate      decimal.Decimal        `json:"overhead_rate"`
	Status            string                 `json:"status"`
	TotalMaterialCost decimal.Decimal        `json:"total_material_cost"`
	TotalLaborCost    decimal.Decimal        `json:"total_labor_cost"`
	OverheadCost      decimal.Decimal        `json:"overhead_cost"`
	TotalCost         decimal.Decimal        `json:"total_cost"`
	Notes             string                 `json:"notes,omitempty"`
	Lines             []MaterialLineResponse `json:"lines"`
	Outputs           []OutputResponse       `json:"outputs"`
	Version           int                    `json:"version"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// CompletionResponse is the result of completing one or more lines
type CompletionResponse struct {
	Order   OrderResponse    `json:"order"`
	Outputs []OutputResponse `json:"outputs"`
}

// ToMaterialLineResponse converts a material line
func ToMaterialLineResponse(l *production.MaterialConsumption) MaterialLineResponse {
	return MaterialLineResponse{
		ID:                     l.ID,
		LineNo:                 l.LineNo,
		StockLineID:            l.StockLineID,
		QuantityUsed:           l.QuantityUsed,
		UnitCostAtDebit:        l.UnitCostAtDebit,
		MaterialCost:           l.MaterialCost,
		ExpectedOutputQuantity: l.ExpectedOutputQuantity,
		ActualOutputQuantity:   l.ActualOutputQuantity,
		WasteQuantity:          l.WasteQuantity,
		ExtractionRate:         l.ExtractionRate,
		LaborCost:              l.LaborCost,
		OverheadCost:           l.OverheadCost,
		Status:                 l.Status.String(),
		CompletedAt:            l.CompletedAt,
	}
}

// ToMaterialLineResponses converts material lines
func ToMaterialLineResponses(lines []production.MaterialConsumption) []MaterialLineResponse {
	return lo.Map(lines, func(l production.MaterialConsumption, _ int) MaterialLineResponse {
		return ToMaterialLineResponse(&l)
	})
}

// ToOutputResponse converts an order output
func ToOutputResponse(o *production.OrderOutput) OutputResponse {
	return OutputResponse{
		ID:            o.ID,
		OrderID:       o.OrderID,
		ConsumptionID: o.ConsumptionID,
		StockLineID:   o.StockLineID,
		Quantity:      o.Quantity,
		UnitCost:      o.UnitCost,
		TotalCost:     o.TotalCost,
		CreatedAt:     o.CreatedAt,
	}
}

// ToOrderResponse converts a domain ProductionOrder to OrderResponse
func ToOrderResponse(o *production.ProductionOrder) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		OrderDate:         o.OrderDate,
		ServiceTypeID:     o.ServiceTypeID,
		ArtisanID:         o.ArtisanID,
		LaborCostPerUnit:  o.LaborCostPerUnit,
		OverheadRate:      o.OverheadRate,
		Status:            o.Status.String(),
		TotalMaterialCost: o.TotalMaterialCost,
		TotalLaborCost:    o.TotalLaborCost,
		OverheadCost:      o.OverheadCost,
		TotalCost:         o.TotalCost,
		Notes:             o.Notes,
		Lines:             ToMaterialLineResponses(o.Lines),
		Outputs: lo.Map(o.Outputs, func(out production.OrderOutput, _ int) OutputResponse {
			return ToOutputResponse(&out)
		}),
		Version:   o.Version,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
