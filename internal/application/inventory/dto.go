package inventory

import (
	"time"

	"github.com/erp/production/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ColorInput is the tagged color variant carried by requests
type ColorInput struct {
	Kind        string     `json:"kind" binding:"omitempty,oneof=none catalog freeform"`
	ColorCodeID *uuid.UUID `json:"color_code_id,omitempty"`
	Description string     `json:"description,omitempty" binding:"max=200"`
}

// ToIdentity parses the variant
func (c ColorInput) ToIdentity() (inventory.ColorIdentity, error) {
	return inventory.ParseColorIdentity(inventory.ColorKind(c.Kind), c.ColorCodeID, c.Description)
}

// StockLineKeyInput names a stock line by its natural key
type StockLineKeyInput struct {
	WarehouseID   uuid.UUID  `json:"warehouse_id" binding:"required"`
	ProductTypeID uuid.UUID  `json:"product_type_id" binding:"required"`
	Color         ColorInput `json:"color"`
}

// ReceiveStockRequest books stock entering a warehouse
type ReceiveStockRequest struct {
	StockLineKeyInput
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitCost  decimal.Decimal  `json:"unit_cost"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Reference string           `json:"reference,omitempty" binding:"max=100"`
}

// StockLineListFilter represents filter options for stock line listing
type StockLineListFilter struct {
	WarehouseID   *uuid.UUID `form:"warehouse_id"`
	ProductTypeID *uuid.UUID `form:"product_type_id"`
	InStockOnly   bool       `form:"in_stock_only"`
	Page          int        `form:"page" binding:"min=0"`
	PageSize      int        `form:"page_size" binding:"min=0,max=100"`
	OrderBy       string     `form:"order_by" binding:"omitempty,oneof=created_at updated_at quantity unit_cost"`
	OrderDir      string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ColorResponse renders a color identity
type ColorResponse struct {
	Kind        string     `json:"kind"`
	ColorCodeID *uuid.UUID `json:"color_code_id,omitempty"`
	Description string     `json:"description,omitempty"`
}

// StockLineResponse represents a stock line in API responses
type StockLineResponse struct {
	ID            uuid.UUID       `json:"id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	ProductTypeID uuid.UUID       `json:"product_type_id"`
	Color         ColorResponse   `json:"color"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockMovementResponse represents a journal entry in API responses
type StockMovementResponse struct {
	ID              uuid.UUID       `json:"id"`
	StockLineID     uuid.UUID       `json:"stock_line_id"`
	Direction       string          `json:"direction"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	BalanceQuantity decimal.Decimal `json:"balance_quantity"`
	BalanceUnitCost decimal.Decimal `json:"balance_unit_cost"`
	SourceType      string          `json:"source_type"`
	SourceID        uuid.UUID       `json:"source_id"`
	Reference       string          `json:"reference,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

// ToColorResponse converts a color identity to its response form
func ToColorResponse(c inventory.ColorIdentity) ColorResponse {
	resp := ColorResponse{Kind: c.Kind().String()}
	if id, ok := c.ColorCodeID(); ok {
		resp.ColorCodeID = &id
	}
	if desc, ok := c.Description(); ok {
		resp.Description = desc
	}
	return resp
}

// ToStockLineResponse converts a domain StockLine to StockLineResponse
func ToStockLineResponse(line *inventory.StockLine) StockLineResponse {
	return StockLineResponse{
		ID:            line.ID,
		WarehouseID:   line.WarehouseID,
		ProductTypeID: line.ProductTypeID,
		Color:         ToColorResponse(line.Color),
		Quantity:      line.Quantity,
		UnitCost:      line.UnitCost,
		UnitPrice:     line.UnitPrice,
		TotalValue:    line.Value(),
		Version:       line.Version,
		CreatedAt:     line.CreatedAt,
		UpdatedAt:     line.UpdatedAt,
	}
}

// ToStockLineResponses converts a slice of stock lines
func ToStockLineResponses(lines []inventory.StockLine) []StockLineResponse {
	return lo.Map(lines, func(l inventory.StockLine, _ int) StockLineResponse {
		return ToStockLineResponse(&l)
	})
}

// ToStockMovementResponses converts journal entries
func ToStockMovementResponses(movements []inventory.StockMovement) []StockMovementResponse {
	return lo.Map(movements, func(m inventory.StockMovement, _ int) StockMovementResponse {
		return StockMovementResponse{
			ID:              m.ID,
			StockLineID:     m.StockLineID,
			Direction:       m.Direction.String(),
			Quantity:        m.Quantity,
			UnitCost:        m.UnitCost,
			BalanceQuantity: m.BalanceQuantity,
			BalanceUnitCost: m.BalanceUnitCost,
			SourceType:      m.SourceType.String(),
			SourceID:        m.SourceID,
			Reference:       m.Reference,
			OccurredAt:      m.OccurredAt,
		}
	})
}
