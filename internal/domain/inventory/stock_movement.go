package inventory

import (
	"time"

	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDirection tells whether a movement added or removed stock
type MovementDirection string

const (
	MovementDirectionIn  MovementDirection = "IN"
	MovementDirectionOut MovementDirection = "OUT"
)

// String returns the string representation of MovementDirection
func (d MovementDirection) String() string {
	return string(d)
}

// SourceType identifies what caused a movement
type SourceType string

const (
	SourceTypeReceipt          SourceType = "RECEIPT"
	SourceTypeProductionInput  SourceType = "PRODUCTION_INPUT"
	SourceTypeProductionOutput SourceType = "PRODUCTION_OUTPUT"
)

// String returns the string representation of SourceType
func (t SourceType) String() string {
	return string(t)
}

// MovementSource points at the business document behind a movement
type MovementSource struct {
	Type SourceType
	ID   uuid.UUID
	// Reference is a human readable document number, e.g. an order number
	Reference string
}

// StockMovement is an append-only record of one debit or credit. It keeps
// the balance after the movement so the history of a line can be replayed.
type StockMovement struct {
	shared.BaseEntity
	StockLineID     uuid.UUID
	Direction       MovementDirection
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	BalanceQuantity decimal.Decimal
	BalanceUnitCost decimal.Decimal
	SourceType      SourceType
	SourceID        uuid.UUID
	Reference       string
	OccurredAt      time.Time
}

func newStockMovement(line *StockLine, direction MovementDirection, quantity, unitCost decimal.Decimal, source MovementSource) *StockMovement {
	base := shared.NewBaseEntity()
	return &StockMovement{
		BaseEntity:      base,
		StockLineID:     line.ID,
		Direction:       direction,
		Quantity:        quantity,
		UnitCost:        unitCost,
		BalanceQuantity: line.Quantity,
		BalanceUnitCost: line.UnitCost,
		SourceType:      source.Type,
		SourceID:        source.ID,
		Reference:       source.Reference,
		OccurredAt:      base.CreatedAt,
	}
}

// SignedQuantity returns the quantity with the sign of its direction
func (m *StockMovement) SignedQuantity() decimal.Decimal {
	if m.Direction == MovementDirectionOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
