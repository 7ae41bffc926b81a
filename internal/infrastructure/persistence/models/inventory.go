package models

import (
	"time"

	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLineModel is the persistence model for the StockLine aggregate root.
// ColorKey carries the color identity into the natural-key unique index.
type StockLineModel struct {
	AggregateModel
	WarehouseID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_lines_key,priority:1"`
	ProductTypeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_lines_key,priority:2"`
	ColorKey         string          `gorm:"type:varchar(250);not null;uniqueIndex:idx_stock_lines_key,priority:3"`
	ColorKind        string          `gorm:"type:varchar(20);not null"`
	ColorCodeID      *uuid.UUID      `gorm:"type:uuid;index"`
	ColorDescription string          `gorm:"type:varchar(200)"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitCost         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (StockLineModel) TableName() string {
	return "stock_lines"
}

// ToDomain converts the persistence model to a domain StockLine.
func (m *StockLineModel) ToDomain() *inventory.StockLine {
	return &inventory.StockLine{
		BaseAggregateRoot: m.ToAggregateRoot(),
		WarehouseID:       m.WarehouseID,
		ProductTypeID:     m.ProductTypeID,
		Color:             inventory.RestoreColorIdentity(inventory.ColorKind(m.ColorKind), m.ColorCodeID, m.ColorDescription),
		Quantity:          m.Quantity,
		UnitCost:          m.UnitCost,
		UnitPrice:         m.UnitPrice,
	}
}

// FromDomain populates the persistence model from a domain StockLine.
func (m *StockLineModel) FromDomain(s *inventory.StockLine) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.WarehouseID = s.WarehouseID
	m.ProductTypeID = s.ProductTypeID
	m.ColorKey = s.Color.Key()
	m.ColorKind = s.Color.Kind().String()
	m.ColorCodeID = nil
	if id, ok := s.Color.ColorCodeID(); ok {
		m.ColorCodeID = &id
	}
	m.ColorDescription, _ = s.Color.Description()
	m.Quantity = s.Quantity
	m.UnitCost = s.UnitCost
	m.UnitPrice = s.UnitPrice
}

// StockLineModelFromDomain creates a persistence model from a domain StockLine.
func StockLineModelFromDomain(s *inventory.StockLine) *StockLineModel {
	m := &StockLineModel{}
	m.FromDomain(s)
	return m
}

// StockMovementModel is the persistence model for the StockMovement journal.
type StockMovementModel struct {
	BaseModel
	StockLineID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_movements_line,priority:1"`
	Direction       string          `gorm:"type:varchar(10);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BalanceQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BalanceUnitCost decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SourceType      string          `gorm:"type:varchar(30);not null"`
	SourceID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Reference       string          `gorm:"type:varchar(100)"`
	OccurredAt      time.Time       `gorm:"not null;index:idx_stock_movements_line,priority:2"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts the persistence model to a domain StockMovement.
func (m *StockMovementModel) ToDomain() *inventory.StockMovement {
	return &inventory.StockMovement{
		BaseEntity:      shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		StockLineID:     m.StockLineID,
		Direction:       inventory.MovementDirection(m.Direction),
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		BalanceQuantity: m.BalanceQuantity,
		BalanceUnitCost: m.BalanceUnitCost,
		SourceType:      inventory.SourceType(m.SourceType),
		SourceID:        m.SourceID,
		Reference:       m.Reference,
		OccurredAt:      m.OccurredAt,
	}
}

// StockMovementModelFromDomain creates a persistence model from a domain StockMovement.
func StockMovementModelFromDomain(mv *inventory.StockMovement) *StockMovementModel {
	m := &StockMovementModel{
		StockLineID:     mv.StockLineID,
		Direction:       mv.Direction.String(),
		Quantity:        mv.Quantity,
		UnitCost:        mv.UnitCost,
		BalanceQuantity: mv.BalanceQuantity,
		BalanceUnitCost: mv.BalanceUnitCost,
		SourceType:      mv.SourceType.String(),
		SourceID:        mv.SourceID,
		Reference:       mv.Reference,
		OccurredAt:      mv.OccurredAt,
	}
	m.FromDomainBaseEntity(mv.BaseEntity)
	return m
}
