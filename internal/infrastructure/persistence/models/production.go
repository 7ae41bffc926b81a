package models

import (
	"time"

	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionOrderModel is the persistence model for the ProductionOrder aggregate root.
type ProductionOrderModel struct {
	AggregateModel
	OrderNumber       string                     `gorm:"type:varchar(30);not null;uniqueIndex"`
	OrderDate         time.Time                  `gorm:"type:date;not null;index"`
	ServiceTypeID     uuid.UUID                  `gorm:"type:uuid;not null;index"`
	ArtisanID         uuid.UUID                  `gorm:"type:uuid;not null;index"`
	LaborCostPerUnit  decimal.Decimal            `gorm:"type:decimal(18,4);not null"`
	OverheadRate      decimal.Decimal            `gorm:"type:decimal(5,4);not null"`
	Status            string                     `gorm:"type:varchar(30);not null;index"`
	TotalMaterialCost decimal.Decimal            `gorm:"type:decimal(18,4);not null;default:0"`
	TotalLaborCost    decimal.Decimal            `gorm:"type:decimal(18,4);not null;default:0"`
	OverheadCost      decimal.Decimal            `gorm:"type:decimal(18,4);not null;default:0"`
	TotalCost         decimal.Decimal            `gorm:"type:decimal(18,4);not null;default:0"`
	Notes             string                     `gorm:"type:text"`
	Lines             []MaterialConsumptionModel `gorm:"foreignKey:OrderID;references:ID"`
	Outputs           []OrderOutputModel         `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (ProductionOrderModel) TableName() string {
	return "production_orders"
}

// ToDomain converts the persistence model to a domain ProductionOrder.
func (m *ProductionOrderModel) ToDomain() *production.ProductionOrder {
	o := &production.ProductionOrder{
		BaseAggregateRoot: m.ToAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		OrderDate:         m.OrderDate,
		ServiceTypeID:     m.ServiceTypeID,
		ArtisanID:         m.ArtisanID,
		LaborCostPerUnit:  m.LaborCostPerUnit,
		OverheadRate:      m.OverheadRate,
		Status:            production.OrderStatus(m.Status),
		TotalMaterialCost: m.TotalMaterialCost,
		TotalLaborCost:    m.TotalLaborCost,
		OverheadCost:      m.OverheadCost,
		TotalCost:         m.TotalCost,
		Notes:             m.Notes,
		Lines:             make([]production.MaterialConsumption, len(m.Lines)),
		Outputs:           make([]production.OrderOutput, len(m.Outputs)),
	}
	for i := range m.Lines {
		o.Lines[i] = *m.Lines[i].ToDomain()
	}
	for i := range m.Outputs {
		o.Outputs[i] = *m.Outputs[i].ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain ProductionOrder,
// including lines and outputs.
func (m *ProductionOrderModel) FromDomain(o *production.ProductionOrder) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.OrderDate = o.OrderDate
	m.ServiceTypeID = o.ServiceTypeID
	m.ArtisanID = o.ArtisanID
	m.LaborCostPerUnit = o.LaborCostPerUnit
	m.OverheadRate = o.OverheadRate
	m.Status = o.Status.String()
	m.TotalMaterialCost = o.TotalMaterialCost
	m.TotalLaborCost = o.TotalLaborCost
	m.OverheadCost = o.OverheadCost
	m.TotalCost = o.TotalCost
	m.Notes = o.Notes
	m.Lines = make([]MaterialConsumptionModel, len(o.Lines))
	for i := range o.Lines {
		m.Lines[i] = *MaterialConsumptionModelFromDomain(&o.Lines[i])
	}
	m.Outputs = make([]OrderOutputModel, len(o.Outputs))
	for i := range o.Outputs {
		m.Outputs[i] = *OrderOutputModelFromDomain(&o.Outputs[i])
	}
}

// ProductionOrderModelFromDomain creates a persistence model from a domain ProductionOrder.
func ProductionOrderModelFromDomain(o *production.ProductionOrder) *ProductionOrderModel {
	m := &ProductionOrderModel{}
	m.FromDomain(o)
	return m
}

// MaterialConsumptionModel is the persistence model for a material line.
// Nullable decimals keep "not recorded" apart from zero.
type MaterialConsumptionModel struct {
	BaseModel
	OrderID                uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_material_consumptions_order_line,priority:1"`
	LineNo                 int                 `gorm:"not null;uniqueIndex:idx_material_consumptions_order_line,priority:2"`
	StockLineID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	QuantityUsed           decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	UnitCostAtDebit        decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	MaterialCost           decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	ExpectedOutputQuantity decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	ActualOutputQuantity   decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	WasteQuantity          decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	ExtractionRate         decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	LaborCost              decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	OverheadCost           decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Status                 string              `gorm:"type:varchar(20);not null"`
	CompletedAt            *time.Time
}

// TableName returns the table name for GORM
func (MaterialConsumptionModel) TableName() string {
	return "material_consumptions"
}

// ToDomain converts the persistence model to a domain MaterialConsumption.
func (m *MaterialConsumptionModel) ToDomain() *production.MaterialConsumption {
	return &production.MaterialConsumption{
		BaseEntity:             shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		OrderID:                m.OrderID,
		LineNo:                 m.LineNo,
		StockLineID:            m.StockLineID,
		QuantityUsed:           m.QuantityUsed,
		UnitCostAtDebit:        m.UnitCostAtDebit,
		MaterialCost:           m.MaterialCost,
		ExpectedOutputQuantity: fromNullDecimal(m.ExpectedOutputQuantity),
		ActualOutputQuantity:   fromNullDecimal(m.ActualOutputQuantity),
		WasteQuantity:          m.WasteQuantity,
		ExtractionRate:         fromNullDecimal(m.ExtractionRate),
		LaborCost:              m.LaborCost,
		OverheadCost:           m.OverheadCost,
		Status:                 production.LineStatus(m.Status),
		CompletedAt:            m.CompletedAt,
	}
}

// MaterialConsumptionModelFromDomain creates a persistence model from a domain MaterialConsumption.
func MaterialConsumptionModelFromDomain(l *production.MaterialConsumption) *MaterialConsumptionModel {
	m := &MaterialConsumptionModel{
		OrderID:                l.OrderID,
		LineNo:                 l.LineNo,
		StockLineID:            l.StockLineID,
		QuantityUsed:           l.QuantityUsed,
		UnitCostAtDebit:        l.UnitCostAtDebit,
		MaterialCost:           l.MaterialCost,
		ExpectedOutputQuantity: toNullDecimal(l.ExpectedOutputQuantity),
		ActualOutputQuantity:   toNullDecimal(l.ActualOutputQuantity),
		WasteQuantity:          l.WasteQuantity,
		ExtractionRate:         toNullDecimal(l.ExtractionRate),
		LaborCost:              l.LaborCost,
		OverheadCost:           l.OverheadCost,
		Status:                 l.Status.String(),
		CompletedAt:            l.CompletedAt,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

// OrderOutputModel is the persistence model for an order output.
type OrderOutputModel struct {
	BaseModel
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ConsumptionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	StockLineID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalCost     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (OrderOutputModel) TableName() string {
	return "order_outputs"
}

// ToDomain converts the persistence model to a domain OrderOutput.
func (m *OrderOutputModel) ToDomain() *production.OrderOutput {
	return &production.OrderOutput{
		BaseEntity:    shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		OrderID:       m.OrderID,
		ConsumptionID: m.ConsumptionID,
		StockLineID:   m.StockLineID,
		Quantity:      m.Quantity,
		UnitCost:      m.UnitCost,
		TotalCost:     m.TotalCost,
	}
}

// OrderOutputModelFromDomain creates a persistence model from a domain OrderOutput.
func OrderOutputModelFromDomain(o *production.OrderOutput) *OrderOutputModel {
	m := &OrderOutputModel{
		OrderID:       o.OrderID,
		ConsumptionID: o.ConsumptionID,
		StockLineID:   o.StockLineID,
		Quantity:      o.Quantity,
		UnitCost:      o.UnitCost,
		TotalCost:     o.TotalCost,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
