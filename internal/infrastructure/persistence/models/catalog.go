package models

import (
	"github.com/erp/production/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseModel is the persistence model for Warehouse.
type WarehouseModel struct {
	AggregateModel
	Code     string `gorm:"type:varchar(30);not null;uniqueIndex"`
	Name     string `gorm:"type:varchar(100);not null"`
	Location string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (WarehouseModel) TableName() string {
	return "warehouses"
}

// ToDomain converts the persistence model to a domain Warehouse.
func (m *WarehouseModel) ToDomain() *catalog.Warehouse {
	return &catalog.Warehouse{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Location:          m.Location,
	}
}

// WarehouseModelFromDomain creates a persistence model from a domain Warehouse.
func WarehouseModelFromDomain(w *catalog.Warehouse) *WarehouseModel {
	m := &WarehouseModel{Code: w.Code, Name: w.Name, Location: w.Location}
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	return m
}

// ProductTypeModel is the persistence model for ProductType.
type ProductTypeModel struct {
	AggregateModel
	Code        string `gorm:"type:varchar(30);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(100);not null"`
	Unit        string `gorm:"type:varchar(20);not null"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ProductTypeModel) TableName() string {
	return "product_types"
}

// ToDomain converts the persistence model to a domain ProductType.
func (m *ProductTypeModel) ToDomain() *catalog.ProductType {
	return &catalog.ProductType{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Unit:              m.Unit,
		Description:       m.Description,
	}
}

// ProductTypeModelFromDomain creates a persistence model from a domain ProductType.
func ProductTypeModelFromDomain(p *catalog.ProductType) *ProductTypeModel {
	m := &ProductTypeModel{Code: p.Code, Name: p.Name, Unit: p.Unit, Description: p.Description}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}

// ColorCodeModel is the persistence model for ColorCode.
type ColorCodeModel struct {
	AggregateModel
	Code string `gorm:"type:varchar(30);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(100);not null"`
	Hex  string `gorm:"type:varchar(7)"`
}

// TableName returns the table name for GORM
func (ColorCodeModel) TableName() string {
	return "color_codes"
}

// ToDomain converts the persistence model to a domain ColorCode.
func (m *ColorCodeModel) ToDomain() *catalog.ColorCode {
	return &catalog.ColorCode{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Hex:               m.Hex,
	}
}

// ColorCodeModelFromDomain creates a persistence model from a domain ColorCode.
func ColorCodeModelFromDomain(c *catalog.ColorCode) *ColorCodeModel {
	m := &ColorCodeModel{Code: c.Code, Name: c.Name, Hex: c.Hex}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// ServiceTypeModel is the persistence model for ServiceType.
type ServiceTypeModel struct {
	AggregateModel
	Code         string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	Name         string          `gorm:"type:varchar(100);not null"`
	OverheadRate decimal.Decimal `gorm:"type:decimal(5,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ServiceTypeModel) TableName() string {
	return "service_types"
}

// ToDomain converts the persistence model to a domain ServiceType.
func (m *ServiceTypeModel) ToDomain() *catalog.ServiceType {
	return &catalog.ServiceType{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		OverheadRate:      m.OverheadRate,
	}
}

// ServiceTypeModelFromDomain creates a persistence model from a domain ServiceType.
func ServiceTypeModelFromDomain(s *catalog.ServiceType) *ServiceTypeModel {
	m := &ServiceTypeModel{Code: s.Code, Name: s.Name, OverheadRate: s.OverheadRate}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}

// ArtisanModel is the persistence model for the Artisan aggregate root.
type ArtisanModel struct {
	AggregateModel
	Code  string             `gorm:"type:varchar(30);not null;uniqueIndex"`
	Name  string             `gorm:"type:varchar(100);not null"`
	Phone string             `gorm:"type:varchar(30)"`
	Rates []ArtisanRateModel `gorm:"foreignKey:ArtisanID;references:ID"`
}

// TableName returns the table name for GORM
func (ArtisanModel) TableName() string {
	return "artisans"
}

// ToDomain converts the persistence model to a domain Artisan.
func (m *ArtisanModel) ToDomain() *catalog.Artisan {
	a := &catalog.Artisan{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Phone:             m.Phone,
		Rates:             make([]catalog.ArtisanRate, len(m.Rates)),
	}
	for i, r := range m.Rates {
		a.Rates[i] = catalog.ArtisanRate{ServiceTypeID: r.ServiceTypeID, RatePerUnit: r.RatePerUnit}
	}
	return a
}

// ArtisanModelFromDomain creates a persistence model from a domain Artisan.
func ArtisanModelFromDomain(a *catalog.Artisan) *ArtisanModel {
	m := &ArtisanModel{Code: a.Code, Name: a.Name, Phone: a.Phone}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Rates = make([]ArtisanRateModel, len(a.Rates))
	for i, r := range a.Rates {
		m.Rates[i] = ArtisanRateModel{
			ArtisanID:     a.ID,
			ServiceTypeID: r.ServiceTypeID,
			RatePerUnit:   r.RatePerUnit,
		}
	}
	return m
}

// ArtisanRateModel is one qualified rate of an artisan.
type ArtisanRateModel struct {
	ArtisanID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceTypeID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RatePerUnit   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ArtisanRateModel) TableName() string {
	return "artisan_rates"
}
