package catalog

import (
	"time"

	"github.com/erp/production/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest creates a warehouse
type CreateWarehouseRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Location string `json:"location,omitempty" binding:"max=500"`
}

// CreateProductTypeRequest creates a product type
type CreateProductTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Unit        string `json:"unit,omitempty" binding:"max=20"`
	Description string `json:"description,omitempty" binding:"max=500"`
}

// CreateColorCodeRequest creates a color code
type CreateColorCodeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Hex  string `json:"hex,omitempty"`
}

// CreateServiceTypeRequest creates a service type
type CreateServiceTypeRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	OverheadRate decimal.Decimal `json:"overhead_rate"`
}

// ArtisanRateRequest is one qualified rate of an artisan
type ArtisanRateRequest struct {
	ServiceTypeID uuid.UUID       `json:"service_type_id" binding:"required"`
	RatePerUnit   decimal.Decimal `json:"rate_per_unit"`
}

// CreateArtisanRequest creates an artisan
type CreateArtisanRequest struct {
	Name  string               `json:"name" binding:"required,max=100"`
	Phone string               `json:"phone,omitempty" binding:"max=30"`
	Rates []ArtisanRateRequest `json:"rates,omitempty" binding:"dive"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductTypeResponse represents a product type in API responses
type ProductTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ColorCodeResponse represents a color code in API responses
type ColorCodeResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Hex       string    `json:"hex,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceTypeResponse represents a service type in API responses
type ServiceTypeResponse struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	OverheadRate decimal.Decimal `json:"overhead_rate"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ArtisanRateResponse represents an artisan rate in API responses
type ArtisanRateResponse struct {
	ServiceTypeID uuid.UUID       `json:"service_type_id"`
	RatePerUnit   decimal.Decimal `json:"rate_per_unit"`
}

// ArtisanResponse represents an artisan in API responses
type ArtisanResponse struct {
	ID        uuid.UUID             `json:"id"`
	Code      string                `json:"code"`
	Name      string                `json:"name"`
	Phone     string                `json:"phone,omitempty"`
	Rates     []ArtisanRateResponse `json:"rates"`
	CreatedAt time.Time             `json:"created_at"`
}

// ToWarehouseResponse converts a domain Warehouse
func ToWarehouseResponse(w *catalog.Warehouse) WarehouseResponse {
	return WarehouseResponse{ID: w.ID, Code: w.Code, Name: w.Name, Location: w.Location, CreatedAt: w.CreatedAt}
}

// ToProductTypeResponse converts a domain ProductType
func ToProductTypeResponse(p *catalog.ProductType) ProductTypeResponse {
	return ProductTypeResponse{ID: p.ID, Code: p.Code, Name: p.Name, Unit: p.Unit, Description: p.Description, CreatedAt: p.CreatedAt}
}

// ToColorCodeResponse converts a domain ColorCode
func ToColorCodeResponse(c *catalog.ColorCode) ColorCodeResponse {
	return ColorCodeResponse{ID: c.ID, Code: c.Code, Name: c.Name, Hex: c.Hex, CreatedAt: c.CreatedAt}
}

// ToServiceTypeResponse converts a domain ServiceType
func ToServiceTypeResponse(s *catalog.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{ID: s.ID, Code: s.Code, Name: s.Name, OverheadRate: s.OverheadRate, CreatedAt: s.CreatedAt}
}

// ToArtisanResponse converts a domain Artisan
func ToArtisanResponse(a *catalog.Artisan) ArtisanResponse {
	return ArtisanResponse{
		ID:    a.ID,
		Code:  a.Code,
		Name:  a.Name,
		Phone: a.Phone,
		Rates: lo.Map(a.Rates, func(r catalog.ArtisanRate, _ int) ArtisanRateResponse {
			return ArtisanRateResponse{ServiceTypeID: r.ServiceTypeID, RatePerUnit: r.RatePerUnit}
		}),
		CreatedAt: a.CreatedAt,
	}
}
