package catalog

import (
	"context"

	"github.com/google/uuid"
)

// WarehouseRepository persists warehouses
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *Warehouse) error
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)
}

// ProductTypeRepository persists product types
type ProductTypeRepository interface {
	Create(ctx context.Context, productType *ProductType) error
	FindByID(ctx context.Context, id uuid.UUID) (*ProductType, error)
}

// ColorCodeRepository persists color codes
type ColorCodeRepository interface {
	Create(ctx context.Context, colorCode *ColorCode) error
	FindByID(ctx context.Context, id uuid.UUID) (*ColorCode, error)
}

// ServiceTypeRepository persists service types
type ServiceTypeRepository interface {
	Create(ctx context.Context, serviceType *ServiceType) error
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceType, error)
}

// ArtisanRepository persists artisans with their rates
type ArtisanRepository interface {
	Create(ctx context.Context, artisan *Artisan) error
	FindByID(ctx context.Context, id uuid.UUID) (*Artisan, error)
}
