package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// createError maps unique violations on the code column to ALREADY_EXISTS
func createError(resource, code string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewDomainError(shared.CodeAlreadyExists, fmt.Sprintf("%s with code %s already exists", resource, code))
	}
	return fmt.Errorf("create %s %s: %w", resource, code, err)
}

// GormWarehouseRepository implements WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// Create inserts a warehouse
func (r *GormWarehouseRepository) Create(ctx context.Context, w *catalog.Warehouse) error {
	if err := r.db.WithContext(ctx).Create(models.WarehouseModelFromDomain(w)).Error; err != nil {
		return createError("warehouse", w.Code, err)
	}
	return nil
}

// FindByID finds a warehouse by ID
func (r *GormWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Warehouse, error) {
	var m models.WarehouseModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "warehouse", id)
	}
	return m.ToDomain(), nil
}

// GormProductTypeRepository implements ProductTypeRepository using GORM
type GormProductTypeRepository struct {
	db *gorm.DB
}

// NewGormProductTypeRepository creates a new GormProductTypeRepository
func NewGormProductTypeRepository(db *gorm.DB) *GormProductTypeRepository {
	return &GormProductTypeRepository{db: db}
}

// Create inserts a product type
func (r *GormProductTypeRepository) Create(ctx context.Context, p *catalog.ProductType) error {
	if err := r.db.WithContext(ctx).Create(models.ProductTypeModelFromDomain(p)).Error; err != nil {
		return createError("product type", p.Code, err)
	}
	return nil
}

// FindByID finds a product type by ID
func (r *GormProductTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductType, error) {
	var m models.ProductTypeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "product type", id)
	}
	return m.ToDomain(), nil
}

// GormColorCodeRepository implements ColorCodeRepository using GORM
type GormColorCodeRepository struct {
	db *gorm.DB
}

// NewGormColorCodeRepository creates a new GormColorCodeRepository
func NewGormColorCodeRepository(db *gorm.DB) *GormColorCodeRepository {
	return &GormColorCodeRepository{db: db}
}

// Create inserts a color code
func (r *GormColorCodeRepository) Create(ctx context.Context, c *catalog.ColorCode) error {
	if err := r.db.WithContext(ctx).Create(models.ColorCodeModelFromDomain(c)).Error; err != nil {
		return createError("color code", c.Code, err)
	}
	return nil
}

// FindByID finds a color code by ID
func (r *GormColorCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ColorCode, error) {
	var m models.ColorCodeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "color code", id)
	}
	return m.ToDomain(), nil
}

// GormServiceTypeRepository implements ServiceTypeRepository using GORM
type GormServiceTypeRepository struct {
	db *gorm.DB
}

// NewGormServiceTypeRepository creates a new GormServiceTypeRepository
func NewGormServiceTypeRepository(db *gorm.DB) *GormServiceTypeRepository {
	return &GormServiceTypeRepository{db: db}
}

// Create inserts a service type
func (r *GormServiceTypeRepository) Create(ctx context.Context, s *catalog.ServiceType) error {
	if err := r.db.WithContext(ctx).Create(models.ServiceTypeModelFromDomain(s)).Error; err != nil {
		return createError("service type", s.Code, err)
	}
	return nil
}

// FindByID finds a service type by ID
func (r *GormServiceTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceType, error) {
	var m models.ServiceTypeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "service type", id)
	}
	return m.ToDomain(), nil
}

// GormArtisanRepository implements ArtisanRepository using GORM
type GormArtisanRepository struct {
	db *gorm.DB
}

// NewGormArtisanRepository creates a new GormArtisanRepository
func NewGormArtisanRepository(db *gorm.DB) *GormArtisanRepository {
	return &GormArtisanRepository{db: db}
}

// Create inserts an artisan and its rates
func (r *GormArtisanRepository) Create(ctx context.Context, a *catalog.Artisan) error {
	m := models.ArtisanModelFromDomain(a)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return createError("artisan", a.Code, err)
		}
		if len(m.Rates) == 0 {
			return nil
		}
		if err := tx.Create(&m.Rates).Error; err != nil {
			return fmt.Errorf("create rates of artisan %s: %w", a.Code, err)
		}
		return nil
	})
}

// FindByID finds an artisan by ID with its rates
func (r *GormArtisanRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Artisan, error) {
	var m models.ArtisanModel
	if err := r.db.WithContext(ctx).Preload("Rates").First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "artisan", id)
	}
	return m.ToDomain(), nil
}

var (
	_ catalog.WarehouseRepository   = (*GormWarehouseRepository)(nil)
	_ catalog.ProductTypeRepository = (*GormProductTypeRepository)(nil)
	_ catalog.ColorCodeRepository   = (*GormColorCodeRepository)(nil)
	_ catalog.ServiceTypeRepository = (*GormServiceTypeRepository)(nil)
	_ catalog.ArtisanRepository     = (*GormArtisanRepository)(nil)
)
