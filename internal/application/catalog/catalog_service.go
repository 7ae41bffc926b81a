package catalog

import (
	"context"

	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/sequence"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Repositories is the set of read repositories used outside transactions
type Repositories struct {
	Warehouses   catalog.WarehouseRepository
	ProductTypes catalog.ProductTypeRepository
	ColorCodes   catalog.ColorCodeRepository
	ServiceTypes catalog.ServiceTypeRepository
	Artisans     catalog.ArtisanRepository
}

// CatalogService maintains the reference tables production depends on.
// Every created row receives its code from the allocator inside the same
// transaction as the insert.
type CatalogService struct {
	repos   Repositories
	txScope TransactionScope
	logger  *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repos Repositories, txScope TransactionScope, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repos: repos, txScope: txScope, logger: logger}
}

// create allocates a code for category, builds the row with it and stores it
func create[T any](
	ctx context.Context,
	s *CatalogService,
	category sequence.Category,
	build func(code string) (*T, error),
	store func(repos TransactionalRepositories, row *T) error,
) (*T, error) {
	var row *T
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		code, err := sequence.Next(ctx, repos.CodeAllocator(), category)
		if err != nil {
			return err
		}
		row, err = build(code)
		if err != nil {
			return err
		}
		return store(repos, row)
	})
	if err != nil {
		s.logger.Warn("catalog entry rejected", zap.String("category", category.String()), zap.Error(err))
		return nil, err
	}
	return row, nil
}

// CreateWarehouse creates a warehouse
func (s *CatalogService) CreateWarehouse(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	w, err := create(ctx, s, sequence.CategoryWarehouse,
		func(code string) (*catalog.Warehouse, error) {
			return catalog.NewWarehouse(code, req.Name, req.Location)
		},
		func(repos TransactionalRepositories, w *catalog.Warehouse) error {
			return repos.Warehouses().Create(ctx, w)
		})
	if err != nil {
		return nil, err
	}
	s.logger.Info("warehouse created", zap.String("code", w.Code))
	return lo.ToPtr(ToWarehouseResponse(w)), nil
}

// CreateProductType creates a product type
func (s *CatalogService) CreateProductType(ctx context.Context, req CreateProductTypeRequest) (*ProductTypeResponse, error) {
	p, err := create(ctx, s, sequence.CategoryProductType,
		func(code string) (*catalog.ProductType, error) {
			return catalog.NewProductType(code, req.Name, req.Unit, req.Description)
		},
		func(repos TransactionalRepositories, p *catalog.ProductType) error {
			return repos.ProductTypes().Create(ctx, p)
		})
	if err != nil {
		return nil, err
	}
	s.logger.Info("product type created", zap.String("code", p.Code))
	return lo.ToPtr(ToProductTypeResponse(p)), nil
}

// CreateColorCode creates a color code
func (s *CatalogService) CreateColorCode(ctx context.Context, req CreateColorCodeRequest) (*ColorCodeResponse, error) {
	c, err := create(ctx, s, sequence.CategoryColorCode,
		func(code string) (*catalog.ColorCode, error) {
			return catalog.NewColorCode(code, req.Name, req.Hex)
		},
		func(repos TransactionalRepositories, c *catalog.ColorCode) error {
			return repos.ColorCodes().Create(ctx, c)
		})
	if err != nil {
		return nil, err
	}
	s.logger.Info("color code created", zap.String("code", c.Code))
	return lo.ToPtr(ToColorCodeResponse(c)), nil
}

// CreateServiceType creates a service type
func (s *CatalogService) CreateServiceType(ctx context.Context, req CreateServiceTypeRequest) (*ServiceTypeResponse, error) {
	st, err := create(ctx, s, sequence.CategoryServiceType,
		func(code string) (*catalog.ServiceType, error) {
			return catalog.NewServiceType(code, req.Name, req.OverheadRate)
		},
		func(repos TransactionalRepositories, st *catalog.ServiceType) error {
			return repos.ServiceTypes().Create(ctx, st)
		})
	if err != nil {
		return nil, err
	}
	s.logger.Info("service type created",
		zap.String("code", st.Code),
		zap.String("overhead_rate", st.OverheadRate.String()),
	)
	return lo.ToPtr(ToServiceTypeResponse(st)), nil
}

// CreateArtisan creates an artisan. Every rate must name an existing
// service type.
func (s *CatalogService) CreateArtisan(ctx context.Context, req CreateArtisanRequest) (*ArtisanResponse, error) {
	rates := lo.Map(req.Rates, func(r ArtisanRateRequest, _ int) catalog.ArtisanRate {
		return catalog.ArtisanRate{ServiceTypeID: r.ServiceTypeID, RatePerUnit: r.RatePerUnit}
	})
	a, err := create(ctx, s, sequence.CategoryArtisan,
		func(code string) (*catalog.Artisan, error) {
			return catalog.NewArtisan(code, req.Name, req.Phone, rates)
		},
		func(repos TransactionalRepositories, a *catalog.Artisan) error {
			for _, r := range a.Rates {
				if _, err := repos.ServiceTypes().FindByID(ctx, r.ServiceTypeID); err != nil {
					return err
				}
			}
			return repos.Artisans().Create(ctx, a)
		})
	if err != nil {
		return nil, err
	}
	s.logger.Info("artisan created", zap.String("code", a.Code), zap.Int("rates", len(a.Rates)))
	return lo.ToPtr(ToArtisanResponse(a)), nil
}

// GetWarehouse retrieves a warehouse by ID
func (s *CatalogService) GetWarehouse(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	w, err := s.repos.Warehouses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(ToWarehouseResponse(w)), nil
}

// GetProductType retrieves a product type by ID
func (s *CatalogService) GetProductType(ctx context.Context, id uuid.UUID) (*ProductTypeResponse, error) {
	p, err := s.repos.ProductTypes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(ToProductTypeResponse(p)), nil
}

// GetColorCode retrieves a color code by ID
func (s *CatalogService) GetColorCode(ctx context.Context, id uuid.UUID) (*ColorCodeResponse, error) {
	c, err := s.repos.ColorCodes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(ToColorCodeResponse(c)), nil
}

// GetServiceType retrieves a service type by ID
func (s *CatalogService) GetServiceType(ctx context.Context, id uuid.UUID) (*ServiceTypeResponse, error) {
	st, err := s.repos.ServiceTypes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(ToServiceTypeResponse(st)), nil
}

// GetArtisan retrieves an artisan with its rates by ID
func (s *CatalogService) GetArtisan(ctx context.Context, id uuid.UUID) (*ArtisanResponse, error) {
	a, err := s.repos.Artisans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(ToArtisanResponse(a)), nil
}
