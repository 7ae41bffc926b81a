package catalog

import (
	"context"

	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/sequence"
)

// TransactionScope runs a code allocation and the insert it labels as one
// unit of work
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the catalog repositories and the code
// allocator bound to one transaction
type TransactionalRepositories interface {
	Warehouses() catalog.WarehouseRepository
	ProductTypes() catalog.ProductTypeRepository
	ColorCodes() catalog.ColorCodeRepository
	ServiceTypes() catalog.ServiceTypeRepository
	Artisans() catalog.ArtisanRepository
	CodeAllocator() sequence.CodeAllocator
}
