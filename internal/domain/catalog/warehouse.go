package catalog

import (
	"github.com/erp/production/internal/domain/shared"
)

// Warehouse is a physical stock location
type Warehouse struct {
	shared.BaseAggregateRoot
	Code     string
	Name     string
	Location string
}

// NewWarehouse creates a warehouse with an allocated code
func NewWarehouse(code, name, location string) (*Warehouse, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	name, err := normalizeName("warehouse name", name)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(location); err != nil {
		return nil, err
	}

	return &Warehouse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Location:          location,
	}, nil
}
