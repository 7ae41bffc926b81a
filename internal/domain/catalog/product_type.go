package catalog

import (
	"strings"

	"github.com/erp/production/internal/domain/shared"
)

// DefaultUnit is used when a product type is created without a unit
const DefaultUnit = "kg"

// ProductType classifies stock, e.g. raw wool or spun yarn
type ProductType struct {
	shared.BaseAggregateRoot
	Code        string
	Name        string
	Unit        string
	Description string
}

// NewProductType creates a product type with an allocated code
func NewProductType(code, name, unit, description string) (*ProductType, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	name, err := normalizeName("product type name", name)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = DefaultUnit
	}
	if len(unit) > 20 {
		return nil, shared.NewValidationError("unit cannot exceed 20 characters")
	}

	return &ProductType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Unit:              unit,
		Description:       description,
	}, nil
}
