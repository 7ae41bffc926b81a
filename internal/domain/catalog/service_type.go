package catalog

import (
	"github.com/erp/production/internal/domain/costing"
	"github.com/erp/production/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ServiceType is a kind of outsourced work, e.g. spinning or dyeing.
// OverheadRate is the fraction of labor cost added as overhead.
type ServiceType struct {
	shared.BaseAggregateRoot
	Code         string
	Name         string
	OverheadRate decimal.Decimal
}

// NewServiceType creates a service type with an allocated code
func NewServiceType(code, name string, overheadRate decimal.Decimal) (*ServiceType, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	name, err := normalizeName("service type name", name)
	if err != nil {
		return nil, err
	}
	if err := validateOverheadRate(overheadRate); err != nil {
		return nil, err
	}

	return &ServiceType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		OverheadRate:      overheadRate.Round(costing.Scale),
	}, nil
}

// SetOverheadRate changes the rate applied to orders created afterwards
func (s *ServiceType) SetOverheadRate(rate decimal.Decimal) error {
	if err := validateOverheadRate(rate); err != nil {
		return err
	}
	s.OverheadRate = rate.Round(costing.Scale)
	s.Touch()
	return nil
}

func validateOverheadRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return shared.NewValidationError("overhead rate must be within [0, 1), got %s", rate.String())
	}
	return nil
}
