package catalog

import (
	"strings"

	"github.com/erp/production/internal/domain/costing"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArtisanRate is the labor rate per produced unit an artisan is qualified
// to charge for one service type
type ArtisanRate struct {
	ServiceTypeID uuid.UUID
	RatePerUnit   decimal.Decimal
}

// Artisan is an outsourced craftsperson. The balance and payment ledger of
// an artisan is kept outside this service.
type Artisan struct {
	shared.BaseAggregateRoot
	Code  string
	Name  string
	Phone string
	Rates []ArtisanRate
}

// NewArtisan creates an artisan with an allocated code and qualified rates
func NewArtisan(code, name, phone string, rates []ArtisanRate) (*Artisan, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	name, err := normalizeName("artisan name", name)
	if err != nil {
		return nil, err
	}
	phone = strings.TrimSpace(phone)
	if len(phone) > 30 {
		return nil, shared.NewValidationError("phone cannot exceed 30 characters")
	}

	artisan := &Artisan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Phone:             phone,
	}
	for _, r := range rates {
		if _, dup := artisan.RateFor(r.ServiceTypeID); dup {
			return nil, shared.NewValidationError("duplicate rate for service type %s", r.ServiceTypeID)
		}
		if err := artisan.SetRate(r.ServiceTypeID, r.RatePerUnit); err != nil {
			return nil, err
		}
	}
	return artisan, nil
}

// SetRate adds or replaces the rate for a service type
func (a *Artisan) SetRate(serviceTypeID uuid.UUID, ratePerUnit decimal.Decimal) error {
	if serviceTypeID == uuid.Nil {
		return shared.NewValidationError("service type ID cannot be empty")
	}
	if ratePerUnit.IsNegative() {
		return shared.NewValidationError("rate per unit cannot be negative")
	}
	ratePerUnit = ratePerUnit.Round(costing.Scale)

	for i := range a.Rates {
		if a.Rates[i].ServiceTypeID == serviceTypeID {
			a.Rates[i].RatePerUnit = ratePerUnit
			a.Touch()
			return nil
		}
	}
	a.Rates = append(a.Rates, ArtisanRate{ServiceTypeID: serviceTypeID, RatePerUnit: ratePerUnit})
	a.Touch()
	return nil
}

// RateFor returns the qualified rate for a service type
func (a *Artisan) RateFor(serviceTypeID uuid.UUID) (decimal.Decimal, bool) {
	for _, r := range a.Rates {
		if r.ServiceTypeID == serviceTypeID {
			return r.RatePerUnit, true
		}
	}
	return decimal.Zero, false
}
