// Package sequence describes the human-readable code ranges handed out to
// master data and production orders.
package sequence

import (
	"context"
	"fmt"

	"github.com/erp/production/internal/domain/shared"
)

// Category is an independent code range
type Category string

const (
	CategoryClient          Category = "client"
	CategorySupplier        Category = "supplier"
	CategoryColorCode       Category = "color_code"
	CategoryWarehouse       Category = "warehouse"
	CategoryProductType     Category = "product_type"
	CategoryServiceType     Category = "service_type"
	CategoryArtisan         Category = "artisan"
	CategoryProductionOrder Category = "production_order"
)

type categoryInfo struct {
	start  int64
	prefix string
}

// first code issued and display prefix per category
var categories = map[Category]categoryInfo{
	CategoryClient:          {start: 100001, prefix: "CL"},
	CategorySupplier:        {start: 200001, prefix: "SUP"},
	CategoryColorCode:       {start: 300001, prefix: "C"},
	CategoryWarehouse:       {start: 400001, prefix: "WH"},
	CategoryProductType:     {start: 500001, prefix: "PT"},
	CategoryServiceType:     {start: 600001, prefix: "SRV"},
	CategoryArtisan:         {start: 700001, prefix: "ART"},
	CategoryProductionOrder: {start: 800001, prefix: "PRD"},
}

// AllCategories returns every known category
func AllCategories() []Category {
	return []Category{
		CategoryClient,
		CategorySupplier,
		CategoryColorCode,
		CategoryWarehouse,
		CategoryProductType,
		CategoryServiceType,
		CategoryArtisan,
		CategoryProductionOrder,
	}
}

// IsValid returns true if the category is known
func (c Category) IsValid() bool {
	_, ok := categories[c]
	return ok
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// StartValue is the first code issued for the category
func (c Category) StartValue() int64 {
	return categories[c].start
}

// SeedValue is the counter value stored before any code has been issued
func (c Category) SeedValue() int64 {
	return c.StartValue() - 1
}

// Prefix is the display prefix for codes of the category
func (c Category) Prefix() string {
	return categories[c].prefix
}

// Format renders a numeric code for display, e.g. PRD-800001
func (c Category) Format(code int64) string {
	return fmt.Sprintf("%s-%d", c.Prefix(), code)
}

// CodeAllocator issues unique, strictly increasing codes per category.
// Implementations must be safe across concurrent callers and processes.
type CodeAllocator interface {
	NextCode(ctx context.Context, category Category) (int64, error)
}

// Next allocates a code and formats it for display
func Next(ctx context.Context, allocator CodeAllocator, category Category) (string, error) {
	if !category.IsValid() {
		return "", shared.NewValidationError("unknown code category %q", category)
	}
	code, err := allocator.NextCode(ctx, category)
	if err != nil {
		return "", err
	}
	return category.Format(code), nil
}
