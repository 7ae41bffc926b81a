package inventory

import (
	"context"

	"github.com/erp/production/internal/domain/inventory"
)

// ResolveStockLineKey turns a key request into a domain key. The warehouse,
// the product type and a cataloged color must all exist.
func ResolveStockLineKey(ctx context.Context, refs ReferenceLookup, in StockLineKeyInput) (inventory.StockLineKey, error) {
	color, err := in.Color.ToIdentity()
	if err != nil {
		return inventory.StockLineKey{}, err
	}
	key := inventory.StockLineKey{
		WarehouseID:   in.WarehouseID,
		ProductTypeID: in.ProductTypeID,
		Color:         color,
	}
	if err := key.Validate(); err != nil {
		return inventory.StockLineKey{}, err
	}

	if _, err := refs.Warehouses().FindByID(ctx, key.WarehouseID); err != nil {
		return inventory.StockLineKey{}, err
	}
	if _, err := refs.ProductTypes().FindByID(ctx, key.ProductTypeID); err != nil {
		return inventory.StockLineKey{}, err
	}
	if colorCodeID, ok := color.ColorCodeID(); ok {
		if _, err := refs.ColorCodes().FindByID(ctx, colorCodeID); err != nil {
			return inventory.StockLineKey{}, err
		}
	}
	return key, nil
}
