// Package catalog holds the reference data consumed by production:
// warehouses, product types, color codes, service types and artisans.
package catalog
