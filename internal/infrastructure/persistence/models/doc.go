// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// of ORM concerns; each model converts with ToDomain and FromDomain.
//
// Structure:
//   - base.go: shared columns (BaseModel, AggregateModel)
//   - catalog.go: warehouses, product types, color codes, service types, artisans
//   - inventory.go: stock lines and the stock movement journal
//   - production.go: production orders, material consumptions, order outputs
//   - sequence.go: per-category code counters
package models
