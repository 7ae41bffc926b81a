package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const stockLineResource = "stock line"

// GormStockLineRepository implements StockLineRepository using GORM
type GormStockLineRepository struct {
	db *gorm.DB
}

// NewGormStockLineRepository creates a new GormStockLineRepository
func NewGormStockLineRepository(db *gorm.DB) *GormStockLineRepository {
	return &GormStockLineRepository{db: db}
}

func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// FindByID finds a stock line by its ID
func (r *GormStockLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockLine, error) {
	var m models.StockLineModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, stockLineResource, id)
	}
	return m.ToDomain(), nil
}

// FindByIDForUpdate finds and row-locks a stock line
func (r *GormStockLineRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.StockLine, error) {
	var m models.StockLineModel
	if err := forUpdate(r.db.WithContext(ctx)).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, stockLineResource, id)
	}
	return m.ToDomain(), nil
}

// FindByIDsForUpdate locks all lines in ascending ID order so that
// concurrent callers acquire overlapping locks in the same order
func (r *GormStockLineRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*inventory.StockLine, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]*inventory.StockLine{}, nil
	}

	var rows []models.StockLineModel
	if err := forUpdate(r.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("lock stock lines: %w", err)
	}

	lines := make(map[uuid.UUID]*inventory.StockLine, len(rows))
	for i := range rows {
		lines[rows[i].ID] = rows[i].ToDomain()
	}
	for _, id := range ids {
		if _, ok := lines[id]; !ok {
			return nil, shared.NewNotFoundError(stockLineResource, id)
		}
	}
	return lines, nil
}

func (r *GormStockLineRepository) keyQuery(db *gorm.DB, key inventory.StockLineKey) *gorm.DB {
	return db.Where("warehouse_id = ? AND product_type_id = ? AND color_key = ?",
		key.WarehouseID, key.ProductTypeID, key.Color.Key())
}

// FindByKey finds a stock line by its natural key
func (r *GormStockLineRepository) FindByKey(ctx context.Context, key inventory.StockLineKey) (*inventory.StockLine, error) {
	var m models.StockLineModel
	if err := r.keyQuery(r.db.WithContext(ctx), key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, fmt.Sprintf("stock line %s not found", key))
		}
		return nil, fmt.Errorf("load stock line %s: %w", key, err)
	}
	return m.ToDomain(), nil
}

func (r *GormStockLineRepository) findByKeyForUpdate(ctx context.Context, key inventory.StockLineKey) (*inventory.StockLine, error) {
	var m models.StockLineModel
	if err := r.keyQuery(forUpdate(r.db.WithContext(ctx)), key).First(&m).Error; err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

// GetOrCreateForUpdate returns the locked line for key, inserting an empty
// line first when none exists. A concurrent insert of the same key is
// resolved by ON CONFLICT DO NOTHING and a re-read.
func (r *GormStockLineRepository) GetOrCreateForUpdate(ctx context.Context, key inventory.StockLineKey, unitPrice decimal.Decimal) (*inventory.StockLine, bool, error) {
	line, err := r.findByKeyForUpdate(ctx, key)
	if err == nil {
		return line, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("load stock line %s: %w", key, err)
	}

	line, err = inventory.NewStockLine(key, unitPrice)
	if err != nil {
		return nil, false, err
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_type_id"}, {Name: "color_key"}},
			DoNothing: true,
		}).
		Create(models.StockLineModelFromDomain(line))
	if result.Error != nil {
		return nil, false, fmt.Errorf("create stock line %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		existing, err := r.findByKeyForUpdate(ctx, key)
		if err != nil {
			return nil, false, fmt.Errorf("load stock line %s: %w", key, err)
		}
		return existing, false, nil
	}
	return line, true, nil
}

// FindAll finds stock lines matching the filter and the total match count
func (r *GormStockLineRepository) FindAll(ctx context.Context, filter inventory.StockLineFilter) ([]inventory.StockLine, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.StockLineModel{})
	if filter.WarehouseID != nil {
		query = query.Where("warehouse_id = ?", *filter.WarehouseID)
	}
	if filter.ProductTypeID != nil {
		query = query.Where("product_type_id = ?", *filter.ProductTypeID)
	}
	if filter.InStockOnly {
		query = query.Where("quantity > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count stock lines: %w", err)
	}

	var rows []models.StockLineModel
	if err := query.
		Order(orderClause(filter.OrderBy, filter.OrderDir, StockLineSortFields, "created_at")).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list stock lines: %w", err)
	}

	return lo.Map(rows, func(m models.StockLineModel, _ int) inventory.StockLine {
		return *m.ToDomain()
	}), total, nil
}

// SaveWithLock writes the line back if nobody changed it since it was read
func (r *GormStockLineRepository) SaveWithLock(ctx context.Context, line *inventory.StockLine) error {
	result := r.db.WithContext(ctx).
		Model(&models.StockLineModel{}).
		Where("id = ? AND version = ?", line.ID, line.Version).
		Updates(map[string]any{
			"quantity":   line.Quantity,
			"unit_cost":  line.UnitCost,
			"unit_price": line.UnitPrice,
			"version":    line.Version + 1,
			"updated_at": line.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("save stock line %s: %w", line.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return optimisticLockFailed(stockLineResource, line.ID)
	}
	line.IncrementVersion()
	return nil
}

var _ inventory.StockLineRepository = (*GormStockLineRepository)(nil)
