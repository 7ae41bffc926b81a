package persistence

import (
	"context"
	"fmt"

	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GormStockMovementRepository implements StockMovementRepository using GORM
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends movements to the journal
func (r *GormStockMovementRepository) Create(ctx context.Context, movements ...*inventory.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}
	rows := lo.Map(movements, func(m *inventory.StockMovement, _ int) *models.StockMovementModel {
		return models.StockMovementModelFromDomain(m)
	})
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("append stock movements: %w", err)
	}
	return nil
}

// FindByStockLine returns one page of a line's journal and the total count
func (r *GormStockMovementRepository) FindByStockLine(ctx context.Context, stockLineID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.StockMovementModel{}).Where("stock_line_id = ?", stockLineID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	var rows []models.StockMovementModel
	if err := query.
		Order(orderClause(filter.OrderBy, filter.OrderDir, StockMovementSortFields, "occurred_at")).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}

	return lo.Map(rows, func(m models.StockMovementModel, _ int) inventory.StockMovement {
		return *m.ToDomain()
	}), total, nil
}

var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
