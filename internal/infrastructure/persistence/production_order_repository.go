package persistence

import (
	"context"
	"fmt"

	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const productionOrderResource = "production order"

// GormProductionOrderRepository implements ProductionOrderRepository using GORM
type GormProductionOrderRepository struct {
	db *gorm.DB
}

// NewGormProductionOrderRepository creates a new GormProductionOrderRepository
func NewGormProductionOrderRepository(db *gorm.DB) *GormProductionOrderRepository {
	return &GormProductionOrderRepository{db: db}
}

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") }).
		Preload("Outputs", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") })
}

// Create inserts the order header and its material lines
func (r *GormProductionOrderRepository) Create(ctx context.Context, order *production.ProductionOrder) error {
	m := models.ProductionOrderModelFromDomain(order)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return fmt.Errorf("create production order %s: %w", order.OrderNumber, err)
	}
	if len(m.Lines) > 0 {
		if err := db.Create(&m.Lines).Error; err != nil {
			return fmt.Errorf("create material lines of %s: %w", order.OrderNumber, err)
		}
	}
	if len(m.Outputs) > 0 {
		if err := db.Create(&m.Outputs).Error; err != nil {
			return fmt.Errorf("create outputs of %s: %w", order.OrderNumber, err)
		}
	}
	return nil
}

// FindByID loads an order with its lines and outputs
func (r *GormProductionOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ProductionOrder, error) {
	var m models.ProductionOrderModel
	if err := preloadOrder(r.db.WithContext(ctx)).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, productionOrderResource, id)
	}
	return m.ToDomain(), nil
}

// FindByIDForUpdate locks the order header row and loads its lines and
// outputs. Lines are only ever changed under the header lock.
func (r *GormProductionOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*production.ProductionOrder, error) {
	var m models.ProductionOrderModel
	if err := preloadOrder(forUpdate(r.db.WithContext(ctx))).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, productionOrderResource, id)
	}
	return m.ToDomain(), nil
}

// SaveWithLock writes back the header if its version is unchanged, then the
// completed lines, then any outputs not stored yet
func (r *GormProductionOrderRepository) SaveWithLock(ctx context.Context, order *production.ProductionOrder) error {
	db := r.db.WithContext(ctx)

	result := db.Model(&models.ProductionOrderModel{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(map[string]any{
			"status":              order.Status.String(),
			"total_material_cost": order.TotalMaterialCost,
			"total_labor_cost":    order.TotalLaborCost,
			"overhead_cost":       order.OverheadCost,
			"total_cost":          order.TotalCost,
			"notes":               order.Notes,
			"version":             order.Version + 1,
			"updated_at":          order.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("save production order %s: %w", order.OrderNumber, result.Error)
	}
	if result.RowsAffected == 0 {
		return optimisticLockFailed(productionOrderResource, order.ID)
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		if line.IsPending() {
			continue
		}
		m := models.MaterialConsumptionModelFromDomain(line)
		if err := db.Model(&models.MaterialConsumptionModel{}).
			Where("id = ?", line.ID).
			Updates(map[string]any{
				"actual_output_quantity": m.ActualOutputQuantity,
				"waste_quantity":         m.WasteQuantity,
				"extraction_rate":        m.ExtractionRate,
				"labor_cost":             m.LaborCost,
				"overhead_cost":          m.OverheadCost,
				"status":                 m.Status,
				"completed_at":           m.CompletedAt,
				"updated_at":             m.UpdatedAt,
			}).Error; err != nil {
			return fmt.Errorf("save material line %d of %s: %w", line.LineNo, order.OrderNumber, err)
		}
	}

	if len(order.Outputs) > 0 {
		outputs := lo.Map(order.Outputs, func(o production.OrderOutput, _ int) *models.OrderOutputModel {
			return models.OrderOutputModelFromDomain(&o)
		})
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "consumption_id"}},
			DoNothing: true,
		}).Create(&outputs).Error; err != nil {
			return fmt.Errorf("save outputs of %s: %w", order.OrderNumber, err)
		}
	}

	order.IncrementVersion()
	return nil
}

// FindPendingLines returns the order's lines still awaiting completion
func (r *GormProductionOrderRepository) FindPendingLines(ctx context.Context, orderID uuid.UUID) ([]production.MaterialConsumption, error) {
	var rows []models.MaterialConsumptionModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, production.LineStatusPending.String()).
		Order("line_no ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list pending lines of %s: %w", orderID, err)
	}
	return lo.Map(rows, func(m models.MaterialConsumptionModel, _ int) production.MaterialConsumption {
		return *m.ToDomain()
	}), nil
}

// ExistsByID reports whether an order with the given ID exists
func (r *GormProductionOrderRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProductionOrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check production order %s: %w", id, err)
	}
	return count > 0, nil
}

var _ production.ProductionOrderRepository = (*GormProductionOrderRepository)(nil)
