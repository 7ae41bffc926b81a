package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrMeterNil is returned when no meter is supplied
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// StockLevel is the on-hand position of one warehouse
type StockLevel struct {
	WarehouseID uuid.UUID
	Quantity    decimal.Decimal
	Value       decimal.Decimal
}

// StockLevelProvider reports on-hand stock per warehouse for the gauges
type StockLevelProvider interface {
	StockLevels(ctx context.Context) ([]StockLevel, error)
}

// ProductionMetrics turns production events into counters and exposes
// on-hand stock as observable gauges. It subscribes to the event bus like
// any other handler.
type ProductionMetrics struct {
	logger *zap.Logger

	ordersCreated   metric.Int64Counter
	linesCompleted  metric.Int64Counter
	ordersCompleted metric.Int64Counter
	outputQuantity  metric.Float64Counter
	laborCost       metric.Float64Counter
	overheadCost    metric.Float64Counter
	unitCost        metric.Float64Histogram

	registration metric.Registration
}

// NewProductionMetrics registers the instruments on meter. stock may be nil,
// in which case no gauges are registered.
func NewProductionMetrics(meter metric.Meter, stock StockLevelProvider, logger *zap.Logger) (*ProductionMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pm := &ProductionMetrics{logger: logger}

	var err error
	if pm.ordersCreated, err = meter.Int64Counter("production_orders_created_total",
		metric.WithDescription("Production orders created"), metric.WithUnit("{orders}")); err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	if pm.linesCompleted, err = meter.Int64Counter("production_lines_completed_total",
		metric.WithDescription("Material lines completed"), metric.WithUnit("{lines}")); err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	if pm.ordersCompleted, err = meter.Int64Counter("production_orders_completed_total",
		metric.WithDescription("Production orders fully completed"), metric.WithUnit("{orders}")); err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	if pm.outputQuantity, err = meter.Float64Counter("production_output_quantity_total",
		metric.WithDescription("Output quantity credited to stock"), metric.WithUnit("{units}")); err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	if pm.laborCost, err = meter.Float64Counter("production_labor_cost_total",
		metric.WithDescription("Labor cost accrued to artisans")); err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	if pm.overheadCost, err = meter.Float64Counter("production_overhead_cost_total",
		metric.WithDescription("Overhead absorbed into output cost")); err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	if pm.unitCost, err = meter.Float64Histogram("production_output_unit_cost",
		metric.WithDescription("Per-unit cost of credited output"),
		metric.WithExplicitBucketBoundaries(UnitCostBuckets...)); err != nil {
		return nil, fmt.Errorf("failed to create histogram: %w", err)
	}

	if stock != nil {
		if err := pm.registerStockGauges(meter, stock); err != nil {
			return nil, err
		}
	}
	return pm, nil
}

func (pm *ProductionMetrics) registerStockGauges(meter metric.Meter, stock StockLevelProvider) error {
	quantity, err := meter.Float64ObservableGauge("inventory_on_hand_quantity",
		metric.WithDescription("Stock on hand per warehouse"), metric.WithUnit("{units}"))
	if err != nil {
		return fmt.Errorf("failed to create gauge: %w", err)
	}
	value, err := meter.Float64ObservableGauge("inventory_on_hand_value",
		metric.WithDescription("Stock value at weighted-average cost per warehouse"))
	if err != nil {
		return fmt.Errorf("failed to create gauge: %w", err)
	}

	pm.registration, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		levels, err := stock.StockLevels(ctx)
		if err != nil {
			pm.logger.Warn("Failed to collect stock levels", zap.Error(err))
			return nil
		}
		for _, l := range levels {
			attrs := metric.WithAttributes(AttrWarehouseID.String(l.WarehouseID.String()))
			o.ObserveFloat64(quantity, l.Quantity.InexactFloat64(), attrs)
			o.ObserveFloat64(value, l.Value.InexactFloat64(), attrs)
		}
		return nil
	}, quantity, value)
	if err != nil {
		return fmt.Errorf("failed to register stock callback: %w", err)
	}
	return nil
}

// EventTypes implements shared.EventHandler
func (pm *ProductionMetrics) EventTypes() []string {
	return []string{
		production.EventTypeProductionOrderCreated,
		production.EventTypeProductionLineCompleted,
		production.EventTypeProductionOrderCompleted,
	}
}

// Handle implements shared.EventHandler
func (pm *ProductionMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *production.ProductionOrderCreatedEvent:
		pm.ordersCreated.Add(ctx, 1, metric.WithAttributes(AttrServiceTypeID.String(e.ServiceTypeID.String())))
	case *production.ProductionLineCompletedEvent:
		attrs := metric.WithAttributes(AttrServiceTypeID.String(e.ServiceTypeID.String()))
		pm.linesCompleted.Add(ctx, 1, attrs)
		pm.outputQuantity.Add(ctx, e.OutputQuantity.InexactFloat64(), attrs)
		pm.laborCost.Add(ctx, e.LaborCost.InexactFloat64(), attrs)
		pm.overheadCost.Add(ctx, e.OverheadCost.InexactFloat64(), attrs)
		if e.OutputQuantity.IsPositive() {
			pm.unitCost.Record(ctx, e.UnitCost.InexactFloat64(), attrs)
		}
	case *production.ProductionOrderCompletedEvent:
		pm.ordersCompleted.Add(ctx, 1)
	}
	return nil
}

// Close unregisters the stock gauge callback
func (pm *ProductionMetrics) Close() error {
	if pm.registration == nil {
		return nil
	}
	return pm.registration.Unregister()
}

// GormStockLevelProvider aggregates stock_lines per warehouse
type GormStockLevelProvider struct {
	db *gorm.DB
}

// NewGormStockLevelProvider creates a provider over db
func NewGormStockLevelProvider(db *gorm.DB) *GormStockLevelProvider {
	return &GormStockLevelProvider{db: db}
}

// StockLevels implements StockLevelProvider
func (p *GormStockLevelProvider) StockLevels(ctx context.Context) ([]StockLevel, error) {
	var rows []StockLevel
	err := p.db.WithContext(ctx).
		Model(&models.StockLineModel{}).
		Select("warehouse_id, SUM(quantity) AS quantity, SUM(quantity * unit_cost) AS value").
		Group("warehouse_id").
		Order("warehouse_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate stock levels: %w", err)
	}
	return rows, nil
}
