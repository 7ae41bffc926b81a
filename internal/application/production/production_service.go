package production

import (
	"context"
	"errors"
	"sort"
	"time"

	appinv "github.com/erp/production/internal/application/inventory"
	"github.com/erp/production/internal/domain/catalog"
	"github.com/erp/production/internal/domain/costing"
	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/domain/sequence"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ProductionService creates production orders and completes their lines.
// Every mutating operation runs in a single transaction scope; domain events
// are published only after the transaction has committed.
type ProductionService struct {
	orders         production.ProductionOrderRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
	now            func() time.Time
}

// NewProductionService creates a new ProductionService
func NewProductionService(
	orders production.ProductionOrderRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *ProductionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionService{
		orders:  orders,
		txScope: txScope,
		logger:  logger,
		now:     time.Now,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ProductionService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateOrder debits every material line and persists the order with all
// lines pending. If any line cannot be covered, nothing is debited.
func (s *ProductionService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "production", "CreateOrder",
		attribute.Int("materials", len(req.Materials)))
	resp, err := s.createOrder(ctx, req)
	telemetry.EndSpan(span, err)
	return resp, err
}

func (s *ProductionService) createOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	inputs := lo.Map(req.Materials, func(m MaterialRequest, _ int) production.MaterialInput {
		return production.MaterialInput{
			StockLineID:            m.StockLineID,
			QuantityUsed:           m.QuantityUsed,
			ExpectedOutputQuantity: m.ExpectedOutputQuantity,
		}
	})
	if err := s.validateCreate(req, inputs); err != nil {
		return nil, err
	}

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = s.now().UTC().Truncate(24 * time.Hour)
	}

	var order *production.ProductionOrder
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		serviceType, err := repos.ServiceTypes().FindByID(ctx, req.ServiceTypeID)
		if err != nil {
			return err
		}
		artisan, err := repos.Artisans().FindByID(ctx, req.ArtisanID)
		if err != nil {
			return err
		}
		laborRate, err := resolveLaborRate(artisan, serviceType, req.LaborRateOverride)
		if err != nil {
			return err
		}

		ids := lo.Uniq(lo.Map(inputs, func(in production.MaterialInput, _ int) uuid.UUID { return in.StockLineID }))
		lines, err := repos.StockLines().FindByIDsForUpdate(ctx, ids)
		if err != nil {
			return err
		}

		movements := make([]*inventory.StockMovement, 0, len(inputs))
		for i := range inputs {
			line, ok := lines[inputs[i].StockLineID]
			if !ok {
				return shared.NewNotFoundError("stock line", inputs[i].StockLineID)
			}
			if !line.CanDebit(inputs[i].QuantityUsed) {
				return production.NewInsufficientMaterialError(i+1, line.ID, inputs[i].QuantityUsed, line.Quantity)
			}
			inputs[i].UnitCostAtDebit = line.UnitCost
			movement, err := line.Debit(inputs[i].QuantityUsed, inventory.MovementSource{Type: inventory.SourceTypeProductionInput})
			if err != nil {
				return err
			}
			movements = append(movements, movement)
		}

		orderNumber, err := sequence.Next(ctx, repos.CodeAllocator(), sequence.CategoryProductionOrder)
		if err != nil {
			return err
		}
		order, err = production.NewProductionOrder(production.NewOrderParams{
			OrderNumber:      orderNumber,
			OrderDate:        orderDate,
			ServiceTypeID:    serviceType.ID,
			ArtisanID:        artisan.ID,
			LaborCostPerUnit: laborRate,
			OverheadRate:     serviceType.OverheadRate,
			Materials:        inputs,
			Notes:            req.Notes,
		})
		if err != nil {
			return err
		}
		for _, m := range movements {
			m.SourceID = order.ID
			m.Reference = order.OrderNumber
		}

		if err := saveStockLines(ctx, repos.StockLines(), lines); err != nil {
			return err
		}
		if err := repos.Orders().Create(ctx, order); err != nil {
			return err
		}
		return repos.Movements().Create(ctx, movements...)
	})
	if err != nil {
		s.logger.Warn("production order rejected",
			zap.String("service_type_id", req.ServiceTypeID.String()),
			zap.String("artisan_id", req.ArtisanID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("production order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Int("lines", len(order.Lines)),
		zap.String("total_material_cost", order.TotalMaterialCost.String()),
	)
	s.publishDomainEvents(ctx, order)

	resp := ToOrderResponse(order)
	return &resp, nil
}

func (s *ProductionService) validateCreate(req CreateOrderRequest, inputs []production.MaterialInput) error {
	if req.ServiceTypeID == uuid.Nil {
		return shared.NewValidationError("service type ID is required")
	}
	if req.ArtisanID == uuid.Nil {
		return shared.NewValidationError("artisan ID is required")
	}
	if req.LaborRateOverride != nil && req.LaborRateOverride.IsNegative() {
		return shared.NewValidationError("labor rate override cannot be negative")
	}
	return production.ValidateMaterials(inputs)
}

// resolveLaborRate prefers an explicit override, then the artisan's
// qualified rate for the service type
func resolveLaborRate(artisan *catalog.Artisan, serviceType *catalog.ServiceType, override *decimal.Decimal) (decimal.Decimal, error) {
	if override != nil {
		return *override, nil
	}
	rate, ok := artisan.RateFor(serviceType.ID)
	if !ok {
		return decimal.Zero, shared.NewValidationError(
			"artisan %s has no rate for service type %s and no labor rate override was given",
			artisan.Code, serviceType.Code)
	}
	return rate, nil
}

// saveStockLines writes debited lines back in ascending ID order, the same
// order they were locked in
func saveStockLines(ctx context.Context, repo inventory.StockLineRepository, lines map[uuid.UUID]*inventory.StockLine) error {
	ids := lo.Keys(lines)
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for _, id := range ids {
		if err := repo.SaveWithLock(ctx, lines[id]); err != nil {
			return err
		}
	}
	return nil
}

// CompleteOrderLine completes a single material line
func (s *ProductionService) CompleteOrderLine(ctx context.Context, orderID uuid.UUID, req CompleteLineRequest) (*OutputResponse, error) {
	result, err := s.CompleteOrderLines(ctx, orderID, []CompleteLineRequest{req})
	if err != nil {
		return nil, err
	}
	return &result.Outputs[0], nil
}

// CompleteOrderLines completes several lines of one order in a single
// transaction. Either every line completes and every credit lands, or
// nothing changes.
func (s *ProductionService) CompleteOrderLines(ctx context.Context, orderID uuid.UUID, reqs []CompleteLineRequest) (*CompletionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "production", "CompleteOrderLines",
		attribute.String("order_id", orderID.String()),
		attribute.Int("lines", len(reqs)))
	resp, err := s.completeOrderLines(ctx, orderID, reqs)
	telemetry.EndSpan(span, err)
	return resp, err
}

func (s *ProductionService) completeOrderLines(ctx context.Context, orderID uuid.UUID, reqs []CompleteLineRequest) (*CompletionResponse, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("order ID is required")
	}
	if len(reqs) == 0 {
		return nil, shared.NewValidationError("at least one line completion is required")
	}
	for i, req := range reqs {
		if err := validateCompletion(req); err != nil {
			return nil, shared.NewValidationError("completion %d: %s", i+1, err.Error())
		}
	}

	var (
		order   *production.ProductionOrder
		outputs []*production.OrderOutput
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.Orders().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		for _, req := range reqs {
			if _, err := order.EnsureCompletable(req.ConsumptionID); err != nil {
				return err
			}
		}

		targetIDs, err := s.resolveTargets(ctx, repos, reqs)
		if err != nil {
			return err
		}
		targets, err := repos.StockLines().FindByIDsForUpdate(ctx, targetIDs)
		if err != nil {
			return err
		}

		outputs = make([]*production.OrderOutput, 0, len(reqs))
		movements := make([]*inventory.StockMovement, 0, len(reqs))
		credited := make(map[uuid.UUID]*inventory.StockLine, len(targets))
		for i, req := range reqs {
			target := targets[targetIDs[i]]
			output, err := order.CompleteLine(production.Completion{
				ConsumptionID:        req.ConsumptionID,
				ActualOutputQuantity: req.ActualOutputQuantity,
				WasteQuantity:        req.WasteQuantity,
				TargetStockLineID:    target.ID,
			})
			if err != nil {
				return err
			}
			outputs = append(outputs, output)

			if !output.Credits() {
				continue
			}
			movement, err := target.Credit(output.Quantity, output.UnitCost, inventory.MovementSource{
				Type:      inventory.SourceTypeProductionOutput,
				ID:        order.ID,
				Reference: order.OrderNumber,
			})
			if err != nil {
				return err
			}
			credited[target.ID] = target
			movements = append(movements, movement)
		}

		if err := saveStockLines(ctx, repos.StockLines(), credited); err != nil {
			return err
		}
		if err := repos.Orders().SaveWithLock(ctx, order); err != nil {
			return err
		}
		if len(movements) == 0 {
			return nil
		}
		return repos.Movements().Create(ctx, movements...)
	})
	if err != nil {
		s.logger.Warn("line completion rejected",
			zap.String("order_id", orderID.String()),
			zap.Int("lines", len(reqs)),
			zap.Error(err),
		)
		return nil, err
	}

	for _, out := range outputs {
		s.logger.Info("production line completed",
			zap.String("order_number", order.OrderNumber),
			zap.String("consumption_id", out.ConsumptionID.String()),
			zap.String("quantity", out.Quantity.String()),
			zap.String("unit_cost", out.UnitCost.String()),
		)
	}
	if order.Status.IsTerminal() {
		s.logger.Info("production order completed",
			zap.String("order_number", order.OrderNumber),
			zap.String("total_cost", order.TotalCost.String()),
		)
	}
	s.publishDomainEvents(ctx, order)

	return &CompletionResponse{
		Order: ToOrderResponse(order),
		Outputs: lo.Map(outputs, func(o *production.OrderOutput, _ int) OutputResponse {
			return ToOutputResponse(o)
		}),
	}, nil
}

func validateCompletion(req CompleteLineRequest) error {
	if req.ConsumptionID == uuid.Nil {
		return shared.NewValidationError("consumption ID is required")
	}
	if req.ActualOutputQuantity.IsNegative() {
		return shared.NewValidationError("actual output quantity cannot be negative")
	}
	if !costing.FitsScale(req.ActualOutputQuantity) {
		return shared.NewValidationError("actual output quantity allows at most %d decimal places", costing.Scale)
	}
	if req.WasteQuantity != nil {
		if req.WasteQuantity.IsNegative() {
			return shared.NewValidationError("waste quantity cannot be negative")
		}
		if !costing.FitsScale(*req.WasteQuantity) {
			return shared.NewValidationError("waste quantity allows at most %d decimal places", costing.Scale)
		}
	}
	hasID := req.Target.StockLineID != nil && *req.Target.StockLineID != uuid.Nil
	hasKey := req.Target.Key != nil
	if hasID == hasKey {
		return shared.NewValidationError("target must name either a stock line ID or a stock line key")
	}
	if req.Target.UnitPrice != nil && req.Target.UnitPrice.IsNegative() {
		return shared.NewValidationError("unit price cannot be negative")
	}
	return nil
}

// resolveTargets maps every completion to its output stock line ID,
// positionally. Key targets are looked up, or created, in key order; the
// caller then locks all targets at once in ascending ID order, the same
// order order creation uses for its materials.
func (s *ProductionService) resolveTargets(ctx context.Context, repos TransactionalRepositories, reqs []CompleteLineRequest) ([]uuid.UUID, error) {
	type keyed struct {
		index     int
		key       inventory.StockLineKey
		unitPrice decimal.Decimal
	}

	ids := make([]uuid.UUID, len(reqs))
	pending := make([]keyed, 0, len(reqs))
	for i, req := range reqs {
		if req.Target.StockLineID != nil {
			ids[i] = *req.Target.StockLineID
			continue
		}
		key, err := appinv.ResolveStockLineKey(ctx, repos, *req.Target.Key)
		if err != nil {
			return nil, err
		}
		unitPrice := decimal.Zero
		if req.Target.UnitPrice != nil {
			unitPrice = *req.Target.UnitPrice
		}
		pending = append(pending, keyed{index: i, key: key, unitPrice: unitPrice})
	}

	sort.SliceStable(pending, func(i, j int) bool { return pending[i].key.String() < pending[j].key.String() })
	for _, p := range pending {
		line, err := repos.StockLines().FindByKey(ctx, p.key)
		if errors.Is(err, shared.ErrNotFound) {
			var created bool
			line, created, err = repos.StockLines().GetOrCreateForUpdate(ctx, p.key, p.unitPrice)
			if err == nil && created {
				s.logger.Debug("stock line created for production output", zap.String("stock_line_id", line.ID.String()))
			}
		}
		if err != nil {
			return nil, err
		}
		ids[p.index] = line.ID
	}
	return ids, nil
}

// GetOrder returns an order with its lines, outputs and aggregate costs
func (s *ProductionService) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// ListPendingLines returns the lines of an order still awaiting completion
func (s *ProductionService) ListPendingLines(ctx context.Context, orderID uuid.UUID) ([]MaterialLineResponse, error) {
	exists, err := s.orders.ExistsByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewNotFoundError("production order", orderID)
	}
	lines, err := s.orders.FindPendingLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToMaterialLineResponses(lines), nil
}

// publishDomainEvents publishes and clears the order's pending events.
// Failures are logged; the order has already been committed.
func (s *ProductionService) publishDomainEvents(ctx context.Context, order *production.ProductionOrder) {
	defer order.ClearDomainEvents()
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish production events",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}
}
