package inventory

import (
	"context"

	"github.com/erp/production/internal/domain/costing"
	"github.com/erp/production/internal/domain/inventory"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// InventoryService books stock receipts and serves stock line queries
type InventoryService struct {
	stockLines inventory.StockLineRepository
	movements  inventory.StockMovementRepository
	txScope    TransactionScope
	logger     *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	stockLines inventory.StockLineRepository,
	movements inventory.StockMovementRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		stockLines: stockLines,
		movements:  movements,
		txScope:    txScope,
		logger:     logger,
	}
}

// ReceiveStock credits quantity at unitCost onto the line for the key,
// creating the line when the combination is new
func (s *InventoryService) ReceiveStock(ctx context.Context, req ReceiveStockRequest) (*StockLineResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "ReceiveStock",
		attribute.String("quantity", req.Quantity.String()))
	resp, err := s.receiveStock(ctx, req)
	telemetry.EndSpan(span, err)
	return resp, err
}

func (s *InventoryService) receiveStock(ctx context.Context, req ReceiveStockRequest) (*StockLineResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, shared.NewValidationError("quantity must be positive")
	}
	if !costing.FitsScale(req.Quantity) {
		return nil, shared.NewValidationError("quantity allows at most %d decimal places", costing.Scale)
	}
	if req.UnitCost.IsNegative() {
		return nil, shared.NewValidationError("unit cost cannot be negative")
	}
	if !costing.FitsScale(req.UnitCost) {
		return nil, shared.NewValidationError("unit cost allows at most %d decimal places", costing.Scale)
	}
	unitPrice := decimal.Zero
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, shared.NewValidationError("unit price cannot be negative")
		}
		unitPrice = *req.UnitPrice
	}

	var line *inventory.StockLine
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		key, err := ResolveStockLineKey(ctx, repos, req.StockLineKeyInput)
		if err != nil {
			return err
		}

		var created bool
		line, created, err = repos.StockLines().GetOrCreateForUpdate(ctx, key, unitPrice)
		if err != nil {
			return err
		}
		if !created && req.UnitPrice != nil {
			line.UnitPrice = unitPrice
		}

		movement, err := line.Credit(req.Quantity, req.UnitCost, inventory.MovementSource{
			Type:      inventory.SourceTypeReceipt,
			ID:        uuid.New(),
			Reference: req.Reference,
		})
		if err != nil {
			return err
		}
		if err := repos.StockLines().SaveWithLock(ctx, line); err != nil {
			return err
		}
		return repos.Movements().Create(ctx, movement)
	})
	if err != nil {
		s.logger.Warn("stock receipt rejected", zap.Error(err))
		return nil, err
	}

	s.logger.Info("stock received",
		zap.String("stock_line_id", line.ID.String()),
		zap.String("quantity", req.Quantity.String()),
		zap.String("unit_cost", line.UnitCost.String()),
	)
	resp := ToStockLineResponse(line)
	return &resp, nil
}

// GetStockLine retrieves a stock line by ID
func (s *InventoryService) GetStockLine(ctx context.Context, id uuid.UUID) (*StockLineResponse, error) {
	line, err := s.stockLines.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToStockLineResponse(line)
	return &resp, nil
}

// ListStockLines lists stock lines with filtering and pagination
func (s *InventoryService) ListStockLines(ctx context.Context, filter StockLineListFilter) ([]StockLineResponse, int64, error) {
	domainFilter := inventory.StockLineFilter{
		Filter:        toSharedFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir),
		WarehouseID:   filter.WarehouseID,
		ProductTypeID: filter.ProductTypeID,
		InStockOnly:   filter.InStockOnly,
	}

	lines, total, err := s.stockLines.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToStockLineResponses(lines), total, nil
}

// ListMovements returns the journal of a stock line, newest first
func (s *InventoryService) ListMovements(ctx context.Context, stockLineID uuid.UUID, page, pageSize int) ([]StockMovementResponse, int64, error) {
	if _, err := s.stockLines.FindByID(ctx, stockLineID); err != nil {
		return nil, 0, err
	}
	movements, total, err := s.movements.FindByStockLine(ctx, stockLineID, toSharedFilter(page, pageSize, "occurred_at", "desc"))
	if err != nil {
		return nil, 0, err
	}
	return ToStockMovementResponses(movements), total, nil
}

func toSharedFilter(page, pageSize int, orderBy, orderDir string) shared.Filter {
	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	if orderBy != "" {
		f.OrderBy = orderBy
	}
	if orderDir != "" {
		f.OrderDir = orderDir
	}
	return f
}
