package production

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/production/internal/domain/production"
	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LaborAccrual is labor earned by an artisan on one completed line
type LaborAccrual struct {
	ArtisanID     uuid.UUID       `json:"artisan_id"`
	OrderID       uuid.UUID       `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	ConsumptionID uuid.UUID       `json:"consumption_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// ArtisanLedger keeps artisan balances and payments. It lives outside
// this service; only the accrual hand-off is defined here.
type ArtisanLedger interface {
	RecordLabor(ctx context.Context, accrual LaborAccrual) error
}

// LaborAccrualHandler forwards labor from completed lines to the artisan ledger
type LaborAccrualHandler struct {
	ledger ArtisanLedger
	logger *zap.Logger
}

// NewLaborAccrualHandler creates a new LaborAccrualHandler
func NewLaborAccrualHandler(ledger ArtisanLedger, logger *zap.Logger) *LaborAccrualHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LaborAccrualHandler{ledger: ledger, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *LaborAccrualHandler) EventTypes() []string {
	return []string{production.EventTypeProductionLineCompleted}
}

// Handle processes a ProductionLineCompletedEvent
func (h *LaborAccrualHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	completed, ok := event.(*production.ProductionLineCompletedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", production.EventTypeProductionLineCompleted),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			production.EventTypeProductionLineCompleted, event.EventType())
	}

	if completed.LaborCost.IsZero() {
		return nil
	}

	accrual := LaborAccrual{
		ArtisanID:     completed.ArtisanID,
		OrderID:       completed.OrderID,
		OrderNumber:   completed.OrderNumber,
		ConsumptionID: completed.ConsumptionID,
		Quantity:      completed.OutputQuantity,
		Amount:        completed.LaborCost,
		OccurredAt:    completed.OccurredAt(),
	}
	if err := h.ledger.RecordLabor(ctx, accrual); err != nil {
		h.logger.Error("failed to record labor accrual",
			zap.String("artisan_id", accrual.ArtisanID.String()),
			zap.String("order_number", accrual.OrderNumber),
			zap.Error(err),
		)
		return fmt.Errorf("record labor accrual: %w", err)
	}
	return nil
}

var _ shared.EventHandler = (*LaborAccrualHandler)(nil)
