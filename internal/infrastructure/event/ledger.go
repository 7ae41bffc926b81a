package event

import (
	"context"

	appprod "github.com/erp/production/internal/application/production"
	"github.com/erp/production/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LoggingArtisanLedger records labor accruals as structured log entries.
// Balances and payments are kept by the downstream artisan ledger, which
// consumes these entries.
type LoggingArtisanLedger struct {
	logger *zap.Logger
}

// NewLoggingArtisanLedger creates a new LoggingArtisanLedger
func NewLoggingArtisanLedger(l *zap.Logger) *LoggingArtisanLedger {
	if l == nil {
		l = zap.NewNop()
	}
	return &LoggingArtisanLedger{logger: l.Named("artisan_ledger")}
}

// RecordLabor logs one accrual
func (l *LoggingArtisanLedger) RecordLabor(ctx context.Context, accrual appprod.LaborAccrual) error {
	logger.WithLogger(ctx, l.logger).Info("labor accrued",
		zap.String("artisan_id", accrual.ArtisanID.String()),
		zap.String("order_id", accrual.OrderID.String()),
		zap.String("order_number", accrual.OrderNumber),
		zap.String("consumption_id", accrual.ConsumptionID.String()),
		zap.String("quantity", accrual.Quantity.String()),
		zap.String("amount", accrual.Amount.String()),
		zap.Time("occurred_at", accrual.OccurredAt),
	)
	return nil
}

var _ appprod.ArtisanLedger = (*LoggingArtisanLedger)(nil)
