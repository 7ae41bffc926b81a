package production

import (
	"fmt"

	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewInsufficientMaterialError reports which material line of an order
// request could not be covered by its stock line
func NewInsufficientMaterialError(lineNo int, stockLineID uuid.UUID, requested, available decimal.Decimal) *shared.DomainError {
	return shared.NewDomainError(shared.CodeInsufficientStock,
		fmt.Sprintf("material line %d: insufficient stock on stock line %s: requested %s, available %s",
			lineNo, stockLineID, requested.String(), available.String()))
}

// NewAlreadyCompletedError reports a second completion of a line
func NewAlreadyCompletedError(consumptionID uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(shared.CodeAlreadyCompleted,
		fmt.Sprintf("material line %s is already completed", consumptionID))
}

// NewOrderTerminalError reports a completion attempt on a completed order
func NewOrderTerminalError(orderNumber string) *shared.DomainError {
	return shared.NewDomainError(shared.CodeOrderTerminal,
		fmt.Sprintf("production order %s is completed and accepts no further completions", orderNumber))
}
