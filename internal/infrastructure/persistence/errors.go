package persistence

import (
	"errors"
	"fmt"

	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notFoundOr translates gorm.ErrRecordNotFound into a NOT_FOUND domain
// error naming the resource and wraps anything else
func notFoundOr(err error, resource string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(resource, id)
	}
	return fmt.Errorf("load %s %s: %w", resource, id, err)
}

// optimisticLockFailed reports a versioned update that matched no row
func optimisticLockFailed(resource string, id uuid.UUID) error {
	return shared.NewDomainError(shared.CodeOptimisticLockFailed,
		fmt.Sprintf("%s %s was modified by another transaction", resource, id))
}
