package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/production/internal/domain/sequence"
	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCodeAllocator issues codes from the code_sequences table. The
// increment is a single UPDATE, so the row lock it takes serializes
// concurrent callers of the same category until their transaction ends.
type GormCodeAllocator struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormCodeAllocator creates a new GormCodeAllocator
func NewGormCodeAllocator(db *gorm.DB) *GormCodeAllocator {
	return &GormCodeAllocator{db: db, now: time.Now}
}

var errSequenceMissing = errors.New("sequence row missing")

// NextCode increments and returns the category counter. A category without
// a row is seeded just below its start value first.
func (a *GormCodeAllocator) NextCode(ctx context.Context, category sequence.Category) (int64, error) {
	if !category.IsValid() {
		return 0, shared.NewValidationError("unknown code category %q", category)
	}

	var code int64
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := a.increment(tx, category)
		if errors.Is(err, errSequenceMissing) {
			if err := a.seed(tx, category); err != nil {
				return err
			}
			next, err = a.increment(tx, category)
		}
		if err != nil {
			return err
		}
		code = next
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("allocate %s code: %w", category, err)
	}
	return code, nil
}

func (a *GormCodeAllocator) increment(tx *gorm.DB, category sequence.Category) (int64, error) {
	result := tx.Model(&models.CodeSequenceModel{}).
		Where("category = ?", category.String()).
		Updates(map[string]any{
			"last_value": gorm.Expr("last_value + 1"),
			"updated_at": a.now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errSequenceMissing
	}

	var row models.CodeSequenceModel
	if err := tx.Take(&row, "category = ?", category.String()).Error; err != nil {
		return 0, err
	}
	return row.LastValue, nil
}

func (a *GormCodeAllocator) seed(tx *gorm.DB, category sequence.Category) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoNothing: true,
	}).Create(&models.CodeSequenceModel{
		Category:  category.String(),
		LastValue: category.SeedValue(),
		UpdatedAt: a.now().UTC(),
	}).Error
}

var _ sequence.CodeAllocator = (*GormCodeAllocator)(nil)
