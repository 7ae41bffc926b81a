package models

import "time"

// CodeSequenceModel is the counter row of one code category.
// LastValue is the most recently issued code.
type CodeSequenceModel struct {
	Category  string    `gorm:"type:varchar(50);primaryKey"`
	LastValue int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CodeSequenceModel) TableName() string {
	return "code_sequences"
}
