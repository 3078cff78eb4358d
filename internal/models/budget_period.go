package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the base budget of one category for one month.
//
// Rows are created lazily: the first time any code path needs a month's
// base budget and none exists, one is materialized from the most recent
// prior period's base, or the configured default.
type BudgetPeriod struct {
	Timestamps
	CategoryID uuid.UUID       `gorm:"primaryKey"` // ID of the category
	Category   Category        `json:"-"`
	Month      types.Month     `gorm:"primaryKey"` // Always set to 00:00 UTC on the first of the month
	BaseBudget decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var ErrBudgetPeriodMonthNotUnique = errors.New("you can not create multiple budget periods for the same category and month")

func (b *BudgetPeriod) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*BudgetPeriod)
	return b.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (b *BudgetPeriod) checkIntegrity(tx *gorm.DB, toSave BudgetPeriod) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}
