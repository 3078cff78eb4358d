package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/kevmck451/Money-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPeriodStore implements PeriodStore on the backend database.
type GormPeriodStore struct {
	DB *gorm.DB
}

func (s GormPeriodStore) GetOrCreate(categoryID uuid.UUID, month types.Month, defaultBase decimal.Decimal) (models.BudgetPeriod, error) {
	var period models.BudgetPeriod

	err := s.DB.First(&period, models.BudgetPeriod{CategoryID: categoryID, Month: month}).Error
	if err == nil {
		return period, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.BudgetPeriod{}, err
	}

	period = models.BudgetPeriod{
		CategoryID: categoryID,
		Month:      month,
		BaseBudget: defaultBase,
	}

	err = s.DB.Create(&period).Error
	if errors.Is(err, models.ErrBudgetPeriodMonthNotUnique) {
		// Lost the race against another request creating the same
		// period, re-read the row the winner wrote.
		err = s.DB.First(&period, models.BudgetPeriod{CategoryID: categoryID, Month: month}).Error
	}

	if err != nil {
		return models.BudgetPeriod{}, fmt.Errorf("creating budget period for month %s failed: %w", month, err)
	}

	return period, nil
}

func (s GormPeriodStore) MostRecentOnOrBefore(categoryID uuid.UUID, month types.Month) (*models.BudgetPeriod, error) {
	var period models.BudgetPeriod

	err := s.DB.
		Where("budget_periods.category_id = ?", categoryID).
		Where("budget_periods.month <= date(?)", month).
		Order("budget_periods.month DESC").
		First(&period).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &period, nil
}

func (s GormPeriodStore) FirstMonth(categoryID uuid.UUID) (*types.Month, error) {
	var period models.BudgetPeriod

	err := s.DB.
		Where("budget_periods.category_id = ?", categoryID).
		Order("budget_periods.month ASC").
		First(&period).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &period.Month, nil
}

// GormLedger implements Ledger on the backend database.
type GormLedger struct {
	DB *gorm.DB
}

func (l GormLedger) SumSpent(categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := l.DB.
		Table("purchases").
		Where("purchases.category_id = ?", categoryID).
		Where("datetime(purchases.date) >= datetime(?)", from).
		Where("datetime(purchases.date) < datetime(?)", to).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting purchases for category %s failed: %w", categoryID, err)
	}

	// No matching purchases sum to zero, not NULL.
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

func (l GormLedger) FirstPurchase(categoryID uuid.UUID) (*time.Time, error) {
	var purchase models.Purchase

	err := l.DB.
		Where(models.Purchase{CategoryID: categoryID}).
		Order("datetime(purchases.date) ASC").
		First(&purchase).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &purchase.Date, nil
}
