package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/kevmck451/Money-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetPeriodMonthUnique() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	_ = suite.createTestBudgetPeriod(models.BudgetPeriod{
		CategoryID: category.ID,
		Month:      types.NewMonth(2024, time.March),
		BaseBudget: decimal.NewFromInt(400),
	})

	err := models.DB.Create(&models.BudgetPeriod{
		CategoryID: category.ID,
		Month:      types.NewMonth(2024, time.March),
		BaseBudget: decimal.NewFromInt(500),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetPeriodMonthNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetPeriodSameMonthOtherCategory() {
	first := suite.createTestCategory(models.Category{Name: "Groceries"})
	second := suite.createTestCategory(models.Category{Name: "Gas"})

	_ = suite.createTestBudgetPeriod(models.BudgetPeriod{
		CategoryID: first.ID,
		Month:      types.NewMonth(2024, time.March),
		BaseBudget: decimal.NewFromInt(400),
	})

	err := models.DB.Create(&models.BudgetPeriod{
		CategoryID: second.ID,
		Month:      types.NewMonth(2024, time.March),
		BaseBudget: decimal.NewFromInt(150),
	}).Error

	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetPeriodNonexistentCategory() {
	err := models.DB.Create(&models.BudgetPeriod{
		CategoryID: uuid.New(),
		Month:      types.NewMonth(2024, time.March),
		BaseBudget: decimal.NewFromInt(400),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetPeriodMonthRoundTrip() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	_ = suite.createTestBudgetPeriod(models.BudgetPeriod{
		CategoryID: category.ID,
		Month:      types.NewMonth(2024, time.March),
		BaseBudget: decimal.NewFromFloat(123.45),
	})

	var period models.BudgetPeriod
	err := models.DB.First(&period, models.BudgetPeriod{
		CategoryID: category.ID,
		Month:      types.NewMonth(2024, time.March),
	}).Error

	assert.Nil(suite.T(), err)
	assert.True(suite.T(), period.Month.Equal(types.NewMonth(2024, time.March)), "Month is %s", period.Month)
	assert.True(suite.T(), period.BaseBudget.Equal(decimal.NewFromFloat(123.45)), "BaseBudget is %s", period.BaseBudget)
}
