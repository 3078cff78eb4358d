package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPurchaseTrimWhitespace() {
	category := suite.createTestCategory(models.Category{})

	purchase := suite.createTestPurchase(models.Purchase{
		CategoryID: category.ID,
		Name:       "  Coffee beans ",
		Amount:     decimal.NewFromFloat(14.99),
	})

	assert.Equal(suite.T(), "Coffee beans", purchase.Name)
}

func (suite *TestSuiteStandard) TestPurchaseDateDefaultsToNow() {
	category := suite.createTestCategory(models.Category{})

	purchase := suite.createTestPurchase(models.Purchase{
		CategoryID: category.ID,
		Name:       "Lunch",
		Amount:     decimal.NewFromFloat(8.50),
	})

	assert.False(suite.T(), purchase.Date.IsZero())
	assert.WithinDuration(suite.T(), time.Now(), purchase.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestPurchaseDateUTC() {
	category := suite.createTestCategory(models.Category{})

	tz, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		suite.Assert().FailNow("could not load timezone", err)
	}

	purchase := suite.createTestPurchase(models.Purchase{
		CategoryID: category.ID,
		Name:       "Lunch",
		Amount:     decimal.NewFromFloat(8.50),
		Date:       time.Date(2024, 3, 2, 12, 0, 0, 0, tz),
	})

	assert.Equal(suite.T(), time.UTC, purchase.Date.Location())
}

func (suite *TestSuiteStandard) TestPurchaseNonexistentCategory() {
	err := models.DB.Create(&models.Purchase{
		CategoryID: uuid.New(),
		Name:       "Lunch",
		Amount:     decimal.NewFromFloat(8.50),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestPurchaseUpdateCategoryIntegrity() {
	category := suite.createTestCategory(models.Category{})

	purchase := suite.createTestPurchase(models.Purchase{
		CategoryID: category.ID,
		Name:       "Lunch",
		Amount:     decimal.NewFromFloat(8.50),
	})

	err := models.DB.Model(&purchase).Select("CategoryID").Updates(models.Purchase{CategoryID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
