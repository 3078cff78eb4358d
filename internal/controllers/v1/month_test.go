package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/kevmck451/Money-Tracker/internal/controllers/v1"
	"github.com/kevmck451/Money-Tracker/internal/types"
	"github.com/kevmck451/Money-Tracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data.Categories)
	assert.True(suite.T(), response.Data.Month.Equal(types.MonthOf(time.Now())), "Month is %s", response.Data.Month)
}

func (suite *TestSuiteStandard) TestMonthCarriesSurplus() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	_ = suite.setTestBaseBudget(category.ID.String(), "2024-01", map[string]any{"baseBudget": 400})
	_ = suite.createTestPurchase(v1.PurchaseEditable{
		CategoryID: category.ID,
		Name:       "Weekly shop",
		Amount:     decimal.NewFromInt(350),
		Date:       time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data.Categories, 1) {
		row := response.Data.Categories[0]
		assert.Equal(suite.T(), "Groceries", row.Name)
		assert.True(suite.T(), row.Base.Equal(decimal.NewFromInt(400)), "Base is %s", row.Base)
		assert.True(suite.T(), row.CarryIn.Equal(decimal.NewFromInt(50)), "CarryIn is %s", row.CarryIn)
		assert.True(suite.T(), row.Effective.Equal(decimal.NewFromInt(450)), "Effective is %s", row.Effective)
		assert.True(suite.T(), row.Spent.IsZero(), "Spent is %s", row.Spent)
	}

	assert.True(suite.T(), response.Data.Month.Equal(types.NewMonth(2024, time.February)), "Month is %s", response.Data.Month)
}

func (suite *TestSuiteStandard) TestMonthSkipsArchivedCategories() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Old", Archived: true})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	if assert.Len(suite.T(), response.Data.Categories, 1) {
		assert.Equal(suite.T(), "Groceries", response.Data.Categories[0].Name)
	}
}

func (suite *TestSuiteStandard) TestMonthProgressForCurrentMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	progress := response.Data.Progress
	assert.GreaterOrEqual(suite.T(), progress.Pct, 0.0)
	assert.LessOrEqual(suite.T(), progress.Pct, 100.0)
	assert.GreaterOrEqual(suite.T(), progress.DaysLeft, 0)
}

func (suite *TestSuiteStandard) TestMonthProgressForOtherMonths() {
	past := types.MonthOf(time.Now().UTC()).AddDate(0, -2)
	future := types.MonthOf(time.Now().UTC()).AddDate(0, 2)

	// A month that is over is fully elapsed
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month="+past.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.InDelta(suite.T(), 100.0, response.Data.Progress.Pct, 0.001)
	assert.Equal(suite.T(), 0, response.Data.Progress.DaysLeft)

	// A month that has not started yet has not elapsed at all
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month="+future.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Zero(suite.T(), response.Data.Progress.Pct)
}

func (suite *TestSuiteStandard) TestMonthInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
