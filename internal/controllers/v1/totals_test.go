package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/kevmck451/Money-Tracker/internal/controllers/v1"
	"github.com/kevmck451/Money-Tracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTotalsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/totals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data.Rows)
	assert.True(suite.T(), response.Data.Overall.IsZero(), "Overall is %s", response.Data.Overall)
	assert.Equal(suite.T(), time.Now().Year(), response.Data.Year)
}

func (suite *TestSuiteStandard) TestTotalsSumsThisYear() {
	groceries := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	gas := suite.createTestCategory(v1.CategoryEditable{Name: "Gas"})

	now := time.Now().UTC()

	_ = suite.createTestPurchase(v1.PurchaseEditable{CategoryID: groceries.ID, Name: "Shop", Amount: decimal.NewFromFloat(350.555), Date: now})
	_ = suite.createTestPurchase(v1.PurchaseEditable{CategoryID: gas.ID, Name: "Fuel", Amount: decimal.NewFromInt(55), Date: now})

	// The previous year must not count
	_ = suite.createTestPurchase(v1.PurchaseEditable{CategoryID: gas.ID, Name: "Old fuel", Amount: decimal.NewFromInt(99), Date: now.AddDate(-1, 0, 0)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/totals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data.Rows, 2) {
		assert.True(suite.T(), response.Data.Overall.Equal(decimal.NewFromFloat(405.555)), "Overall is %s", response.Data.Overall)
	}

	// Chart values are rounded to two decimal places
	if assert.Len(suite.T(), response.Data.Values, 2) {
		for i, label := range response.Data.Labels {
			if label == "Groceries" {
				assert.InDelta(suite.T(), 350.56, response.Data.Values[i], 0.001)
			}
		}
	}
}

func (suite *TestSuiteStandard) TestTotalsActiveOnly() {
	groceries := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	old := suite.createTestCategory(v1.CategoryEditable{Name: "Old", Archived: true})

	now := time.Now().UTC()
	_ = suite.createTestPurchase(v1.PurchaseEditable{CategoryID: groceries.ID, Name: "Shop", Amount: decimal.NewFromInt(20), Date: now})
	_ = suite.createTestPurchase(v1.PurchaseEditable{CategoryID: old.ID, Name: "Legacy", Amount: decimal.NewFromInt(10), Date: now})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/totals?activeOnly=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data.Rows, 1) {
		assert.Equal(suite.T(), groceries.ID, response.Data.Rows[0].ID)
		assert.True(suite.T(), response.Data.Overall.Equal(decimal.NewFromInt(20)), "Overall is %s", response.Data.Overall)
	}
}
