package v1_test

import (
	"net/http"

	v1 "github.com/kevmck451/Money-Tracker/internal/controllers/v1"
	"github.com/kevmck451/Money-Tracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetPeriodRequiresPIN() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/"+category.ID.String()+"/2024-03", map[string]any{"baseBudget": 400})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/"+category.ID.String()+"/2024-03", map[string]any{"baseBudget": 400}, map[string]string{"X-Admin-Pin": "wrong"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestBudgetPeriodNoPINConfigured() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	// Without a configured PIN the endpoints are disabled entirely
	test.Config.AdminPIN = ""

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/"+category.ID.String()+"/2024-03", map[string]any{"baseBudget": 400})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestBudgetPeriodSet() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	period := suite.setTestBaseBudget(category.ID.String(), "2024-03", map[string]any{"baseBudget": 400})
	assert.True(suite.T(), period.BaseBudget.Equal(decimal.NewFromInt(400)), "BaseBudget is %s", period.BaseBudget)
	assert.Equal(suite.T(), "2024-03", period.Month.String())

	// Setting it again updates the existing period
	period = suite.setTestBaseBudget(category.ID.String(), "2024-03", map[string]any{"baseBudget": 450})
	assert.True(suite.T(), period.BaseBudget.Equal(decimal.NewFromInt(450)), "BaseBudget is %s", period.BaseBudget)

	r := test.Request(suite.T(), http.MethodGet, period.Links.Self, "", adminHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetPeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.BaseBudget.Equal(decimal.NewFromInt(450)), "BaseBudget is %s", response.Data.BaseBudget)
}

func (suite *TestSuiteStandard) TestBudgetPeriodGetUnset() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	// A month without a stored period returns zero values
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+category.ID.String()+"/2024-03", "", adminHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetPeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.BaseBudget.IsZero(), "BaseBudget is %s", response.Data.BaseBudget)
	assert.Equal(suite.T(), category.ID, response.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestBudgetPeriodNonexistentCategory() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/4e743e94-6a4b-44d6-aba5-d77c87103ff7/2024-03", map[string]any{"baseBudget": 400}, adminHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetPeriodInvalidMonth() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/"+category.ID.String()+"/March", map[string]any{"baseBudget": 400}, adminHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
