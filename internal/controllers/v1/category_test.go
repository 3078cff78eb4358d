package v1_test

import (
	"net/http"

	v1 "github.com/kevmck451/Money-Tracker/internal/controllers/v1"
	"github.com/kevmck451/Money-Tracker/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries", DisplayOrder: 1})

	assert.Equal(suite.T(), "Groceries", category.Name)
	assert.EqualValues(suite.T(), 1, category.DisplayOrder)
	assert.False(suite.T(), category.Archived)
	assert.Equal(suite.T(), "http://example.com/v1/categories/"+category.ID.String(), category.Links.Self)
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicateName() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Groceries"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	archived := suite.createTestCategory(v1.CategoryEditable{Name: "Old", Archived: true})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)

	// Only the archived category
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?archived=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), archived.ID, response.Data[0].ID)
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetPreferredOrder() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Amazon"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Gas"})

	test.Config.Settings.PreferredOrder = []string{"Groceries", "Gas"}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
		assert.Equal(suite.T(), "Gas", response.Data[1].Name)
		assert.Equal(suite.T(), "Amazon", response.Data[2].Name)
	}
}

func (suite *TestSuiteStandard) TestCategoryGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/4e743e94-6a4b-44d6-aba5-d77c87103ff7", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryGetInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPatch, category.Links.Self, map[string]any{"name": "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Food", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryDeleteArchives() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodDelete, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The category is hidden, not gone
	r = test.Request(suite.T(), http.MethodGet, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Archived)
}
