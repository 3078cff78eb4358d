package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/kevmck451/Money-Tracker/internal/models"
)

// CategoryEditable represents all values for a category that can be set by API clients.
type CategoryEditable struct {
	Name         string `json:"name" example:"Groceries"`                 // Name of the category
	Archived     bool   `json:"archived" example:"true" default:"false"`  // Is the category hidden from the dashboard?
	DisplayOrder uint   `json:"displayOrder" example:"2" default:"9999"`  // Position in category listings, lower numbers first
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:         editable.Name,
		Archived:     editable.Archived,
		DisplayOrder: editable.DisplayOrder,
	}
}

type CategoryLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/categories/053db325-7e03-4f1e-ac1d-1e1c1fa964ab"`                // The category itself
	Purchases string `json:"purchases" example:"https://example.com/api/v1/purchases?category=053db325-7e03-4f1e-ac1d-1e1c1fa964ab"` // Purchases in this category
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:         model.Name,
			Archived:     model.Archived,
			DisplayOrder: model.DisplayOrder,
		},
		Links: CategoryLinks{
			Self:      url + "/v1/categories/" + model.ID.String(),
			Purchases: url + "/v1/purchases?category=" + model.ID.String(),
		},
	}
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The category data, if the request was successful
}

type CategoryListResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Category `json:"data"`                                                          // List of categories
}

type CategoryQueryFilter struct {
	Name     string `form:"name" filterField:"false"` // By name
	Archived bool   `form:"archived"`                 // Is the category archived?
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Archived: f.Archived,
	}
}
