package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/kevmck451/Money-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetPeriodEditable represents all values for a budget period that
// can be set by API clients.
type BudgetPeriodEditable struct {
	CategoryID uuid.UUID       `json:"-"`
	Month      types.Month     `json:"-"`
	BaseBudget decimal.Decimal `json:"baseBudget" example:"400" minimum:"0.00000001" multipleOf:"0.00000001"` // The base budget for the month
}

func (editable BudgetPeriodEditable) model() models.BudgetPeriod {
	return models.BudgetPeriod{
		CategoryID: editable.CategoryID,
		Month:      editable.Month,
		BaseBudget: editable.BaseBudget,
	}
}

type BudgetPeriodLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/053db325-7e03-4f1e-ac1d-1e1c1fa964ab/2024-03"` // The budget period itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/053db325-7e03-4f1e-ac1d-1e1c1fa964ab"`  // The category this budget period belongs to
}

// BudgetPeriod is the API representation of a budget period.
type BudgetPeriod struct {
	CategoryID uuid.UUID         `json:"categoryId" example:"053db325-7e03-4f1e-ac1d-1e1c1fa964ab"`
	Month      types.Month       `json:"month" example:"2024-03"`
	BaseBudget decimal.Decimal   `json:"baseBudget" example:"400"`
	Links      BudgetPeriodLinks `json:"links"`
}

func newBudgetPeriod(c *gin.Context, model models.BudgetPeriod) BudgetPeriod {
	url := c.GetString(string(models.DBContextURL))

	return BudgetPeriod{
		CategoryID: model.CategoryID,
		Month:      model.Month,
		BaseBudget: model.BaseBudget,
		Links: BudgetPeriodLinks{
			Self:     url + "/v1/budgets/" + model.CategoryID.String() + "/" + model.Month.String(),
			Category: url + "/v1/categories/" + model.CategoryID.String(),
		},
	}
}

type BudgetPeriodResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetPeriod `json:"data"`                                                          // The budget period data, if the request was successful
}

func getBudgetPeriodModel(id uuid.UUID, month types.Month) (models.BudgetPeriod, error) {
	var period models.BudgetPeriod

	err := models.DB.First(&period, models.BudgetPeriod{
		CategoryID: id,
		Month:      month,
	}).Error
	if err != nil {
		return models.BudgetPeriod{}, err
	}

	return period, nil
}
