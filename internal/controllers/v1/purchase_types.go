package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/models"
	mt_uuid "github.com/kevmck451/Money-Tracker/internal/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseEditable represents all values for a purchase that can be set by API clients.
type PurchaseEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"053db325-7e03-4f1e-ac1d-1e1c1fa964ab"` // ID of the category the purchase belongs to
	Name       string          `json:"name" example:"Weekly groceries"`                           // What was bought
	Amount     decimal.Decimal `json:"amount" example:"27.47" minimum:"0.00000001" multipleOf:"0.00000001"`
	Date       time.Time       `json:"date" example:"2024-03-02T07:38:17.015Z"` // When the purchase happened. Defaults to the current time.
}

func (editable PurchaseEditable) model() models.Purchase {
	return models.Purchase{
		CategoryID: editable.CategoryID,
		Name:       editable.Name,
		Amount:     editable.Amount,
		Date:       editable.Date,
	}
}

type PurchaseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/purchases/d430d7c3-d14c-4712-9336-ee56965a6673"`     // The purchase itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/053db325-7e03-4f1e-ac1d-1e1c1fa964ab"` // The category this purchase belongs to
}

// Purchase is the API representation of a purchase.
type Purchase struct {
	models.DefaultModel
	PurchaseEditable
	Links PurchaseLinks `json:"links"`
}

func newPurchase(c *gin.Context, model models.Purchase) Purchase {
	url := c.GetString(string(models.DBContextURL))

	return Purchase{
		DefaultModel: model.DefaultModel,
		PurchaseEditable: PurchaseEditable{
			CategoryID: model.CategoryID,
			Name:       model.Name,
			Amount:     model.Amount,
			Date:       model.Date,
		},
		Links: PurchaseLinks{
			Self:     url + "/v1/purchases/" + model.ID.String(),
			Category: url + "/v1/categories/" + model.CategoryID.String(),
		},
	}
}

type PurchaseResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Purchase `json:"data"`                                                          // The purchase data, if the request was successful
}

type PurchaseListResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Purchase `json:"data"`                                                          // List of purchases
}

type PurchaseQueryFilter struct {
	CategoryID mt_uuid.UUID `form:"category"`                  // By category ID
	Limit      int          `form:"limit" filterField:"false"` // Maximum number of purchases to return
}

func (f PurchaseQueryFilter) model() models.Purchase {
	return models.Purchase{
		CategoryID: f.CategoryID.UUID,
	}
}
