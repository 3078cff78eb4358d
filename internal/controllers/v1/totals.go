package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/httputil"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterTotalsRoutes registers the routes for year-to-date totals
// with the RouterGroup that is passed.
func (co Controller) RegisterTotalsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsTotals)
	r.GET("", co.GetTotals)
}

// TotalsRow is the year-to-date spend of one category.
type TotalsRow struct {
	ID    uuid.UUID       `json:"id" example:"053db325-7e03-4f1e-ac1d-1e1c1fa964ab"` // ID of the category
	Name  string          `json:"name" example:"Groceries"`                          // Name of the category
	Spent decimal.Decimal `json:"spent" example:"2174.92"`                           // Total spend since January 1st
}

// Totals contains the year-to-date spend per category.
//
// Labels and Values repeat the rows in a chart friendly shape, with
// the values rounded to two decimal places.
type Totals struct {
	Year    int             `json:"year" example:"2024"`
	Rows    []TotalsRow     `json:"rows"`
	Overall decimal.Decimal `json:"overall" example:"7521.03"` // Sum over all rows
	Labels  []string        `json:"labels"`
	Values  []float64       `json:"values"`
}

type TotalsResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Totals `json:"data"`                                                          // The year-to-date totals
}

type TotalsQueryFilter struct {
	ActiveOnly bool `form:"activeOnly" filterField:"false"` // Only include categories that are not archived
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Totals
// @Success		204
// @Router			/v1/totals [options]
func (co Controller) OptionsTotals(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get year-to-date totals
// @Description	Returns the spend per category from January 1st through today
// @Tags			Totals
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Failure		400	{object}	TotalsResponse
// @Failure		500	{object}	TotalsResponse
// @Param			activeOnly	query	bool	false	"Only include categories that are not archived"
// @Router			/v1/totals [get]
func (co Controller) GetTotals(c *gin.Context) {
	var filter TotalsQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB
	if filter.ActiveOnly {
		q = q.Where("archived = ?", false)
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TotalsResponse{
			Error: &s,
		})
		return
	}

	models.SortCategories(categories, co.Config.Settings.PreferredOrder)

	now := time.Now().UTC()
	rows, overall, err := co.engine().YTDTotals(categories, now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TotalsResponse{
			Error: &s,
		})
		return
	}

	data := Totals{
		Year:    now.Year(),
		Rows:    make([]TotalsRow, 0, len(rows)),
		Overall: overall,
		Labels:  make([]string, 0, len(rows)),
		Values:  make([]float64, 0, len(rows)),
	}

	for _, row := range rows {
		data.Rows = append(data.Rows, TotalsRow{
			ID:    row.Category.ID,
			Name:  row.Category.Name,
			Spent: row.Spent,
		})

		data.Labels = append(data.Labels, row.Category.Name)
		value, _ := row.Spent.Round(2).Float64()
		data.Values = append(data.Values, value)
	}

	c.JSON(http.StatusOK, TotalsResponse{Data: &data})
}
