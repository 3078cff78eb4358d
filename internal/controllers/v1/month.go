package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/budget"
	"github.com/kevmck451/Money-Tracker/internal/httputil"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/kevmck451/Money-Tracker/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMonth)
	r.GET("", co.GetMonth)
}

// CategoryMonth is the monthly budget summary of one category.
type CategoryMonth struct {
	ID   uuid.UUID `json:"id" example:"053db325-7e03-4f1e-ac1d-1e1c1fa964ab"` // ID of the category
	Name string    `json:"name" example:"Groceries"`                          // Name of the category
	budget.Summary
}

// Month contains all budget summaries for one month.
type Month struct {
	Month      types.Month     `json:"month" example:"2024-03"` // The month these summaries are for
	Progress   budget.Progress `json:"progress"`                // How far the month has elapsed
	Categories []CategoryMonth `json:"categories"`              // Summaries for all active categories
}

type MonthResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Month  `json:"data"`                                                          // Data for the month
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month summaries
// @Description	Returns the budget summaries of all active categories for a month. Defaults to the current month.
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month	query	string	false	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func (co Controller) GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	// Summaries are computed for the instant the request is made. When
	// another month is requested, its first instant is used so that the
	// whole month's purchases are covered.
	now := time.Now().UTC()
	instant := now
	month := types.MonthOf(now)
	if !query.Month.IsZero() && !types.MonthOf(query.Month).Equal(month) {
		month = types.MonthOf(query.Month)
		instant = time.Time(month)
	}

	var categories []models.Category
	err := models.DB.Where("archived = ?", false).Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	models.SortCategories(categories, co.Config.Settings.PreferredOrder)

	engine := co.engine()

	summaries := make([]CategoryMonth, 0, len(categories))
	for _, category := range categories {
		summary, err := engine.Summary(category, instant)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{
				Error: &s,
			})
			return
		}

		summaries = append(summaries, CategoryMonth{
			ID:      category.ID,
			Name:    category.Name,
			Summary: summary,
		})
	}

	// Months that are already over report as fully elapsed
	progressInstant := instant
	if month.Before(types.MonthOf(now)) {
		progressInstant = time.Time(month.AddDate(0, 1)).Add(-time.Nanosecond)
	}

	data := Month{
		Month:      month,
		Progress:   budget.MonthProgress(progressInstant),
		Categories: summaries,
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
