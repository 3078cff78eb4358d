package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kevmck451/Money-Tracker/internal/httputil"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/kevmck451/Money-Tracker/internal/types"
)

// RegisterBudgetRoutes registers the routes for budget periods with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/:month", co.OptionsBudgetPeriodDetail)
	r.GET("/:id/:month", co.GetBudgetPeriod)
	r.PATCH("/:id/:month", co.UpdateBudgetPeriod)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/{month} [options]
func (co Controller) OptionsBudgetPeriodDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var month URIMonth
	if err := c.BindUri(&month); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get budget period
// @Description	Returns the base budget of a category for a specific month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetPeriodResponse
// @Failure		400		{object}	BudgetPeriodResponse
// @Failure		404		{object}	BudgetPeriodResponse
// @Failure		500		{object}	BudgetPeriodResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/{month} [get]
func (co Controller) GetBudgetPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	var month URIMonth
	if err := c.BindUri(&month); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Category{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	period, err := getBudgetPeriodModel(uri.ID.UUID, types.MonthOf(month.Month))
	var data BudgetPeriod
	if err != nil {
		// If there is no budget period in the database, return one with the zero values
		if errors.Is(err, models.ErrResourceNotFound) {
			data = newBudgetPeriod(c, models.BudgetPeriod{
				CategoryID: uri.ID.UUID,
				Month:      types.MonthOf(month.Month),
			})
			c.JSON(http.StatusOK, BudgetPeriodResponse{Data: &data})
			return
		}

		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	data = newBudgetPeriod(c, period)
	c.JSON(http.StatusOK, BudgetPeriodResponse{Data: &data})
}

// @Summary		Update budget period
// @Description	Sets the base budget of a category for a month. If there is no budget period for the month yet, this endpoint transparently creates one.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetPeriodResponse
// @Failure		400		{object}	BudgetPeriodResponse
// @Failure		404		{object}	BudgetPeriodResponse
// @Failure		500		{object}	BudgetPeriodResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetPeriodEditable	true	"Budget period"
// @Router			/v1/budgets/{id}/{month} [patch]
func (co Controller) UpdateBudgetPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	var month URIMonth
	if err := c.BindUri(&month); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Category{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetPeriodEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	var data BudgetPeriodEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	period, err := getBudgetPeriodModel(uri.ID.UUID, types.MonthOf(month.Month))

	// If no budget period exists yet, create one
	if err != nil && errors.Is(err, models.ErrResourceNotFound) {
		data.CategoryID = uri.ID.UUID
		data.Month = types.MonthOf(month.Month)

		model := data.model()
		err := models.DB.Create(&model).Error

		// The period might have been created concurrently, then it
		// only needs the update below
		if err != nil && !errors.Is(err, models.ErrBudgetPeriodMonthNotUnique) {
			s := err.Error()
			c.JSON(status(err), BudgetPeriodResponse{
				Error: &s,
			})
			return
		}

		if err == nil {
			apiResource := newBudgetPeriod(c, model)
			c.JSON(http.StatusOK, BudgetPeriodResponse{
				Data: &apiResource,
			})
			return
		}

		period, err = getBudgetPeriodModel(uri.ID.UUID, types.MonthOf(month.Month))
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetPeriodResponse{
				Error: &s,
			})
			return
		}
	} else if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&period).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBudgetPeriod(c, period)
	c.JSON(http.StatusOK, BudgetPeriodResponse{Data: &apiResource})
}
