package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kevmck451/Money-Tracker/internal/httputil"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPurchaseRoutes registers the routes for purchases with
// the RouterGroup that is passed.
func (co Controller) RegisterPurchaseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsPurchaseList)
		r.GET("", co.GetPurchases)
		r.POST("", co.CreatePurchase)
	}

	// Purchase with ID
	{
		r.OPTIONS("/:id", co.OptionsPurchaseDetail)
		r.GET("/:id", co.GetPurchase)
		r.PATCH("/:id", co.UpdatePurchase)
		r.DELETE("/:id", co.DeletePurchase)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Router			/v1/purchases [options]
func (co Controller) OptionsPurchaseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [options]
func (co Controller) OptionsPurchaseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Purchase{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Log purchase
// @Description	Logs a new purchase against a category
// @Tags			Purchases
// @Produce		json
// @Success		201			{object}	PurchaseResponse
// @Failure		400			{object}	PurchaseResponse
// @Failure		404			{object}	PurchaseResponse
// @Failure		500			{object}	PurchaseResponse
// @Param			purchase	body		PurchaseEditable	true	"Purchase"
// @Router			/v1/purchases [post]
func (co Controller) CreatePurchase(c *gin.Context) {
	var editable PurchaseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &e,
		})
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		e := errPurchaseNameRequired.Error()
		c.JSON(http.StatusBadRequest, PurchaseResponse{
			Error: &e,
		})
		return
	}

	purchase := editable.model()

	err = models.DB.Create(&purchase).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &e,
		})
		return
	}

	data := newPurchase(c, purchase)
	c.JSON(http.StatusCreated, PurchaseResponse{Data: &data})
}

// @Summary		Get purchases
// @Description	Returns the most recent purchases, newest first
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseListResponse
// @Failure		400	{object}	PurchaseListResponse
// @Failure		500	{object}	PurchaseListResponse
// @Router			/v1/purchases [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			limit		query	int		false	"Maximum number of purchases to return. Defaults to 20, -1 returns all."
func (co Controller) GetPurchases(c *gin.Context) {
	var filter PurchaseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("datetime(purchases.date) DESC, datetime(purchases.created_at) DESC").
		Where(&filterModel, queryFields...)

	// Default to the 20 most recent purchases
	limit := 20
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var purchases []models.Purchase
	err := q.Find(&purchases).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Purchase, 0)
	for _, purchase := range purchases {
		data = append(data, newPurchase(c, purchase))
	}

	c.JSON(http.StatusOK, PurchaseListResponse{Data: data})
}

// @Summary		Get purchase
// @Description	Returns a specific purchase
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseResponse
// @Failure		400	{object}	PurchaseResponse
// @Failure		404	{object}	PurchaseResponse
// @Failure		500	{object}	PurchaseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [get]
func (co Controller) GetPurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	data := newPurchase(c, purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &data})
}

// @Summary		Update purchase
// @Description	Update an existing purchase. Only values to be updated need to be specified.
// @Tags			Purchases
// @Accept			json
// @Produce		json
// @Success		200			{object}	PurchaseResponse
// @Failure		400			{object}	PurchaseResponse
// @Failure		404			{object}	PurchaseResponse
// @Failure		500			{object}	PurchaseResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			purchase	body		PurchaseEditable	true	"Purchase"
// @Router			/v1/purchases/{id} [patch]
func (co Controller) UpdatePurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PurchaseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var data PurchaseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&purchase).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	r := newPurchase(c, purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &r})
}

// @Summary		Delete purchase
// @Description	Deletes a purchase
// @Tags			Purchases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [delete]
func (co Controller) DeletePurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&purchase).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
