package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", co.GetIncomes)
		r.POST("", co.CreateIncomes)
	}
	{
		r.OPTIONS("/:id", co.OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
		r.PATCH("/:id", co.UpdateIncome)
		r.DELETE("/:id", co.DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func (co Controller) OptionsIncomeDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Income)
}

// @Summary		Create incomes
// @Description	Creates new incomes. Incomes without category are categorized by the match rules.
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	CreateResponse[Income]
// @Failure		400		{object}	CreateResponse[Income]
// @Failure		500		{object}	CreateResponse[Income]
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func (co Controller) CreateIncomes(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	createResources[IncomeEditable](c, co.Ledger.SubmitIncome, incomePresenter(resolve))
}

// @Summary		Get incomes
// @Description	Returns a list of incomes, newest first
// @Tags			Incomes
// @Produce		json
// @Success		200					{object}	ListResponse[Income]
// @Failure		400					{object}	httputil.HTTPError
// @Failure		500					{object}	httputil.HTTPError
// @Param			description			query		string	false	"Filter by description"
// @Param			search				query		string	false	"Search for this text in the description"
// @Param			category			query		string	false	"Filter by category ID"
// @Param			fromDate			query		string	false	"Incomes on and after this date, YYYY-MM-DD"
// @Param			untilDate			query		string	false	"Incomes on and before this date, YYYY-MM-DD"
// @Param			amountLessOrEqual	query		string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query		string	false	"Amount more than or equal to this"
// @Param			offset				query		uint	false	"The offset of the first income returned. Defaults to 0."
// @Param			limit				query		int		false	"Maximum number of incomes to return. Defaults to 50."
// @Router			/v1/incomes [get]
func (co Controller) GetIncomes(c *gin.Context) {
	var filter EntryQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	limit := listLimit(c, filter, filter.Limit)
	incomes, total, err := co.Ledger.Incomes(c.Request.Context(), filter.model(limit))
	if err != nil {
		abort(c, err)
		return
	}

	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, incomes, total, filter.Offset, limit, incomePresenter(resolve)))
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	Response[Income]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	getResource(c, co.Ledger.Income, incomePresenter(resolve))
}

// @Summary		Update income
// @Description	Updates an existing income. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Income]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func (co Controller) UpdateIncome(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	updateResource(c, co.Ledger.Income, incomeEditable, co.Ledger.SubmitIncome, incomePresenter(resolve))
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	deleteResource(c, co.Ledger.RemoveIncome)
}
