package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Budget)
}

// @Summary		Create budgets
// @Description	Creates new budgets. The used amount is computed from the expenses of the category.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	CreateResponse[Budget]
// @Failure		400		{object}	CreateResponse[Budget]
// @Failure		500		{object}	CreateResponse[Budget]
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	createResources[BudgetEditable](c, co.Ledger.SubmitBudget, budgetPresenter(resolve))
}

// @Summary		Get budgets
// @Description	Returns a list of budgets with their usage
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	ListResponse[Budget]
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			name		query		string	false	"Filter by name"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			period		query		string	false	"Filter by period"
// @Param			offset		query		uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of budgets to return. Defaults to 50."
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	limit := listLimit(c, filter, filter.Limit)
	budgets, total, err := co.Ledger.Budgets(c.Request.Context(), ledger.BudgetFilter{
		Name:     filter.Name,
		Category: filter.Category,
		Period:   filter.Period,
		Offset:   filter.Offset,
		Limit:    limit,
	})
	if err != nil {
		abort(c, err)
		return
	}

	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, budgets, total, filter.Offset, limit, budgetPresenter(resolve)))
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Response[Budget]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	getResource(c, co.Ledger.Budget, budgetPresenter(resolve))
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Budget]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	updateResource(c, co.Ledger.Budget, budgetEditable, co.Ledger.SubmitBudget, budgetPresenter(resolve))
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	deleteResource(c, co.Ledger.RemoveBudget)
}
