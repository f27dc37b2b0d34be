package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpenses)
	}
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
	{
		r.OPTIONS("/:id/paid", OptionsExpensePaid)
		r.POST("/:id/paid", co.MarkExpensePaid)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Expense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/paid [options]
func OptionsExpensePaid(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create expenses
// @Description	Creates new expenses. New expenses are always open. Expenses without category are categorized by the match rules.
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	CreateResponse[Expense]
// @Failure		400			{object}	CreateResponse[Expense]
// @Failure		500			{object}	CreateResponse[Expense]
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpenses(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	createResources[ExpenseEditable](c, co.Ledger.SubmitExpense, expensePresenter(resolve))
}

// @Summary		Get expenses
// @Description	Returns a list of expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200					{object}	ListResponse[Expense]
// @Failure		400					{object}	httputil.HTTPError
// @Failure		500					{object}	httputil.HTTPError
// @Param			description			query		string	false	"Filter by description"
// @Param			search				query		string	false	"Search for this text in the description"
// @Param			category			query		string	false	"Filter by category ID"
// @Param			fromDate			query		string	false	"Expenses on and after this date, YYYY-MM-DD"
// @Param			untilDate			query		string	false	"Expenses on and before this date, YYYY-MM-DD"
// @Param			amountLessOrEqual	query		string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query		string	false	"Amount more than or equal to this"
// @Param			paymentMethod		query		string	false	"Filter by payment method"
// @Param			paymentStatus		query		string	false	"Filter by payment status, 'open' or 'paid'"
// @Param			month				query		string	false	"Filter by month, YYYY-MM"
// @Param			offset				query		uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit				query		int		false	"Maximum number of expenses to return. Defaults to 50."
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	limit := listLimit(c, filter, filter.Limit)
	where, err := filter.model(limit)
	if err != nil {
		abort(c, err)
		return
	}

	expenses, total, err := co.Ledger.Expenses(c.Request.Context(), where)
	if err != nil {
		abort(c, err)
		return
	}

	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, expenses, total, filter.Offset, limit, expensePresenter(resolve)))
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	Response[Expense]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	getResource(c, co.Ledger.Expense, expensePresenter(resolve))
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Description	The budgets of the previous and the new category are recomputed.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Expense]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	updateResource(c, co.Ledger.Expense, expenseEditable, co.Ledger.SubmitExpense, expensePresenter(resolve))
}

// @Summary		Delete expense
// @Description	Deletes an expense. The budgets of its category are recomputed.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	deleteResource(c, co.Ledger.RemoveExpense)
}

// @Summary		Mark expense as paid
// @Description	Sets the payment status of an expense to paid
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	Response[Expense]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/paid [post]
func (co Controller) MarkExpensePaid(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	expense, err := co.Ledger.MarkExpensePaid(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}

	resolve, err := co.Ledger.Resolver(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	apiResource := expensePresenter(resolve)(c, expense)
	c.JSON(http.StatusOK, Response[Expense]{Data: &apiResource})
}
