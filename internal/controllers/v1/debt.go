package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterDebtRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDebts)
		r.GET("", co.GetDebts)
		r.POST("", co.CreateDebts)
	}
	{
		r.OPTIONS("/:id", co.OptionsDebtDetail)
		r.GET("/:id", co.GetDebt)
		r.PATCH("/:id", co.UpdateDebt)
		r.DELETE("/:id", co.DeleteDebt)
	}
	{
		r.OPTIONS("/:id/payments", OptionsDebtPayments)
		r.POST("/:id/payments", co.CreateDebtPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func (co Controller) OptionsDebtDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Debt)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id}/payments [options]
func OptionsDebtPayments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create debts
// @Description	Creates new debts. New debts start with nothing paid.
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	CreateResponse[Debt]
// @Failure		400		{object}	CreateResponse[Debt]
// @Failure		500		{object}	CreateResponse[Debt]
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func (co Controller) CreateDebts(c *gin.Context) {
	createResources[DebtEditable](c, co.Ledger.SubmitDebt, newDebt)
}

// @Summary		Get debts
// @Description	Returns a list of debts ordered by end date
// @Tags			Debts
// @Produce		json
// @Success		200		{object}	ListResponse[Debt]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			name	query		string	false	"Filter by name"
// @Param			search	query		string	false	"Search for this text in name and creditor"
// @Param			offset	query		uint	false	"The offset of the first debt returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of debts to return. Defaults to 50."
// @Router			/v1/debts [get]
func (co Controller) GetDebts(c *gin.Context) {
	var filter TrackerQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	limit := listLimit(c, filter, filter.Limit)
	debts, total, err := co.Ledger.Debts(c.Request.Context(), filter.model(limit))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, debts, total, filter.Offset, limit, newDebt))
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	Response[Debt]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [get]
func (co Controller) GetDebt(c *gin.Context) {
	getResource(c, co.Ledger.Debt, newDebt)
}

// @Summary		Update debt
// @Description	Updates an existing debt. Only values to be updated need to be specified. The paid amount only changes with payments.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Debt]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func (co Controller) UpdateDebt(c *gin.Context) {
	updateResource(c, co.Ledger.Debt, debtEditable, co.Ledger.SubmitDebt, newDebt)
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func (co Controller) DeleteDebt(c *gin.Context) {
	deleteResource(c, co.Ledger.RemoveDebt)
}

// @Summary		Pay debt
// @Description	Adds a payment to a debt. Payments must not exceed the remaining amount.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Debt]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		AmountEditable	true	"Payment"
// @Router			/v1/debts/{id}/payments [post]
func (co Controller) CreateDebtPayment(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var payment AmountEditable
	err := httputil.BindData(c, &payment)
	if err != nil {
		abort(c, err)
		return
	}

	debt, err := co.Ledger.Pay(c.Request.Context(), id, payment.Amount)
	if err != nil {
		abort(c, err)
		return
	}

	apiResource := newDebt(c, debt)
	c.JSON(http.StatusOK, Response[Debt]{Data: &apiResource})
}
