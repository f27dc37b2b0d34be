package v1

import (
	"context"
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (co Controller) RegisterRepaymentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRepayments)
		r.GET("", co.GetRepayments)
		r.POST("", co.CreateRepayments)
	}
	{
		r.OPTIONS("/session", OptionsRepaymentSession)
		r.GET("/session", co.GetRepaymentSession)
		r.POST("/session", co.UnlockRepayments)
		r.DELETE("/session", co.LockRepayments)
	}
	{
		r.OPTIONS("/:id", co.OptionsRepaymentDetail)
		r.GET("/:id", co.GetRepayment)
		r.PATCH("/:id", co.UpdateRepayment)
		r.DELETE("/:id", co.DeleteRepayment)
	}
	{
		r.OPTIONS("/:id/paid", OptionsRepaymentPaid)
		r.POST("/:id/paid", co.MarkRepaymentPaid)
	}
}

// repaymentLoader returns the function that loads a repayment with the session of the request.
func (co Controller) repaymentLoader(c *gin.Context) loadFunc[models.Repayment] {
	token := repaymentToken(c)
	return func(ctx context.Context, id uuid.UUID) (models.Repayment, error) {
		return co.Ledger.Repayment(ctx, token, id)
	}
}

// repaymentSubmitter returns the function that submits a repayment with the session of the request.
func (co Controller) repaymentSubmitter(c *gin.Context) submitFunc[models.Repayment] {
	token := repaymentToken(c)
	return func(ctx context.Context, mode ledger.Mode, repayment models.Repayment) (models.Repayment, error) {
		return co.Ledger.SubmitRepayment(ctx, token, mode, repayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Repayments
// @Success		204
// @Router			/v1/repayments [options]
func OptionsRepayments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Repayments
// @Success		204
// @Router			/v1/repayments/session [options]
func OptionsRepaymentSession(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Repayments
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id} [options]
func (co Controller) OptionsRepaymentDetail(c *gin.Context) {
	optionsDetail(c, co.repaymentLoader(c))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Repayments
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id}/paid [options]
func OptionsRepaymentPaid(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get repayment session
// @Description	Returns if a repayment password is set up and if the request carries an unlocked session
// @Tags			Repayments
// @Produce		json
// @Success		200	{object}	Response[RepaymentSession]
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/repayments/session [get]
func (co Controller) GetRepaymentSession(c *gin.Context) {
	passwordSet, err := co.Ledger.PasswordSet(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[RepaymentSession]{Data: &RepaymentSession{
		PasswordSet: passwordSet,
		Unlocked:    co.Ledger.Unlocked(repaymentToken(c)),
	}})
}

// @Summary		Unlock repayments
// @Description	Unlocks the repayments for a session. Without a password set up, "setup" becomes the password.
// @Description	The token is returned and set as cookie. Send it in the X-Repayment-Session header or the cookie.
// @Tags			Repayments
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[RepaymentSession]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			unlock	body		RepaymentUnlock	true	"Password"
// @Router			/v1/repayments/session [post]
func (co Controller) UnlockRepayments(c *gin.Context) {
	var unlock RepaymentUnlock
	err := httputil.BindData(c, &unlock)
	if err != nil {
		abort(c, err)
		return
	}

	token, err := co.Ledger.Unlock(c.Request.Context(), unlock.Password, unlock.Setup)
	if err != nil {
		abort(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(repaymentSessionCookie, token, 0, "/", "", c.Request.TLS != nil, true)

	c.JSON(http.StatusCreated, Response[RepaymentSession]{Data: &RepaymentSession{
		PasswordSet: true,
		Unlocked:    true,
		Token:       token,
	}})
}

// @Summary		Lock repayments
// @Description	Ends the repayment session of the request
// @Tags			Repayments
// @Success		204
// @Router			/v1/repayments/session [delete]
func (co Controller) LockRepayments(c *gin.Context) {
	co.Ledger.Lock(repaymentToken(c))
	c.SetCookie(repaymentSessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Create repayments
// @Description	Creates new repayments. Requires an unlocked session.
// @Tags			Repayments
// @Produce		json
// @Success		201			{object}	CreateResponse[Repayment]
// @Failure		400			{object}	CreateResponse[Repayment]
// @Failure		401			{object}	CreateResponse[Repayment]
// @Failure		500			{object}	CreateResponse[Repayment]
// @Param			repayments	body		[]RepaymentEditable	true	"Repayments"
// @Router			/v1/repayments [post]
func (co Controller) CreateRepayments(c *gin.Context) {
	if !co.Ledger.Unlocked(repaymentToken(c)) {
		abort(c, ledger.ErrRepaymentLocked)
		return
	}

	createResources[RepaymentEditable](c, co.repaymentSubmitter(c), newRepayment)
}

// @Summary		Get repayments
// @Description	Returns a list of repayments, newest first. Requires an unlocked session.
// @Tags			Repayments
// @Produce		json
// @Success		200		{object}	ListResponse[Repayment]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			person	query		string	false	"Filter by person"
// @Param			type	query		string	false	"Filter by type, 'owed-to-me' or 'owed-by-me'"
// @Param			offset	query		uint	false	"The offset of the first repayment returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of repayments to return. Defaults to 50."
// @Router			/v1/repayments [get]
func (co Controller) GetRepayments(c *gin.Context) {
	var filter RepaymentQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	limit := listLimit(c, filter, filter.Limit)
	repayments, total, err := co.Ledger.Repayments(c.Request.Context(), repaymentToken(c), ledger.RepaymentFilter{
		Person: filter.Person,
		Type:   filter.Type,
		Offset: filter.Offset,
		Limit:  limit,
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, repayments, total, filter.Offset, limit, newRepayment))
}

// @Summary		Get repayment
// @Description	Returns a specific repayment. Requires an unlocked session.
// @Tags			Repayments
// @Produce		json
// @Success		200	{object}	Response[Repayment]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id} [get]
func (co Controller) GetRepayment(c *gin.Context) {
	getResource(c, co.repaymentLoader(c), newRepayment)
}

// @Summary		Update repayment
// @Description	Updates an existing repayment. Only values to be updated need to be specified. Requires an unlocked session.
// @Tags			Repayments
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[Repayment]
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			repayment	body		RepaymentEditable	true	"Repayment"
// @Router			/v1/repayments/{id} [patch]
func (co Controller) UpdateRepayment(c *gin.Context) {
	updateResource(c, co.repaymentLoader(c), repaymentEditable, co.repaymentSubmitter(c), newRepayment)
}

// @Summary		Delete repayment
// @Description	Deletes a repayment. Requires an unlocked session.
// @Tags			Repayments
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id} [delete]
func (co Controller) DeleteRepayment(c *gin.Context) {
	token := repaymentToken(c)
	deleteResource(c, func(ctx context.Context, id uuid.UUID) error {
		return co.Ledger.RemoveRepayment(ctx, token, id)
	})
}

// @Summary		Settle repayment
// @Description	Marks a repayment as paid. Paid repayments are removed. Requires an unlocked session.
// @Tags			Repayments
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id}/paid [post]
func (co Controller) MarkRepaymentPaid(c *gin.Context) {
	token := repaymentToken(c)
	deleteResource(c, func(ctx context.Context, id uuid.UUID) error {
		return co.Ledger.MarkRepaymentPaid(ctx, token, id)
	})
}
