package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoals)
	}
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
	{
		r.OPTIONS("/:id/deposits", OptionsGoalDeposits)
		r.POST("/:id/deposits", co.CreateGoalDeposit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Goal)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/deposits [options]
func OptionsGoalDeposits(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create goals
// @Description	Creates new goals. New goals start with nothing saved.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	CreateResponse[Goal]
// @Failure		400		{object}	CreateResponse[Goal]
// @Failure		500		{object}	CreateResponse[Goal]
// @Param			goals	body		[]GoalEditable	true	"Goals"
// @Router			/v1/goals [post]
func (co Controller) CreateGoals(c *gin.Context) {
	createResources[GoalEditable](c, co.Ledger.SubmitGoal, co.newGoal)
}

// @Summary		Get goals
// @Description	Returns a list of goals ordered by deadline
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	ListResponse[Goal]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			name	query		string	false	"Filter by name"
// @Param			search	query		string	false	"Search for this text in name and description"
// @Param			offset	query		uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of goals to return. Defaults to 50."
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var filter TrackerQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	limit := listLimit(c, filter, filter.Limit)
	goals, total, err := co.Ledger.Goals(c.Request.Context(), filter.model(limit))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, goals, total, filter.Offset, limit, co.newGoal))
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	Response[Goal]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	getResource(c, co.Ledger.Goal, co.newGoal)
}

// @Summary		Update goal
// @Description	Updates an existing goal. Only values to be updated need to be specified. The saved amount only changes with deposits.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Goal]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	updateResource(c, co.Ledger.Goal, goalEditable, co.Ledger.SubmitGoal, co.newGoal)
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	deleteResource(c, co.Ledger.RemoveGoal)
}

// @Summary		Deposit to goal
// @Description	Adds an amount to the saved amount of a goal. Deposits may exceed the target.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Goal]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			deposit	body		AmountEditable	true	"Deposit"
// @Router			/v1/goals/{id}/deposits [post]
func (co Controller) CreateGoalDeposit(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var deposit AmountEditable
	err := httputil.BindData(c, &deposit)
	if err != nil {
		abort(c, err)
		return
	}

	goal, err := co.Ledger.Deposit(c.Request.Context(), id, deposit.Amount)
	if err != nil {
		abort(c, err)
		return
	}

	apiResource := co.newGoal(c, goal)
	c.JSON(http.StatusOK, Response[Goal]{Data: &apiResource})
}
