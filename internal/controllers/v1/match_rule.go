package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMatchRules)
		r.GET("", co.GetMatchRules)
		r.POST("", co.CreateMatchRules)
	}
	{
		r.OPTIONS("/:id", co.OptionsMatchRuleDetail)
		r.GET("/:id", co.GetMatchRule)
		r.PATCH("/:id", co.UpdateMatchRule)
		r.DELETE("/:id", co.DeleteMatchRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Match Rules
// @Success		204
// @Router			/v1/match-rules [options]
func OptionsMatchRules(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Match Rules
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [options]
func (co Controller) OptionsMatchRuleDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.MatchRule)
}

// @Summary		Create match rules
// @Description	Creates new match rules. The category must exist for the type of the rule.
// @Tags			Match Rules
// @Produce		json
// @Success		201			{object}	CreateResponse[MatchRule]
// @Failure		400			{object}	CreateResponse[MatchRule]
// @Failure		500			{object}	CreateResponse[MatchRule]
// @Param			matchRules	body		[]MatchRuleEditable	true	"Match rules"
// @Router			/v1/match-rules [post]
func (co Controller) CreateMatchRules(c *gin.Context) {
	createResources[MatchRuleEditable](c, co.Ledger.SubmitMatchRule, newMatchRule)
}

// @Summary		Get match rules
// @Description	Returns a list of match rules in the order they are evaluated
// @Tags			Match Rules
// @Produce		json
// @Success		200			{object}	ListResponse[MatchRule]
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			type		query		string	false	"Filter by entry type, 'income' or 'expense'"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			match		query		string	false	"Filter by pattern"
// @Param			offset		query		uint	false	"The offset of the first match rule returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of match rules to return. Defaults to 50."
// @Router			/v1/match-rules [get]
func (co Controller) GetMatchRules(c *gin.Context) {
	var filter MatchRuleQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	limit := listLimit(c, filter, filter.Limit)
	rules, total, err := co.Ledger.MatchRules(c.Request.Context(), ledger.MatchRuleFilter{
		Type:     filter.Type,
		Category: filter.Category,
		Match:    filter.Match,
		Offset:   filter.Offset,
		Limit:    limit,
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, rules, total, filter.Offset, limit, newMatchRule))
}

// @Summary		Get match rule
// @Description	Returns a specific match rule
// @Tags			Match Rules
// @Produce		json
// @Success		200	{object}	Response[MatchRule]
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [get]
func (co Controller) GetMatchRule(c *gin.Context) {
	getResource(c, co.Ledger.MatchRule, newMatchRule)
}

// @Summary		Update match rule
// @Description	Updates an existing match rule. Only values to be updated need to be specified.
// @Tags			Match Rules
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[MatchRule]
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			matchRule	body		MatchRuleEditable	true	"Match rule"
// @Router			/v1/match-rules/{id} [patch]
func (co Controller) UpdateMatchRule(c *gin.Context) {
	updateResource(c, co.Ledger.MatchRule, matchRuleEditable, co.Ledger.SubmitMatchRule, newMatchRule)
}

// @Summary		Delete match rule
// @Description	Deletes a match rule
// @Tags			Match Rules
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [delete]
func (co Controller) DeleteMatchRule(c *gin.Context) {
	deleteResource(c, co.Ledger.RemoveMatchRule)
}
