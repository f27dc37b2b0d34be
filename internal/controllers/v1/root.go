package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of Category collection endpoint
	Incomes       string `json:"incomes" example:"https://example.com/api/v1/incomes"`              // URL of Income collection endpoint
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // URL of Expense collection endpoint
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`              // URL of Budget collection endpoint
	Goals         string `json:"goals" example:"https://example.com/api/v1/goals"`                  // URL of Goal collection endpoint
	Debts         string `json:"debts" example:"https://example.com/api/v1/debts"`                  // URL of Debt collection endpoint
	Repayments    string `json:"repayments" example:"https://example.com/api/v1/repayments"`        // URL of Repayment collection endpoint
	MonthClosures string `json:"monthClosures" example:"https://example.com/api/v1/month-closures"` // URL of Month Closure collection endpoint
	MatchRules    string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`       // URL of Match Rule collection endpoint
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`          // URL of the dashboard
	Reports       string `json:"reports" example:"https://example.com/api/v1/reports"`              // URL of the reports
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the export endpoint
	Import        string `json:"import" example:"https://example.com/api/v1/import"`                // URL of the import endpoint
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := httputil.BaseURL(c) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Categories:    url + "/categories",
			Incomes:       url + "/incomes",
			Expenses:      url + "/expenses",
			Budgets:       url + "/budgets",
			Goals:         url + "/goals",
			Debts:         url + "/debts",
			Repayments:    url + "/repayments",
			MonthClosures: url + "/month-closures",
			MatchRules:    url + "/match-rules",
			Dashboard:     url + "/dashboard",
			Reports:       url + "/reports",
			Export:        url + "/export",
			Import:        url + "/import",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// Cleanup deletes all data and restores the default categories
//
//	@Summary		Delete everything
//	@Description	Permanently deletes all resources and restores the default categories. Unlocked repayment sessions end.
//	@Tags			v1
//	@Success		204
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		abort(c, httputil.ErrCleanupConfirmation)
		return
	}

	err = co.Ledger.Cleanup(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
