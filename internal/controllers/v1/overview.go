package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/report"
	"github.com/gin-gonic/gin"
)

type PeriodQuery struct {
	Period string `form:"period"` // The period of the chart buckets
}

func (co Controller) RegisterOverviewRoutes(v1 *gin.RouterGroup) {
	v1.OPTIONS("/dashboard", OptionsDashboard)
	v1.GET("/dashboard", co.GetDashboard)
	v1.OPTIONS("/reports", OptionsReports)
	v1.GET("/reports", co.GetReport)
}

// bindPeriod parses the period query parameter. It writes the error
// response and returns false if that is not possible.
func bindPeriod(c *gin.Context) (report.Period, bool) {
	var query PeriodQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		abort(c, err)
		return "", false
	}

	period, err := report.ParsePeriod(query.Period)
	if err != nil {
		abort(c, err)
		return "", false
	}

	return period, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Overview
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Overview
// @Success		204
// @Router			/v1/reports [options]
func OptionsReports(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns totals, recent entries, the chart series, the expense breakdown and the month closures.
// @Description	Only the chart buckets depend on the period.
// @Tags			Overview
// @Produce		json
// @Success		200		{object}	Response[ledger.Dashboard]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			period	query		string	false	"One of 'week', 'month' or 'year'. Defaults to 'month'."
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	dashboard, err := co.Ledger.Dashboard(c.Request.Context(), period)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[ledger.Dashboard]{Data: &dashboard})
}

// @Summary		Get report
// @Description	Returns totals, statistics and the trend series for a period
// @Tags			Overview
// @Produce		json
// @Success		200		{object}	Response[ledger.Report]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			period	query		string	false	"One of 'month', 'quarter' or 'year'. Defaults to 'month'."
// @Router			/v1/reports [get]
func (co Controller) GetReport(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	r, err := co.Ledger.Report(c.Request.Context(), period)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[ledger.Report]{Data: &r})
}
