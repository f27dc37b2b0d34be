package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterMonthClosureRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonthClosures)
	r.GET("", co.GetMonthClosures)
	r.POST("", co.CloseMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Month Closures
// @Success		204
// @Router			/v1/month-closures [options]
func OptionsMonthClosures(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get month closures
// @Description	Returns all month closures, newest first
// @Tags			Month Closures
// @Produce		json
// @Success		200	{object}	ListResponse[models.MonthClosure]
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/month-closures [get]
func (co Controller) GetMonthClosures(c *gin.Context) {
	closures, err := co.Ledger.Closures(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, closures, int64(len(closures)), 0, len(closures), identity[models.MonthClosure]))
}

// @Summary		Close month
// @Description	Closes the current month. Every unpaid expense of the month is copied to the same day of the next month.
// @Tags			Month Closures
// @Produce		json
// @Success		201	{object}	Response[ledger.ClosureResult]
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/month-closures [post]
func (co Controller) CloseMonth(c *gin.Context) {
	result, err := co.Ledger.CloseMonth(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[ledger.ClosureResult]{Data: &result})
}
