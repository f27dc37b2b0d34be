package v1

import (
	"errors"
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	ez_uuid "github.com/Mura0908/finsight-app-New/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// defaultLimit is the number of resources returned by list endpoints
// when the request does not set a limit.
const defaultLimit = 50

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	DB     *gorm.DB
	Ledger *ledger.Ledger
}

// RegisterRoutes registers all v1 routes on the group.
func (co Controller) RegisterRoutes(v1 *gin.RouterGroup) {
	{
		v1.OPTIONS("", OptionsRoot)
		v1.GET("", GetRoot)
		v1.DELETE("", co.Cleanup)
	}

	co.RegisterCategoryRoutes(v1.Group("/categories"))
	co.RegisterIncomeRoutes(v1.Group("/incomes"))
	co.RegisterExpenseRoutes(v1.Group("/expenses"))
	co.RegisterBudgetRoutes(v1.Group("/budgets"))
	co.RegisterGoalRoutes(v1.Group("/goals"))
	co.RegisterDebtRoutes(v1.Group("/debts"))
	co.RegisterRepaymentRoutes(v1.Group("/repayments"))
	co.RegisterMonthClosureRoutes(v1.Group("/month-closures"))
	co.RegisterMatchRuleRoutes(v1.Group("/match-rules"))
	co.RegisterOverviewRoutes(v1)
	co.RegisterPersistenceRoutes(v1)
}

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrRepaymentLocked):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// abort writes the error response for err.
func abort(c *gin.Context, err error) {
	code := status(err)
	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(code, httputil.HTTPError{
		Error: err.Error(),
	})
}

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination is included in all list responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// Response is the response for a single resource.
type Response[R any] struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *R      `json:"data"`                                                          // The resource
}

// ListResponse is the response for a list of resources.
type ListResponse[R any] struct {
	Data       []R         `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

// CreateResponse is the response for the creation of multiple resources.
type CreateResponse[R any] struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Response[R] `json:"data"`                                                          // List of created resources
}

func (r *CreateResponse[R]) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, Response[R]{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

// listLimit returns the limit for a list request. It defaults to 50
// when the request does not specify it.
func listLimit(c *gin.Context, filter any, requested int) int {
	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Limit") {
		return requested
	}

	return defaultLimit
}
