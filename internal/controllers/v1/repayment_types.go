package v1

import (
	"fmt"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	// RepaymentSessionHeader carries the token of an unlocked repayment session.
	RepaymentSessionHeader = "X-Repayment-Session"

	// repaymentSessionCookie carries the token for browser clients.
	repaymentSessionCookie = "finsight_repayment_session"
)

// repaymentToken returns the session token of the request. The header takes
// precedence over the cookie.
func repaymentToken(c *gin.Context) string {
	if token := c.GetHeader(RepaymentSessionHeader); token != "" {
		return token
	}

	token, _ := c.Cookie(repaymentSessionCookie)
	return token
}

type RepaymentEditable struct {
	Person      string               `json:"person" example:"Sam"`                                             // The other person
	Amount      decimal.Decimal      `json:"amount" example:"25" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount owed
	Date        types.Date           `json:"date" example:"2024-03-02" swaggertype:"string"`                   // Date the debt was made. Defaults to today
	Type        models.RepaymentType `json:"type" example:"owed-to-me" enums:"owed-to-me,owed-by-me"`          // Direction of the debt
	Description string               `json:"description" example:"Concert tickets"`                            // Description of the repayment
}

func (editable RepaymentEditable) model() models.Repayment {
	return models.Repayment{
		Person:      editable.Person,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Type:        editable.Type,
		Description: editable.Description,
	}
}

func repaymentEditable(model models.Repayment) RepaymentEditable {
	return RepaymentEditable{
		Person:      model.Person,
		Amount:      model.Amount,
		Date:        model.Date,
		Type:        model.Type,
		Description: model.Description,
	}
}

type RepaymentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/repayments/1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e"`      // The repayment itself
	Paid string `json:"paid" example:"https://example.com/api/v1/repayments/1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e/paid"` // Endpoint to settle the repayment
}

type Repayment struct {
	models.Repayment
	Links RepaymentLinks `json:"links"`
}

func newRepayment(c *gin.Context, model models.Repayment) Repayment {
	self := fmt.Sprintf("%s/v1/repayments/%s", httputil.BaseURL(c), model.ID)

	return Repayment{
		Repayment: model,
		Links: RepaymentLinks{
			Self: self,
			Paid: self + "/paid",
		},
	}
}

type RepaymentQueryFilter struct {
	Person string               `form:"person"` // By person
	Type   models.RepaymentType `form:"type"`   // By type, "owed-to-me" or "owed-by-me"
	Offset uint                 `form:"offset"` // The offset of the first repayment returned. Defaults to 0.
	Limit  int                  `form:"limit"`  // Maximum number of repayments to return. Defaults to 50.
}

// RepaymentUnlock is the body to unlock the repayments.
type RepaymentUnlock struct {
	Password string `json:"password" example:"correct horse battery staple"` // The repayment password
	Setup    string `json:"setup" example:""`                                // The new password when none is set yet
}

// RepaymentSession is the state of the repayment session of the request.
type RepaymentSession struct {
	PasswordSet bool   `json:"passwordSet" example:"true"`                                     // A repayment password is set up
	Unlocked    bool   `json:"unlocked" example:"true"`                                        // The request carries a valid session token
	Token       string `json:"token,omitempty" example:"6f1e2d3c-4b5a-4968-8776-5a4b3c2d1e0f"` // The session token. Only returned when unlocking
}
