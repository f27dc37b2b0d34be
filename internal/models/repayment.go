package models

import (
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RepaymentType string

const (
	RepaymentOwedToMe RepaymentType = "owed-to-me"
	RepaymentOwedByMe RepaymentType = "owed-by-me"
)

// Repayment is money owed between the user and another person.
type Repayment struct {
	DefaultModel
	Person      string          `json:"person" example:"Sam"`                                               // The other person
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"25" minimum:"0.00000001"` // Amount owed
	Date        types.Date      `json:"date" example:"2024-03-02" swaggertype:"string"`                     // Date the debt was made
	Type        RepaymentType   `json:"type" example:"owed-to-me" enums:"owed-to-me,owed-by-me"`            // Direction of the debt
	Description string          `json:"description" example:"Concert tickets"`                              // Description of the repayment
}

func (Repayment) Self() string {
	return "Repayment"
}

func (r *Repayment) BeforeSave(_ *gorm.DB) error {
	r.Person = strings.TrimSpace(r.Person)
	r.Description = strings.TrimSpace(r.Description)

	if r.Person == "" {
		return ErrPersonRequired
	}

	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if r.Type != RepaymentOwedToMe && r.Type != RepaymentOwedByMe {
		return ErrRepaymentTypeInvalid
	}

	return nil
}
