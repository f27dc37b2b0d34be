package models

import (
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt is a loan that is paid off over time.
type Debt struct {
	DefaultModel
	Name           string          `json:"name" example:"Car loan"`                                              // Name of the debt
	Amount         decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"8000" minimum:"0.00000001"` // The principal
	Creditor       string          `json:"creditor" example:"Bank"`                                              // Who the money is owed to
	Interest       decimal.Decimal `json:"interest" gorm:"type:DECIMAL(20,8)" example:"4.5" minimum:"0"`         // Interest rate in percent
	StartDate      types.Date      `json:"startDate" example:"2023-01-01" swaggertype:"string"`                  // Start of the loan
	EndDate        types.Date      `json:"endDate" example:"2027-01-01" swaggertype:"string"`                    // Planned end of the loan
	MonthlyPayment decimal.Decimal `json:"monthlyPayment" gorm:"type:DECIMAL(20,8)" example:"180" minimum:"0"`   // Planned monthly payment
	Paid           decimal.Decimal `json:"paid" gorm:"type:DECIMAL(20,8)" example:"2160" minimum:"0"`            // Amount paid off so far
}

func (Debt) Self() string {
	return "Debt"
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Creditor = strings.TrimSpace(d.Creditor)

	if d.Name == "" {
		return ErrNameRequired
	}

	if !d.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if d.Interest.IsNegative() || d.MonthlyPayment.IsNegative() || d.Paid.IsNegative() {
		return ErrAmountNegative
	}

	if d.Paid.GreaterThan(d.Amount) {
		return ErrDebtPaidExceedsAmount
	}

	if !d.StartDate.IsZero() && !d.EndDate.IsZero() && d.EndDate.Before(d.StartDate) {
		return ErrDebtEndBeforeStart
	}

	return nil
}
