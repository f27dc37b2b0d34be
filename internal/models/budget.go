package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a spending cap for an expense category.
type Budget struct {
	DefaultModel
	Name     string          `json:"name" example:"Groceries"`                                            // Name of the budget
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"250" minimum:"0.00000001"` // The cap
	Category string          `json:"category" gorm:"index" example:"groceries"`                           // ID of the expense category
	Period   BudgetPeriod    `json:"period" example:"monthly" enums:"weekly,monthly,yearly"`              // Period the cap applies to
	Used     decimal.Decimal `json:"used" gorm:"type:DECIMAL(20,8)" example:"120.5" readonly:"true"`      // Sum of all expenses in the category. Computed
}

func (Budget) Self() string {
	return "Budget"
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.Name == "" {
		return ErrNameRequired
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}

	switch b.Period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
	default:
		return ErrBudgetPeriodInvalid
	}

	return nil
}
