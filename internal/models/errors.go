package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive      = errors.New("the amount must be larger than zero")
	ErrAmountNegative         = errors.New("amounts must not be negative")
	ErrDescriptionRequired    = errors.New("a description is required")
	ErrNameRequired           = errors.New("a name is required")
	ErrPersonRequired         = errors.New("a person is required")
	ErrDateRequired           = errors.New("a date is required")
	ErrDeadlineRequired       = errors.New("a deadline is required")
	ErrCategoryExists         = errors.New("a category with this name already exists for this type")
	ErrCategoryTypeInvalid    = errors.New("the category type must be 'income' or 'expense'")
	ErrPaymentStatusInvalid   = errors.New("the payment status must be 'open' or 'paid'")
	ErrBudgetPeriodInvalid    = errors.New("the budget period must be 'weekly', 'monthly' or 'yearly'")
	ErrRepaymentTypeInvalid   = errors.New("the repayment type must be 'owed-to-me' or 'owed-by-me'")
	ErrDebtPaidExceedsAmount  = errors.New("the paid amount of a debt cannot exceed the debt amount")
	ErrDebtEndBeforeStart     = errors.New("the end date of a debt must not be before its start date")
	ErrMatchRuleMatchRequired = errors.New("the match pattern of a match rule must not be empty")
)
