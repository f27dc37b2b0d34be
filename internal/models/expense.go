package models

import (
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusOpen PaymentStatus = "open"
	PaymentStatusPaid PaymentStatus = "paid"
)

// Expense is money spent.
type Expense struct {
	DefaultModel
	Description   string          `json:"description" example:"Albert Heijn"`                                                    // Description of the expense
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.17" minimum:"0.00000001"`                 // Amount spent
	Category      string          `json:"category" gorm:"index" example:"groceries"`                                             // ID of the expense category
	Date          types.Date      `json:"date" gorm:"index" example:"2024-03-12" swaggertype:"string"`                           // Date of the expense
	PaymentMethod string          `json:"paymentMethod" example:"card"`                                                          // How the expense is paid
	PaymentStatus PaymentStatus   `json:"paymentStatus" gorm:"index" example:"open" enums:"open,paid"`                           // Whether the expense is paid
	Month         types.Month     `json:"month" gorm:"index" example:"2024-03" swaggertype:"string"`                             // Month of the date. Set automatically
	ImportHash    string          `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // SHA256 hash used to detect duplicates on import
}

func (Expense) Self() string {
	return "Expense"
}

// BeforeSave validates the expense and derives the month from the date.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.PaymentMethod = strings.TrimSpace(e.PaymentMethod)
	e.ImportHash = strings.TrimSpace(e.ImportHash)

	if e.Description == "" {
		return ErrDescriptionRequired
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Date.IsZero() {
		return ErrDateRequired
	}

	if e.PaymentStatus == "" {
		e.PaymentStatus = PaymentStatusOpen
	}

	if e.PaymentStatus != PaymentStatusOpen && e.PaymentStatus != PaymentStatusPaid {
		return ErrPaymentStatusInvalid
	}

	e.Month = e.Date.CalendarMonth()
	return nil
}

var paymentMethodNames = map[string]string{
	"cash":         "Contant",
	"card":         "Betaalpas",
	"transfer":     "Overschrijving",
	"creditcard":   "Creditkaart",
	"debitcard":    "Debitkaart",
	"banktransfer": "Bankoverschrijving",
	"paypal":       "PayPal",
	"other":        "Overige",
}

// PaymentMethodName returns the display name of a payment method.
// Unknown methods are returned unchanged.
func PaymentMethodName(method string) string {
	if name, ok := paymentMethodNames[method]; ok {
		return name
	}

	return method
}
