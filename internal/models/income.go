package models

import (
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money received.
type Income struct {
	DefaultModel
	Description string          `json:"description" example:"Salary March"`                                                    // Description of the income
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2500" minimum:"0.00000001"`                  // Amount received
	Category    string          `json:"category" gorm:"index" example:"salary"`                                                // ID of the income category
	Date        types.Date      `json:"date" gorm:"index" example:"2024-03-25" swaggertype:"string"`                           // Date the income was received
	Frequency   string          `json:"frequency" example:"monthly"`                                                           // How often the income recurs, free text
	Source      string          `json:"source" example:"ACME Corp."`                                                           // Who paid the income
	ImportHash  string          `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // SHA256 hash used to detect duplicates on import
}

func (Income) Self() string {
	return "Income"
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	i.Frequency = strings.TrimSpace(i.Frequency)
	i.Source = strings.TrimSpace(i.Source)
	i.ImportHash = strings.TrimSpace(i.ImportHash)

	if i.Description == "" {
		return ErrDescriptionRequired
	}

	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if i.Date.IsZero() {
		return ErrDateRequired
	}

	return nil
}
