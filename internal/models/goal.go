package models

import (
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target.
type Goal struct {
	DefaultModel
	Name          string          `json:"name" example:"New bike"`                                              // Name of the goal
	Target        decimal.Decimal `json:"target" gorm:"type:DECIMAL(20,8)" example:"1000" minimum:"0.00000001"` // Amount to save
	Deadline      types.Date      `json:"deadline" example:"2024-12-31" swaggertype:"string"`                   // Date the target should be reached
	MonthlyAmount decimal.Decimal `json:"monthlyAmount" gorm:"type:DECIMAL(20,8)" example:"100" minimum:"0"`    // Planned monthly saving
	Description   string          `json:"description" example:"For the commute"`                                // Description of the goal
	Saved         decimal.Decimal `json:"saved" gorm:"type:DECIMAL(20,8)" example:"250" minimum:"0"`            // Amount saved so far
}

func (Goal) Self() string {
	return "Goal"
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Description = strings.TrimSpace(g.Description)

	if g.Name == "" {
		return ErrNameRequired
	}

	if !g.Target.IsPositive() {
		return ErrAmountNotPositive
	}

	if g.Deadline.IsZero() {
		return ErrDeadlineRequired
	}

	if g.MonthlyAmount.IsNegative() || g.Saved.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
