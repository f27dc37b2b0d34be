package models

import (
	"time"

	"github.com/Mura0908/finsight-app-New/internal/types"
)

// MonthClosure records that open expenses of a month were carried
// over to the next month. Closures are never changed.
type MonthClosure struct {
	DefaultModel
	Month               types.Month `json:"month" gorm:"index" example:"2024-03" swaggertype:"string"` // The month that was closed
	ClosedDate          time.Time   `json:"closedDate" example:"2024-03-31T21:14:05Z"`                 // When the month was closed
	TransferredExpenses int         `json:"transferredExpenses" example:"3"`                           // Number of expenses carried over
}

func (MonthClosure) Self() string {
	return "Month Closure"
}
