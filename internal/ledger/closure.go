package ledger

import (
	"context"

	"github.com/Mura0908/finsight-app-New/internal/events"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CarryOverMarker prefixes the description of expenses carried over to the next month.
const CarryOverMarker = "[OVERGEDRAGEN] "

// ClosureResult is the outcome of closing a month.
type ClosureResult struct {
	Closure     models.MonthClosure `json:"closure"`     // The closure record
	Transferred []models.Expense    `json:"transferred"` // The new expenses in the next month
}

// CloseMonth carries the open expenses of the current month over to the next
// month.
//
// Every open expense of the month is copied with the marker prefixed to its
// description and its date moved to the same day of the next month, or the
// last day of the next month if it is shorter. The originals are not changed.
// Closing a month again copies its open expenses again.
func (l *Ledger) CloseMonth(ctx context.Context) (ClosureResult, error) {
	now := l.now().In(l.location)
	month := l.Today().CalendarMonth()

	result := ClosureResult{
		Transferred: make([]models.Expense, 0),
	}

	err := l.tx(ctx, func(tx *gorm.DB) error {
		var open []models.Expense
		err := tx.
			Where("payment_status = ? AND month = ?", models.PaymentStatusOpen, month).
			Order("date ASC, created_at ASC").
			Find(&open).Error
		if err != nil {
			return err
		}

		categories := []string{}
		for _, original := range open {
			carried := models.Expense{
				Description:   CarryOverMarker + original.Description,
				Amount:        original.Amount,
				Category:      original.Category,
				Date:          original.Date.SameDayNextMonth(),
				PaymentMethod: original.PaymentMethod,
				PaymentStatus: models.PaymentStatusOpen,
			}

			err = tx.Create(&carried).Error
			if err != nil {
				return err
			}

			result.Transferred = append(result.Transferred, carried)
			categories = append(categories, carried.Category)
		}

		result.Closure = models.MonthClosure{
			Month:               month,
			ClosedDate:          now.UTC(),
			TransferredExpenses: len(result.Transferred),
		}

		err = tx.Create(&result.Closure).Error
		if err != nil {
			return err
		}

		return recomputeUsed(tx, categories...)
	})
	if err != nil {
		return ClosureResult{}, err
	}

	log.Info().Str("month", month.String()).Int("transferred", result.Closure.TransferredExpenses).Msg("closed month")
	l.publish(ctx, events.New(events.TypeMonthClosed, result.Closure))

	return result, nil
}

// Closures returns all month closures, newest first.
func (l *Ledger) Closures(ctx context.Context) ([]models.MonthClosure, error) {
	closures := make([]models.MonthClosure, 0)
	err := l.db.WithContext(ctx).Order("closed_date DESC, created_at DESC").Find(&closures).Error
	return closures, err
}
