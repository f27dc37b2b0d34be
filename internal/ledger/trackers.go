package ledger

import (
	"context"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/report"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalProgress is the progress of a goal towards its target.
type GoalProgress struct {
	Percentage    decimal.Decimal `json:"percentage" example:"25"`    // Saved amount in percent of the target, capped at 100
	Remaining     decimal.Decimal `json:"remaining" example:"750"`    // Amount still to save, never negative
	Completed     bool            `json:"completed" example:"false"`  // The target is reached
	DaysRemaining int             `json:"daysRemaining" example:"42"` // Days until the deadline, negative when it has passed
	DueToday      bool            `json:"dueToday" example:"false"`   // The deadline is today or has passed
}

// Progress calculates the progress of a goal on the given day.
func Progress(g models.Goal, today types.Date) GoalProgress {
	p := GoalProgress{
		Percentage:    report.Percentage(g.Saved, g.Target),
		Remaining:     decimal.Max(decimal.Zero, g.Target.Sub(g.Saved)),
		DaysRemaining: today.DaysUntil(g.Deadline),
	}

	p.Completed = p.Percentage.GreaterThanOrEqual(decimal.NewFromInt(100))
	p.DueToday = p.DaysRemaining <= 0
	return p
}

// DebtProgress is how much of a debt is paid off.
type DebtProgress struct {
	Percentage decimal.Decimal `json:"percentage" example:"27"`  // Paid amount in percent of the debt, capped at 100
	Remaining  decimal.Decimal `json:"remaining" example:"5840"` // Amount still to pay
	Settled    bool            `json:"settled" example:"false"`  // The debt is paid off completely
}

// Repaid calculates the progress of a debt.
func Repaid(d models.Debt) DebtProgress {
	p := DebtProgress{
		Percentage: report.Percentage(d.Paid, d.Amount),
		Remaining:  d.Amount.Sub(d.Paid),
	}

	p.Settled = p.Percentage.GreaterThanOrEqual(decimal.NewFromInt(100))
	return p
}

// TrackerFilter selects goals or debts. Zero values do not filter.
type TrackerFilter struct {
	Name   string
	Search string // Substring of name or description / creditor
	Offset uint
	Limit  int
}

func (l *Ledger) Goals(ctx context.Context, filter TrackerFilter) ([]models.Goal, int64, error) {
	query := l.db.WithContext(ctx).Model(&models.Goal{})

	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	if filter.Search != "" {
		query = query.Where("name LIKE ? ESCAPE '\\' OR description LIKE ? ESCAPE '\\'", containsPattern(filter.Search), containsPattern(filter.Search))
	}

	return list[models.Goal](query, "deadline ASC, name ASC", filter.Offset, filter.Limit)
}

func (l *Ledger) Goal(ctx context.Context, id uuid.UUID) (models.Goal, error) {
	return first[models.Goal](l.db.WithContext(ctx), id)
}

// SubmitGoal creates a goal or replaces an existing one. New goals start
// with nothing saved, edits keep the saved amount.
func (l *Ledger) SubmitGoal(ctx context.Context, mode Mode, goal models.Goal) (models.Goal, error) {
	err := l.tx(ctx, func(tx *gorm.DB) error {
		if mode.IsEdit() {
			current, err := first[models.Goal](tx, mode.ID())
			if err != nil {
				return err
			}
			goal.DefaultModel = current.DefaultModel
			goal.Saved = current.Saved
		} else {
			goal.DefaultModel = models.DefaultModel{}
			goal.Saved = decimal.Zero
		}

		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// Deposit adds an amount to the saved amount of a goal. Deposits can exceed the target.
func (l *Ledger) Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (models.Goal, error) {
	if !amount.IsPositive() {
		return models.Goal{}, ErrDepositNotPositive
	}

	var goal models.Goal
	err := l.tx(ctx, func(tx *gorm.DB) error {
		var err error
		goal, err = first[models.Goal](tx, id)
		if err != nil {
			return err
		}

		goal.Saved = goal.Saved.Add(amount)
		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

func (l *Ledger) RemoveGoal(ctx context.Context, id uuid.UUID) error {
	return remove[models.Goal](l.db.WithContext(ctx), id)
}

func (l *Ledger) Debts(ctx context.Context, filter TrackerFilter) ([]models.Debt, int64, error) {
	query := l.db.WithContext(ctx).Model(&models.Debt{})

	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	if filter.Search != "" {
		query = query.Where("name LIKE ? ESCAPE '\\' OR creditor LIKE ? ESCAPE '\\'", containsPattern(filter.Search), containsPattern(filter.Search))
	}

	return list[models.Debt](query, "end_date ASC, name ASC", filter.Offset, filter.Limit)
}

func (l *Ledger) Debt(ctx context.Context, id uuid.UUID) (models.Debt, error) {
	return first[models.Debt](l.db.WithContext(ctx), id)
}

// SubmitDebt creates a debt or replaces an existing one. New debts start
// with nothing paid, edits keep the paid amount.
func (l *Ledger) SubmitDebt(ctx context.Context, mode Mode, debt models.Debt) (models.Debt, error) {
	err := l.tx(ctx, func(tx *gorm.DB) error {
		if mode.IsEdit() {
			current, err := first[models.Debt](tx, mode.ID())
			if err != nil {
				return err
			}
			debt.DefaultModel = current.DefaultModel
			debt.Paid = current.Paid
		} else {
			debt.DefaultModel = models.DefaultModel{}
			debt.Paid = decimal.Zero
		}

		return tx.Save(&debt).Error
	})
	if err != nil {
		return models.Debt{}, err
	}

	return debt, nil
}

// Pay adds a payment to a debt. The payment must be positive and must not
// exceed the remaining amount. Nothing changes if it is rejected.
func (l *Ledger) Pay(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (models.Debt, error) {
	if !amount.IsPositive() {
		return models.Debt{}, ErrPaymentNotPositive
	}

	var debt models.Debt
	err := l.tx(ctx, func(tx *gorm.DB) error {
		var err error
		debt, err = first[models.Debt](tx, id)
		if err != nil {
			return err
		}

		if amount.GreaterThan(debt.Amount.Sub(debt.Paid)) {
			return ErrPaymentExceedsBalance
		}

		debt.Paid = debt.Paid.Add(amount)
		return tx.Save(&debt).Error
	})
	if err != nil {
		return models.Debt{}, err
	}

	return debt, nil
}

func (l *Ledger) RemoveDebt(ctx context.Context, id uuid.UUID) error {
	return remove[models.Debt](l.db.WithContext(ctx), id)
}
