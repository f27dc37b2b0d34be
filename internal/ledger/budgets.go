package ledger

import (
	"context"
	"fmt"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UsageLevel string

const (
	UsageSafe    UsageLevel = "safe"
	UsageWarning UsageLevel = "warning"
	UsageDanger  UsageLevel = "danger"
)

var (
	warningThreshold = decimal.NewFromInt(70)
	dangerThreshold  = decimal.NewFromInt(90)
)

// Usage is how much of a budget is used.
type Usage struct {
	Percentage decimal.Decimal `json:"percentage" example:"48.2"`                        // Used amount in percent of the budget, capped at 100
	Remaining  decimal.Decimal `json:"remaining" example:"129.5"`                        // Amount left, negative when the budget is exceeded
	Level      UsageLevel      `json:"level" example:"safe" enums:"safe,warning,danger"` // "safe" below 70 %, "warning" below 90 %, "danger" otherwise
}

// BudgetUsage calculates the usage of a budget. The level uses the uncapped ratio.
func BudgetUsage(b models.Budget) Usage {
	u := Usage{
		Percentage: report.Percentage(b.Used, b.Amount),
		Remaining:  b.Amount.Sub(b.Used),
		Level:      UsageDanger,
	}

	if b.Amount.IsPositive() {
		ratio := b.Used.Mul(decimal.NewFromInt(100)).Div(b.Amount)
		switch {
		case ratio.LessThan(warningThreshold):
			u.Level = UsageSafe
		case ratio.LessThan(dangerThreshold):
			u.Level = UsageWarning
		}
	}

	return u
}

// sumExpenses returns the sum of all expenses in the category.
func sumExpenses(tx *gorm.DB, category string) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := tx.Model(&models.Expense{}).Where("category = ?", category).Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.Sum(decimal.Zero, amounts...), nil
}

// recomputeUsed sets the used amount of all budgets for the categories to the
// sum of the expenses in that category.
func recomputeUsed(tx *gorm.DB, categories ...string) error {
	done := map[string]bool{}

	for _, category := range categories {
		if done[category] {
			continue
		}
		done[category] = true

		used, err := sumExpenses(tx, category)
		if err != nil {
			return err
		}

		err = tx.Model(&models.Budget{}).Where("category = ?", category).UpdateColumn("used", used).Error
		if err != nil {
			return fmt.Errorf("updating used amount for budgets of %s failed: %w", category, err)
		}
	}

	return nil
}

// RecomputeUsed recomputes the used amount of the budgets for the given
// categories. Without categories, all budgets are recomputed.
func (l *Ledger) RecomputeUsed(ctx context.Context, categories ...string) error {
	return l.tx(ctx, func(tx *gorm.DB) error {
		if len(categories) == 0 {
			err := tx.Model(&models.Budget{}).Distinct().Pluck("category", &categories).Error
			if err != nil {
				return err
			}
		}

		return recomputeUsed(tx, categories...)
	})
}

// BudgetFilter selects budgets. Zero values do not filter.
type BudgetFilter struct {
	Name     string
	Category string
	Period   models.BudgetPeriod
	Offset   uint
	Limit    int
}

// Budgets returns the budgets matching the filter ordered by name and the
// total number of matches.
func (l *Ledger) Budgets(ctx context.Context, filter BudgetFilter) ([]models.Budget, int64, error) {
	query := l.db.WithContext(ctx).Model(&models.Budget{})

	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Period != "" {
		query = query.Where("period = ?", filter.Period)
	}

	return list[models.Budget](query, "name ASC, created_at ASC", filter.Offset, filter.Limit)
}

func (l *Ledger) Budget(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	return first[models.Budget](l.db.WithContext(ctx), id)
}

// SubmitBudget creates a budget or replaces an existing one. The used amount
// is always computed from the expenses.
func (l *Ledger) SubmitBudget(ctx context.Context, mode Mode, budget models.Budget) (models.Budget, error) {
	err := l.tx(ctx, func(tx *gorm.DB) error {
		if mode.IsEdit() {
			current, err := first[models.Budget](tx, mode.ID())
			if err != nil {
				return err
			}
			budget.DefaultModel = current.DefaultModel
		} else {
			budget.DefaultModel = models.DefaultModel{}
		}

		if budget.Category == "" {
			budget.Category = models.CategoryOther
		}

		err := ensureCategory(tx, models.CategoryTypeExpense, budget.Category)
		if err != nil {
			return err
		}

		budget.Used, err = sumExpenses(tx, budget.Category)
		if err != nil {
			return err
		}

		return tx.Save(&budget).Error
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// RemoveBudget deletes a budget.
func (l *Ledger) RemoveBudget(ctx context.Context, id uuid.UUID) error {
	return remove[models.Budget](l.db.WithContext(ctx), id)
}
