package ledger

import (
	"context"

	"github.com/Mura0908/finsight-app-New/internal/importer"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryFilter selects incomes or expenses. Zero values do not filter.
type EntryFilter struct {
	Description       string          // Exact description
	Search            string          // Substring of the description
	Category          string          // Category ID
	FromDate          types.Date      // Earliest date, inclusive
	UntilDate         types.Date      // Latest date, inclusive
	AmountLessOrEqual decimal.Decimal // Highest amount
	AmountMoreOrEqual decimal.Decimal // Lowest amount
	Offset            uint            // Number of entries to skip
	Limit             int             // Maximum number of entries, 0 for all
}

// ExpenseFilter adds the expense specific fields to EntryFilter.
type ExpenseFilter struct {
	EntryFilter
	PaymentMethod string
	PaymentStatus models.PaymentStatus
	Month         types.Month
}

// apply adds the filter conditions. It does not apply offset and limit so
// that the result can be counted.
func (f EntryFilter) apply(query *gorm.DB) *gorm.DB {
	if f.Description != "" {
		query = query.Where("description = ?", f.Description)
	}

	if f.Search != "" {
		query = query.Where("description LIKE ? ESCAPE '\\'", containsPattern(f.Search))
	}

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}

	if !f.FromDate.IsZero() {
		query = query.Where("date >= ?", f.FromDate)
	}

	if !f.UntilDate.IsZero() {
		query = query.Where("date <= ?", f.UntilDate)
	}

	if !f.AmountLessOrEqual.IsZero() {
		query = query.Where("amount <= ?", f.AmountLessOrEqual)
	}

	if !f.AmountMoreOrEqual.IsZero() {
		query = query.Where("amount >= ?", f.AmountMoreOrEqual)
	}

	return query
}

func (f ExpenseFilter) apply(query *gorm.DB) *gorm.DB {
	query = f.EntryFilter.apply(query)

	if f.PaymentMethod != "" {
		query = query.Where("payment_method = ?", f.PaymentMethod)
	}

	if f.PaymentStatus != "" {
		query = query.Where("payment_status = ?", f.PaymentStatus)
	}

	if !f.Month.IsZero() {
		query = query.Where("month = ?", f.Month)
	}

	return query
}

// page loads one page of entries, newest first. Entries of the same day are
// in the order they were created.
func page[T any](query *gorm.DB, offset uint, limit int) ([]T, int64, error) {
	return list[T](query, "date DESC, created_at ASC", offset, limit)
}

// list counts the matching rows and loads one page of them.
func list[T any](query *gorm.DB, order string, offset uint, limit int) ([]T, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	if limit == 0 {
		limit = -1
	}

	resources := make([]T, 0)
	err = query.
		Order(order).
		Offset(int(offset)).
		Limit(limit).
		Find(&resources).Error
	if err != nil {
		return nil, 0, err
	}

	return resources, total, nil
}

// Incomes returns the incomes matching the filter and the total number of matches.
func (l *Ledger) Incomes(ctx context.Context, filter EntryFilter) ([]models.Income, int64, error) {
	query := filter.apply(l.db.WithContext(ctx).Model(&models.Income{}))
	return page[models.Income](query, filter.Offset, filter.Limit)
}

// Expenses returns the expenses matching the filter and the total number of matches.
func (l *Ledger) Expenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, int64, error) {
	query := filter.apply(l.db.WithContext(ctx).Model(&models.Expense{}))
	return page[models.Expense](query, filter.Offset, filter.Limit)
}

func (l *Ledger) Income(ctx context.Context, id uuid.UUID) (models.Income, error) {
	return first[models.Income](l.db.WithContext(ctx), id)
}

func (l *Ledger) Expense(ctx context.Context, id uuid.UUID) (models.Expense, error) {
	return first[models.Expense](l.db.WithContext(ctx), id)
}

// categorize sets the category for an entry without one. The first match rule
// for the description decides, entries no rule matches go to "other".
func categorize(tx *gorm.DB, typ models.CategoryType, description string, category *string) error {
	if *category != "" {
		return ensureCategory(tx, typ, *category)
	}

	var rules []models.MatchRule
	err := tx.Where("type = ?", typ).Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return err
	}

	if c, _, ok := importer.Match(rules, typ, description); ok {
		*category = c
		return nil
	}

	*category = models.CategoryOther
	return nil
}

// SubmitIncome creates an income or replaces an existing one.
func (l *Ledger) SubmitIncome(ctx context.Context, mode Mode, income models.Income) (models.Income, error) {
	err := l.tx(ctx, func(tx *gorm.DB) error {
		if mode.IsEdit() {
			current, err := first[models.Income](tx, mode.ID())
			if err != nil {
				return err
			}
			income.DefaultModel = current.DefaultModel
		} else {
			income.DefaultModel = models.DefaultModel{}
		}

		err := categorize(tx, models.CategoryTypeIncome, income.Description, &income.Category)
		if err != nil {
			return err
		}

		return tx.Save(&income).Error
	})
	if err != nil {
		return models.Income{}, err
	}

	return income, nil
}

// SubmitExpense creates an expense or replaces an existing one. New expenses
// are always open. The budgets of the previous and the new category are
// recomputed.
func (l *Ledger) SubmitExpense(ctx context.Context, mode Mode, expense models.Expense) (models.Expense, error) {
	err := l.tx(ctx, func(tx *gorm.DB) error {
		affected := []string{}

		if mode.IsEdit() {
			current, err := first[models.Expense](tx, mode.ID())
			if err != nil {
				return err
			}
			expense.DefaultModel = current.DefaultModel
			affected = append(affected, current.Category)
		} else {
			expense.DefaultModel = models.DefaultModel{}
			expense.PaymentStatus = models.PaymentStatusOpen
		}

		err := categorize(tx, models.CategoryTypeExpense, expense.Description, &expense.Category)
		if err != nil {
			return err
		}

		err = tx.Save(&expense).Error
		if err != nil {
			return err
		}

		return recomputeUsed(tx, append(affected, expense.Category)...)
	})
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// MarkExpensePaid sets the payment status of the expense to paid.
func (l *Ledger) MarkExpensePaid(ctx context.Context, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	err := l.tx(ctx, func(tx *gorm.DB) error {
		var err error
		expense, err = first[models.Expense](tx, id)
		if err != nil {
			return err
		}

		expense.PaymentStatus = models.PaymentStatusPaid
		return tx.Save(&expense).Error
	})
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// RemoveIncome deletes an income.
func (l *Ledger) RemoveIncome(ctx context.Context, id uuid.UUID) error {
	return remove[models.Income](l.db.WithContext(ctx), id)
}

// RemoveExpense deletes an expense and recomputes the budgets of its category.
func (l *Ledger) RemoveExpense(ctx context.Context, id uuid.UUID) error {
	return l.tx(ctx, func(tx *gorm.DB) error {
		expense, err := first[models.Expense](tx, id)
		if err != nil {
			return err
		}

		err = remove[models.Expense](tx, id)
		if err != nil {
			return err
		}

		return recomputeUsed(tx, expense.Category)
	})
}
