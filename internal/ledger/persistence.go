package ledger

import (
	"context"
	"fmt"

	"github.com/Mura0908/finsight-app-New/internal/events"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Snapshot contains all data of FinSight except the settings.
type Snapshot struct {
	Incomes       []models.Income       `json:"incomes"`
	Expenses      []models.Expense      `json:"expenses"`
	Budgets       []models.Budget       `json:"budgets"`
	Goals         []models.Goal         `json:"goals"`
	Debts         []models.Debt         `json:"debts"`
	Repayments    []models.Repayment    `json:"repayments"`
	Categories    []models.Category     `json:"categories,omitempty"`
	MonthClosures []models.MonthClosure `json:"monthClosures"`
	MatchRules    []models.MatchRule    `json:"matchRules"`
}

// ImportSummary counts the imported resources.
type ImportSummary struct {
	Incomes       int `json:"incomes"`
	Expenses      int `json:"expenses"`
	Budgets       int `json:"budgets"`
	Goals         int `json:"goals"`
	Debts         int `json:"debts"`
	Repayments    int `json:"repayments"`
	Categories    int `json:"categories"`
	MonthClosures int `json:"monthClosures"`
	MatchRules    int `json:"matchRules"`
}

func (s Snapshot) summary() ImportSummary {
	return ImportSummary{
		Incomes:       len(s.Incomes),
		Expenses:      len(s.Expenses),
		Budgets:       len(s.Budgets),
		Goals:         len(s.Goals),
		Debts:         len(s.Debts),
		Repayments:    len(s.Repayments),
		Categories:    len(s.Categories),
		MonthClosures: len(s.MonthClosures),
		MatchRules:    len(s.MatchRules),
	}
}

// findAll loads all rows of a table in a stable order.
func findAll[T any](tx *gorm.DB, order string) ([]T, error) {
	resources := make([]T, 0)
	err := tx.Order(order).Find(&resources).Error
	return resources, err
}

// Export returns all data. IDs and timestamps are kept so that the snapshot
// can be imported again without changes.
func (l *Ledger) Export(ctx context.Context) (Snapshot, error) {
	var s Snapshot

	err := l.tx(ctx, func(tx *gorm.DB) (err error) {
		if s.Incomes, err = findAll[models.Income](tx, "date DESC, created_at ASC, id ASC"); err != nil {
			return err
		}
		if s.Expenses, err = findAll[models.Expense](tx, "date DESC, created_at ASC, id ASC"); err != nil {
			return err
		}
		if s.Budgets, err = findAll[models.Budget](tx, "created_at ASC, id ASC"); err != nil {
			return err
		}
		if s.Goals, err = findAll[models.Goal](tx, "created_at ASC, id ASC"); err != nil {
			return err
		}
		if s.Debts, err = findAll[models.Debt](tx, "created_at ASC, id ASC"); err != nil {
			return err
		}
		if s.Repayments, err = findAll[models.Repayment](tx, "created_at ASC, id ASC"); err != nil {
			return err
		}
		if s.Categories, err = findAll[models.Category](tx, "type ASC, id ASC"); err != nil {
			return err
		}
		if s.MonthClosures, err = findAll[models.MonthClosure](tx, "closed_date ASC, id ASC"); err != nil {
			return err
		}
		s.MatchRules, err = findAll[models.MatchRule](tx, "priority ASC, created_at ASC, id ASC")
		return err
	})
	if err != nil {
		return Snapshot{}, err
	}

	return s, nil
}

// truncate deletes all rows of all resources. Settings are kept unless
// withSettings is set.
func truncate(tx *gorm.DB, withSettings bool) error {
	for _, model := range models.Registry {
		if _, ok := model.(models.Setting); ok && !withSettings {
			continue
		}

		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			return fmt.Errorf("deleting all %s resources failed: %w", model.Self(), err)
		}
	}

	return nil
}

// create inserts the resources if there are any.
func create[T any](tx *gorm.DB, resources []T) error {
	if len(resources) == 0 {
		return nil
	}

	return tx.Create(&resources).Error
}

// Import replaces all data with the snapshot.
//
// Without categories in the snapshot, the default categories are used. The
// used amounts of all budgets are computed from the imported expenses. The
// repayment password is not changed.
func (l *Ledger) Import(ctx context.Context, s Snapshot) (ImportSummary, error) {
	summary := s.summary()

	err := l.tx(ctx, func(tx *gorm.DB) error {
		err := truncate(tx, false)
		if err != nil {
			return err
		}

		categories := s.Categories
		if len(categories) == 0 {
			categories = models.DefaultCategories()
		}
		summary.Categories = len(categories)

		steps := []func() error{
			func() error { return create(tx, categories) },
			func() error { return create(tx, s.Incomes) },
			func() error { return create(tx, s.Expenses) },
			func() error { return create(tx, s.Budgets) },
			func() error { return create(tx, s.Goals) },
			func() error { return create(tx, s.Debts) },
			func() error { return create(tx, s.Repayments) },
			func() error { return create(tx, s.MonthClosures) },
			func() error { return create(tx, s.MatchRules) },
		}

		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		for _, typ := range []models.CategoryType{models.CategoryTypeIncome, models.CategoryTypeExpense} {
			exists, err := categoryExists(tx, typ, models.CategoryOther)
			if err != nil {
				return err
			}

			if !exists {
				err = tx.Create(&models.Category{ID: models.CategoryOther, Type: typ, Name: "Overige"}).Error
				if err != nil {
					return err
				}
			}
		}

		var budgetCategories []string
		err = tx.Model(&models.Budget{}).Distinct().Pluck("category", &budgetCategories).Error
		if err != nil {
			return err
		}

		return recomputeUsed(tx, budgetCategories...)
	})
	if err != nil {
		return ImportSummary{}, err
	}

	log.Info().Interface("summary", summary).Msg("imported data")
	l.publish(ctx, events.New(events.TypeDataImported, summary))

	return summary, nil
}

// Cleanup deletes all data including the repayment password and restores
// the default categories.
func (l *Ledger) Cleanup(ctx context.Context) error {
	err := l.tx(ctx, func(tx *gorm.DB) error {
		err := truncate(tx, true)
		if err != nil {
			return err
		}

		return models.SeedCategories(tx)
	})
	if err != nil {
		return err
	}

	l.sessions.RevokeAll()
	log.Info().Msg("deleted all data")
	return nil
}
