package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Resolver returns the display name for a category ID.
type Resolver func(id string) string

// Resolver loads all categories and returns a function that resolves a category
// ID to its name. Income categories take precedence over expense categories.
// IDs that are not known are resolved through the default taxonomy and
// returned unchanged if that fails, too.
func (l *Ledger) Resolver(ctx context.Context) (Resolver, error) {
	var categories []models.Category
	err := l.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, typ := range []models.CategoryType{models.CategoryTypeExpense, models.CategoryTypeIncome} {
		for _, c := range categories {
			if c.Type == typ {
				names[c.ID] = c.Name
			}
		}
	}

	return func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}

		if name, ok := models.LegacyName(id); ok {
			return name
		}

		return id
	}, nil
}

// Resolve returns the display name of a category ID.
func (l *Ledger) Resolve(ctx context.Context, id string) string {
	resolve, err := l.Resolver(ctx)
	if err != nil {
		log.Error().Err(err).Str("category", id).Msg("resolving category name failed")
		return id
	}

	return resolve(id)
}

// Categories returns the categories of a type ordered by name. With an empty
// type, categories of both types are returned, income categories first.
func (l *Ledger) Categories(ctx context.Context, typ models.CategoryType) ([]models.Category, error) {
	query := l.db.WithContext(ctx)
	if typ != "" {
		if !typ.Valid() {
			return nil, models.ErrCategoryTypeInvalid
		}
		query = query.Where("type = ?", typ)
	}

	var categories []models.Category
	err := query.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	sortCategories(categories)
	return categories, nil
}

// sortCategories orders categories by type and then by name in Dutch collation.
func sortCategories(categories []models.Category) {
	c := collate.New(language.Dutch, collate.IgnoreCase)
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Type != categories[j].Type {
			return categories[i].Type == models.CategoryTypeIncome
		}

		return c.CompareString(categories[i].Name, categories[j].Name) < 0
	})
}

// Category returns a single category.
func (l *Ledger) Category(ctx context.Context, typ models.CategoryType, id string) (models.Category, error) {
	return findCategory(l.db.WithContext(ctx), typ, id)
}

func findCategory(tx *gorm.DB, typ models.CategoryType, id string) (models.Category, error) {
	var category models.Category
	err := tx.First(&category, "id = ? AND type = ?", id, typ).Error
	return category, err
}

// categoryExists reports whether the category exists.
func categoryExists(tx *gorm.DB, typ models.CategoryType, id string) (bool, error) {
	var count int64
	err := tx.Model(&models.Category{}).Where("id = ? AND type = ?", id, typ).Count(&count).Error
	return count > 0, err
}

// CreateCategory creates a category. Its ID is the slug of its name.
func (l *Ledger) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if !category.Type.Valid() {
		return models.Category{}, models.ErrCategoryTypeInvalid
	}

	category.ID = models.Slugify(category.Name)
	if category.ID == "" {
		return models.Category{}, ErrCategorySlugEmpty
	}

	err := l.tx(ctx, func(tx *gorm.DB) error {
		exists, err := categoryExists(tx, category.Type, category.ID)
		if err != nil {
			return err
		}

		if exists {
			return models.ErrCategoryExists
		}

		return tx.Create(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// UpdateCategory sets name, description and icon of a category.
//
// The ID follows the new name. If another category of the same type already
// uses the new slug, the ID is kept. When the ID changes, all incomes, expenses,
// budgets and match rules referencing the category are changed in the same
// transaction. The ID of "other" never changes.
func (l *Ledger) UpdateCategory(ctx context.Context, typ models.CategoryType, id string, update models.Category) (models.Category, error) {
	var updated models.Category

	err := l.tx(ctx, func(tx *gorm.DB) error {
		current, err := findCategory(tx, typ, id)
		if err != nil {
			return err
		}

		newID := models.Slugify(update.Name)
		if newID == "" {
			return ErrCategorySlugEmpty
		}

		if id == models.CategoryOther {
			newID = id
		}

		if newID != id {
			exists, err := categoryExists(tx, typ, newID)
			if err != nil {
				return err
			}

			if exists {
				log.Info().Str("category", id).Str("slug", newID).Msg("slug of the new name is taken, keeping the category id")
				newID = id
			}
		}

		current.Name = update.Name
		current.Description = update.Description
		current.Icon = update.Icon
		if err := current.BeforeSave(tx); err != nil {
			return err
		}

		// The ID is part of the primary key, so the row is updated explicitly
		err = tx.Model(&models.Category{}).
			Where("id = ? AND type = ?", id, typ).
			UpdateColumns(map[string]any{
				"id":          newID,
				"name":        current.Name,
				"description": current.Description,
				"icon":        current.Icon,
				"updated_at":  tx.NowFunc(),
			}).Error
		if err != nil {
			return err
		}

		if newID != id {
			err = reassignCategory(tx, typ, id, newID)
			if err != nil {
				return err
			}
		}

		updated, err = findCategory(tx, typ, newID)
		return err
	})
	if err != nil {
		return models.Category{}, err
	}

	return updated, nil
}

// references returns the number of incomes, expenses and budgets that use the category.
func references(tx *gorm.DB, typ models.CategoryType, id string) (int64, error) {
	tables := []models.Model{&models.Income{}}
	if typ == models.CategoryTypeExpense {
		tables = []models.Model{&models.Expense{}, &models.Budget{}}
	}

	var total int64
	for _, table := range tables {
		var count int64
		err := tx.Model(table).Where("category = ?", id).Count(&count).Error
		if err != nil {
			return 0, err
		}
		total += count
	}

	return total, nil
}

// reassignCategory moves all references of a category to another one and
// recomputes the affected budgets.
func reassignCategory(tx *gorm.DB, typ models.CategoryType, from, to string) error {
	tables := []models.Model{&models.Income{}}
	if typ == models.CategoryTypeExpense {
		tables = []models.Model{&models.Expense{}, &models.Budget{}}
	}

	for _, table := range tables {
		err := tx.Model(table).Where("category = ?", from).UpdateColumn("category", to).Error
		if err != nil {
			return fmt.Errorf("moving %s entries from %s to %s failed: %w", table.Self(), from, to, err)
		}
	}

	err := tx.Model(&models.MatchRule{}).Where("type = ? AND category = ?", typ, from).UpdateColumn("category", to).Error
	if err != nil {
		return err
	}

	if typ == models.CategoryTypeExpense {
		return recomputeUsed(tx, to)
	}

	return nil
}

// DeleteCategory deletes a category.
//
// "other" is never deleted. Categories that are referenced by incomes,
// expenses or budgets are only deleted with reassign set. The references
// are then moved to "other".
func (l *Ledger) DeleteCategory(ctx context.Context, typ models.CategoryType, id string, reassign bool) error {
	if id == models.CategoryOther {
		return ErrCategorySentinel
	}

	return l.tx(ctx, func(tx *gorm.DB) error {
		_, err := findCategory(tx, typ, id)
		if err != nil {
			return err
		}

		count, err := references(tx, typ, id)
		if err != nil {
			return err
		}

		if count > 0 && !reassign {
			return fmt.Errorf("%w: %d entries use it", ErrCategoryInUse, count)
		}

		err = reassignCategory(tx, typ, id, models.CategoryOther)
		if err != nil {
			return err
		}

		// Ensure "other" exists, e.g. after an import without it
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

		return tx.Where("id = ? AND type = ?", id, typ).Delete(&models.Category{}).Error
	})
}

// ensureCategory checks that the category exists for the type.
func ensureCategory(tx *gorm.DB, typ models.CategoryType, id string) error {
	exists, err := categoryExists(tx, typ, id)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w: %s '%s'", ErrCategoryUnknown, typ, id)
	}

	return nil
}
