package models

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// CategoryOther is the ID of the fallback category. It exists for both
// category types and can never be deleted.
const CategoryOther = "other"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports if the category type is known.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category classifies incomes or expenses.
//
// The ID is the slug of the name at creation time. It is unique per type only,
// which is why the type is part of the primary key.
type Category struct {
	ID          string       `json:"id" gorm:"primaryKey" example:"groceries"`     // Slug of the category name
	Type        CategoryType `json:"type" gorm:"primaryKey" example:"expense"`     // Type of the category, "income" or "expense"
	Name        string       `json:"name" example:"Boodschappen"`                  // Name of the category
	Description string       `json:"description" example:"Supermarket and bakery"` // Description of the category
	Icon        string       `json:"icon" example:"fa-shopping-cart"`              // Icon identifier for clients
	Timestamps
}

func (Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Name == "" {
		return ErrNameRequired
	}

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}

var (
	whitespace   = regexp.MustCompile(`\s+`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a category ID from a name: lowercase, runs of whitespace
// become a single "-" and everything outside [a-z0-9-] is removed.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespace.ReplaceAllString(slug, "-")
	return nonSlugChars.ReplaceAllString(slug, "")
}

type defaultCategory struct {
	id   string
	name string
}

var (
	defaultIncomeCategories = []defaultCategory{
		{"salary", "Salaris"},
		{"freelance", "Freelance"},
		{"investment", "Investeringen"},
		{"gift", "Geschenken"},
		{CategoryOther, "Overige"},
	}

	defaultExpenseCategories = []defaultCategory{
		{"groceries", "Boodschappen"},
		{"rent", "Huur"},
		{"utilities", "Nutsvoorzieningen"},
		{"transport", "Vervoer"},
		{"entertainment", "Entertainment"},
		{"healthcare", "Gezondheidszorg"},
		{"education", "Onderwijs"},
		{CategoryOther, "Overige"},
	}
)

// DefaultCategories returns the default taxonomy, income categories first.
func DefaultCategories() []Category {
	categories := make([]Category, 0, len(defaultIncomeCategories)+len(defaultExpenseCategories))

	for _, c := range defaultIncomeCategories {
		categories = append(categories, Category{ID: c.id, Type: CategoryTypeIncome, Name: c.name})
	}

	for _, c := range defaultExpenseCategories {
		categories = append(categories, Category{ID: c.id, Type: CategoryTypeExpense, Name: c.name})
	}

	return categories
}

// LegacyName returns the name of a default category. It is used for
// records that reference a category that no longer exists.
func LegacyName(id string) (string, bool) {
	for _, list := range [][]defaultCategory{defaultIncomeCategories, defaultExpenseCategories} {
		for _, c := range list {
			if c.id == id {
				return c.name, true
			}
		}
	}

	return "", false
}
