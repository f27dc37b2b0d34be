package ledger

import (
	"context"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRuleFilter selects match rules. Zero values do not filter.
type MatchRuleFilter struct {
	Type     models.CategoryType
	Category string
	Match    string
	Offset   uint
	Limit    int
}

// MatchRules returns the match rules in the order they are evaluated.
func (l *Ledger) MatchRules(ctx context.Context, filter MatchRuleFilter) ([]models.MatchRule, int64, error) {
	query := l.db.WithContext(ctx).Model(&models.MatchRule{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Match != "" {
		query = query.Where("`match` LIKE ? ESCAPE '\\'", containsPattern(filter.Match))
	}

	return list[models.MatchRule](query, "priority ASC, created_at ASC", filter.Offset, filter.Limit)
}

func (l *Ledger) MatchRule(ctx context.Context, id uuid.UUID) (models.MatchRule, error) {
	return first[models.MatchRule](l.db.WithContext(ctx), id)
}

// SubmitMatchRule creates a match rule or replaces an existing one. The
// category must exist for the type of the rule.
func (l *Ledger) SubmitMatchRule(ctx context.Context, mode Mode, rule models.MatchRule) (models.MatchRule, error) {
	err := l.tx(ctx, func(tx *gorm.DB) error {
		if mode.IsEdit() {
			current, err := first[models.MatchRule](tx, mode.ID())
			if err != nil {
				return err
			}
			rule.DefaultModel = current.DefaultModel
		} else {
			rule.DefaultModel = models.DefaultModel{}
		}

		if !rule.Type.Valid() {
			return models.ErrCategoryTypeInvalid
		}

		err := ensureCategory(tx, rule.Type, rule.Category)
		if err != nil {
			return err
		}

		return tx.Save(&rule).Error
	})
	if err != nil {
		return models.MatchRule{}, err
	}

	return rule, nil
}

func (l *Ledger) RemoveMatchRule(ctx context.Context, id uuid.UUID) error {
	return remove[models.MatchRule](l.db.WithContext(ctx), id)
}
