package importer

import (
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// Match returns the category of the first rule of the given type that matches
// the description. Rules must be sorted by priority.
func Match(rules []models.MatchRule, typ models.CategoryType, description string) (string, uuid.UUID, bool) {
	for _, rule := range rules {
		if rule.Type != typ {
			continue
		}

		if glob.Glob(rule.Match, description) {
			return rule.Category, rule.ID, true
		}
	}

	return "", uuid.Nil, false
}

// Apply sets the category of all previews that a rule matches.
func Apply(previews []Preview, rules []models.MatchRule) {
	for i := range previews {
		category, id, ok := Match(rules, previews[i].Type, previews[i].Description)
		if ok {
			previews[i].Category = category
			previews[i].MatchRuleID = id
		}
	}
}
