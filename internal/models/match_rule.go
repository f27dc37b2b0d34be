package models

import (
	"strings"

	"gorm.io/gorm"
)

// MatchRule assigns a category to imported or uncategorized entries whose
// description matches the glob pattern in Match.
type MatchRule struct {
	DefaultModel
	Type     CategoryType `json:"type" example:"expense"`        // Type of entries the rule applies to
	Priority uint         `json:"priority" example:"3"`          // Rules are evaluated in ascending priority
	Match    string       `json:"match" example:"Albert Heijn*"` // Glob pattern, "*" matches any string
	Category string       `json:"category" example:"groceries"`  // ID of the category to assign
}

func (MatchRule) Self() string {
	return "Match Rule"
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return ErrMatchRuleMatchRequired
	}

	if !r.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}
