package v1

import (
	"fmt"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/gin-gonic/gin"
)

type MatchRuleEditable struct {
	Type     models.CategoryType `json:"type" example:"expense" enums:"income,expense"` // Type of entries the rule applies to
	Priority uint                `json:"priority" example:"3"`                          // Rules are evaluated in ascending priority
	Match    string              `json:"match" example:"Albert Heijn*"`                 // Glob pattern, "*" matches any string
	Category string              `json:"category" example:"groceries"`                  // ID of the category to assign
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		Type:     editable.Type,
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

func matchRuleEditable(model models.MatchRule) MatchRuleEditable {
	return MatchRuleEditable{
		Type:     model.Type,
		Priority: model.Priority,
		Match:    model.Match,
		Category: model.Category,
	}
}

type MatchRuleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/expense/groceries"`                 // The category the rule assigns
}

type MatchRule struct {
	models.MatchRule
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := httputil.BaseURL(c)

	return MatchRule{
		MatchRule: model,
		Links: MatchRuleLinks{
			Self:     fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s/%s", url, model.Type, model.Category),
		},
	}
}

type MatchRuleQueryFilter struct {
	Type     models.CategoryType `form:"type"`     // By entry type
	Category string              `form:"category"` // By category ID
	Match    string              `form:"match"`    // By pattern
	Offset   uint                `form:"offset"`   // The offset of the first match rule returned. Defaults to 0.
	Limit    int                 `form:"limit"`    // Maximum number of match rules to return. Defaults to 50.
}
