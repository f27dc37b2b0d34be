package v1

import (
	"fmt"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable are the fields of a category that clients can set.
type CategoryEditable struct {
	Type        models.CategoryType `json:"type" example:"expense" enums:"income,expense"` // Type of the category. Cannot be changed
	Name        string              `json:"name" example:"Boodschappen"`                   // Name of the category. The ID is derived from it
	Description string              `json:"description" example:"Supermarket and bakery"`  // Description of the category
	Icon        string              `json:"icon" example:"fa-shopping-cart"`               // Icon identifier for clients
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Type:        editable.Type,
		Name:        editable.Name,
		Description: editable.Description,
		Icon:        editable.Icon,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/expense/groceries"` // The category itself
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		Category: model,
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s/%s", httputil.BaseURL(c), model.Type, model.ID),
		},
	}
}

// URICategory identifies a category. Category IDs are only unique per type.
type URICategory struct {
	Type models.CategoryType `uri:"type" binding:"required" example:"expense"` // Type of the category
	ID   string              `uri:"id" binding:"required" example:"groceries"` // ID of the category
}

type CategoryQueryFilter struct {
	Type models.CategoryType `form:"type"` // Only categories of this type
}

type CategoryDeleteQuery struct {
	Reassign bool `form:"reassign"` // Move incomes, expenses and budgets using the category to "other"
}
