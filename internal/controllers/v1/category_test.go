package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.Category {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CreateResponse[v1.Category]
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return *response.Data[0].Data
	}

	return v1.Category{}
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	tests := []struct {
		query string
		len   int
	}{
		{"", 13},
		{"?type=income", 5},
		{"?type=expense", 8},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/categories"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ListResponse[v1.Category]
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories?type=savings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{
		Type: models.CategoryTypeExpense,
		Name: "Huis & Tuin",
		Icon: "fa-home",
	})

	assert.Equal(suite.T(), "huis--tuin", category.ID)
	assert.Equal(suite.T(), "http://example.com/v1/categories/expense/huis--tuin", category.Links.Self)

	tests := []struct {
		name     string
		editable v1.CategoryEditable
	}{
		{"Duplicate", v1.CategoryEditable{Type: models.CategoryTypeExpense, Name: "Huis & tuin"}},
		{"Empty slug", v1.CategoryEditable{Type: models.CategoryTypeExpense, Name: "!!!"}},
		{"Invalid type", v1.CategoryEditable{Type: "savings", Name: "Holiday"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = suite.createTestCategory(t, tt.editable, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "entertainment"})

	r := suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/categories/expense/entertainment", map[string]any{
		"name": "Uitgaan",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Category]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "uitgaan", response.Data.ID)
	assert.Equal(suite.T(), "Uitgaan", response.Data.Name)

	// The expense follows the new id
	r = suite.request(suite.T(), http.MethodGet, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.Response[v1.Expense]
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "uitgaan", updated.Data.Category)
	assert.Equal(suite.T(), "Uitgaan", updated.Data.CategoryName)

	// "other" keeps its id
	r = suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/categories/expense/other", map[string]any{
		"name": "Misc",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.CategoryOther, response.Data.ID)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "transport"})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Sentinel", "http://example.com/v1/categories/expense/other", http.StatusBadRequest},
		{"In use", "http://example.com/v1/categories/expense/transport", http.StatusConflict},
		{"Unknown", "http://example.com/v1/categories/expense/gardening", http.StatusNotFound},
		{"Not in use", "http://example.com/v1/categories/expense/education", http.StatusNoContent},
		{"In use with reassign", "http://example.com/v1/categories/expense/transport?reassign=true", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodDelete, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=other", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ListResponse[v1.Expense]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}
