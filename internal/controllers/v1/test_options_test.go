package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/incomes", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budgets", "OPTIONS, GET, POST"},
		{"http://example.com/v1/goals", "OPTIONS, GET, POST"},
		{"http://example.com/v1/debts", "OPTIONS, GET, POST"},
		{"http://example.com/v1/repayments", "OPTIONS, GET, POST"},
		{"http://example.com/v1/repayments/session", "OPTIONS, GET, POST, DELETE"},
		{"http://example.com/v1/month-closures", "OPTIONS, GET, POST"},
		{"http://example.com/v1/match-rules", "OPTIONS, GET, POST"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
		{"http://example.com/v1/reports", "OPTIONS, GET"},
		{"http://example.com/v1/export", "OPTIONS, GET"},
		{"http://example.com/v1/import", "OPTIONS, POST"},
		{"http://example.com/v1/import/ofx", "OPTIONS, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsDetail verifies that OPTIONS requests for single resources
// check that the resource exists.
func (suite *TestSuiteStandard) TestOptionsDetail() {
	income := suite.createTestIncome(suite.T(), v1.IncomeEditable{})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Income exists", "http://example.com/v1/incomes/" + income.ID.String(), http.StatusNoContent},
		{"No income with this ID", "http://example.com/v1/incomes/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", http.StatusNotFound},
		{"Not a valid UUID", "http://example.com/v1/incomes/not-a-uuid", http.StatusBadRequest},
		{"No expense with this ID", "http://example.com/v1/expenses/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", http.StatusNotFound},
		{"No budget with this ID", "http://example.com/v1/budgets/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", http.StatusNotFound},
		{"No goal with this ID", "http://example.com/v1/goals/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", http.StatusNotFound},
		{"No debt with this ID", "http://example.com/v1/debts/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", http.StatusNotFound},
		{"No match rule with this ID", "http://example.com/v1/match-rules/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", http.StatusNotFound},
		{"Default category", "http://example.com/v1/categories/expense/groceries", http.StatusNoContent},
		{"Unknown category", "http://example.com/v1/categories/expense/gardening", http.StatusNotFound},
		{"Unknown category type", "http://example.com/v1/categories/savings/groceries", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, "")
			assert.Equal(t, tt.status, r.Code, r.Body.String())

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}
