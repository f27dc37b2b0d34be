package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/categories", response.Links.Categories)
	assert.Equal(suite.T(), "http://example.com/v1/repayments", response.Links.Repayments)
	assert.Equal(suite.T(), "http://example.com/v1/import", response.Links.Import)
}

func (suite *TestSuiteStandard) TestCleanup() {
	_ = suite.createTestIncome(suite.T(), v1.IncomeEditable{})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "groceries"})
	_ = suite.createTestGoal(suite.T(), v1.GoalEditable{})
	_ = suite.createTestDebt(suite.T(), v1.DebtEditable{})
	_ = suite.createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "Albert Heijn*"})

	tests := []string{
		"http://example.com/v1/incomes",
		"http://example.com/v1/expenses",
		"http://example.com/v1/budgets",
		"http://example.com/v1/goals",
		"http://example.com/v1/debts",
		"http://example.com/v1/match-rules",
		"http://example.com/v1/month-closures",
	}

	recorder := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := suite.request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for %s", tt)
		})
	}

	// The default categories are restored
	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories/expense/groceries", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation missing", ""},
		{"Wrong confirmation", "confirm=yes-replace-everything"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(t, http.MethodDelete, "http://example.com/v1?"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response httputil.HTTPError
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, httputil.ErrCleanupConfirmation.Error(), response.Error)
		})
	}
}

// TestDatabaseClosed verifies that database errors result in a
// generic error message.
func (suite *TestSuiteStandard) TestDatabaseClosed() {
	income := suite.createTestIncome(suite.T(), v1.IncomeEditable{})
	suite.CloseDB()

	expense := map[string]any{"description": "Groceries", "amount": "12.50", "category": "groceries", "date": "2024-03-10"}

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "http://example.com/v1/incomes", ""},
		{http.MethodGet, "http://example.com/v1/expenses", ""},
		{http.MethodGet, "http://example.com/v1/budgets", ""},
		{http.MethodGet, "http://example.com/v1/goals", ""},
		{http.MethodGet, "http://example.com/v1/categories", ""},
		{http.MethodGet, "http://example.com/v1/dashboard", ""},
		{http.MethodGet, "http://example.com/v1/reports", ""},
		{http.MethodPost, "http://example.com/v1/expenses", []any{expense}},
		{http.MethodPatch, income.Links.Self, map[string]any{"description": "Bonus"}},
		{http.MethodPost, "http://example.com/v1/month-closures", ""},
		{http.MethodPost, "http://example.com/v1/import?confirm=yes-replace-everything", map[string]any{}},
		{http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := suite.request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			assert.Contains(t, recorder.Body.String(), "an error occurred on the server")
			assert.NotContains(t, recorder.Body.String(), "sql:")
		})
	}
}
