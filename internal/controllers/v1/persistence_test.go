package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/importer"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportImport() {
	_ = suite.createTestIncome(suite.T(), v1.IncomeEditable{Category: "salary"})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "groceries", Amount: decimal.NewFromFloat(60)})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "groceries"})
	_ = suite.createTestGoal(suite.T(), v1.GoalEditable{})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Equal(suite.T(), `attachment; filename="finsight-2024-03-15.json"`, r.Header().Get("Content-Disposition"))

	var snapshot ledger.Snapshot
	test.DecodeResponse(suite.T(), &r, &snapshot)
	assert.Len(suite.T(), snapshot.Incomes, 1)
	assert.Len(suite.T(), snapshot.Expenses, 1)
	assert.Len(suite.T(), snapshot.Budgets, 1)
	assert.Len(suite.T(), snapshot.Goals, 1)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/import?confirm=yes-replace-everything", snapshot)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var summary v1.Response[ledger.ImportSummary]
	test.DecodeResponse(suite.T(), &r, &summary)
	assert.Equal(suite.T(), 1, summary.Data.Incomes)
	assert.Equal(suite.T(), 1, summary.Data.Expenses)
	assert.Equal(suite.T(), 1, summary.Data.Budgets)
	assert.Equal(suite.T(), 1, summary.Data.Goals)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.ListResponse[v1.Budget]
	test.DecodeResponse(suite.T(), &r, &budgets)
	require.Len(suite.T(), budgets.Data, 1)
	assert.True(suite.T(), decimal.NewFromFloat(60).Equal(budgets.Data[0].Used), "used amount is recomputed on import")
}

func (suite *TestSuiteStandard) TestImportFails() {
	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"No confirmation", "http://example.com/v1/import", ledger.Snapshot{}, http.StatusBadRequest, httputil.ErrImportConfirmation.Error()},
		{"Wrong confirmation", "http://example.com/v1/import?confirm=yes-please-delete-everything", ledger.Snapshot{}, http.StatusBadRequest, httputil.ErrImportConfirmation.Error()},
		{"No body", "http://example.com/v1/import?confirm=yes-replace-everything", "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"Broken body", "http://example.com/v1/import?confirm=yes-replace-everything", `{"incomes": 3}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				var response httputil.HTTPError
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.err, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestImportOFX() {
	_ = suite.createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "Albert Heijn*"})
	_ = suite.createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "ACME*", Type: models.CategoryTypeIncome, Category: "salary"})

	body, headers := test.LoadTestFile(suite.T(), "statement.ofx")
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/import/ofx", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ListResponse[importer.Preview]
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	assert.Equal(suite.T(), "groceries", response.Data[0].Category)
	assert.Equal(suite.T(), models.CategoryTypeIncome, response.Data[1].Type)
	assert.Equal(suite.T(), "salary", response.Data[1].Category)
	assert.Equal(suite.T(), models.CategoryOther, response.Data[2].Category)
	assert.Empty(suite.T(), response.Data[0].DuplicateIDs)

	// Previewing an imported line lists the existing expense
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: response.Data[0].Description,
		Amount:      response.Data[0].Amount,
		Date:        response.Data[0].Date,
		ImportHash:  response.Data[0].ImportHash,
	})

	body, headers = test.LoadTestFile(suite.T(), "statement.ofx")
	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/import/ofx", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), expense.ID, response.Data[0].DuplicateIDs[0])
}

func (suite *TestSuiteStandard) TestImportOFXFails() {
	tests := []struct {
		name     string
		filename string
		content  string
		err      error
	}{
		{"Wrong suffix", "statement.csv", "date,amount", httputil.ErrWrongFileSuffix},
		{"Not OFX", "statement.qfx", "this is not a bank statement", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.MultipartFile(t, tt.filename, strings.NewReader(tt.content))
			r := suite.request(t, http.MethodPost, "http://example.com/v1/import/ofx", body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != nil {
				var response httputil.HTTPError
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, response.Error, tt.err.Error())
			}
		})
	}

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/import/ofx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
