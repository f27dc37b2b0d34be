package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomesCreate() {
	income := suite.createTestIncome(suite.T(), v1.IncomeEditable{Category: "salary", Source: "ACME"})

	assert.Equal(suite.T(), "Salaris", income.CategoryName)
	assert.Equal(suite.T(), "http://example.com/v1/incomes/"+income.ID.String(), income.Links.Self)
	assert.Equal(suite.T(), "http://example.com/v1/categories/income/salary", income.Links.Category)

	// Without category, "other" is used
	other := suite.createTestIncome(suite.T(), v1.IncomeEditable{Description: "Birthday"})
	assert.Equal(suite.T(), models.CategoryOther, other.Category)

	tests := []struct {
		name     string
		editable v1.IncomeEditable
	}{
		{"Unknown category", v1.IncomeEditable{Category: "groceries"}},
		{"Negative amount", v1.IncomeEditable{Amount: decimal.NewFromFloat(-5)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = suite.createTestIncome(t, tt.editable, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesCreateBrokenBody() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", `[{ "amount": "not a number" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomesUpdate() {
	income := suite.createTestIncome(suite.T(), v1.IncomeEditable{Category: "salary", Source: "ACME"})

	r := suite.request(suite.T(), http.MethodPatch, income.Links.Self, map[string]any{
		"amount": "2750",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Income]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromFloat(2750).Equal(response.Data.Amount), response.Data.Amount.String())
	assert.Equal(suite.T(), "ACME", response.Data.Source, "fields not in the body must keep their value")
	assert.Equal(suite.T(), "salary", response.Data.Category)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken JSON", `{ "amount": 2 `, http.StatusBadRequest},
		{"Wrong type", `{ "description": 2 }`, http.StatusBadRequest},
		{"Unknown category", map[string]any{"category": "rent"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, income.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r = suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/incomes/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e", map[string]any{"amount": "1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomesDelete() {
	income := suite.createTestIncome(suite.T(), v1.IncomeEditable{})

	r := suite.request(suite.T(), http.MethodDelete, income.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, income.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesFilter() {
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Albert Heijn", Category: "groceries", Amount: decimal.NewFromFloat(30), Date: types.NewDate(2024, 3, 2)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Jumbo", Category: "groceries", Amount: decimal.NewFromFloat(12), Date: types.NewDate(2024, 2, 20)})
	rent := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Rent", Category: "rent", Amount: decimal.NewFromFloat(900), Date: types.NewDate(2024, 3, 1), PaymentMethod: "transfer"})

	r := suite.request(suite.T(), http.MethodPost, rent.Links.Paid, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name  string
		query string
		len   int
		total int64 // matching expenses before offset and limit
	}{
		{"All", "", 3, 3},
		{"Category", "category=groceries", 2, 2},
		{"Month", "month=2024-03", 2, 2},
		{"Search", "search=heijn", 1, 1},
		{"Search wildcard is literal", "search=%25", 0, 0},
		{"Paid", "paymentStatus=paid", 1, 1},
		{"Open", "paymentStatus=open", 2, 2},
		{"Payment method", "paymentMethod=transfer", 1, 1},
		{"From date", "fromDate=2024-03-01", 2, 2},
		{"Amount", "amountMoreOrEqual=30", 2, 2},
		{"Limit", "limit=1", 1, 3},
		{"Offset", "offset=2", 1, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ListResponse[v1.Expense]
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.total, response.Pagination.Total, "total is wrong for %s", tt.query)
		})
	}

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesMarkPaid() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{PaymentStatus: models.PaymentStatusPaid})
	assert.Equal(suite.T(), models.PaymentStatusOpen, expense.PaymentStatus, "new expenses must be open")
	assert.Equal(suite.T(), "Betaalpas", expense.PaymentMethodName)

	r := suite.request(suite.T(), http.MethodPost, expense.Links.Paid, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Expense]
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.PaymentStatusPaid, response.Data.PaymentStatus)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e/paid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
