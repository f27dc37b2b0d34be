package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsUsage() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "groceries", Amount: decimal.NewFromFloat(100)})
	assert.True(suite.T(), budget.Used.IsZero())
	assert.Equal(suite.T(), ledger.UsageSafe, budget.Usage.Level)
	assert.Equal(suite.T(), "Boodschappen", budget.CategoryName)
	assert.Equal(suite.T(), "http://example.com/v1/expenses?category=groceries", budget.Links.Expenses)

	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "groceries", Amount: decimal.NewFromFloat(80)})

	r := suite.request(suite.T(), http.MethodGet, budget.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Budget]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromFloat(80).Equal(response.Data.Used), response.Data.Used.String())
	assert.Equal(suite.T(), ledger.UsageWarning, response.Data.Usage.Level)
	assert.True(suite.T(), decimal.NewFromFloat(20).Equal(response.Data.Usage.Remaining))
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	other := suite.createTestBudget(suite.T(), v1.BudgetEditable{})
	assert.Equal(suite.T(), models.CategoryOther, other.Category)
	assert.Equal(suite.T(), models.BudgetPeriodMonthly, other.Period)

	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "salary"}, http.StatusBadRequest)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?category=other", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ListResponse[v1.Budget]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestGoalsDeposit() {
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{Target: decimal.NewFromFloat(1000), Deadline: types.NewDate(2024, 3, 25)})
	assert.True(suite.T(), goal.Saved.IsZero())
	assert.Equal(suite.T(), 10, goal.Progress.DaysRemaining)

	tests := []struct {
		name   string
		body   any
		status int
		saved  float64
	}{
		{"Deposit", v1.AmountEditable{Amount: decimal.NewFromFloat(250)}, http.StatusOK, 250},
		{"Second deposit", v1.AmountEditable{Amount: decimal.NewFromFloat(50)}, http.StatusOK, 300},
		{"Zero", v1.AmountEditable{}, http.StatusBadRequest, 0},
		{"Negative", v1.AmountEditable{Amount: decimal.NewFromFloat(-1)}, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, goal.Links.Deposits, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.Response[v1.Goal]
				test.DecodeResponse(t, &r, &response)
				assert.True(t, decimal.NewFromFloat(tt.saved).Equal(response.Data.Saved), response.Data.Saved.String())
			}
		})
	}

	// Editing keeps the saved amount
	r := suite.request(suite.T(), http.MethodPatch, goal.Links.Self, map[string]any{"name": "Road bike"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Goal]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Road bike", response.Data.Name)
	assert.True(suite.T(), decimal.NewFromFloat(300).Equal(response.Data.Saved))
	assert.True(suite.T(), decimal.NewFromFloat(30).Equal(response.Data.Progress.Percentage), response.Data.Progress.Percentage.String())

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/goals/2d0fd1a8-5c8c-4e94-a3b3-6d9a4f6b2f0e/deposits", v1.AmountEditable{Amount: decimal.NewFromFloat(1)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{{Name: "No deadline", Target: decimal.NewFromFloat(10)}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDebtsPay() {
	debt := suite.createTestDebt(suite.T(), v1.DebtEditable{Amount: decimal.NewFromFloat(1000), Creditor: "Bank"})
	assert.True(suite.T(), decimal.NewFromFloat(1000).Equal(debt.Progress.Remaining))

	r := suite.request(suite.T(), http.MethodPost, debt.Links.Payments, v1.AmountEditable{Amount: decimal.NewFromFloat(400)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Debt]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromFloat(400).Equal(response.Data.Paid))
	assert.True(suite.T(), decimal.NewFromFloat(600).Equal(response.Data.Progress.Remaining))
	assert.False(suite.T(), response.Data.Progress.Settled)

	// Paying more than the rest fails
	r = suite.request(suite.T(), http.MethodPost, debt.Links.Payments, v1.AmountEditable{Amount: decimal.NewFromFloat(601)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodPost, debt.Links.Payments, v1.AmountEditable{Amount: decimal.NewFromFloat(600)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Progress.Settled)

	r = suite.request(suite.T(), http.MethodDelete, debt.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
