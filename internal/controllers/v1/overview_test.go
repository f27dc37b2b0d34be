package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/report"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboard() {
	_ = suite.createTestIncome(suite.T(), v1.IncomeEditable{Category: "salary", Amount: decimal.NewFromFloat(2500), Date: types.NewDate(2024, 3, 1)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "rent", Amount: decimal.NewFromFloat(900), Date: types.NewDate(2024, 3, 2)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "groceries", Amount: decimal.NewFromFloat(100), Date: types.NewDate(2024, 3, 12)})

	tests := []struct {
		period  string
		buckets int
	}{
		{"", 4},
		{"week", 7},
		{"month", 4},
		{"year", 12},
	}

	for _, tt := range tests {
		suite.T().Run(tt.period, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/dashboard?period="+tt.period, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.Response[ledger.Dashboard]
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			dashboard := response.Data
			assert.Len(t, dashboard.Buckets, tt.buckets)
			assert.Len(t, dashboard.Series.Labels, tt.buckets)
			assert.True(t, decimal.NewFromFloat(2500).Equal(dashboard.Totals.TotalIncome))
			assert.True(t, decimal.NewFromFloat(1000).Equal(dashboard.Totals.TotalExpenses))
			assert.True(t, decimal.NewFromFloat(1500).Equal(dashboard.Totals.Balance))
			assert.Len(t, dashboard.Recent, 3)
			assert.Equal(t, types.NewDate(2024, 3, 15), dashboard.Reference)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?period=quarter", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReports() {
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "rent", Amount: decimal.NewFromFloat(900), Date: types.NewDate(2024, 1, 2)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "groceries", Amount: decimal.NewFromFloat(100), Date: types.NewDate(2024, 3, 12)})

	tests := []struct {
		period  string
		status  int
		buckets int
	}{
		{"month", http.StatusOK, 4},
		{"quarter", http.StatusOK, 3},
		{"year", http.StatusOK, 12},
		{"week", http.StatusBadRequest, 0},
		{"decade", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.period, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/reports?period="+tt.period, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.Response[ledger.Report]
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)
			assert.Equal(t, report.Period(tt.period), response.Data.Period)
			assert.Len(t, response.Data.Buckets, tt.buckets)
			assert.Equal(t, "Huur", response.Data.Statistics.HighestExpenseCategory)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsQuarterBuckets() {
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "rent", Amount: decimal.NewFromFloat(900), Date: types.NewDate(2024, 1, 2)})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/reports?period=quarter", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[ledger.Report]
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Buckets, 3)

	for i, expected := range []float64{900, 0, 0} {
		suite.T().Run(response.Data.Buckets[i].Label, func(t *testing.T) {
			assert.True(t, decimal.NewFromFloat(expected).Equal(response.Data.Buckets[i].Expenses), response.Data.Buckets[i].Expenses.String())
		})
	}
}
