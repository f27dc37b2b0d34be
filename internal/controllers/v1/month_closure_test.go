package v1_test

import (
	"net/http"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/Mura0908/finsight-app-New/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthClosure() {
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Insurance", Date: types.NewDate(2024, 3, 31)})
	paid := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Phone", Date: types.NewDate(2024, 3, 5)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Description: "February", Date: types.NewDate(2024, 2, 5)})

	r := suite.request(suite.T(), http.MethodPost, paid.Links.Paid, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/month-closures", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.Response[ledger.ClosureResult]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.NewMonth(2024, 3), response.Data.Closure.Month)
	assert.Equal(suite.T(), 1, response.Data.Closure.TransferredExpenses)
	require.Len(suite.T(), response.Data.Transferred, 1)

	carried := response.Data.Transferred[0]
	assert.Equal(suite.T(), ledger.CarryOverMarker+"Insurance", carried.Description)
	assert.Equal(suite.T(), types.NewDate(2024, 4, 30), carried.Date)
	assert.Equal(suite.T(), models.PaymentStatusOpen, carried.PaymentStatus)

	// The original stays in March
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ListResponse[v1.Expense]
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Len(suite.T(), expenses.Data, 2)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/month-closures", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var closures v1.ListResponse[models.MonthClosure]
	test.DecodeResponse(suite.T(), &r, &closures)
	require.Len(suite.T(), closures.Data, 1)
	assert.Equal(suite.T(), int64(1), closures.Pagination.Total)
}
