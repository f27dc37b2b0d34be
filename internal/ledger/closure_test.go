package ledger_test

import (
	"context"
	"time"

	"github.com/Mura0908/finsight-app-New/internal/events"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
)

func (suite *TestSuiteStandard) TestCloseMonth() {
	ctx := context.Background()
	suite.now = time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC)

	open := []models.Expense{
		suite.createExpense("Gym", "30", "healthcare", "2024-01-05"),
		suite.createExpense("Insurance", "120", "healthcare", "2024-01-31"),
		suite.createExpense("Phone", "25", "utilities", "2024-01-20"),
	}

	paid := suite.createExpense("Rent", "900", "rent", "2024-01-01")
	_, err := suite.ledger.MarkExpensePaid(ctx, paid.ID)
	suite.Require().Nil(err)

	suite.createExpense("Later", "10", "other", "2024-02-03")
	budget := suite.createBudget("Health", "500", "healthcare")
	suite.Require().True(budget.Used.Equal(dec("150")))

	result, err := suite.ledger.CloseMonth(ctx)
	suite.Require().Nil(err)

	suite.Assert().Equal(3, result.Closure.TransferredExpenses)
	suite.Assert().Equal("2024-01", result.Closure.Month.String())
	suite.Require().Len(result.Transferred, 3)

	dates := map[string]string{}
	for _, e := range result.Transferred {
		suite.Assert().Equal(models.PaymentStatusOpen, e.PaymentStatus)
		suite.Assert().Equal("2024-02", e.Month.String())
		suite.Assert().Equal("card", e.PaymentMethod)
		dates[e.Description] = e.Date.String()
	}

	suite.Assert().Equal(map[string]string{
		ledger.CarryOverMarker + "Gym":       "2024-02-05",
		ledger.CarryOverMarker + "Phone":     "2024-02-20",
		ledger.CarryOverMarker + "Insurance": "2024-02-29",
	}, dates)

	// The originals are unchanged
	for _, o := range open {
		e, err := suite.ledger.Expense(ctx, o.ID)
		suite.Require().Nil(err)
		suite.Assert().Equal(models.PaymentStatusOpen, e.PaymentStatus)
		suite.Assert().Equal(o.Date, e.Date)
	}

	_, count, err := suite.ledger.Expenses(ctx, ledger.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(8), count)

	closures, err := suite.ledger.Closures(ctx)
	suite.Require().Nil(err)
	suite.Require().Len(closures, 1)
	suite.Assert().Equal(3, closures[0].TransferredExpenses)

	suite.Assert().True(suite.budgetUsed(budget).Equal(dec("300")), "carried expenses count for the budget")
	suite.Assert().Equal([]string{events.TypeMonthClosed}, suite.events.types())
}

func (suite *TestSuiteStandard) TestCloseMonthTwiceDuplicates() {
	ctx := context.Background()
	suite.createExpense("Gym", "30", "healthcare", "2024-03-05")

	_, err := suite.ledger.CloseMonth(ctx)
	suite.Require().Nil(err)
	suite.now = suite.now.Add(time.Hour)
	_, err = suite.ledger.CloseMonth(ctx)
	suite.Require().Nil(err)

	_, count, err := suite.ledger.Expenses(ctx, ledger.ExpenseFilter{Month: types.NewMonth(2024, 4)})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), count)

	closures, err := suite.ledger.Closures(ctx)
	suite.Require().Nil(err)
	suite.Require().Len(closures, 2)
	suite.Assert().True(closures[0].ClosedDate.After(closures[1].ClosedDate), "newest first")
}

func (suite *TestSuiteStandard) TestCloseMonthEmpty() {
	result, err := suite.ledger.CloseMonth(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Equal(0, result.Closure.TransferredExpenses)
	suite.Assert().Empty(result.Transferred)
}

func (suite *TestSuiteStandard) TestCloseMonthUsesLocation() {
	amsterdam := time.FixedZone("CEST", 2*60*60)

	// 23:30 UTC on March 31st is already April 1st in Amsterdam
	now := time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC)
	l := ledger.New(suite.db, ledger.WithClock(func() time.Time { return now }), ledger.WithLocation(amsterdam))

	result, err := l.CloseMonth(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-04", result.Closure.Month.String())
}
