package ledger_test

import (
	"context"
	"testing"

	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSubmitIncomeCategorize() {
	ctx := context.Background()

	_, err := suite.ledger.SubmitMatchRule(ctx, ledger.Create(), models.MatchRule{
		Type:     models.CategoryTypeIncome,
		Priority: 1,
		Match:    "ACME*",
		Category: "salary",
	})
	suite.Require().Nil(err)

	matched := suite.createIncome("ACME payroll March", "2500", "", "2024-03-25")
	suite.Assert().Equal("salary", matched.Category)

	unmatched := suite.createIncome("Birthday", "50", "", "2024-03-02")
	suite.Assert().Equal(models.CategoryOther, unmatched.Category)

	explicit := suite.createIncome("ACME bonus", "300", "gift", "2024-03-02")
	suite.Assert().Equal("gift", explicit.Category)
}

func (suite *TestSuiteStandard) TestSubmitUnknownCategory() {
	_, err := suite.ledger.SubmitIncome(context.Background(), ledger.Create(), models.Income{
		Description: "Lottery",
		Amount:      dec("10"),
		Category:    "groceries",
		Date:        types.NewDate(2024, 3, 1),
	})
	suite.Assert().ErrorIs(err, ledger.ErrCategoryUnknown)
}

func (suite *TestSuiteStandard) TestSubmitValidation() {
	_, err := suite.ledger.SubmitExpense(context.Background(), ledger.Create(), models.Expense{
		Description: "Nothing",
		Amount:      dec("0"),
		Date:        types.NewDate(2024, 3, 1),
	})
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	_, count, err := suite.ledger.Expenses(context.Background(), ledger.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestSubmitEditMissing() {
	_, err := suite.ledger.SubmitIncome(context.Background(), ledger.Edit(uuid.New()), models.Income{
		Description: "Ghost",
		Amount:      dec("10"),
		Date:        types.NewDate(2024, 3, 1),
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "income with id")
}

func (suite *TestSuiteStandard) TestSubmitExpenseCreateIsOpen() {
	expense, err := suite.ledger.SubmitExpense(context.Background(), ledger.Create(), models.Expense{
		Description:   "Electricity",
		Amount:        dec("80"),
		Category:      "utilities",
		Date:          types.NewDate(2024, 3, 3),
		PaymentStatus: models.PaymentStatusPaid,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.PaymentStatusOpen, expense.PaymentStatus)
	suite.Assert().Equal("2024-03", expense.Month.String())
}

func (suite *TestSuiteStandard) TestSubmitExpenseEditUpdatesMonth() {
	ctx := context.Background()
	expense := suite.createExpense("Dentist", "60", "healthcare", "2024-03-20")

	expense.Date = types.NewDate(2024, 4, 2)
	edited, err := suite.ledger.SubmitExpense(ctx, ledger.Edit(expense.ID), expense)
	suite.Require().Nil(err)
	suite.Assert().Equal(expense.ID, edited.ID)
	suite.Assert().Equal("2024-04", edited.Month.String())

	loaded, err := suite.ledger.Expense(ctx, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-04", loaded.Month.String())
	suite.Assert().Equal("2024-04-02", loaded.Date.String())
}

func (suite *TestSuiteStandard) TestMarkExpensePaid() {
	ctx := context.Background()
	expense := suite.createExpense("Internet", "40", "utilities", "2024-03-01")

	paid, err := suite.ledger.MarkExpensePaid(ctx, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.PaymentStatusPaid, paid.PaymentStatus)

	_, err = suite.ledger.MarkExpensePaid(ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRemoveMissing() {
	ctx := context.Background()

	suite.Assert().ErrorIs(suite.ledger.RemoveIncome(ctx, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.ledger.RemoveExpense(ctx, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.ledger.RemoveBudget(ctx, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.ledger.RemoveGoal(ctx, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.ledger.RemoveDebt(ctx, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.ledger.RemoveMatchRule(ctx, uuid.New()), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpensesOrderAndFilter() {
	ctx := context.Background()

	first := suite.createExpense("Albert Heijn", "20", "groceries", "2024-03-10")
	second := suite.createExpense("Jumbo", "30", "groceries", "2024-03-10")
	newest := suite.createExpense("Rent March", "900", "rent", "2024-03-12")
	oldest := suite.createExpense("Rent February", "900", "rent", "2024-02-01")

	expenses, count, err := suite.ledger.Expenses(ctx, ledger.ExpenseFilter{})
	suite.Require().Nil(err)
	suite.Require().Equal(int64(4), count)

	ids := []uuid.UUID{}
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	suite.Assert().Equal([]uuid.UUID{newest.ID, first.ID, second.ID, oldest.ID}, ids)

	tests := []struct {
		name   string
		filter ledger.ExpenseFilter
		count  int64
	}{
		{"Search", ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{Search: "rent"}}, 2},
		{"Search percent is literal", ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{Search: "%"}}, 0},
		{"Search underscore is literal", ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{Search: "Rent_March"}}, 0},
		{"Category", ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{Category: "groceries"}}, 2},
		{"From", ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{FromDate: types.NewDate(2024, 3, 10)}}, 3},
		{"Until", ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{UntilDate: types.NewDate(2024, 3, 10)}}, 3},
		{"Amount range", ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{AmountMoreOrEqual: dec("25"), AmountLessOrEqual: dec("100")}}, 1},
		{"Month", ledger.ExpenseFilter{Month: types.NewMonth(2024, 2)}, 1},
		{"Status", ledger.ExpenseFilter{PaymentStatus: models.PaymentStatusPaid}, 0},
		{"Method", ledger.ExpenseFilter{PaymentMethod: "card"}, 4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, count, err := suite.ledger.Expenses(ctx, tt.filter)
			assert.Nil(t, err)
			assert.Equal(t, tt.count, count)
		})
	}

	paged, count, err := suite.ledger.Expenses(ctx, ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{Offset: 1, Limit: 2}})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(4), count)
	suite.Require().Len(paged, 2)
	suite.Assert().Equal(first.ID, paged[0].ID)
}

// Budget.used equals the sum of the expenses in its category after every
// change to the expenses.
func (suite *TestSuiteStandard) TestBudgetUsedFollowsExpenses() {
	ctx := context.Background()

	groceries := suite.createBudget("Groceries", "250", "groceries")
	transport := suite.createBudget("Transport", "100", "transport")

	a := suite.createExpense("Albert Heijn", "40.50", "groceries", "2024-03-01")
	suite.Assert().True(suite.budgetUsed(groceries).Equal(dec("40.5")))

	b := suite.createExpense("Lidl", "9.50", "groceries", "2024-03-02")
	suite.Assert().True(suite.budgetUsed(groceries).Equal(dec("50")))

	// Recategorize
	b.Category = "transport"
	_, err := suite.ledger.SubmitExpense(ctx, ledger.Edit(b.ID), b)
	suite.Require().Nil(err)
	suite.Assert().True(suite.budgetUsed(groceries).Equal(dec("40.5")))
	suite.Assert().True(suite.budgetUsed(transport).Equal(dec("9.5")))

	// Change amount
	a.Amount = dec("60")
	_, err = suite.ledger.SubmitExpense(ctx, ledger.Edit(a.ID), a)
	suite.Require().Nil(err)
	suite.Assert().True(suite.budgetUsed(groceries).Equal(dec("60")))

	// Delete
	suite.Require().Nil(suite.ledger.RemoveExpense(ctx, a.ID))
	suite.Assert().True(suite.budgetUsed(groceries).IsZero())
	suite.Assert().True(suite.budgetUsed(transport).Equal(dec("9.5")))
}
