package ledger_test

import (
	"context"
	"encoding/json"

	"github.com/Mura0908/finsight-app-New/internal/events"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
)

func (suite *TestSuiteStandard) fill() {
	ctx := context.Background()

	suite.createIncome("Salary", "2500", "salary", "2024-03-25")
	suite.createExpense("Albert Heijn", "42.17", "groceries", "2024-03-12")
	suite.createExpense("Rent", "900", "rent", "2024-03-01")
	suite.createBudget("Groceries", "250", "groceries")

	_, err := suite.ledger.CreateCategory(ctx, models.Category{Type: models.CategoryTypeExpense, Name: "Pets"})
	suite.Require().Nil(err)

	goal := suite.createGoal()
	_, err = suite.ledger.Deposit(ctx, goal.ID, dec("100"))
	suite.Require().Nil(err)

	_, err = suite.ledger.SubmitDebt(ctx, ledger.Create(), models.Debt{Name: "Loan", Amount: dec("500")})
	suite.Require().Nil(err)

	token, err := suite.ledger.Unlock(ctx, "", "pw")
	suite.Require().Nil(err)
	_, err = suite.ledger.SubmitRepayment(ctx, token, ledger.Create(), models.Repayment{Person: "Sam", Amount: dec("5"), Type: models.RepaymentOwedByMe, Date: types.NewDate(2024, 3, 3)})
	suite.Require().Nil(err)

	_, err = suite.ledger.SubmitMatchRule(ctx, ledger.Create(), models.MatchRule{Type: models.CategoryTypeExpense, Match: "Albert*", Category: "groceries"})
	suite.Require().Nil(err)

	_, err = suite.ledger.CloseMonth(ctx)
	suite.Require().Nil(err)
}

func (suite *TestSuiteStandard) TestExportImportRoundTrip() {
	ctx := context.Background()
	suite.fill()

	exported, err := suite.ledger.Export(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(exported.Incomes, 1)
	suite.Assert().Len(exported.Expenses, 4)
	suite.Assert().Len(exported.Categories, 14)
	suite.Assert().Len(exported.MonthClosures, 1)

	before, err := json.Marshal(exported)
	suite.Require().Nil(err)

	suite.Require().Nil(suite.ledger.Cleanup(ctx))
	empty, err := suite.ledger.Export(ctx)
	suite.Require().Nil(err)
	suite.Assert().Empty(empty.Expenses)

	var snapshot ledger.Snapshot
	suite.Require().Nil(json.Unmarshal(before, &snapshot))

	summary, err := suite.ledger.Import(ctx, snapshot)
	suite.Require().Nil(err)
	suite.Assert().Equal(4, summary.Expenses)
	suite.Assert().Equal(14, summary.Categories)

	reexported, err := suite.ledger.Export(ctx)
	suite.Require().Nil(err)
	after, err := json.Marshal(reexported)
	suite.Require().Nil(err)

	suite.Assert().JSONEq(string(before), string(after))
	suite.Assert().Contains(suite.events.types(), events.TypeDataImported)
}

func (suite *TestSuiteStandard) TestImportDefaultsAndRecompute() {
	ctx := context.Background()
	suite.fill()

	snapshot := ledger.Snapshot{
		Expenses: []models.Expense{
			{Description: "Bread", Amount: dec("3"), Category: "groceries", Date: types.NewDate(2024, 3, 2)},
			{Description: "Cheese", Amount: dec("7"), Category: "groceries", Date: types.NewDate(2024, 3, 2)},
		},
		Budgets: []models.Budget{
			{Name: "Groceries", Amount: dec("100"), Category: "groceries", Used: dec("999")},
		},
	}

	summary, err := suite.ledger.Import(ctx, snapshot)
	suite.Require().Nil(err)
	suite.Assert().Equal(len(models.DefaultCategories()), summary.Categories)

	exported, err := suite.ledger.Export(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(exported.Categories, len(models.DefaultCategories()))
	suite.Assert().Empty(exported.Incomes)
	suite.Assert().Empty(exported.Repayments)
	suite.Require().Len(exported.Budgets, 1)
	suite.Assert().True(exported.Budgets[0].Used.Equal(dec("10")))

	// The repayment password survives an import
	set, err := suite.ledger.PasswordSet(ctx)
	suite.Require().Nil(err)
	suite.Assert().True(set)
}

func (suite *TestSuiteStandard) TestImportIsAtomic() {
	ctx := context.Background()
	suite.fill()

	_, err := suite.ledger.Import(ctx, ledger.Snapshot{
		Incomes: []models.Income{{Description: "", Amount: dec("1"), Date: types.NewDate(2024, 1, 1)}},
	})
	suite.Require().ErrorIs(err, models.ErrDescriptionRequired)

	exported, err := suite.ledger.Export(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(exported.Expenses, 4, "a failed import does not change the data")
}

func (suite *TestSuiteStandard) TestCleanup() {
	ctx := context.Background()
	suite.fill()

	token, err := suite.ledger.Unlock(ctx, "pw", "")
	suite.Require().Nil(err)

	suite.Require().Nil(suite.ledger.Cleanup(ctx))

	exported, err := suite.ledger.Export(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(exported.Categories, len(models.DefaultCategories()))
	suite.Assert().Empty(exported.Goals)
	suite.Assert().Empty(exported.MonthClosures)

	set, err := suite.ledger.PasswordSet(ctx)
	suite.Require().Nil(err)
	suite.Assert().False(set)
	suite.Assert().False(suite.ledger.Unlocked(token))
}
