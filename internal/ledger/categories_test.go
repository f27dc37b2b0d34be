package ledger_test

import (
	"context"

	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
)

func (suite *TestSuiteStandard) TestCategoriesSortedDutch() {
	categories, err := suite.ledger.Categories(context.Background(), models.CategoryTypeIncome)
	suite.Require().Nil(err)

	names := []string{}
	for _, c := range categories {
		names = append(names, c.Name)
	}

	suite.Assert().Equal([]string{"Freelance", "Geschenken", "Investeringen", "Overige", "Salaris"}, names)
}

func (suite *TestSuiteStandard) TestCategoriesInvalidType() {
	_, err := suite.ledger.Categories(context.Background(), "savings")
	suite.Assert().ErrorIs(err, models.ErrCategoryTypeInvalid)
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	ctx := context.Background()

	category, err := suite.ledger.CreateCategory(ctx, models.Category{Type: models.CategoryTypeExpense, Name: "  Dining Out  ", Icon: "fa-utensils"})
	suite.Require().Nil(err)
	suite.Assert().Equal("dining-out", category.ID)
	suite.Assert().Equal("Dining Out", category.Name)

	_, err = suite.ledger.CreateCategory(ctx, models.Category{Type: models.CategoryTypeExpense, Name: "Dining out"})
	suite.Assert().ErrorIs(err, models.ErrCategoryExists)

	// The same slug is available for the other type
	_, err = suite.ledger.CreateCategory(ctx, models.Category{Type: models.CategoryTypeIncome, Name: "Dining out"})
	suite.Assert().Nil(err)

	_, err = suite.ledger.CreateCategory(ctx, models.Category{Type: models.CategoryTypeIncome, Name: "!!!"})
	suite.Assert().ErrorIs(err, ledger.ErrCategorySlugEmpty)
}

func (suite *TestSuiteStandard) TestResolve() {
	ctx := context.Background()

	suite.Assert().Equal("Boodschappen", suite.ledger.Resolve(ctx, "groceries"))
	suite.Assert().Equal("Salaris", suite.ledger.Resolve(ctx, "salary"))
	suite.Assert().Equal("unknown-id", suite.ledger.Resolve(ctx, "unknown-id"))

	// Deleted default categories still resolve to their name
	suite.Require().Nil(suite.ledger.DeleteCategory(ctx, models.CategoryTypeExpense, "rent", false))
	suite.Assert().Equal("Huur", suite.ledger.Resolve(ctx, "rent"))
}

func (suite *TestSuiteStandard) TestDeleteOtherAlwaysRefused() {
	for _, reassign := range []bool{false, true} {
		for _, typ := range []models.CategoryType{models.CategoryTypeIncome, models.CategoryTypeExpense} {
			err := suite.ledger.DeleteCategory(context.Background(), typ, models.CategoryOther, reassign)
			suite.Assert().ErrorIs(err, ledger.ErrCategorySentinel)
		}
	}

	_, err := suite.ledger.Category(context.Background(), models.CategoryTypeExpense, models.CategoryOther)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestDeleteCategoryWithReassign() {
	ctx := context.Background()

	for range 3 {
		suite.createExpense("Train", "12", "transport", "2024-03-02")
	}
	budget := suite.createBudget("Travel", "100", "transport")
	other := suite.createBudget("Misc", "100", models.CategoryOther)

	err := suite.ledger.DeleteCategory(ctx, models.CategoryTypeExpense, "transport", false)
	suite.Require().ErrorIs(err, ledger.ErrCategoryInUse)
	suite.Assert().Contains(err.Error(), "4 entries")

	err = suite.ledger.DeleteCategory(ctx, models.CategoryTypeExpense, "transport", true)
	suite.Require().Nil(err)

	_, count, err := suite.ledger.Expenses(ctx, ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{Category: "transport"}})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), count)

	_, count, err = suite.ledger.Expenses(ctx, ledger.ExpenseFilter{EntryFilter: ledger.EntryFilter{Category: models.CategoryOther}})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), count)

	moved, err := suite.ledger.Budget(ctx, budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.CategoryOther, moved.Category)
	suite.Assert().True(moved.Used.Equal(dec("36")), moved.Used.String())
	suite.Assert().True(suite.budgetUsed(other).Equal(dec("36")))

	_, err = suite.ledger.Category(ctx, models.CategoryTypeExpense, "transport")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteUnusedCategory() {
	err := suite.ledger.DeleteCategory(context.Background(), models.CategoryTypeIncome, "gift", false)
	suite.Assert().Nil(err)

	err = suite.ledger.DeleteCategory(context.Background(), models.CategoryTypeIncome, "gift", false)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCategoryRenamesReferences() {
	ctx := context.Background()

	expense := suite.createExpense("Cinema", "15", "entertainment", "2024-03-01")
	budget := suite.createBudget("Fun", "50", "entertainment")

	updated, err := suite.ledger.UpdateCategory(ctx, models.CategoryTypeExpense, "entertainment", models.Category{Name: "Going Out"})
	suite.Require().Nil(err)
	suite.Assert().Equal("going-out", updated.ID)
	suite.Assert().Equal("Going Out", updated.Name)

	e, err := suite.ledger.Expense(ctx, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("going-out", e.Category)

	b, err := suite.ledger.Budget(ctx, budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("going-out", b.Category)
	suite.Assert().True(b.Used.Equal(dec("15")))
}

func (suite *TestSuiteStandard) TestUpdateCategoryCollisionKeepsID() {
	updated, err := suite.ledger.UpdateCategory(context.Background(), models.CategoryTypeExpense, "entertainment", models.Category{Name: "Rent"})
	suite.Require().Nil(err)
	suite.Assert().Equal("entertainment", updated.ID)
	suite.Assert().Equal("Rent", updated.Name)

	rent, err := suite.ledger.Category(context.Background(), models.CategoryTypeExpense, "rent")
	suite.Require().Nil(err)
	suite.Assert().Equal("Huur", rent.Name)
}

func (suite *TestSuiteStandard) TestUpdateOtherKeepsID() {
	updated, err := suite.ledger.UpdateCategory(context.Background(), models.CategoryTypeIncome, models.CategoryOther, models.Category{Name: "Diversen"})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.CategoryOther, updated.ID)
	suite.Assert().Equal("Diversen", updated.Name)
}
