package report

import (
	"sort"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns part as a percentage of whole, capped at 100 and rounded
// to two decimals. It is 0 when whole is not positive.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}

	return decimal.Min(hundred, part.Mul(hundred).DivRound(whole, 2))
}

// CategorySum is the sum of all expenses of a category.
type CategorySum struct {
	Category string          `json:"category" example:"groceries"`
	Name     string          `json:"name" example:"Boodschappen"`
	Amount   decimal.Decimal `json:"amount" example:"300"`
}

// SumByCategory groups expenses by category. Categories are in the order in
// which they first appear in expenses, resolve returns their display name.
func SumByCategory(expenses []models.Expense, resolve func(string) string) []CategorySum {
	sums := make([]CategorySum, 0)
	index := map[string]int{}

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(sums)
			index[e.Category] = i
			sums = append(sums, CategorySum{
				Category: e.Category,
				Name:     resolve(e.Category),
				Amount:   decimal.Zero,
			})
		}

		sums[i].Amount = sums[i].Amount.Add(e.Amount)
	}

	return sums
}

// Totals are the headline numbers of the dashboard.
type Totals struct {
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"1000"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"300"`
	Balance       decimal.Decimal `json:"balance" example:"700"`
	TotalSavings  decimal.Decimal `json:"totalSavings" example:"250"`
	Formatted     FormattedTotals `json:"formatted"`
}

// FormattedTotals are the totals in Dutch euro notation.
type FormattedTotals struct {
	TotalIncome   string `json:"totalIncome" example:"€ 1.000,00"`
	TotalExpenses string `json:"totalExpenses" example:"€ 300,00"`
	Balance       string `json:"balance" example:"€ 700,00"`
	TotalSavings  string `json:"totalSavings" example:"€ 250,00"`
}

// ComputeTotals sums all incomes, expenses and the saved amount of all goals.
func ComputeTotals(incomes []models.Income, expenses []models.Expense, goals []models.Goal) Totals {
	t := Totals{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalSavings:  decimal.Zero,
	}

	for _, i := range incomes {
		t.TotalIncome = t.TotalIncome.Add(i.Amount)
	}

	for _, e := range expenses {
		t.TotalExpenses = t.TotalExpenses.Add(e.Amount)
	}

	for _, g := range goals {
		t.TotalSavings = t.TotalSavings.Add(g.Saved)
	}

	t.Balance = t.TotalIncome.Sub(t.TotalExpenses)
	t.Formatted = FormattedTotals{
		TotalIncome:   FormatAmount(t.TotalIncome),
		TotalExpenses: FormatAmount(t.TotalExpenses),
		Balance:       FormatAmount(t.Balance),
		TotalSavings:  FormatAmount(t.TotalSavings),
	}

	return t
}

// RecentEntry is an income or an expense in the list of recent activity.
type RecentEntry struct {
	ID           uuid.UUID           `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Type         models.CategoryType `json:"type" example:"expense"`
	Description  string              `json:"description" example:"Albert Heijn"`
	Amount       decimal.Decimal     `json:"amount" example:"42.17"`
	Category     string              `json:"category" example:"groceries"`
	CategoryName string              `json:"categoryName" example:"Boodschappen"`
	Date         types.Date          `json:"date" swaggertype:"string" example:"2024-03-12"`
}

// Recent returns the n newest entries across incomes and expenses. Entries
// on the same day keep the order in which they were passed.
func Recent(incomes []models.Income, expenses []models.Expense, n int, resolve func(string) string) []RecentEntry {
	entries := make([]RecentEntry, 0, len(incomes)+len(expenses))

	for _, i := range incomes {
		entries = append(entries, RecentEntry{
			ID:           i.ID,
			Type:         models.CategoryTypeIncome,
			Description:  i.Description,
			Amount:       i.Amount,
			Category:     i.Category,
			CategoryName: resolve(i.Category),
			Date:         i.Date,
		})
	}

	for _, e := range expenses {
		entries = append(entries, RecentEntry{
			ID:           e.ID,
			Type:         models.CategoryTypeExpense,
			Description:  e.Description,
			Amount:       e.Amount,
			Category:     e.Category,
			CategoryName: resolve(e.Category),
			Date:         e.Date,
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Date.After(entries[b].Date)
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

// Statistics are derived figures shown on the report page.
type Statistics struct {
	HighestExpenseCategory       string          `json:"highestExpenseCategory" example:"Huur"`      // Name of the category with the highest sum, empty if there are no expenses
	HighestExpenseCategoryAmount decimal.Decimal `json:"highestExpenseCategoryAmount" example:"900"` // Sum of the highest category
	AverageMonthlyExpenses       decimal.Decimal `json:"averageMonthlyExpenses" example:"1234.5"`    // Total expenses divided by the number of months with expenses
	MostCommonExpense            string          `json:"mostCommonExpense" example:"Albert Heijn"`   // Description occurring most often
	BudgetsWithinLimit           int             `json:"budgetsWithinLimit" example:"3"`             // Budgets with used <= amount
	BudgetsExceeded              int             `json:"budgetsExceeded" example:"1"`                // Budgets with used > amount
	AverageCompliance            decimal.Decimal `json:"averageCompliance" example:"87.5"`           // Mean of the capped usage percentage of all budgets
}

// ComputeStatistics calculates the statistics. On ties, the category or
// description that appears first wins.
func ComputeStatistics(expenses []models.Expense, budgets []models.Budget, resolve func(string) string) Statistics {
	s := Statistics{
		HighestExpenseCategoryAmount: decimal.Zero,
		AverageMonthlyExpenses:       decimal.Zero,
		AverageCompliance:            decimal.Zero,
	}

	for _, c := range SumByCategory(expenses, resolve) {
		if c.Amount.GreaterThan(s.HighestExpenseCategoryAmount) {
			s.HighestExpenseCategory = c.Name
			s.HighestExpenseCategoryAmount = c.Amount
		}
	}

	total := decimal.Zero
	months := map[types.Month]struct{}{}
	counts := map[string]int{}
	var descriptions []string
	for _, e := range expenses {
		total = total.Add(e.Amount)
		months[e.Date.CalendarMonth()] = struct{}{}

		if _, ok := counts[e.Description]; !ok {
			descriptions = append(descriptions, e.Description)
		}
		counts[e.Description]++
	}

	maxCount := 0
	for _, d := range descriptions {
		if counts[d] > maxCount {
			maxCount = counts[d]
			s.MostCommonExpense = d
		}
	}

	if len(months) > 0 {
		s.AverageMonthlyExpenses = total.DivRound(decimal.NewFromInt(int64(len(months))), 2)
	}

	if len(budgets) == 0 {
		return s
	}

	compliance := decimal.Zero
	for _, b := range budgets {
		if b.Used.GreaterThan(b.Amount) {
			s.BudgetsExceeded++
		} else {
			s.BudgetsWithinLimit++
		}

		compliance = compliance.Add(Percentage(b.Used, b.Amount))
	}

	s.AverageCompliance = compliance.DivRound(decimal.NewFromInt(int64(len(budgets))), 1)
	return s
}
