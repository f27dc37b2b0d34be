package v1

import (
	"fmt"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Name     string              `json:"name" example:"Groceries"`                                          // Name of the budget
	Amount   decimal.Decimal     `json:"amount" example:"250" minimum:"0.00000001" multipleOf:"0.00000001"` // The cap
	Category string              `json:"category" example:"groceries"`                                      // ID of the expense category. Defaults to "other"
	Period   models.BudgetPeriod `json:"period" example:"monthly" enums:"weekly,monthly,yearly"`            // Period the cap applies to. Defaults to "monthly"
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Amount:   editable.Amount,
		Category: editable.Category,
		Period:   editable.Period,
	}
}

func budgetEditable(model models.Budget) BudgetEditable {
	return BudgetEditable{
		Name:     model.Name,
		Amount:   model.Amount,
		Category: model.Category,
		Period:   model.Period,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/3c1e6f0a-8d2b-4a5e-9f7c-0b1d2e3f4a5b"` // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/expense/groceries"`             // The category of the budget
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=groceries"`              // The expenses counting towards the budget
}

type Budget struct {
	models.Budget
	CategoryName string       `json:"categoryName" example:"Boodschappen"` // Name of the category
	Usage        ledger.Usage `json:"usage"`                               // How much of the budget is used
	Links        BudgetLinks  `json:"links"`
}

func budgetPresenter(resolve ledger.Resolver) presentFunc[models.Budget, Budget] {
	return func(c *gin.Context, model models.Budget) Budget {
		url := httputil.BaseURL(c)

		return Budget{
			Budget:       model,
			CategoryName: resolve(model.Category),
			Usage:        ledger.BudgetUsage(model),
			Links: BudgetLinks{
				Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
				Category: fmt.Sprintf("%s/v1/categories/%s/%s", url, models.CategoryTypeExpense, model.Category),
				Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.Category),
			},
		}
	}
}

type BudgetQueryFilter struct {
	Name     string              `form:"name"`     // By name
	Category string              `form:"category"` // By category ID
	Period   models.BudgetPeriod `form:"period"`   // By period
	Offset   uint                `form:"offset"`   // The offset of the first budget returned. Defaults to 0.
	Limit    int                 `form:"limit"`    // Maximum number of budgets to return. Defaults to 50.
}

type GoalEditable struct {
	Name          string          `json:"name" example:"New bike"`                                            // Name of the goal
	Target        decimal.Decimal `json:"target" example:"1000" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount to save
	Deadline      types.Date      `json:"deadline" example:"2024-12-31" swaggertype:"string"`                 // Date the target should be reached
	MonthlyAmount decimal.Decimal `json:"monthlyAmount" example:"100" minimum:"0" multipleOf:"0.00000001"`    // Planned monthly saving
	Description   string          `json:"description" example:"For the commute"`                              // Description of the goal
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:          editable.Name,
		Target:        editable.Target,
		Deadline:      editable.Deadline,
		MonthlyAmount: editable.MonthlyAmount,
		Description:   editable.Description,
	}
}

func goalEditable(model models.Goal) GoalEditable {
	return GoalEditable{
		Name:          model.Name,
		Target:        model.Target,
		Deadline:      model.Deadline,
		MonthlyAmount: model.MonthlyAmount,
		Description:   model.Description,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`              // The goal itself
	Deposits string `json:"deposits" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/deposits"` // Endpoint for deposits
}

type Goal struct {
	models.Goal
	Progress ledger.GoalProgress `json:"progress"` // Progress towards the target
	Links    GoalLinks           `json:"links"`
}

func (co Controller) newGoal(c *gin.Context, model models.Goal) Goal {
	self := fmt.Sprintf("%s/v1/goals/%s", httputil.BaseURL(c), model.ID)

	return Goal{
		Goal:     model,
		Progress: ledger.Progress(model, co.Ledger.Today()),
		Links: GoalLinks{
			Self:     self,
			Deposits: self + "/deposits",
		},
	}
}

type DebtEditable struct {
	Name           string          `json:"name" example:"Car loan"`                                            // Name of the debt
	Amount         decimal.Decimal `json:"amount" example:"8000" minimum:"0.00000001" multipleOf:"0.00000001"` // The principal
	Creditor       string          `json:"creditor" example:"Bank"`                                            // Who the money is owed to
	Interest       decimal.Decimal `json:"interest" example:"4.5" minimum:"0"`                                 // Interest rate in percent
	StartDate      types.Date      `json:"startDate" example:"2023-01-01" swaggertype:"string"`                // Start of the loan
	EndDate        types.Date      `json:"endDate" example:"2027-01-01" swaggertype:"string"`                  // Planned end of the loan
	MonthlyPayment decimal.Decimal `json:"monthlyPayment" example:"180" minimum:"0" multipleOf:"0.00000001"`   // Planned monthly payment
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Name:           editable.Name,
		Amount:         editable.Amount,
		Creditor:       editable.Creditor,
		Interest:       editable.Interest,
		StartDate:      editable.StartDate,
		EndDate:        editable.EndDate,
		MonthlyPayment: editable.MonthlyPayment,
	}
}

func debtEditable(model models.Debt) DebtEditable {
	return DebtEditable{
		Name:           model.Name,
		Amount:         model.Amount,
		Creditor:       model.Creditor,
		Interest:       model.Interest,
		StartDate:      model.StartDate,
		EndDate:        model.EndDate,
		MonthlyPayment: model.MonthlyPayment,
	}
}

type DebtLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/debts/9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"`              // The debt itself
	Payments string `json:"payments" example:"https://example.com/api/v1/debts/9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d/payments"` // Endpoint for payments
}

type Debt struct {
	models.Debt
	Progress ledger.DebtProgress `json:"progress"` // How much of the debt is paid off
	Links    DebtLinks           `json:"links"`
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	self := fmt.Sprintf("%s/v1/debts/%s", httputil.BaseURL(c), model.ID)

	return Debt{
		Debt:     model,
		Progress: ledger.Repaid(model),
		Links: DebtLinks{
			Self:     self,
			Payments: self + "/payments",
		},
	}
}

type TrackerQueryFilter struct {
	Name   string `form:"name"`   // By name
	Search string `form:"search"` // By string in name and description or creditor
	Offset uint   `form:"offset"` // The offset of the first resource returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of resources to return. Defaults to 50.
}

func (f TrackerQueryFilter) model(limit int) ledger.TrackerFilter {
	return ledger.TrackerFilter{
		Name:   f.Name,
		Search: f.Search,
		Offset: f.Offset,
		Limit:  limit,
	}
}

// AmountEditable is the body for deposits and payments.
type AmountEditable struct {
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001" multipleOf:"0.00000001"` // The amount
}
