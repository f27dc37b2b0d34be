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

type IncomeEditable struct {
	Description string          `json:"description" example:"Salary March"`                                                    // Description of the income
	Amount      decimal.Decimal `json:"amount" example:"2500" minimum:"0.00000001" multipleOf:"0.00000001"`                    // Amount received
	Category    string          `json:"category" example:"salary"`                                                             // ID of the income category. When empty, match rules or "other" decide
	Date        types.Date      `json:"date" example:"2024-03-25" swaggertype:"string"`                                        // Date the income was received
	Frequency   string          `json:"frequency" example:"monthly"`                                                           // How often the income recurs
	Source      string          `json:"source" example:"ACME Corp."`                                                           // Who paid the income
	ImportHash  string          `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // Hash of the imported statement line
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Description: editable.Description,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date,
		Frequency:   editable.Frequency,
		Source:      editable.Source,
		ImportHash:  editable.ImportHash,
	}
}

func incomeEditable(model models.Income) IncomeEditable {
	return IncomeEditable{
		Description: model.Description,
		Amount:      model.Amount,
		Category:    model.Category,
		Date:        model.Date,
		Frequency:   model.Frequency,
		Source:      model.Source,
		ImportHash:  model.ImportHash,
	}
}

type IncomeLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/incomes/0f26a3a4-1d2e-4f5a-9b4c-7e2a9c3d5f61"` // The income itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/income/salary"`                 // The category of the income
}

type Income struct {
	models.Income
	CategoryName string      `json:"categoryName" example:"Salaris"` // Name of the category
	Links        IncomeLinks `json:"links"`
}

// incomePresenter returns the function that transforms incomes to their API representation.
func incomePresenter(resolve ledger.Resolver) presentFunc[models.Income, Income] {
	return func(c *gin.Context, model models.Income) Income {
		url := httputil.BaseURL(c)

		return Income{
			Income:       model,
			CategoryName: resolve(model.Category),
			Links: IncomeLinks{
				Self:     fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
				Category: fmt.Sprintf("%s/v1/categories/%s/%s", url, models.CategoryTypeIncome, model.Category),
			},
		}
	}
}

type EntryQueryFilter struct {
	Description       string          `form:"description"`       // Exact description
	Search            string          `form:"search"`            // Search for this text in the description
	Category          string          `form:"category"`          // ID of the category
	FromDate          types.Date      `form:"fromDate"`          // Entries on and after this date
	UntilDate         types.Date      `form:"untilDate"`         // Entries on and before this date
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual"` // Amount more than or equal to this
	Offset            uint            `form:"offset"`            // The offset of the first entry returned. Defaults to 0.
	Limit             int             `form:"limit"`             // Maximum number of entries to return. Defaults to 50.
}

func (f EntryQueryFilter) model(limit int) ledger.EntryFilter {
	return ledger.EntryFilter{
		Description:       f.Description,
		Search:            f.Search,
		Category:          f.Category,
		FromDate:          f.FromDate,
		UntilDate:         f.UntilDate,
		AmountLessOrEqual: f.AmountLessOrEqual,
		AmountMoreOrEqual: f.AmountMoreOrEqual,
		Offset:            f.Offset,
		Limit:             limit,
	}
}

type ExpenseEditable struct {
	Description   string               `json:"description" example:"Albert Heijn"`                                                    // Description of the expense
	Amount        decimal.Decimal      `json:"amount" example:"42.17" minimum:"0.00000001" multipleOf:"0.00000001"`                   // Amount spent
	Category      string               `json:"category" example:"groceries"`                                                          // ID of the expense category. When empty, match rules or "other" decide
	Date          types.Date           `json:"date" example:"2024-03-12" swaggertype:"string"`                                        // Date of the expense
	PaymentMethod string               `json:"paymentMethod" example:"card"`                                                          // How the expense is paid
	PaymentStatus models.PaymentStatus `json:"paymentStatus" example:"open" enums:"open,paid"`                                        // Whether the expense is paid. Ignored on creation, new expenses are open
	ImportHash    string               `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // Hash of the imported statement line
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Description:   editable.Description,
		Amount:        editable.Amount,
		Category:      editable.Category,
		Date:          editable.Date,
		PaymentMethod: editable.PaymentMethod,
		PaymentStatus: editable.PaymentStatus,
		ImportHash:    editable.ImportHash,
	}
}

func expenseEditable(model models.Expense) ExpenseEditable {
	return ExpenseEditable{
		Description:   model.Description,
		Amount:        model.Amount,
		Category:      model.Category,
		Date:          model.Date,
		PaymentMethod: model.PaymentMethod,
		PaymentStatus: model.PaymentStatus,
		ImportHash:    model.ImportHash,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/5b3c1f0e-2a4d-4e8b-9c7f-1d2e3f4a5b6c"`      // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/expense/groceries"`                   // The category of the expense
	Paid     string `json:"paid" example:"https://example.com/api/v1/expenses/5b3c1f0e-2a4d-4e8b-9c7f-1d2e3f4a5b6c/paid"` // Endpoint to mark the expense as paid
}

type Expense struct {
	models.Expense
	CategoryName      string       `json:"categoryName" example:"Boodschappen"`   // Name of the category
	PaymentMethodName string       `json:"paymentMethodName" example:"Betaalpas"` // Display name of the payment method
	Links             ExpenseLinks `json:"links"`
}

// expensePresenter returns the function that transforms expenses to their API representation.
func expensePresenter(resolve ledger.Resolver) presentFunc[models.Expense, Expense] {
	return func(c *gin.Context, model models.Expense) Expense {
		url := httputil.BaseURL(c)
		self := fmt.Sprintf("%s/v1/expenses/%s", url, model.ID)

		return Expense{
			Expense:           model,
			CategoryName:      resolve(model.Category),
			PaymentMethodName: models.PaymentMethodName(model.PaymentMethod),
			Links: ExpenseLinks{
				Self:     self,
				Category: fmt.Sprintf("%s/v1/categories/%s/%s", url, models.CategoryTypeExpense, model.Category),
				Paid:     self + "/paid",
			},
		}
	}
}

type ExpenseQueryFilter struct {
	EntryQueryFilter
	PaymentMethod string               `form:"paymentMethod"` // How the expense is paid
	PaymentStatus models.PaymentStatus `form:"paymentStatus"` // "open" or "paid"
	Month         string               `form:"month"`         // Month of the expense in YYYY-MM format
}

func (f ExpenseQueryFilter) model(limit int) (ledger.ExpenseFilter, error) {
	var month types.Month
	if f.Month != "" {
		m, err := types.ParseMonth(f.Month)
		if err != nil {
			return ledger.ExpenseFilter{}, err
		}

		month = m
	}

	return ledger.ExpenseFilter{
		EntryFilter:   f.EntryQueryFilter.model(limit),
		PaymentMethod: f.PaymentMethod,
		PaymentStatus: f.PaymentStatus,
		Month:         month,
	}, nil
}
