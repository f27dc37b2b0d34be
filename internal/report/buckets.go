// Package report aggregates incomes and expenses into totals, statistics and
// time series. All functions are pure and work on already loaded data.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

var ErrUnknownPeriod = errors.New("the period must be one of 'week', 'month', 'quarter' or 'year'")

// ParsePeriod parses a period. An empty string is the month period.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodMonth, nil
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return p, nil
	default:
		return "", fmt.Errorf("%w, got '%s'", ErrUnknownPeriod, s)
	}
}

var monthLabels = [...]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}

// MonthLabel returns the Dutch abbreviation of the month.
func MonthLabel(m time.Month) string {
	return monthLabels[m-1]
}

// Bucket is the sum of all incomes and expenses in the closed date range [From, Until].
type Bucket struct {
	Label    string          `json:"label" example:"Week 1"`
	From     types.Date      `json:"from" swaggertype:"string" example:"2024-03-01"`
	Until    types.Date      `json:"until" swaggertype:"string" example:"2024-03-07"`
	Income   decimal.Decimal `json:"income" example:"2500"`
	Expenses decimal.Decimal `json:"expenses" example:"734.12"`
	Balance  decimal.Decimal `json:"balance" example:"1765.88"`
}

// Buckets returns the empty buckets of the period around the reference day.
//
//   - week: the seven days ending at the reference day, one bucket per day
//   - month: four buckets of the reference month, days 1-7, 8-14, 15-21 and 22 until the end of the month
//   - quarter: one bucket for each month of the reference quarter
//   - year: one bucket for each month of the reference year
func Buckets(period Period, reference types.Date) ([]Bucket, error) {
	var buckets []Bucket

	switch period {
	case PeriodWeek:
		for i := 6; i >= 0; i-- {
			day := reference.AddDays(-i)
			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("%d %s", day.Day(), MonthLabel(day.Month())),
				From:  day,
				Until: day,
			})
		}
	case PeriodMonth:
		month := reference.CalendarMonth()
		first := month.FirstDay()
		for i := range 4 {
			until := first.AddDays(i*7 + 6)
			if i == 3 {
				until = month.LastDay()
			}

			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("Week %d", i+1),
				From:  first.AddDays(i * 7),
				Until: until,
			})
		}
	case PeriodQuarter:
		start := types.NewMonth(reference.Year(), (reference.Month()-1)/3*3+1)
		for i := range 3 {
			buckets = append(buckets, monthBucket(start.AddDate(0, i)))
		}
	case PeriodYear:
		for m := time.January; m <= time.December; m++ {
			buckets = append(buckets, monthBucket(types.NewMonth(reference.Year(), m)))
		}
	default:
		return nil, fmt.Errorf("%w, got '%s'", ErrUnknownPeriod, period)
	}

	for i := range buckets {
		buckets[i].Income = decimal.Zero
		buckets[i].Expenses = decimal.Zero
		buckets[i].Balance = decimal.Zero
	}

	return buckets, nil
}

func monthBucket(m types.Month) Bucket {
	return Bucket{
		Label: MonthLabel(m.Month()),
		From:  m.FirstDay(),
		Until: m.LastDay(),
	}
}

// BucketByPeriod sums incomes and expenses into the buckets of the period.
// Entries outside of all buckets are ignored.
func BucketByPeriod(incomes []models.Income, expenses []models.Expense, period Period, reference types.Date) ([]Bucket, error) {
	buckets, err := Buckets(period, reference)
	if err != nil {
		return nil, err
	}

	find := func(d types.Date) int {
		for i, b := range buckets {
			if d.Between(b.From, b.Until) {
				return i
			}
		}
		return -1
	}

	for _, income := range incomes {
		if i := find(income.Date); i >= 0 {
			buckets[i].Income = buckets[i].Income.Add(income.Amount)
		}
	}

	for _, expense := range expenses {
		if i := find(expense.Date); i >= 0 {
			buckets[i].Expenses = buckets[i].Expenses.Add(expense.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Balance = buckets[i].Income.Sub(buckets[i].Expenses)
	}

	return buckets, nil
}

// Series is the column representation of buckets used by chart renderers.
type Series struct {
	Labels   []string          `json:"labels"`
	Incomes  []decimal.Decimal `json:"incomes"`
	Expenses []decimal.Decimal `json:"expenses"`
	Balances []decimal.Decimal `json:"balances"`
}

// ToSeries converts buckets to parallel series.
func ToSeries(buckets []Bucket) Series {
	s := Series{
		Labels:   make([]string, 0, len(buckets)),
		Incomes:  make([]decimal.Decimal, 0, len(buckets)),
		Expenses: make([]decimal.Decimal, 0, len(buckets)),
		Balances: make([]decimal.Decimal, 0, len(buckets)),
	}

	for _, b := range buckets {
		s.Labels = append(s.Labels, b.Label)
		s.Incomes = append(s.Incomes, b.Income)
		s.Expenses = append(s.Expenses, b.Expenses)
		s.Balances = append(s.Balances, b.Balance)
	}

	return s
}
