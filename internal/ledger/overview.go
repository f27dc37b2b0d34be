package ledger

import (
	"context"
	"fmt"
	"io"

	"github.com/Mura0908/finsight-app-New/internal/importer"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/report"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RecentEntries is the number of entries in the recent activity of the dashboard.
const RecentEntries = 5

var (
	dashboardPeriods = []report.Period{report.PeriodWeek, report.PeriodMonth, report.PeriodYear}
	reportPeriods    = []report.Period{report.PeriodMonth, report.PeriodQuarter, report.PeriodYear}
)

// BudgetOverview is a budget together with its usage.
type BudgetOverview struct {
	models.Budget
	Usage Usage `json:"usage"`
}

// Dashboard is the overview of all data with a chart for the selected period.
type Dashboard struct {
	Period     report.Period         `json:"period" example:"month"`
	Reference  types.Date            `json:"reference" swaggertype:"string" example:"2024-03-12"` // The day the period is computed for
	Totals     report.Totals         `json:"totals"`
	Recent     []report.RecentEntry  `json:"recent"`
	Buckets    []report.Bucket       `json:"buckets"`
	Series     report.Series         `json:"series"`
	Categories []report.CategorySum  `json:"categories"`
	Budgets    []BudgetOverview      `json:"budgets"`
	Closures   []models.MonthClosure `json:"closures"`
}

// Report contains the statistics and the trend for the selected period.
type Report struct {
	Period     report.Period        `json:"period" example:"quarter"`
	Reference  types.Date           `json:"reference" swaggertype:"string" example:"2024-03-12"`
	Totals     report.Totals        `json:"totals"`
	Statistics report.Statistics    `json:"statistics"`
	Buckets    []report.Bucket      `json:"buckets"`
	Series     report.Series        `json:"series"`
	Categories []report.CategorySum `json:"categories"`
}

// data is everything the aggregations are computed from.
type data struct {
	incomes  []models.Income
	expenses []models.Expense
	budgets  []models.Budget
	goals    []models.Goal
	resolve  Resolver
}

func (l *Ledger) load(ctx context.Context) (data, error) {
	var d data

	err := l.tx(ctx, func(tx *gorm.DB) (err error) {
		if d.incomes, err = findAll[models.Income](tx, "date DESC, created_at ASC"); err != nil {
			return err
		}
		if d.expenses, err = findAll[models.Expense](tx, "date DESC, created_at ASC"); err != nil {
			return err
		}
		if d.budgets, err = findAll[models.Budget](tx, "name ASC, created_at ASC"); err != nil {
			return err
		}
		d.goals, err = findAll[models.Goal](tx, "deadline ASC")
		return err
	})
	if err != nil {
		return data{}, err
	}

	d.resolve, err = l.Resolver(ctx)
	if err != nil {
		return data{}, err
	}

	return d, nil
}

func checkPeriod(period report.Period, allowed []report.Period) error {
	if !slices.Contains(allowed, period) {
		return fmt.Errorf("%w: '%s' is not available here", report.ErrUnknownPeriod, period)
	}

	return nil
}

// Dashboard computes the dashboard for the period ending today. Totals,
// recent activity and the category breakdown are computed over all data.
func (l *Ledger) Dashboard(ctx context.Context, period report.Period) (Dashboard, error) {
	if err := checkPeriod(period, dashboardPeriods); err != nil {
		return Dashboard{}, err
	}

	d, err := l.load(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	today := l.Today()
	buckets, err := report.BucketByPeriod(d.incomes, d.expenses, period, today)
	if err != nil {
		return Dashboard{}, err
	}

	closures, err := l.Closures(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	budgets := make([]BudgetOverview, 0, len(d.budgets))
	for _, b := range d.budgets {
		budgets = append(budgets, BudgetOverview{Budget: b, Usage: BudgetUsage(b)})
	}

	return Dashboard{
		Period:     period,
		Reference:  today,
		Totals:     report.ComputeTotals(d.incomes, d.expenses, d.goals),
		Recent:     report.Recent(d.incomes, d.expenses, RecentEntries, d.resolve),
		Buckets:    buckets,
		Series:     report.ToSeries(buckets),
		Categories: report.SumByCategory(d.expenses, d.resolve),
		Budgets:    budgets,
		Closures:   closures,
	}, nil
}

// Report computes the report for the period containing today.
func (l *Ledger) Report(ctx context.Context, period report.Period) (Report, error) {
	if err := checkPeriod(period, reportPeriods); err != nil {
		return Report{}, err
	}

	d, err := l.load(ctx)
	if err != nil {
		return Report{}, err
	}

	today := l.Today()
	buckets, err := report.BucketByPeriod(d.incomes, d.expenses, period, today)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Period:     period,
		Reference:  today,
		Totals:     report.ComputeTotals(d.incomes, d.expenses, d.goals),
		Statistics: report.ComputeStatistics(d.expenses, d.budgets, d.resolve),
		Buckets:    buckets,
		Series:     report.ToSeries(buckets),
		Categories: report.SumByCategory(d.expenses, d.resolve),
	}, nil
}

// PreviewOFX parses a bank statement and returns the entries it would create.
// Match rules set the categories. Entries that were imported before are
// listed with the IDs of the existing incomes or expenses.
func (l *Ledger) PreviewOFX(ctx context.Context, r io.Reader) ([]importer.Preview, error) {
	previews, err := importer.ParseOFX(r)
	if err != nil {
		return nil, err
	}

	db := l.db.WithContext(ctx)

	var rules []models.MatchRule
	err = db.Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	importer.Apply(previews, rules)

	for i := range previews {
		var table models.Model = &models.Expense{}
		if previews[i].Type == models.CategoryTypeIncome {
			table = &models.Income{}
		}

		var ids []uuid.UUID
		err = db.Model(table).Where("import_hash = ?", previews[i].ImportHash).Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}

		previews[i].DuplicateIDs = append(make([]uuid.UUID, 0, len(ids)), ids...)
	}

	return previews, nil
}
