package ledger_test

import (
	"context"
	"testing"

	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestTransactionDatabaseClosed verifies that failures to begin a
// transaction are reported as general errors.
func (suite *TestSuiteStandard) TestTransactionDatabaseClosed() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()

	ctx := context.Background()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"SubmitExpense", func() error {
			_, err := suite.ledger.SubmitExpense(ctx, ledger.Create(), models.Expense{
				Description: "Groceries",
				Amount:      decimal.NewFromFloat(12.5),
				Category:    "groceries",
				Date:        mustDate(suite.T(), "2024-03-10"),
			})
			return err
		}},
		{"CloseMonth", func() error {
			_, err := suite.ledger.CloseMonth(ctx)
			return err
		}},
		{"Import", func() error {
			_, err := suite.ledger.Import(ctx, ledger.Snapshot{})
			return err
		}},
		{"Cleanup", func() error {
			return suite.ledger.Cleanup(ctx)
		}},
		{"Dashboard", func() error {
			_, err := suite.ledger.Dashboard(ctx, report.PeriodMonth)
			return err
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			assert.ErrorIs(t, err, models.ErrGeneral)
			assert.NotContains(t, err.Error(), "sql:")
		})
	}
}
