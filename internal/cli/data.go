package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) closeMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close-month",
		Short: "Carry the open expenses of the current month over to the next month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.openLedger(true)
			if err != nil {
				return err
			}
			defer b.release()

			result, err := b.ledger.CloseMonth(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Closed %s, carried over %d open expenses\n", result.Closure.Month, len(result.Transferred))
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all data as JSON, to stdout if no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openLedger(false)
			if err != nil {
				return err
			}
			defer b.release()

			snapshot, err := b.ledger.Export(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("creating export file failed: %w", err)
				}
				defer f.Close()
				out = f
			}

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(snapshot); err != nil {
				return fmt.Errorf("writing export failed: %w", err)
			}

			if len(args) == 1 {
				log.Info().Str("file", args[0]).Msg("Exported data")
			}
			return nil
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("import deletes all existing data, confirm with --yes")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file failed: %w", err)
			}
			defer f.Close()

			snapshot, err := readSnapshot(f)
			if err != nil {
				return err
			}

			b, err := a.openLedger(true)
			if err != nil {
				return err
			}
			defer b.release()

			summary, err := b.ledger.Import(cmd.Context(), snapshot)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d incomes, %d expenses, %d budgets, %d goals, %d debts and %d repayments\n",
				summary.Incomes, summary.Expenses, summary.Budgets, summary.Goals, summary.Debts, summary.Repayments)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm that all existing data is replaced")
	return cmd
}

func readSnapshot(r io.Reader) (ledger.Snapshot, error) {
	var snapshot ledger.Snapshot

	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return ledger.Snapshot{}, fmt.Errorf("the import file is not a valid export: %w", err)
	}

	return snapshot, nil
}
