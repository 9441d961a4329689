package cli

import (
	"time"

	"github.com/spf13/cobra"

	"fintrack/internal/core"
	"fintrack/internal/store"
	"fintrack/internal/view"
)

func (app *App) newBudgetCommand() *cobra.Command {
	var (
		month   int
		year    int
		offline bool
	)

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show the monthly budget overview, recomputed from the month's transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year = defaultMonthYear(month, year)

			if offline {
				summary, err := app.offlineSummary(cmd, month, year)
				if err != nil {
					return err
				}
				app.renderSummary(cmd, summary, month, year)
				return nil
			}

			if err := app.requireAuth(); err != nil {
				return err
			}

			budget := view.NewBudget(app.client, app.logger, app.cfg.RequestTimeout)
			budget.SetMonth(month, year)

			spinner := app.renderer.Status("fetching budget data")
			err := budget.Load(cmd.Context())
			spinner.Stop()
			if err != nil {
				return err
			}

			summary, _, _ := budget.Snapshot()
			app.renderSummary(cmd, summary, month, year)

			app.saveSnapshot(cmd, budget)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Recompute from the local snapshot instead of the API")
	return cmd
}

// saveSnapshot persists the freshly fetched month for offline use. The
// budget view is the one place that already holds a whole month, so it is
// the snapshot writer; failures are reported but never fail the command.
func (app *App) saveSnapshot(cmd *cobra.Command, budget *view.Budget) {
	rows, budgetRow := budget.Data()

	cats, err := app.client.ListCategories(cmd.Context(), "")
	if err != nil {
		app.renderer.Warning("snapshot skipped: %v", err)
		return
	}

	snapshots, err := store.NewSnapshotStore(app.cfg.SnapshotDBPath, app.logger)
	if err != nil {
		app.renderer.Warning("snapshot skipped: %v", err)
		return
	}
	defer snapshots.Close()

	snap := store.Snapshot{
		Transactions: rows,
		Categories:   cats,
		TakenAt:      time.Now(),
	}
	if budgetRow != nil {
		snap.Budgets = []core.Budget{*budgetRow}
	}
	if err := snapshots.Save(cmd.Context(), snap); err != nil {
		app.renderer.Warning("snapshot skipped: %v", err)
	}
}
