package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fintrack/internal/chart"
	"fintrack/internal/core"
	"fintrack/internal/report"
	"fintrack/internal/store"
	"fintrack/internal/view"
)

func defaultMonthYear(month, year int) (int, int) {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func (app *App) newDashboardCommand() *cobra.Command {
	var (
		month   int
		year    int
		offline bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the monthly summary with budget and category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year = defaultMonthYear(month, year)

			var summary core.Summary
			if offline {
				var err error
				if summary, err = app.offlineSummary(cmd, month, year); err != nil {
					return err
				}
			} else {
				if err := app.requireAuth(); err != nil {
					return err
				}
				dashboard := view.NewDashboard(app.client, app.logger, app.cfg.RequestTimeout)
				dashboard.SetMonth(month, year)

				spinner := app.renderer.Status("fetching summary")
				err := dashboard.Load(cmd.Context())
				spinner.Stop()
				if err != nil {
					return err
				}
				summary, _, _ = dashboard.Snapshot()
			}

			app.renderSummary(cmd, summary, month, year)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Recompute from the local snapshot instead of the API")
	return cmd
}

// offlineSummary rebuilds the month's summary from the snapshot store.
func (app *App) offlineSummary(cmd *cobra.Command, month, year int) (core.Summary, error) {
	snapshots, err := store.NewSnapshotStore(app.cfg.SnapshotDBPath, app.logger)
	if err != nil {
		return core.Summary{}, err
	}
	defer snapshots.Close()

	takenAt, ok, err := snapshots.TakenAt(cmd.Context())
	if err != nil {
		return core.Summary{}, err
	}
	if !ok {
		return core.Summary{}, fmt.Errorf("no offline snapshot yet: run 'fintrack budget' while online first")
	}

	rows, err := snapshots.Transactions(cmd.Context())
	if err != nil {
		return core.Summary{}, err
	}
	var monthRows []core.Transaction
	for _, t := range rows {
		if int(t.Date.Month()) == month && t.Date.Year() == year {
			monthRows = append(monthRows, t)
		}
	}

	budget, err := snapshots.BudgetForMonth(cmd.Context(), month, year)
	if err != nil {
		return core.Summary{}, err
	}

	app.renderer.StaleNotice(takenAt.Format("2006-01-02 15:04"))
	return report.Summarize(monthRows, budget), nil
}

// renderSummary prints the panel and charts shared by the dashboard and
// budget commands.
func (app *App) renderSummary(cmd *cobra.Command, summary core.Summary, month, year int) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, app.renderer.SummaryPanel(summary, month, year))
	fmt.Fprintln(out, app.renderer.BarChart("Income vs Expenses", chart.ToBarSeries(summary, chart.IncomeVsExpenses)))
	if summary.BudgetSet {
		fmt.Fprintln(out, app.renderer.BarChart("Budget vs Expenses", chart.ToBarSeries(summary, chart.BudgetVsExpenses)))
	}
	fmt.Fprintln(out, app.renderer.PieTable(chart.ToPieSeries(summary.ExpensesByCategory)))
}
