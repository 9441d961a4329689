package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fintrack/internal/export"
	"fintrack/internal/view"
)

func (app *App) newExportCommand() *cobra.Command {
	var (
		month     int
		year      int
		formatStr string
		name      string
		dir       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a month's transactions and summary to csv, json or pdf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			if err := app.requireAuth(); err != nil {
				return err
			}
			month, year = defaultMonthYear(month, year)

			budget := view.NewBudget(app.client, app.logger, app.cfg.RequestTimeout)
			budget.SetMonth(month, year)

			spinner := app.renderer.Status("fetching month data")
			err = budget.Load(cmd.Context())
			spinner.Stop()
			if err != nil {
				return err
			}

			summary, _, _ := budget.Snapshot()
			rows, _ := budget.Data()

			report := export.Report{
				Title:        fmt.Sprintf("Finance Report %04d-%02d", year, month),
				GeneratedAt:  time.Now(),
				Month:        month,
				Year:         year,
				Summary:      &summary,
				Transactions: rows,
			}

			path, err := export.Write(report, format, name, dir)
			if err != nil {
				return err
			}
			app.renderer.Success("report written to %s", path)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().StringVarP(&formatStr, "format", "f", "csv", "Output format: csv, json or pdf")
	cmd.Flags().StringVarP(&name, "name", "n", "fintrack", "Base name for the output file (without extension)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory for the output file (default: current directory)")
	return cmd
}
