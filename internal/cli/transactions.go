package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fintrack/internal/api"
	"fintrack/internal/core"
	"fintrack/internal/store"
	"fintrack/internal/view"
)

func (app *App) newListing() *view.Listing {
	return view.NewListing(app.client, app.logger, app.cfg.PageSize, app.cfg.RequestTimeout, app.cfg.CategoryCacheTTL)
}

func (app *App) newTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List and mutate transactions",
	}
	cmd.AddCommand(
		app.newTransactionsListCommand(),
		app.newTransactionsAddCommand(),
		app.newTransactionsEditCommand(),
		app.newTransactionsDeleteCommand(),
	)
	return cmd
}

func (app *App) newTransactionsListCommand() *cobra.Command {
	var (
		pageNum int
		filters api.Filters
		offline bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a filtered, paginated transaction listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if offline {
				return app.listOffline(cmd)
			}
			if err := app.requireAuth(); err != nil {
				return err
			}

			listing := app.newListing()
			listing.SetFilters(filters)

			spinner := app.renderer.Status("fetching transactions")
			err := listing.Load(cmd.Context())
			if err == nil && pageNum > 1 && listing.GoToPage(pageNum) {
				err = listing.Load(cmd.Context())
			}
			spinner.Stop()
			if err != nil {
				return err
			}

			rows, count, _, _ := listing.Snapshot()
			fmt.Fprint(cmd.OutOrStdout(), app.renderer.TransactionsTable(rows, listing.Page(), listing.TotalPages(), count))
			return nil
		},
	}

	cmd.Flags().IntVar(&pageNum, "page", 1, "Page to display")
	cmd.Flags().StringVar(&filters.StartDate, "start-date", "", "Only transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.EndDate, "end-date", "", "Only transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.Category, "category", "", "Only transactions in this category id")
	cmd.Flags().StringVar(&filters.MinAmount, "min-amount", "", "Only transactions of at least this amount")
	cmd.Flags().StringVar(&filters.MaxAmount, "max-amount", "", "Only transactions of at most this amount")
	cmd.Flags().BoolVar(&offline, "offline", false, "Read from the local snapshot instead of the API")
	return cmd
}

func (app *App) listOffline(cmd *cobra.Command) error {
	snapshots, err := store.NewSnapshotStore(app.cfg.SnapshotDBPath, app.logger)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	takenAt, ok, err := snapshots.TakenAt(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no offline snapshot yet: run 'fintrack budget' while online first")
	}

	rows, err := snapshots.Transactions(cmd.Context())
	if err != nil {
		return err
	}
	app.renderer.StaleNotice(takenAt.Format("2006-01-02 15:04"))
	fmt.Fprint(cmd.OutOrStdout(), app.renderer.TransactionsTable(rows, 1, 1, len(rows)))
	return nil
}

func (app *App) newTransactionsAddCommand() *cobra.Command {
	var draft core.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}
			created, err := app.newListing().Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			app.renderer.Success("transaction %d recorded (%s %s)", created.ID, created.Type, created.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Amount, "amount", "", "Amount, e.g. 12.34 (required)")
	cmd.Flags().Int64Var(&draft.CategoryID, "category", 0, "Category id (required; determines income or expense)")
	cmd.Flags().StringVar(&draft.Date, "date", "", "Date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Description (required)")
	cmd.Flags().StringVar(&draft.Vendor, "vendor", "", "Vendor")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("description")
	return cmd
}

func (app *App) newTransactionsEditCommand() *cobra.Command {
	var draft core.Draft

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an existing transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			listing := app.newListing()
			existing, err := listing.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			// Flags left unset keep the stored values.
			if !cmd.Flags().Changed("amount") {
				draft.Amount = existing.Amount.String()
			}
			if !cmd.Flags().Changed("category") {
				draft.CategoryID = existing.CategoryID
			}
			if !cmd.Flags().Changed("date") {
				draft.Date = existing.Date.String()
			}
			if !cmd.Flags().Changed("description") {
				draft.Description = existing.Description
			}
			if !cmd.Flags().Changed("vendor") {
				draft.Vendor = existing.Vendor
			}

			updated, err := listing.Update(cmd.Context(), id, draft)
			if err != nil {
				return err
			}
			app.renderer.Success("transaction %d updated (%s %s)", updated.ID, updated.Type, updated.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Amount, "amount", "", "New amount")
	cmd.Flags().Int64Var(&draft.CategoryID, "category", 0, "New category id")
	cmd.Flags().StringVar(&draft.Date, "date", "", "New date YYYY-MM-DD")
	cmd.Flags().StringVar(&draft.Description, "description", "", "New description")
	cmd.Flags().StringVar(&draft.Vendor, "vendor", "", "New vendor")
	return cmd
}

func (app *App) newTransactionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}
			if err := app.newListing().Delete(cmd.Context(), id); err != nil {
				return err
			}
			app.renderer.Success("transaction %d deleted", id)
			return nil
		},
	}
}

func (app *App) newCategoriesCommand() *cobra.Command {
	var (
		offline bool
		typ     string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category reference list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catType := core.TransactionType(typ)
			if typ != "" && !catType.Valid() {
				return fmt.Errorf("invalid category type %q (want income or expense)", typ)
			}

			var cats []core.Category
			if offline {
				snapshots, err := store.NewSnapshotStore(app.cfg.SnapshotDBPath, app.logger)
				if err != nil {
					return err
				}
				defer snapshots.Close()
				if cats, err = snapshots.Categories(cmd.Context()); err != nil {
					return err
				}
				if catType != "" {
					kept := cats[:0]
					for _, c := range cats {
						if c.Type == catType {
							kept = append(kept, c)
						}
					}
					cats = kept
				}
			} else {
				if err := app.requireAuth(); err != nil {
					return err
				}
				var err error
				if cats, err = app.client.ListCategories(cmd.Context(), catType); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), app.renderer.CategoriesTable(cats))
			return nil
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "Read from the local snapshot instead of the API")
	cmd.Flags().StringVar(&typ, "type", "", "Only categories of this type: income or expense")
	return cmd
}
