package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (app *App) newLoginCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate against the remote API and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			if password == "" {
				entered, err := pterm.DefaultInteractiveTextInput.
					WithMask("*").
					Show("Password")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = entered
			}

			if err := app.client.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			if err := app.session.Save(); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			app.renderer.Success("logged in as %s", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted interactively when omitted)")
	return cmd
}

func (app *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.session.Clear(); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			app.renderer.Success("logged out")
			return nil
		},
	}
}
