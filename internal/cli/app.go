// Package cli wires the command-line interface: configuration loading,
// session handling and one cobra command per screen.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/log"
	"fintrack/internal/render"
)

// App holds the dependencies shared by every command. They are built in
// the root command's PersistentPreRunE, after flags are parsed.
type App struct {
	rootCmd *cobra.Command
	version string

	configFile string

	cfg      *config.Config
	logger   *log.Logger
	session  *api.Session
	client   *api.Client
	renderer *render.Renderer
}

func NewApp(version string) *App {
	app := &App{version: version}

	rootCmd := &cobra.Command{
		Use:           "fintrack",
		Short:         "Personal finance tracker CLI",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&app.configFile, "config-file", "C", "", "Path to a TOML configuration file")

	rootCmd.AddCommand(
		app.newLoginCommand(),
		app.newLogoutCommand(),
		app.newDashboardCommand(),
		app.newTransactionsCommand(),
		app.newBudgetCommand(),
		app.newCategoriesCommand(),
		app.newExportCommand(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *App) Execute() error {
	return app.rootCmd.Execute()
}

// setup loads configuration and builds the shared dependencies. The .env
// file is optional; missing is not an error.
func (app *App) setup() error {
	_ = godotenv.Load()

	cfg := config.Load()
	if app.configFile != "" {
		if err := cfg.MergeFile(app.configFile); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg

	logCfg := log.DefaultConfig()
	logCfg.Level = parseLevel(cfg.LogLevel)
	app.logger = log.New(logCfg)
	log.SetDefault(app.logger)

	session, err := api.LoadSession(cfg.SessionFile)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	app.session = session

	client, err := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, session, app.logger)
	if err != nil {
		return err
	}
	app.client = client
	app.renderer = render.NewRenderer()
	return nil
}

// requireAuth fails fast before a command fires requests that would all
// come back 401.
func (app *App) requireAuth() error {
	if !app.session.Authenticated() {
		return fmt.Errorf("not logged in (or session expired): run 'fintrack login <username>' first")
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
