package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/cmd/cli/commands"
	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/internal/logging"
	"github.com/jakechorley/ward-roster/pkg/store"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wardroster",
		Short: "Ward Roster CLI - generate and export monthly nurse-duty rosters",
		Long:  `A CLI tool for generating monthly nurse-duty rosters from a ward configuration.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Audit != nil {
					app.Audit.Close()
				}
				if app.Logger != nil {
					_ = app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment suffix for the config file (e.g. test, prod)")

	rootCmd.AddCommand(commands.GenerateRosterCmd(appRef()))
	rootCmd.AddCommand(commands.ExportRosterCmd(appRef()))
	rootCmd.AddCommand(commands.ListStaffCmd(appRef()))
	rootCmd.AddCommand(commands.ValidateConfigCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns a placeholder *AppContext whose fields are populated by
// initApp before any RunE runs; command factories close over this pointer
// rather than a fresh value so PersistentPreRunE can fill it in after the
// commands are already registered.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger, config, and optional audit-log connection.
func initApp() error {
	runID := uuid.NewString()

	logger, err := logging.InitLogger(env, runID)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting ward-roster CLI", zap.String("env", env), zap.String("run_id", runID))

	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	var audit *store.DB
	if cfg.AuditDSN != "" {
		audit, err = store.NewDB(ctx, cfg.AuditDSN)
		if err != nil {
			return fmt.Errorf("failed to connect audit database: %w", err)
		}
		if err := audit.RunMigrations(ctx); err != nil {
			return fmt.Errorf("failed to run audit migrations: %w", err)
		}
	}

	a := appRef()
	a.Cfg = cfg
	a.Audit = audit
	a.Logger = logger
	a.Ctx = ctx
	a.RunID = runID

	return nil
}
