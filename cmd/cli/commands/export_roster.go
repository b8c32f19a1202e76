package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/roster"
	"github.com/jakechorley/ward-roster/pkg/export"
)

// ExportRosterCmd creates the exportRoster command.
func ExportRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportRoster [path]",
		Short: "Generate a roster and write it to an xlsx workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.Cfg.ExportPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no export path given: pass one as an argument or set exportPath in the config")
			}

			in, err := app.Cfg.ToInput()
			if err != nil {
				return fmt.Errorf("failed to build roster input: %w", err)
			}

			opts := roster.DefaultSimOptions()
			if app.Cfg.Seed != 0 {
				opts.Seed = app.Cfg.Seed
			}
			if app.Cfg.MaxAttempts > 0 {
				opts.MaxAttempts = app.Cfg.MaxAttempts
			}

			res := roster.Simulate(in, opts)

			if err := export.EnsureDir(path); err != nil {
				return fmt.Errorf("failed to prepare export directory: %w", err)
			}
			if err := export.ToXLSX(res, path); err != nil {
				return fmt.Errorf("failed to export roster: %w", err)
			}

			app.Logger.Info("roster exported", zap.String("path", path), zap.Float64("total_score", res.Score.Total))
			fmt.Printf("Wrote %s (score %.0f)\n", path, res.Score.Total)

			return nil
		},
	}

	return cmd
}
