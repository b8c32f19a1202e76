package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/roster"
	"github.com/jakechorley/ward-roster/pkg/store"
)

// GenerateRosterCmd creates the generateRoster command.
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRoster",
		Short: "Generate a monthly roster from the ward configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			maxAttempts, _ := cmd.Flags().GetInt("max-attempts")

			in, err := app.Cfg.ToInput()
			if err != nil {
				return fmt.Errorf("failed to build roster input: %w", err)
			}

			opts := roster.DefaultSimOptions()
			if seed != 0 {
				opts.Seed = seed
			} else if app.Cfg.Seed != 0 {
				opts.Seed = app.Cfg.Seed
			}
			if maxAttempts > 0 {
				opts.MaxAttempts = maxAttempts
			} else if app.Cfg.MaxAttempts > 0 {
				opts.MaxAttempts = app.Cfg.MaxAttempts
			}

			app.Logger.Info("generating roster",
				zap.String("ward", app.Cfg.Ward),
				zap.Int("year", app.Cfg.Year),
				zap.Int("month", app.Cfg.Month),
				zap.Int64("seed", opts.Seed),
				zap.Int("max_attempts", opts.MaxAttempts))

			res := roster.Simulate(in, opts)

			app.Logger.Info("roster generated",
				zap.Float64("total_score", res.Score.Total),
				zap.Int("holes", res.Score.Holes),
				zap.Int("off_diff", res.Score.OffDiff))

			printRoster(res)

			if app.Audit != nil {
				err := app.Audit.RecordRun(app.Ctx, store.RunRecord{
					RunID:       app.RunID,
					Ward:        app.Cfg.Ward,
					Year:        app.Cfg.Year,
					Month:       app.Cfg.Month,
					Seed:        opts.Seed,
					MaxAttempts: opts.MaxAttempts,
					Score:       res.Score,
				})
				if err != nil {
					app.Logger.Warn("failed to record audit entry", zap.Error(err))
				}
			}

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Override the base Monte-Carlo seed")
	cmd.Flags().Int("max-attempts", 0, "Override the maximum simulation attempts")

	return cmd
}

func printRoster(res roster.Result) {
	fmt.Printf("\nScore: total=%.0f holes=%d off_diff=%d singles=%d longs=%d\n\n",
		res.Score.Total, res.Score.Holes, res.Score.OffDiff, res.Score.Singles, res.Score.Longs)

	names := make([]string, 0, len(res.Matrix))
	for name := range res.Matrix {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		row := res.Matrix[name]
		fmt.Printf("%-12s", name)
		for d := 1; d <= res.LastDay; d++ {
			fmt.Printf(" %-3s", row[d])
		}
		fmt.Println()
	}
}
