package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/ward-roster/internal/config"
)

// ValidateConfigCmd creates the validateConfig command. It re-validates the
// already-loaded config (PersistentPreRunE in main would have already
// failed loudly if the file itself didn't parse) and reports the resolved
// holiday set, which is the part most likely to hide a malformed rrule.
func ValidateConfigCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateConfig",
		Short: "Validate the ward configuration and print the resolved holiday set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(app.Cfg); err != nil {
				return err
			}

			holidays, err := app.Cfg.ResolvedHolidays()
			if err != nil {
				return err
			}

			fmt.Printf("Config for %s (%d-%02d) is valid.\n", app.Cfg.Ward, app.Cfg.Year, app.Cfg.Month)
			fmt.Printf("%d staff, %d resolved holiday day(s).\n", len(app.Cfg.Staff), len(holidays))
			for day := range holidays {
				fmt.Printf("  - day %d\n", day)
			}

			return nil
		},
	}
}
