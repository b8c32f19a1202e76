package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListStaffCmd creates the listStaff command.
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List the staff loaded from the ward configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Cfg.Staff) == 0 {
				fmt.Println("No staff configured.")
				return nil
			}

			fmt.Printf("\n%d staff on %s:\n\n", len(app.Cfg.Staff), app.Cfg.Ward)
			for _, s := range app.Cfg.Staff {
				fmt.Printf("- %-20s %-4s annual_leave=%d\n", s.Name, s.Role, s.AnnualLeave)
				if s.ReqOff != "" {
					fmt.Printf("    req_off:    %s\n", s.ReqOff)
				}
				if s.FixedWork != "" {
					fmt.Printf("    fixed_work: %s\n", s.FixedWork)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
