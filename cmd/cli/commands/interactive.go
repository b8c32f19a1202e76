package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates a REPL that re-dispatches its sibling commands
// without reloading the config/audit connection between runs.
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (load config once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple roster commands
without re-parsing the ward configuration each time.

Type 'help' to see available commands, 'exit' or 'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nStarting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			rootCmd := cmd.Parent()
			siblings := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					siblings[subCmd.Name()] = subCmd
				}
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts, err := parseCommandLine(line)
				if err != nil {
					fmt.Printf("error parsing command: %v\n\n", err)
					continue
				}
				if len(parts) == 0 {
					continue
				}
				cmdName, cmdArgs := parts[0], parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("goodbye")
					return nil
				}
				if cmdName == "help" {
					printInteractiveHelp(siblings)
					continue
				}

				targetCmd, exists := siblings[cmdName]
				if !exists {
					fmt.Printf("unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					_ = flag.Value.Set(flag.DefValue)
				})

				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("error parsing flags: %v\n\n", err)
					continue
				}
				cmdArgs = targetCmd.Flags().Args()

				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("error: %v\n\n", err)
					continue
				}

				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			return scanner.Err()
		},
	}
}

func printInteractiveHelp(cmds map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	for _, name := range names {
		c := cmds[name]
		fmt.Printf("  %-30s %s\n", c.Use, c.Short)
	}
	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}

// parseCommandLine splits a command line into arguments, respecting single
// and double quotes.
func parseCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inQuote rune

	for i, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}

		if i == len(line)-1 && inQuote != 0 {
			return nil, fmt.Errorf("unclosed quote: %c", inQuote)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args, nil
}
