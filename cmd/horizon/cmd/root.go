package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "horizon",
	Short: "Horizon banking dashboard",
	Long: `Horizon is the web front end for the Horizon banking platform.

It renders account balances, transaction history, and fund transfers on
top of the remote banking API; no data is stored locally.

Use "horizon [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
