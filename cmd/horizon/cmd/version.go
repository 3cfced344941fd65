package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at release time via -ldflags.
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the Horizon version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Horizon v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
