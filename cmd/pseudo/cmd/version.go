package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const cliVersion = "pseudo 0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, cliVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
