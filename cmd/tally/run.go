package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tally/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive calculator session",
	Long:  `Starts a calculator session reading key presses and commands from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		unitsPath, _ := cmd.Flags().GetString("units")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			UnitsPath: unitsPath,
			Debug:     debug,
		}
		if err := cli.RunSession(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
