package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Tally is a two-mode calculator engine",
	Long:  `Tally evaluates arithmetic expressions and applies unit conversions, in your terminal or behind an HTTP/MCP interface.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("units", "", "Path to a units file with extra conversions")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable engine event logging")
}
