package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tally"
	mcpAdapter "github.com/aretw0/tally/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the calculator as MCP tools (calculate, convert, get_layout, list_operations) for agent hosts.`,
	Run: func(cmd *cobra.Command, args []string) {
		unitsPath, _ := cmd.Flags().GetString("units")

		engineOpts := []tally.Option{}
		if unitsPath != "" {
			engineOpts = append(engineOpts, tally.WithUnitsFile(unitsPath))
		}

		engine, err := tally.New(engineOpts...)
		if err != nil {
			fmt.Printf("Error initializing tally: %v\n", err)
			os.Exit(1)
		}

		server := mcpAdapter.NewServer(engine)
		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
