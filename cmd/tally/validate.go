package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tally/pkg/units"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a units file for consistency",
	Long:  `Parses a units file and reports missing names, duplicates and zero divisors before they reach a running engine.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Units file is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("units")
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no units file given (pass a path or --units)")
	}

	conversions, err := units.LoadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%d conversion(s) defined:\n", len(conversions))
	for _, c := range conversions {
		fmt.Printf("  - %s\n", c.Name)
	}
	return nil
}
