package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csvkit",
	Short: "Load, annotate and write CSV tables",
	Long: `csvkit loads every CSV file in a directory into typed tables, adds an
elapsed-years column computed from a date column, and writes tables back
to CSV.

Settings are read from csvkit.yaml in the working directory (or --config),
then overridden by CSVKIT_EXTENSION, CSVKIT_DELIMITER and CSVKIT_OUTPUT_DIR.
A .env file in the working directory is loaded first.

Exit Codes:
  0  - Success
  1  - General error (including I/O failures)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Directory or file not found
  12 - CSV content or date values could not be parsed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to a csvkit.yaml file (default: ./csvkit.yaml if present)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
