package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionString() string {
	return fmt.Sprintf("csvkit %s (%s, %s) %s/%s", version, commit, date, runtime.GOOS, runtime.GOARCH)
}

// printVersionInfo prints the machine-parseable version line to stdout.
func printVersionInfo() {
	fmt.Println(versionString())
}
