package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/csvkit/internal/files/loader"
	"github.com/vvka-141/csvkit/internal/tui"
)

var loadCmd = &cobra.Command{
	Use:   "load <directory>",
	Short: "Load every CSV file in a directory and summarize it",
	Long: `Load reads each CSV file directly inside the directory (subdirectories
are not searched) and prints one line per table: its name (the file name
without extension), row count and column names.

Output is a styled table on a terminal and tab-separated text otherwise.

Examples:
  csvkit load ./data
  csvkit load ./data --plain | cut -f1`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

type loadFlagValues struct {
	plain bool
}

var loadFlags loadFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().BoolVar(&loadFlags.plain, "plain", false, "Always print tab-separated output")
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	l := loader.NewLoader(newLogger(cmd)).
		WithExtension(cfg.Extension).
		WithDelimiter(cfg.Comma())

	tables, err := l.LoadDirectory(args[0])
	if err != nil {
		return err
	}

	mode := tui.DetectMode()
	if loadFlags.plain {
		mode = tui.ModePlain
	}
	return tui.RenderSummary(cmd.OutOrStdout(), tui.Summarize(tables), mode)
}
