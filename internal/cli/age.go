package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/csvkit/internal/dates"
	"github.com/vvka-141/csvkit/internal/files/filesystem"
	"github.com/vvka-141/csvkit/internal/files/loader"
	"github.com/vvka-141/csvkit/internal/files/writer"
)

var ageCmd = &cobra.Command{
	Use:   "age <file>",
	Short: "Add a difference_in_years column computed from a date column",
	Long: `Age reads one CSV file, converts the --column values to UTC timestamps,
adds difference_in_years (whole 365-day years between each date and now,
rounded down) and writes the result.

Dates without a zone offset are taken as UTC. Dates in the future give
negative values.

The output goes to --out-dir (default: output_dir from the config, else the
input file's directory) under --out-name (default: <name>_age<ext>).

Examples:
  csvkit age ./data/staff.csv --column hired
  csvkit age ./data/staff.csv --column hired --out-dir ./out --out-name staff.csv
  csvkit age ./data/staff.csv --column hired --now 2024-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: runAge,
}

type ageFlagValues struct {
	column  string
	outDir  string
	outName string
	now     string
}

var ageFlags ageFlagValues

func init() {
	rootCmd.AddCommand(ageCmd)

	ageCmd.Flags().StringVarP(&ageFlags.column, "column", "c", "", "Name of the date column (required)")
	ageCmd.Flags().StringVarP(&ageFlags.outDir, "out-dir", "o", "", "Directory to write the result to (created if missing)")
	ageCmd.Flags().StringVar(&ageFlags.outName, "out-name", "", "File name of the result")
	ageCmd.Flags().StringVar(&ageFlags.now, "now", "", "Reference time instead of the current time (e.g. 2024-01-01T00:00:00Z)")
	_ = ageCmd.MarkFlagRequired("column")
}

func runAge(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	source := args[0]

	now := time.Now().UTC()
	if ageFlags.now != "" {
		now, err = dates.ParseTimestamp(ageFlags.now)
		if err != nil {
			return fmt.Errorf("invalid argument %q for \"--now\": %w", ageFlags.now, err)
		}
	}

	table, err := loader.NewLoader(logger).
		WithDelimiter(cfg.Comma()).
		LoadFile(source)
	if err != nil {
		return err
	}

	if _, err := dates.CalculateYearsDifference(table, ageFlags.column, now); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	logger.Info("Annotated %d row(s) of %s relative to %s", table.NumRows(), source, now.Format(time.RFC3339))

	outDir := ageFlags.outDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		outDir = filepath.Dir(source)
	}
	outName := ageFlags.outName
	if outName == "" {
		outName = defaultAgeOutputName(source)
	}

	w := writer.NewWriterWithFS(filesystem.NewOSFileSystem(), cmd.OutOrStdout(), logger).
		WithDelimiter(cfg.Comma())
	return w.WriteCSV(table, outDir, outName)
}

// defaultAgeOutputName turns "staff.csv" into "staff_age.csv".
func defaultAgeOutputName(source string) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_age" + ext
}
