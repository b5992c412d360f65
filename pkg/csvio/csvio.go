// Package csvio is the library entry point for loading a directory of CSV
// files, writing a table back to CSV and annotating a date column with
// elapsed years.
//
// The functions are stateless. Each call builds its own loader or writer
// on the OS filesystem, and errors are returned unhandled: see
// csvkit.ErrNotFound and csvkit.ErrParse.
package csvio

import (
	"time"

	"github.com/vvka-141/csvkit/internal/dates"
	"github.com/vvka-141/csvkit/internal/files/loader"
	"github.com/vvka-141/csvkit/internal/files/writer"
	"github.com/vvka-141/csvkit/pkg/csvkit"
)

// ReadCSVFiles reads every .csv file directly inside folderPath into a
// collection keyed by file name without extension.
func ReadCSVFiles(folderPath string) (csvkit.FileCollection, error) {
	return loader.NewLoader(nil).LoadDirectory(folderPath)
}

// WriteCSV writes t to folderPath/fileName without an index column,
// creating folderPath if needed, and prints a confirmation line to stdout.
func WriteCSV(t *csvkit.Table, folderPath, fileName string) error {
	return writer.NewWriter(nil).WriteCSV(t, folderPath, fileName)
}

// CalculateYearsDifference converts dateColumn to UTC timestamps and adds
// the difference_in_years column, measured against the current time.
// The table is modified in place and returned.
func CalculateYearsDifference(t *csvkit.Table, dateColumn string) (*csvkit.Table, error) {
	return CalculateYearsDifferenceAt(t, dateColumn, time.Now().UTC())
}

// CalculateYearsDifferenceAt is CalculateYearsDifference with an explicit
// reference instant.
func CalculateYearsDifferenceAt(t *csvkit.Table, dateColumn string, now time.Time) (*csvkit.Table, error) {
	return dates.CalculateYearsDifference(t, dateColumn, now)
}
