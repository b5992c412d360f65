package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

// TableSummary describes one loaded table.
type TableSummary struct {
	Name    string
	Rows    int
	Columns []string
}

var summaryHeaders = []string{"TABLE", "ROWS", "COLUMNS"}

// Summarize lists the tables of a collection in key order.
func Summarize(tables csvkit.FileCollection) []TableSummary {
	summaries := make([]TableSummary, 0, len(tables))
	for _, name := range tables.Keys() {
		t := tables[name]
		summaries = append(summaries, TableSummary{
			Name:    name,
			Rows:    t.NumRows(),
			Columns: t.ColumnNames(),
		})
	}
	return summaries
}

func (s TableSummary) cells() []string {
	return []string{s.Name, strconv.Itoa(s.Rows), strings.Join(s.Columns, ", ")}
}

// RenderSummary writes summaries to w, styled or as tab-separated lines.
func RenderSummary(w io.Writer, summaries []TableSummary, mode Mode) error {
	if mode == ModeStyled {
		_, err := fmt.Fprintln(w, renderStyled(summaries))
		return err
	}

	if _, err := fmt.Fprintln(w, strings.Join(summaryHeaders, "\t")); err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintln(w, strings.Join(s.cells(), "\t")); err != nil {
			return err
		}
	}
	return nil
}

func renderStyled(summaries []TableSummary) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(summaryHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 1:
				return NumberCellStyle
			case col == 2:
				return MutedCellStyle
			default:
				return CellStyle
			}
		})

	for _, s := range summaries {
		t.Row(s.cells()...)
	}
	return t.Render()
}
