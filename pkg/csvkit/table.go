package csvkit

import (
	"fmt"
	"sort"
)

// Column is a named, homogeneous sequence of values.
// Kind is the inferred type of the non-null cells.
type Column struct {
	Name   string
	Kind   Kind
	Values []Value
}

// Len returns the number of cells in the column.
func (c *Column) Len() int { return len(c.Values) }

// Table is an ordered set of equal-length named columns.
// A Table carries no identity beyond its pointer; callers own it.
type Table struct {
	columns []*Column
}

// NewTable builds a table from columns, rejecting duplicate names
// and columns of unequal length.
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{}
	for _, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("column cannot be nil")
		}
		if _, exists := t.Column(col.Name); exists {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		if err := t.SetColumn(col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NumRows returns the row count (zero for a table without columns).
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.columns) }

// Columns returns the columns in order. The slice is a copy; the
// columns are shared.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by exact name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, col := range t.columns {
		if col.Name == name {
			return col, true
		}
	}
	return nil, false
}

// SetColumn replaces the column with the same name in place, or appends
// col when no such column exists. The length must match NumRows unless
// the table is empty.
func (t *Table) SetColumn(col *Column) error {
	if col == nil {
		return fmt.Errorf("column cannot be nil")
	}
	if len(t.columns) > 0 && col.Len() != t.NumRows() {
		return fmt.Errorf("column %q has %d values, table has %d rows", col.Name, col.Len(), t.NumRows())
	}
	for i, existing := range t.columns {
		if existing.Name == col.Name {
			t.columns[i] = col
			return nil
		}
	}
	t.columns = append(t.columns, col)
	return nil
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for j, col := range t.columns {
		row[j] = col.Values[i]
	}
	return row
}

// FileCollection maps a file stem to the table parsed from that file.
type FileCollection map[string]*Table

// Keys returns the collection keys in sorted order.
func (fc FileCollection) Keys() []string {
	keys := make([]string, 0, len(fc))
	for k := range fc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
