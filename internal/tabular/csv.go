package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

var errNoColumns = errors.New("no columns to parse from file")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options controls the text format.
type Options struct {
	// Comma is the field delimiter. Zero means csvkit.DefaultDelimiter.
	Comma rune
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return csvkit.DefaultDelimiter
	}
	return o.Comma
}

// Decode parses delimited text with a header row into a table.
// source names the input in returned errors, which are *csvkit.ParseError.
func Decode(source string, data []byte, opts Options) (*csvkit.Table, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.Comma = opts.comma()
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, &csvkit.ParseError{Path: source, Err: errNoColumns}
	}
	if err != nil {
		return nil, wrapReadError(source, err)
	}
	names := uniqueNames(header)

	cells := make([][]string, len(names))
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapReadError(source, err)
		}
		if len(record) > len(names) {
			line, _ := r.FieldPos(0)
			return nil, &csvkit.ParseError{
				Path: source,
				Line: line,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(names), len(record)),
			}
		}
		for i := range names {
			if i < len(record) {
				cells[i] = append(cells[i], record[i])
			} else {
				cells[i] = append(cells[i], "")
			}
		}
	}

	columns := make([]*csvkit.Column, len(names))
	for i, name := range names {
		columns[i] = InferColumn(name, cells[i])
	}

	t, err := csvkit.NewTable(columns...)
	if err != nil {
		return nil, &csvkit.ParseError{Path: source, Err: err}
	}
	return t, nil
}

func wrapReadError(source string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &csvkit.ParseError{Path: source, Line: csvErr.Line, Err: csvErr.Err}
	}
	return &csvkit.ParseError{Path: source, Err: err}
}

// uniqueNames de-duplicates header names as name, name.1, name.2 and
// names blank headers "Unnamed: <index>".
func uniqueNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]struct{}, len(header))
	counts := make(map[string]int, len(header))

	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		candidate := name
		for {
			if _, taken := used[candidate]; !taken {
				break
			}
			counts[name]++
			candidate = name + "." + strconv.Itoa(counts[name])
		}
		used[candidate] = struct{}{}
		names[i] = candidate
	}
	return names
}

// Encode renders t as delimited text with a header row and no index column.
func Encode(t *csvkit.Table, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = opts.comma()

	if err := writeRecord(w, &buf, t.ColumnNames()); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	columns := t.Columns()
	record := make([]string, len(columns))
	for row := 0; row < t.NumRows(); row++ {
		for i, col := range columns {
			record[i] = col.Values[row].String()
		}
		if err := writeRecord(w, &buf, record); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRecord writes record through w. A record holding one empty field
// is written as a quoted empty string: csv.Writer would emit a blank
// line, which csv.Reader skips.
func writeRecord(w *csv.Writer, buf *bytes.Buffer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	buf.WriteString("\"\"\n")
	return nil
}
