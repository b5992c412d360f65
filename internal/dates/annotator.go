package dates

import (
	"fmt"
	"time"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

const secondsPerDay = 24 * 60 * 60

// CalculateYearsDifference converts column to UTC timestamps and sets the
// csvkit.DifferenceColumn column to the whole years between each date and
// now. The table is modified in place and returned.
//
// now is used for every row. Missing dates stay missing and get a missing
// difference. Integer cells are read as date text (20200101 is
// 2020-01-01), not as epoch offsets. On error the table is left unchanged.
func CalculateYearsDifference(t *csvkit.Table, column string, now time.Time) (*csvkit.Table, error) {
	col, ok := t.Column(column)
	if !ok {
		return nil, &csvkit.ParseError{Column: column, Err: csvkit.ErrColumnNotFound}
	}

	stamps, err := toTimestamps(col)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	diff := &csvkit.Column{
		Name:   csvkit.DifferenceColumn,
		Kind:   csvkit.KindInt,
		Values: make([]csvkit.Value, len(stamps)),
	}
	for i, v := range stamps {
		ts, ok := v.Time()
		if !ok {
			diff.Values[i] = csvkit.Null()
			continue
		}
		diff.Values[i] = csvkit.IntValue(YearsBetween(ts, now))
	}

	col.Kind = csvkit.KindTime
	col.Values = stamps
	if err := t.SetColumn(diff); err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", csvkit.DifferenceColumn, err)
	}
	return t, nil
}

// YearsBetween returns floor(floor((to - from) / 1 day) / 365).
func YearsBetween(from, to time.Time) int64 {
	return floorDiv(DaysBetween(from, to), csvkit.DaysPerYear)
}

// DaysBetween returns the whole days from from to to, rounded toward
// negative infinity. It does not go through time.Duration, so spans
// longer than ~292 years do not saturate.
func DaysBetween(from, to time.Time) int64 {
	secs := to.Unix() - from.Unix()
	if to.Nanosecond() < from.Nanosecond() {
		secs--
	}
	return floorDiv(secs, secondsPerDay)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// toTimestamps converts every cell of col to a UTC time value without
// touching col.
func toTimestamps(col *csvkit.Column) ([]csvkit.Value, error) {
	out := make([]csvkit.Value, len(col.Values))
	for i, v := range col.Values {
		switch v.Kind() {
		case csvkit.KindNull:
			out[i] = csvkit.Null()
		case csvkit.KindTime:
			ts, _ := v.Time()
			out[i] = csvkit.TimeValue(ts.UTC())
		case csvkit.KindString, csvkit.KindInt:
			ts, err := ParseTimestamp(v.String())
			if err != nil {
				return nil, &csvkit.ParseError{Column: col.Name, Line: i + 1, Err: err}
			}
			out[i] = csvkit.TimeValue(ts)
		default:
			return nil, &csvkit.ParseError{
				Column: col.Name,
				Line:   i + 1,
				Err:    fmt.Errorf("cannot convert %s value %q to a date", v.Kind(), v.String()),
			}
		}
	}
	return out, nil
}
