package dates

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTimestamp parses s in any of the common date and timestamp
// layouts. Text without a zone offset is read as UTC; text with an offset
// is converted to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
	}
	return t.UTC(), nil
}
