package csvkit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	tables, err := loader.LoadDirectory("./data")
//	if errors.Is(err, csvkit.ErrNotFound) {
//	    // Handle missing directory
//	}
var (
	// ErrNotFound indicates the requested directory or file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrParse indicates delimited text or date values could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrColumnNotFound indicates a named column is absent from a table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError describes a failure to turn text into tabular values.
// Path is set for file-level failures, Column for value-level failures.
// Line is the 1-based line (or data row for column errors) when known.
type ParseError struct {
	Path   string
	Column string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("failed to parse")
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ParseError as ErrParse so callers need not type-assert.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrParse), errors.Is(err, ErrColumnNotFound):
		return ExitParseError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}
