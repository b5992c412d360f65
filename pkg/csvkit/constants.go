package csvkit

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error (I/O failures land here)
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitNotFound     = 11 // Source directory or file does not exist
	ExitParseError   = 12 // CSV content or date values could not be parsed
)

const (
	// DefaultExtension is the file suffix the directory loader selects.
	DefaultExtension = ".csv"

	// DefaultDelimiter is the field separator used for reading and writing.
	DefaultDelimiter = ','

	// DifferenceColumn is the name of the column appended by the date annotator.
	DifferenceColumn = "difference_in_years"

	// DaysPerYear is the fixed year length used by the date annotator.
	// Leap days are not accounted for.
	DaysPerYear = 365

	// ConfirmationFormat is the line printed after a table has been written.
	// The spelling of "succesfully" is part of the output contract.
	ConfirmationFormat = "%s written succesfully at %s\n"
)
