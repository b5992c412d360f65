// Package tabular converts between delimited text and csvkit tables.
//
// Decoding infers one kind per column from its non-missing cells, trying
// int, then float, then bool, and falling back to string. Cells matching
// the usual missing-value markers ("", "NA", "NaN", "null", ...) decode
// as null. Encoding writes a header row followed by one record per row,
// with standard quoting and no row-index column.
package tabular
