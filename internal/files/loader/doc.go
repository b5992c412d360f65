// Package loader reads every CSV file directly inside a directory into a
// csvkit.FileCollection keyed by file stem.
package loader
