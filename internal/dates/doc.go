// Package dates annotates tables with the number of whole 365-day years
// elapsed between a date column and a reference instant.
//
// The year length is fixed at csvkit.DaysPerYear days; leap days are not
// corrected for. Day and year counts use floor division, so a date one
// day after the reference yields -1.
package dates
