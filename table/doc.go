// Package table prints uniform records as an aligned text table.
//
// Several rows render as a header, a dash separator and one line per row,
// every column padded to its widest cell. A single row renders vertically
// as "field = value" lines with right-aligned field names.
package table
