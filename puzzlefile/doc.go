// Package puzzlefile parses the UTF-8 text puzzle format into a grid.Grid:
// one line per row, each row either a bare sequence of single characters
// or a space-separated sequence of tokens, alphanumeric characters marking
// flow endpoints and everything else marking free cells.
//
// Width is the minimum column count across all rows; rows wider than that
// are truncated rather than rejected, since trailing alignment padding is
// common in hand-written puzzle files.
package puzzlefile
