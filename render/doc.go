// Package render turns a decoded solution grid into text: endpoints show
// their original character, free cells show a box-drawing glyph selected
// by direction type, cells within a row are separated by a single space.
//
// WithColor additionally wraps each cell's glyph in the ANSI background
// color the original tool used to make same-label paths visually
// distinct in a terminal. The escape codes are written whatever the
// destination is; Grid does not check whether it is writing to a terminal.
package render
