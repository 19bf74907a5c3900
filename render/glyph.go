package render

import "github.com/flowsat/numberlink/geometry"

// glyph maps each direction type to the box-drawing character a free cell
// of that type prints.
var glyph = map[geometry.DirType]rune{
	geometry.LR: '─',
	geometry.TB: '│',
	geometry.TL: '┘',
	geometry.TR: '└',
	geometry.BL: '┐',
	geometry.BR: '┌',
}
