package render

import "fmt"

// palette is the sequence of ANSI background color codes assigned to
// labels in order, cycling if there are more labels than colors. The
// codes themselves come from the original tool's fixed character->color
// table; here they're assigned by label index instead, since this
// renderer's alphabet isn't restricted to that table's specific
// characters.
var palette = []int{101, 104, 103, 42, 43, 106, 105, 41, 45, 100, 107, 102, 47, 44, 46, 35}

const ansiReset = "\033[0m"

// colorCode returns the ANSI background color code for label, cycling
// through palette.
func colorCode(label int) int {
	return palette[label%len(palette)]
}

// colorize wraps s in the ANSI escape sequence for label's assigned
// color.
func colorize(label int, s string) string {
	return fmt.Sprintf("\033[30;%dm%s%s", colorCode(label), s, ansiReset)
}
