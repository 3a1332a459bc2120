package util

import (
	"golang.org/x/term"
)

// TerminalWidth returns the column width of the terminal attached to fd, or
// 0 when fd is not a terminal or its size cannot be determined
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}

	return width
}
