package model

import (
	"fmt"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws checkbox matrices to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the cells, one terminal row per board row
func (r *TerminalRenderer) Display(cells [][]bool) {
	for _, row := range cells {
		for _, alive := range row {
			if alive {
				fmt.Fprint(r.Out, gridPosBlock)
			} else {
				fmt.Fprint(r.Out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}
