package game

import (
	"fmt"
	"strings"
)

// String renders the board for debugging.
//
//	-----------------------------
//	|   |   |   |   |   |   |   |
//	| X | O |   |   |   |   |   |
//	-----------------------------
//	  0   1   2   3   4   5   6
func (b *Board) String() string {
	var sb strings.Builder
	rule := strings.Repeat("----", b.cols) + "-\n"

	sb.WriteString(rule)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			fmt.Fprintf(&sb, "| %s ", b.At(r, c))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	for c := 0; c < b.cols; c++ {
		fmt.Fprintf(&sb, "%3d ", c)
	}
	sb.WriteString("\n")
	return sb.String()
}
