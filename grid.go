// seehuhn.de/go/befunge - a Befunge-93 interpreter
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package befunge

import (
	"fmt"
	"strings"
)

// Grid is the program text as a mutable two-dimensional surface.
// Rows keep their original lengths, so short lines are not padded.
// The grid is both the code the scanner reads and the memory the `p`
// and `g` commands access.
type Grid struct {
	rows [][]rune
}

// NewGrid splits text on line breaks into the rows of a new grid.
func NewGrid(text string) *Grid {
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return &Grid{rows: rows}
}

// Get returns the character at the given position.  The second
// return value is false if the position is outside the grid, either
// past the last row or past the end of that row.
func (g *Grid) Get(row, col int) (rune, bool) {
	if row < 0 || row >= len(g.rows) {
		return 0, false
	}
	line := g.rows[row]
	if col < 0 || col >= len(line) {
		return 0, false
	}
	return line[col], true
}

// Set overwrites the character at the given position.  Writing
// outside the current bounds does not grow the grid but fails with a
// rangecheck error, so that self-modifying programs stay
// deterministic.
func (g *Grid) Set(row, col int, c rune) error {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return &befungeError{ErrRangecheck, fmt.Sprintf("cell (%d,%d) is outside the program", col, row)}
	}
	g.rows[row][col] = c
	return nil
}

// NumRows returns the number of rows in the grid.
func (g *Grid) NumRows() int {
	return len(g.rows)
}
