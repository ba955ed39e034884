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
	"errors"
	"testing"
)

func TestGridGet(t *testing.T) {
	g := NewGrid("ab\ncdef")

	cases := []struct {
		row, col int
		c        rune
		ok       bool
	}{
		{0, 0, 'a', true},
		{0, 1, 'b', true},
		{1, 3, 'f', true},
		{0, 2, 0, false}, // past the end of a short row
		{2, 0, 0, false}, // past the last row
		{-1, 0, 0, false},
		{0, -1, 0, false},
	}
	for _, test := range cases {
		c, ok := g.Get(test.row, test.col)
		if c != test.c || ok != test.ok {
			t.Errorf("Get(%d,%d) = %q, %t; want %q, %t",
				test.row, test.col, c, ok, test.c, test.ok)
		}
	}
}

func TestGridSet(t *testing.T) {
	g := NewGrid("ab\ncdef")

	err := g.Set(1, 2, 'X')
	if err != nil {
		t.Fatal(err)
	}
	c, ok := g.Get(1, 2)
	if !ok || c != 'X' {
		t.Errorf("Get(1,2) = %q, %t after Set", c, ok)
	}

	// writing outside the current bounds must not grow the grid
	for _, pos := range [][2]int{{0, 2}, {2, 0}, {-1, 0}, {0, -1}} {
		err := g.Set(pos[0], pos[1], 'X')
		if !errors.Is(err, ErrRangecheck) {
			t.Errorf("Set(%d,%d) = %v; want rangecheck", pos[0], pos[1], err)
		}
	}
}
