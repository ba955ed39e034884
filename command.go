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
	"slices"
	"strconv"

	"golang.org/x/exp/maps"
)

// command implements a single Befunge command.  Commands mutate the
// interpreter's stack, scanner, grid or output.
type command func(*Interpreter) error

// cardinal lists the four direction vectors, in the order used by
// the `?` command.
var cardinal = [4][2]int{
	{1, 0},  // right
	{-1, 0}, // left
	{0, -1}, // up
	{0, 1},  // down
}

// makeCommandTable builds the mapping from command characters to
// their implementations.  The table is complete for Befunge-93 minus
// the input commands `&` and `~` (the interpreter has no input
// stream).
func makeCommandTable() map[rune]command {
	setDirection := func(dx, dy int) command {
		return func(intp *Interpreter) error {
			intp.scanner.SetDirection(dx, dy)
			return nil
		}
	}

	table := map[rune]command{
		'>': setDirection(1, 0),
		'<': setDirection(-1, 0),
		'^': setDirection(0, -1),
		'v': setDirection(0, 1),
		'+': func(intp *Interpreter) error {
			a, b := intp.pop2()
			intp.push(a + b)
			return nil
		},
		'-': func(intp *Interpreter) error {
			a, b := intp.pop2()
			intp.push(b - a)
			return nil
		},
		'*': func(intp *Interpreter) error {
			a, b := intp.pop2()
			intp.push(a * b)
			return nil
		},
		'/': func(intp *Interpreter) error {
			a, b := intp.pop2()
			intp.push(floorDiv(b, a))
			return nil
		},
		'%': func(intp *Interpreter) error {
			a, b := intp.pop2()
			intp.push(floorMod(b, a))
			return nil
		},
		'`': func(intp *Interpreter) error {
			a, b := intp.pop2()
			if b > a {
				intp.push(1)
			} else {
				intp.push(0)
			}
			return nil
		},
		'!': func(intp *Interpreter) error {
			if intp.pop() == 0 {
				intp.push(1)
			} else {
				intp.push(0)
			}
			return nil
		},
		':': func(intp *Interpreter) error {
			intp.push(intp.peek())
			return nil
		},
		'\\': func(intp *Interpreter) error {
			last := intp.pop()
			penultimate := intp.pop()
			intp.push(last)
			intp.push(penultimate)
			return nil
		},
		'$': func(intp *Interpreter) error {
			intp.pop()
			return nil
		},
		'_': func(intp *Interpreter) error {
			if intp.pop() == 0 {
				intp.scanner.SetDirection(1, 0)
			} else {
				intp.scanner.SetDirection(-1, 0)
			}
			return nil
		},
		'|': func(intp *Interpreter) error {
			if intp.pop() == 0 {
				intp.scanner.SetDirection(0, 1)
			} else {
				intp.scanner.SetDirection(0, -1)
			}
			return nil
		},
		'?': func(intp *Interpreter) error {
			d := cardinal[intp.randInt(len(cardinal))]
			intp.scanner.SetDirection(d[0], d[1])
			return nil
		},
		'#': func(intp *Interpreter) error {
			intp.scanner.Advance()
			return nil
		},
		'p': func(intp *Interpreter) error {
			y, x := intp.pop2()
			v := intp.pop()
			return intp.grid.Set(int(y), int(x), rune(v))
		},
		'g': func(intp *Interpreter) error {
			y, x := intp.pop2()
			c, ok := intp.grid.Get(int(y), int(x))
			if !ok {
				return &befungeError{ErrRangecheck, fmt.Sprintf("g: cell (%d,%d) is outside the program", x, y)}
			}
			intp.push(Integer(c))
			return nil
		},
		'.': func(intp *Interpreter) error {
			intp.emit(strconv.Itoa(int(intp.pop())))
			return nil
		},
		',': func(intp *Interpreter) error {
			intp.emit(string(rune(intp.pop())))
			return nil
		},
		'@': func(intp *Interpreter) error {
			// The run ends when the interpreter sees this
			// character, before dispatch; the command itself is
			// never executed.
			return nil
		},
		' ': func(intp *Interpreter) error {
			return nil
		},
	}
	return table
}

// commandChars returns the registered command characters, sorted by
// code point.
func commandChars(table map[rune]command) []rune {
	cc := maps.Keys(table)
	slices.Sort(cc)
	return cc
}

// floorDiv divides b by a, rounding towards negative infinity.  A
// zero divisor yields zero instead of an error.
func floorDiv(b, a Integer) Integer {
	if a == 0 {
		return 0
	}
	q := b / a
	if b%a != 0 && (b < 0) != (a < 0) {
		q--
	}
	return q
}

// floorMod is the modulo matching floorDiv: the result is zero or
// takes the sign of the divisor a.  A zero divisor yields zero.
func floorMod(b, a Integer) Integer {
	if a == 0 {
		return 0
	}
	r := b % a
	if r != 0 && (r < 0) != (a < 0) {
		r += a
	}
	return r
}
