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
	"io"
)

// Scanner turns the grid into a stream of tokens.  It owns the
// instruction pointer: a position (X, Y) and a direction (DX, DY),
// where exactly one of DX and DY is nonzero and the nonzero one is
// ±1.  X is the column, Y the row.
type Scanner struct {
	X, Y   int
	DX, DY int

	grid     *Grid
	commands map[rune]command

	inString bool
	pending  bool
}

func newScanner(g *Grid, commands map[rune]command) *Scanner {
	return &Scanner{
		DX:       1,
		grid:     g,
		commands: commands,
	}
}

// Advance moves the instruction pointer one cell in the current
// direction.  There is no bounds check; leaving the grid is detected
// by the next read.
func (s *Scanner) Advance() {
	s.X += s.DX
	s.Y += s.DY
}

// SetDirection overwrites the direction.  Callers only ever pass one
// of the four cardinal unit vectors.
func (s *Scanner) SetDirection(dx, dy int) {
	s.DX = dx
	s.DY = dy
}

// Next returns the next token.  At the end of the program it returns
// io.EOF.
//
// The advance for a returned token is deferred until the following
// call to Next.  A command executed between the two calls can change
// the direction or advance the pointer itself, and the deferred
// advance then uses the new state.
func (s *Scanner) Next() (Token, error) {
	if s.pending {
		s.pending = false
		s.Advance()
	}

	for {
		c, ok := s.grid.Get(s.Y, s.X)

		if s.inString {
			if !ok {
				return nil, &befungeError{ErrSyntax, "program ended in string mode"}
			}
			if c == '"' {
				s.inString = false
				s.Advance()
				continue
			}
			s.pending = true
			return StringChar(c), nil
		}

		if !ok {
			return nil, io.EOF
		}
		switch {
		case c >= '0' && c <= '9':
			s.pending = true
			return Digit(c - '0'), nil
		case c == '"':
			s.inString = true
			s.Advance()
		default:
			if _, ok := s.commands[c]; !ok {
				return nil, &befungeError{ErrSyntax, fmt.Sprintf("illegal character %q at (%d,%d)", c, s.X, s.Y)}
			}
			s.pending = true
			return CommandChar(c), nil
		}
	}
}
