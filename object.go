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

// Integer is a value on the data stack.
type Integer int

// Token is a single lexical item produced by the Scanner.  It is one
// of Digit, StringChar or CommandChar.  The end of the program is not
// a token; Scanner.Next signals it with io.EOF.
type Token interface{}

// Digit is a literal digit cell, with value 0 to 9.
type Digit int

// StringChar is a cell read while the scanner is in string mode.
// The interpreter pushes its code point onto the stack.
type StringChar rune

// CommandChar is a cell naming a command from the command table.
type CommandChar rune
