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

import "errors"

// The error kinds of the interpreter.  Errors returned by Run and
// Interpret wrap one of these and can be tested with errors.Is.
var (
	// ErrSyntax is the kind of fatal lexical errors: an illegal
	// character, or a program which ends while in string mode.
	ErrSyntax = errors.New("syntaxerror")

	// ErrRangecheck is the kind of out-of-bounds `p` and `g`
	// accesses.
	ErrRangecheck = errors.New("rangecheck")

	// ErrTimeout is returned when Interpreter.MaxSteps is exceeded.
	ErrTimeout = errors.New("timeout")
)

type befungeError struct {
	kind error
	msg  string
}

func (err *befungeError) Error() string {
	return err.kind.Error() + ": " + err.msg
}

func (err *befungeError) Unwrap() error {
	return err.kind
}
