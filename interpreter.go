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

// Package befunge implements an interpreter for the Befunge-93
// programming language.  A program is a rectangular grid of
// characters which a single instruction pointer traverses in one of
// the four cardinal directions, pushing digits onto a data stack and
// executing single-character commands.  The program can rewrite its
// own grid at run time using the `p` command.
package befunge

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Interpreter executes Befunge-93 programs.  An Interpreter is not
// safe for concurrent use; each Run owns its grid, stack and output
// exclusively.
type Interpreter struct {
	// Stack is the data stack.  The last element is the top of the
	// stack.  It can be inspected after a run.
	Stack []Integer

	// MaxSteps aborts a run with ErrTimeout after this many
	// executed cells.  Zero means no limit: a program without a
	// halt command may run forever.
	MaxSteps int

	grid     *Grid
	scanner  *Scanner
	commands map[rune]command
	output   []string
	logger   *log.Logger
	randInt  func(n int) int
}

// NewInterpreter creates a new interpreter with an empty stack.
// Logging is at error level by default; use SetLogger to enable
// execution traces.
func NewInterpreter() *Interpreter {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return &Interpreter{
		commands: makeCommandTable(),
		logger:   log.NewWithConfig(cfg),
		randInt:  rand.IntN,
	}
}

// SetLogger replaces the interpreter's logger.
func (intp *Interpreter) SetLogger(logger *log.Logger) {
	intp.logger = logger
}

// SetRandom replaces the random source used by the `?` command.
// The given function must return a number in the range [0,n).
// This allows deterministic tests of programs containing `?`.
func (intp *Interpreter) SetRandom(intn func(n int) int) {
	intp.randInt = intn
}

// CommandChars returns all registered command characters, sorted by
// code point.
func (intp *Interpreter) CommandChars() []rune {
	return commandChars(intp.commands)
}

// Run interprets source as a Befunge-93 program and returns the
// joined program output.  The run ends when the instruction pointer
// reads a `@` cell or leaves the grid.  Errors wrap ErrSyntax,
// ErrRangecheck or ErrTimeout.
func (intp *Interpreter) Run(source string) (string, error) {
	intp.grid = NewGrid(source)
	intp.scanner = newScanner(intp.grid, intp.commands)
	intp.Stack = intp.Stack[:0]
	intp.output = intp.output[:0]
	intp.logger.Debug("program loaded", log.Int("rows", intp.grid.NumRows()))

	steps := 0
runLoop:
	for {
		if intp.MaxSteps > 0 && steps >= intp.MaxSteps {
			return "", &befungeError{ErrTimeout, fmt.Sprintf("no halt after %d steps", steps)}
		}

		tok, err := intp.scanner.Next()
		if err == io.EOF {
			intp.logger.Debug("end of program", log.Int("stack", len(intp.Stack)))
			break
		} else if err != nil {
			return "", err
		}
		steps++
		intp.logger.Debug("token",
			log.Int("x", intp.scanner.X),
			log.Int("y", intp.scanner.Y),
			log.String("token", fmt.Sprintf("%T(%v)", tok, tok)))

		switch tok := tok.(type) {
		case Digit:
			intp.push(Integer(tok))
		case StringChar:
			intp.push(Integer(tok))
		case CommandChar:
			if tok == '@' {
				intp.logger.Debug("halt command found", log.Int("stack", len(intp.Stack)))
				break runLoop
			}
			cmd := intp.commands[rune(tok)]
			if cmd == nil {
				// unregistered characters act as no-ops; the
				// scanner rejects genuinely illegal ones
				continue
			}
			err := cmd(intp)
			if err != nil {
				return "", err
			}
		}
	}

	return strings.Join(intp.output, ""), nil
}

// Interpret runs source in a fresh interpreter and returns the
// program output.
func Interpret(source string) (string, error) {
	return NewInterpreter().Run(source)
}

// push adds a value on top of the data stack.
func (intp *Interpreter) push(v Integer) {
	intp.Stack = append(intp.Stack, v)
}

// pop removes and returns the top of the data stack.  Popping from
// an empty stack yields 0; no command treats underflow as an error.
func (intp *Interpreter) pop() Integer {
	if len(intp.Stack) == 0 {
		return 0
	}
	v := intp.Stack[len(intp.Stack)-1]
	intp.Stack = intp.Stack[:len(intp.Stack)-1]
	return v
}

// pop2 pops two values, in pop order: a was the top of the stack.
func (intp *Interpreter) pop2() (a, b Integer) {
	a = intp.pop()
	b = intp.pop()
	return a, b
}

// peek returns the top of the data stack without removing it, or 0
// if the stack is empty.
func (intp *Interpreter) peek() Integer {
	if len(intp.Stack) == 0 {
		return 0
	}
	return intp.Stack[len(intp.Stack)-1]
}

// emit appends one output unit.
func (intp *Interpreter) emit(s string) {
	intp.output = append(intp.output, s)
}

// Output returns the output accumulated so far.  After a failed run
// this is the partial output up to the error.
func (intp *Interpreter) Output() string {
	return strings.Join(intp.output, "")
}
