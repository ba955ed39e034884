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

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"seehuhn.de/go/befunge"
)

func TestRun(t *testing.T) {
	options := optionFlags{quiet: true}
	logger := createLogger(options)

	var buf bytes.Buffer
	err := run(logger, options, "25*.@", &buf)
	assert.NoError(t, err)
	assert.Equal(t, "10", buf.String())
}

func TestRunMaxSteps(t *testing.T) {
	options := optionFlags{quiet: true, maxSteps: 100}
	logger := createLogger(options)

	var buf bytes.Buffer
	err := run(logger, options, ">v\n^<", &buf)
	assert.True(t, errors.Is(err, befunge.ErrTimeout))
}

func TestRunSyntaxError(t *testing.T) {
	options := optionFlags{quiet: true}
	logger := createLogger(options)

	var buf bytes.Buffer
	err := run(logger, options, `"abc`, &buf)
	assert.True(t, errors.Is(err, befunge.ErrSyntax))
	assert.Equal(t, "", buf.String())
}
