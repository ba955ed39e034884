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

// Package main implements a command line Befunge-93 interpreter.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"seehuhn.de/go/befunge"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	program  string
	maxSteps int

	debug bool
	quiet bool
}

func main() {
	options, source := readArguments()
	logger := createLogger(options)

	if !options.quiet {
		printBanner()
	}

	if err := run(logger, options, source, os.Stdout); err != nil {
		logger.Fatal(err.Error())
	}
}

func readArguments() (optionFlags, string) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.program, "e", "", "interpret the given program text instead of reading a file")
	flags.IntVar(&options.maxSteps, "maxsteps", 0, "abort after this many executed cells, 0 runs without limit")
	flags.BoolVar(&options.debug, "debug", false, "trace every token and command at debug level")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if options.program != "" {
		return options, options.program
	}
	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: befunge [options] <program file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println(fmt.Errorf("reading program '%s': %w", args[0], err))
		os.Exit(1)
	}
	return options, string(data)
}

func createLogger(options optionFlags) *log.Logger {
	cfg := log.DefaultConfig()
	if options.debug {
		cfg.Level = log.DebugLevel
	} else if options.quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func printBanner() {
	fmt.Println("[----------------------------------]")
	fmt.Println("[ befunge - Befunge-93 interpreter ]")
	fmt.Printf("[----------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func run(logger *log.Logger, options optionFlags, source string, out io.Writer) error {
	intp := befunge.NewInterpreter()
	intp.SetLogger(logger)
	intp.MaxSteps = options.maxSteps

	result, err := intp.Run(source)
	if err != nil {
		return fmt.Errorf("interpreting program: %w", err)
	}

	_, err = io.WriteString(out, result)
	return err
}
