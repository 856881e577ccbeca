// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command converge is the command-line front end to the Converge
// toolchain: parsing and validating source files, printing debug
// views of the parsed AST and canonical IR, and running the
// deterministic spiking simulator.
package main

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/astdump"
	"github.com/etherealcomputing/converge/cvir"
	"github.com/etherealcomputing/converge/ecmd"
	"github.com/etherealcomputing/converge/parser"
	"github.com/etherealcomputing/converge/simulator"
	"github.com/etherealcomputing/converge/validate"
)

// Exit codes, per the command surface design: 0 success, 1 a
// diagnostic or simulation failure, 2 a usage or I/O error.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// commands is the dispatch table backing main's subcommand lookup; it
// also doubles as the source of truth for the "unknown command" hint.
var commands = map[string]func([]string) int{
	"check": cmdCheck,
	"ast":   cmdAST,
	"cvir":  cmdCVIR,
	"sim":   cmdSim,
}

func main() {
	args := os.Args[1:]
	cmd := "help"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		printUsage()
		os.Exit(exitOK)
	default:
		if handler, ok := commands[cmd]; ok {
			os.Exit(handler(args))
		}
		known := maps.Keys(commands)
		sort.Strings(known)
		fmt.Fprintf(os.Stderr, "error: unknown command `%s` (expected one of %v)\n\n", cmd, known)
		printUsage()
		os.Exit(exitUsage)
	}
}

func cmdCheck(args []string) int {
	path, code := requirePath(args)
	if code != exitOK {
		return code
	}
	src, code := readFile(path)
	if code != exitOK {
		return code
	}
	program, code := parseOrReport(src)
	if code != exitOK {
		return code
	}
	return reportValidation(src, program)
}

func cmdAST(args []string) int {
	path, code := requirePath(args)
	if code != exitOK {
		return code
	}
	src, code := readFile(path)
	if code != exitOK {
		return code
	}
	program, code := parseOrReport(src)
	if code != exitOK {
		return code
	}
	fmt.Print(astdump.Dump(program))
	return exitOK
}

func cmdCVIR(args []string) int {
	path, code := requirePath(args)
	if code != exitOK {
		return code
	}
	src, code := readFile(path)
	if code != exitOK {
		return code
	}
	program, code := parseOrReport(src)
	if code != exitOK {
		return code
	}
	if code := reportValidation(src, program); code != exitOK {
		return code
	}
	fmt.Print(cvir.Emit(program))
	return exitOK
}

func cmdSim(args []string) int {
	fs := ecmd.NewArgs("sim")
	fs.AddString("out", "", "write the summary JSON to this path instead of stdout")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n\n", err)
		printUsage()
		return exitUsage
	}

	positional := fs.Positional()
	if len(positional) == 0 {
		fmt.Fprintln(os.Stderr, "error: expected a file path")
		fmt.Fprintln(os.Stderr)
		printUsage()
		return exitUsage
	}
	path := positional[0]

	src, code := readFile(path)
	if code != exitOK {
		return code
	}
	program, code := parseOrReport(src)
	if code != exitOK {
		return code
	}
	if code := reportValidation(src, program); code != exitOK {
		return code
	}

	summary, err := simulator.Simulate(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return exitFailure
	}
	out := simulator.SummaryJSON(summary)

	if outPath := fs.String("out"); outPath != "" {
		if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write `%s`: %s\n", outPath, err)
			return exitUsage
		}
		return exitOK
	}
	fmt.Print(out)
	return exitOK
}

func requirePath(args []string) (string, int) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: expected a file path")
		fmt.Fprintln(os.Stderr)
		printUsage()
		return "", exitUsage
	}
	return args[0], exitOK
}

func readFile(path string) (string, int) {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to read `%s`: %s\n", path, err)
		return "", exitUsage
	}
	return string(b), exitOK
}

func parseOrReport(src string) (ast.Program, int) {
	program, err := parser.ParseProgram(src)
	if err != nil {
		fmt.Fprint(os.Stderr, parser.FormatDiagnostic(src, err))
		return ast.Program{}, exitFailure
	}
	return program, exitOK
}

func reportValidation(src string, program ast.Program) int {
	diags := validate.Validate(program)
	if len(diags) == 0 {
		return exitOK
	}
	for _, d := range diags {
		fmt.Fprint(os.Stderr, parser.FormatDiagnostic(src, d))
	}
	return exitFailure
}

func printUsage() {
	fmt.Fprint(os.Stderr, `converge: neuromorphic language toolchain (pre-alpha)

USAGE:
  converge <command> <file>

COMMANDS:
  check   Parse + validate a Converge file
  ast     Print parsed AST (debug)
  cvir    Emit canonical JSON IR
  sim     Run deterministic simulator
  help    Show this help

EXAMPLES:
  converge check examples/hello.cv
  converge ast   examples/hello.cv
  converge cvir  examples/hello.cv
  converge sim   examples/poisson.cv
`)
}
