// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package converge is the overall repository for the Converge
neuromorphic language toolchain, written in Go.

This top level of the repository has no functional code of its own —
everything is organized into the following sub-packages:

* diagnostic defines the source Span and Diagnostic types shared by
every stage of the front end.

* lexer turns Converge source text into a stream of spanned tokens.

* ast defines the syntax tree the parser produces: neuron, layer,
connect, stimulus, run, and seed declarations, plus the small
expression language used inside assignment bodies and stimulus calls.

* parser is a recursive-descent parser from tokens to an ast.Program,
along with the compiler-style caret diagnostic renderer used by every
subcommand that reports an error.

* units converts parsed (value, unit) quantities into the two
canonical dimensions the rest of the toolchain works in: integer
nanoseconds for time, and floating-point hertz for rate.

* validate checks a parsed program for the structural and type errors
the parser cannot catch on its own, accumulating every diagnostic it
finds rather than stopping at the first one.

* cvir emits the canonical, byte-stable JSON intermediate
representation of a validated program.

* erand provides the deterministic pseudo-random source (a seeded
64-bit LCG) and the Const/Uniform/Normal distribution sum type used to
sample synapse weights and delays.

* simulator runs the discrete-time leaky integrate-and-fire spiking
simulation described by a program and produces a spike-count summary.

* ecmd provides typed command-line flag handling built on per-command
flag.FlagSets.

* astdump renders a parsed ast.Program as an indented debug tree.

* cmd/converge is the command-line entry point tying the above
packages together into the check/ast/cvir/sim subcommand surface.
*/
package converge
