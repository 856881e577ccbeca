// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecmd provides typed wrappers over flag.FlagSet for building
// a subcommand-based CLI, one FlagSet per subcommand rather than a
// single global flag.CommandLine — each subcommand owns its own flag
// namespace and can be parsed independently of the others.
package ecmd

import "flag"

// Args collects the flags for a single subcommand and the underlying
// FlagSet used to parse them.
type Args struct {
	Strings map[string]*String
	Bools   map[string]*Bool

	set *flag.FlagSet
}

// NewArgs creates an Args bound to a new FlagSet named name.
func NewArgs(name string) *Args {
	return &Args{
		Strings: make(map[string]*String),
		Bools:   make(map[string]*Bool),
		set:     flag.NewFlagSet(name, flag.ContinueOnError),
	}
}

// AddString registers a new string flag.
func (ar *Args) AddString(name, def, desc string) {
	s := NewString(name, def, desc)
	ar.Strings[name] = s
	ar.set.StringVar(&s.Val, name, def, desc)
}

// AddBool registers a new bool flag.
func (ar *Args) AddBool(name string, def bool, desc string) {
	b := NewBool(name, def, desc)
	ar.Bools[name] = b
	ar.set.BoolVar(&b.Val, name, def, desc)
}

// String returns the current value of a registered string flag.
func (ar *Args) String(name string) string {
	if v, ok := ar.Strings[name]; ok {
		return v.Val
	}
	return ""
}

// Bool returns the current value of a registered bool flag.
func (ar *Args) Bool(name string) bool {
	if v, ok := ar.Bools[name]; ok {
		return v.Val
	}
	return false
}

// Parse parses argv (not including the subcommand name itself)
// against this Args' FlagSet.
func (ar *Args) Parse(argv []string) error {
	return ar.set.Parse(argv)
}

// Positional returns the non-flag positional arguments left after Parse.
func (ar *Args) Positional() []string {
	return ar.set.Args()
}
