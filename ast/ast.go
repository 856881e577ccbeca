// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the syntax tree the parser produces. The tree is
// built once by the parser and is never mutated afterward — the
// validator, emitter, and simulator only ever read it.
//
// Item, Expr, and StimulusModel are closed tagged unions: each is a Go
// interface with an unexported marker method, and the concrete types
// implementing it are listed alongside the interface. Adding a new
// variant means adding a new struct and a new case in every switch
// over the interface; existing variants are never mutated.
package ast

import "github.com/etherealcomputing/converge/diagnostic"

// Program is an ordered sequence of top-level Items, in source order.
type Program struct {
	Items []Item
}

// Item is a top-level declaration or statement.
type Item interface {
	isItem()
}

// NeuronDef declares a neuron prototype with a body of parameter
// assignments.
type NeuronDef struct {
	Name Ident
	Body []Assign
}

// LayerDef instantiates Size copies of a named neuron prototype.
type LayerDef struct {
	Name   Ident
	Size   uint64
	Neuron Ident
}

// ConnectDef declares an all-to-all connection from Src to Dst, with a
// body of weight/delay assignments.
type ConnectDef struct {
	Src  Ident
	Dst  Ident
	Body []Assign
}

// StimulusDef binds an external driver model to a layer.
type StimulusDef struct {
	Layer Ident
	Model StimulusModel
}

// RunStmt specifies the one simulation run: a duration and an
// optional step size.
type RunStmt struct {
	Duration Quantity
	Step     *Quantity
}

// SeedStmt sets the program-wide PRNG seed.
type SeedStmt struct {
	Value uint64
	Span  diagnostic.Span
}

func (NeuronDef) isItem()   {}
func (LayerDef) isItem()    {}
func (ConnectDef) isItem()  {}
func (StimulusDef) isItem() {}
func (RunStmt) isItem()     {}
func (SeedStmt) isItem()    {}

// StimulusModel is the driver behind a StimulusDef. Poisson is the
// only variant today; the interface exists so new models (e.g. a
// deterministic spike train) can be added without touching existing
// cases.
type StimulusModel interface {
	isStimulusModel()
}

// PoissonModel fires each neuron as an independent Bernoulli trial per
// step, approximating a Poisson process at Rate hertz.
type PoissonModel struct {
	Rate Quantity
}

func (PoissonModel) isStimulusModel() {}

// Assign pairs a field name with its expression value, inside a
// NeuronDef or ConnectDef body.
type Assign struct {
	Key   Ident
	Value Expr
}

// Expr is a value appearing on the right-hand side of an Assign or as
// a Call argument.
type Expr interface {
	isExpr()
}

// NumberExpr wraps a literal numeric Quantity.
type NumberExpr struct {
	Quantity Quantity
}

// StringExpr is a quoted string literal.
type StringExpr struct {
	Value string
}

// IdentExpr refers to another name (e.g. a neuron or layer identifier
// used as a bare value).
type IdentExpr struct {
	Ident Ident
}

// CallExpr invokes a named function-like form, e.g. `Poisson(rate=50
// Hz)` or `Normal(0 ms, 1 ms)`.
type CallExpr struct {
	Call Call
}

func (NumberExpr) isExpr() {}
func (StringExpr) isExpr() {}
func (IdentExpr) isExpr()  {}
func (CallExpr) isExpr()   {}

// Call is a named form applied to a list of arguments, each either
// positional or named.
type Call struct {
	Name Ident
	Args []CallArg
}

// CallArg is one argument to a Call. Exactly one of Name being empty
// distinguishes positional from named: a positional argument has a
// zero-value Name.
type CallArg struct {
	Name  Ident // zero value (Name.Name == "") for positional args
	Value Expr
}

// IsNamed reports whether this argument was written as `name = value`.
func (a CallArg) IsNamed() bool {
	return a.Name.Name != ""
}

// Ident is a span-carrying identifier. Two Idents are the same name
// iff their Name strings match; Span is metadata for diagnostics only.
type Ident struct {
	Name string
	Span diagnostic.Span
}

// NewIdent returns an Ident with the given name and span.
func NewIdent(name string, span diagnostic.Span) Ident {
	return Ident{Name: name, Span: span}
}

// Quantity is a numeric literal with an optional unit identifier.
type Quantity struct {
	Value float64
	Unit  *Ident
	Span  diagnostic.Span
}
