// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate checks an ast.Program for the structural and
// type errors the parser cannot catch on its own: duplicate or
// dangling names, wrong cardinality of seed/run statements, and
// mistyped quantities. Validate always runs to completion and
// reports every diagnostic it finds, rather than stopping at the
// first one.
package validate

import (
	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/diagnostic"
	"github.com/etherealcomputing/converge/units"
)

// Validate returns every diagnostic found in program. A nil/empty
// result means the program is well-formed.
func Validate(program ast.Program) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic

	neurons := map[string]diagnostic.Span{}
	layers := map[string]ast.LayerDef{}
	var seedCount, runCount int

	for _, item := range program.Items {
		switch d := item.(type) {
		case ast.NeuronDef:
			if _, dup := neurons[d.Name.Name]; dup {
				diags = append(diags, diagnostic.Newf("duplicate neuron `%s`", d.Name.Name).WithSpan(d.Name.Span))
			} else {
				neurons[d.Name.Name] = d.Name.Span
			}
		case ast.LayerDef:
			if _, dup := layers[d.Name.Name]; dup {
				diags = append(diags, diagnostic.Newf("duplicate layer `%s`", d.Name.Name).WithSpan(d.Name.Span))
			} else {
				layers[d.Name.Name] = d
			}
		case ast.SeedStmt:
			seedCount++
		case ast.RunStmt:
			runCount++
		}
	}

	if seedCount > 1 {
		diags = append(diags, diagnostic.New("at most one `seed` statement is allowed"))
	}
	if runCount == 0 {
		diags = append(diags, diagnostic.New("missing `run` statement"))
	} else if runCount > 1 {
		diags = append(diags, diagnostic.New("at most one `run` statement is allowed"))
	}

	for _, item := range program.Items {
		switch d := item.(type) {
		case ast.NeuronDef:
			diags = append(diags, validateNeuronBody(d)...)
		case ast.LayerDef:
			if _, ok := neurons[d.Neuron.Name]; !ok {
				diags = append(diags, diagnostic.Newf("unknown neuron type `%s`", d.Neuron.Name).WithSpan(d.Neuron.Span))
			}
		case ast.ConnectDef:
			if _, ok := layers[d.Src.Name]; !ok {
				diags = append(diags, diagnostic.Newf("unknown source layer `%s`", d.Src.Name).WithSpan(d.Src.Span))
			}
			if _, ok := layers[d.Dst.Name]; !ok {
				diags = append(diags, diagnostic.Newf("unknown destination layer `%s`", d.Dst.Name).WithSpan(d.Dst.Span))
			}
			diags = append(diags, validateConnectBody(d)...)
		case ast.StimulusDef:
			if _, ok := layers[d.Layer.Name]; !ok {
				diags = append(diags, diagnostic.Newf("unknown stimulus layer `%s`", d.Layer.Name).WithSpan(d.Layer.Span))
			}
			diags = append(diags, validateStimulusModel(d.Model)...)
		case ast.RunStmt:
			diags = append(diags, validateRunStmt(d)...)
		}
	}

	return diags
}

func validateNeuronBody(d ast.NeuronDef) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, a := range d.Body {
		switch a.Key.Name {
		case "tau_m":
			num, ok := a.Value.(ast.NumberExpr)
			if !ok {
				diags = append(diags, diagnostic.New("tau_m must be a time quantity").WithSpan(a.Key.Span))
				continue
			}
			if err := units.ExpectTime(num.Quantity, "tau_m"); err != nil {
				diags = append(diags, asDiagnostic(err))
			} else if num.Quantity.Value <= 0 {
				diags = append(diags, diagnostic.New("tau_m must be positive").WithSpan(a.Key.Span))
			}
		case "v_th":
			if _, ok := a.Value.(ast.NumberExpr); !ok {
				diags = append(diags, diagnostic.New("v_th must be a number").WithSpan(a.Key.Span))
			}
		}
	}
	return diags
}

func validateConnectBody(d ast.ConnectDef) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, a := range d.Body {
		switch a.Key.Name {
		case "w":
			if err := validateDistExpr(a.Value, false); err != nil {
				diags = append(diags, asDiagnosticWithSpan(err, a.Key.Span))
			}
		case "d":
			if err := validateDistExpr(a.Value, true); err != nil {
				diags = append(diags, asDiagnosticWithSpan(err, a.Key.Span))
			}
		}
	}
	return diags
}

func validateDistExpr(e ast.Expr, isTime bool) error {
	switch v := e.(type) {
	case ast.NumberExpr:
		if isTime {
			return units.ExpectTime(v.Quantity, "delay")
		}
		return nil
	case ast.CallExpr:
		if len(v.Call.Args) != 2 {
			return diagnostic.New("distribution requires two arguments")
		}
		switch v.Call.Name.Name {
		case "Uniform", "Normal":
			for _, arg := range v.Call.Args {
				num, ok := arg.Value.(ast.NumberExpr)
				if !ok {
					return diagnostic.New("distribution arguments must be numbers")
				}
				if isTime {
					if err := units.ExpectTime(num.Quantity, "delay"); err != nil {
						return err
					}
				}
			}
			return nil
		default:
			return diagnostic.New("unsupported distribution")
		}
	default:
		return diagnostic.New("expected number or distribution")
	}
}

func validateStimulusModel(model ast.StimulusModel) []diagnostic.Diagnostic {
	switch m := model.(type) {
	case ast.PoissonModel:
		if err := units.ExpectRate(m.Rate, "Poisson rate"); err != nil {
			return []diagnostic.Diagnostic{asDiagnostic(err)}
		}
	}
	return nil
}

func validateRunStmt(d ast.RunStmt) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	if err := units.ExpectTime(d.Duration, "run duration"); err != nil {
		diags = append(diags, asDiagnostic(err))
	} else if d.Duration.Value <= 0 {
		diags = append(diags, diagnostic.New("run duration must be positive").WithSpan(d.Duration.Span))
	}
	if d.Step != nil {
		if err := units.ExpectTime(*d.Step, "run step"); err != nil {
			diags = append(diags, asDiagnostic(err))
		} else if d.Step.Value <= 0 {
			diags = append(diags, diagnostic.New("run step must be positive").WithSpan(d.Step.Span))
		}
	}
	return diags
}

func asDiagnostic(err error) diagnostic.Diagnostic {
	if d, ok := err.(diagnostic.Diagnostic); ok {
		return d
	}
	return diagnostic.New(err.Error())
}

func asDiagnosticWithSpan(err error, span diagnostic.Span) diagnostic.Diagnostic {
	d := asDiagnostic(err)
	if d.Span == nil {
		d = d.WithSpan(span)
	}
	return d
}
